package models

import "time"

// Role is the explicit account discriminant. It is decided at account
// creation and never inferred from record shape.
type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleProfessional
}

// Account represents an authenticated platform identity.
type Account struct {
	ID           string `bson:"id" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Role         Role   `bson:"role" json:"role"`
	Name         string `bson:"name" json:"name"`
	ProfileImage string `bson:"profileImage" json:"profileImage,omitempty"`

	// ProfileImageID is the storage identifier of the current image,
	// kept so a replaced asset can be removed.
	ProfileImageID string `bson:"profileImageId,omitempty" json:"-"`

	FCMToken  string    `bson:"fcmToken,omitempty" json:"-"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
