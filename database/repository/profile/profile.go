package profileRepo

import "beautymatch/models"

// QueryFilter is a single equality predicate on a profile field.
type QueryFilter struct {
	Field string
	Value interface{}
}

// ProfileRepository defines methods for professional profile data
// access. The store supports point reads, partial merge writes and
// equality-predicate queries.
type ProfileRepository interface {
	// GetByID retrieves a profile by its unique ID. Returns (nil, nil) when absent.
	GetByID(id string) (*models.ProfessionalProfile, error)
	// GetByEmail retrieves a profile by email. Returns (nil, nil) when absent.
	GetByEmail(email string) (*models.ProfessionalProfile, error)
	// Create inserts a new profile record (the shell written at account creation).
	Create(profile *models.ProfessionalProfile) error
	// Merge applies a partial update to a profile; fields absent from
	// the partial document are left untouched.
	Merge(id string, partial map[string]interface{}) error
	// Query returns the profiles satisfying every given equality
	// predicate, in stable insertion order.
	Query(filters []QueryFilter) ([]models.ProfessionalProfile, error)
}
