package models

import "time"

// Availability values for a professional profile.
const (
	AvailabilityAvailable   = "Available Now"
	AvailabilityUnavailable = "Unavailable"
)

// Service is a bookable offering embedded in a profile. A service is
// bookable only when its price is greater than zero.
type Service struct {
	Name     string  `bson:"name" json:"name"`
	Price    float64 `bson:"price" json:"price"`
	Duration int     `bson:"duration,omitempty" json:"duration,omitempty"` // minutes
	Category string  `bson:"category,omitempty" json:"category,omitempty"`
}

// Review is customer feedback embedded in a profile.
type Review struct {
	Author  string  `bson:"author" json:"author"`
	Rating  float64 `bson:"rating" json:"rating"` // 1 to 5
	Comment string  `bson:"comment" json:"comment"`
}

// SocialLinks holds the professional's public handles.
type SocialLinks struct {
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	TikTok    string `bson:"tiktok,omitempty" json:"tiktok,omitempty"`
}

// TravelPolicy lists the areas a professional will travel to.
type TravelPolicy struct {
	Locations []string `bson:"locations,omitempty" json:"locations,omitempty"`
}

// ProfessionalProfile is the durable professional record. It is created
// as a shell at account creation and filled in field-by-field through
// onboarding merge writes.
type ProfessionalProfile struct {
	ID                string       `bson:"id" json:"id"`
	Email             string       `bson:"email" json:"email"`
	Name              string       `bson:"name" json:"name"`
	Specialty         string       `bson:"specialty,omitempty" json:"specialty,omitempty"`
	Bio               string       `bson:"bio,omitempty" json:"bio,omitempty"`
	Location          string       `bson:"location,omitempty" json:"location,omitempty"`
	ProfileImage      string       `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Availability      string       `bson:"availability" json:"availability"`
	Services          []Service    `bson:"services,omitempty" json:"services,omitempty"`
	Reviews           []Review     `bson:"reviews,omitempty" json:"reviews,omitempty"`
	ProfileEmbedURL   string       `bson:"profileEmbedUrl,omitempty" json:"profileEmbedUrl,omitempty"`
	TikTokURLs        []string     `bson:"tiktokUrls,omitempty" json:"tiktokUrls,omitempty"`
	InstagramURLs     []string     `bson:"instagramEmbedUrls,omitempty" json:"instagramEmbedUrls,omitempty"`
	Socials           SocialLinks  `bson:"socials,omitempty" json:"socials,omitzero"`
	TravelPolicy      TravelPolicy `bson:"travelPolicy,omitempty" json:"travelPolicy,omitzero"`
	IsProfileComplete bool         `bson:"isProfileComplete" json:"isProfileComplete"`
	CreatedAt         time.Time    `bson:"createdAt" json:"createdAt"`
	UpdatedAt         time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// ServiceByName returns the embedded service with the given name.
func (p *ProfessionalProfile) ServiceByName(name string) (Service, bool) {
	for _, s := range p.Services {
		if s.Name == name {
			return s, true
		}
	}
	return Service{}, false
}
