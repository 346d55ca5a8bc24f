package onboarding

import (
	"context"
	"errors"
	"fmt"

	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
	"beautymatch/utils"
)

// Step names in wizard order. Steps may be revisited; Complete checks
// that every required step is satisfied before setting the flag.
const (
	StepBasic     = "basic"     // name, specialty, bio
	StepLocation  = "location"  // location, travel policy
	StepServices  = "services"  // at least one valid service
	StepPortfolio = "portfolio" // embed URLs and socials, optional
)

// StepOrder is the fixed wizard sequence.
var StepOrder = []string{StepBasic, StepLocation, StepServices, StepPortfolio}

var (
	ErrUnknownStep       = errors.New("unknown onboarding step")
	ErrIncompleteProfile = errors.New("required onboarding steps are not complete")
	ErrProfileNotFound   = errors.New("professional profile not found")
)

// StepInput carries the union of wizard form fields; each step reads
// only its own fields.
type StepInput struct {
	Name         string              `json:"name,omitempty"`
	Specialty    string              `json:"specialty,omitempty"`
	Bio          string              `json:"bio,omitempty"`
	Location     string              `json:"location,omitempty"`
	TravelPolicy models.TravelPolicy `json:"travelPolicy,omitzero"`
	Services     []models.Service    `json:"services,omitempty"`
	TikTokURLs   []string            `json:"tiktokUrls,omitempty"`
	InstagramURL []string            `json:"instagramEmbedUrls,omitempty"`
	Socials      models.SocialLinks  `json:"socials,omitzero"`
}

// State reports which steps are currently satisfied by the stored profile.
type State struct {
	Steps    map[string]bool `json:"steps"`
	Complete bool            `json:"complete"`
}

// OnboardingService drives the wizard: each submission merge-writes a
// partial profile through the store, and Complete gates the
// completeness flag.
type OnboardingService interface {
	GetState(ctx context.Context, profileID string) (*State, error)
	SubmitStep(ctx context.Context, profileID, step string, in StepInput) (*State, error)
	Complete(ctx context.Context, profileID string) (*models.ProfessionalProfile, error)
}

// DefaultOnboardingService is the production implementation.
type DefaultOnboardingService struct {
	Profiles profileRepo.ProfileRepository
}

// GetState evaluates step satisfaction against the stored profile.
func (s *DefaultOnboardingService) GetState(ctx context.Context, profileID string) (*State, error) {
	prof, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, ErrProfileNotFound
	}
	return stateOf(prof), nil
}

// SubmitStep validates the step's fields and merge-writes them. Fields
// outside the step are ignored; fields already stored are untouched.
func (s *DefaultOnboardingService) SubmitStep(ctx context.Context, profileID, step string, in StepInput) (*State, error) {
	partial, err := partialFor(step, in)
	if err != nil {
		return nil, err
	}
	if err := s.Profiles.Merge(profileID, partial); err != nil {
		return nil, err
	}
	return s.GetState(ctx, profileID)
}

// Complete verifies every required step and sets the completeness flag
// along with availability, making the profile discoverable.
func (s *DefaultOnboardingService) Complete(ctx context.Context, profileID string) (*models.ProfessionalProfile, error) {
	prof, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return nil, err
	}
	if prof == nil {
		return nil, ErrProfileNotFound
	}

	st := stateOf(prof)
	for _, step := range []string{StepBasic, StepLocation, StepServices} {
		if !st.Steps[step] {
			return nil, fmt.Errorf("%w: %s", ErrIncompleteProfile, step)
		}
	}

	partial := map[string]interface{}{
		"isProfileComplete": true,
		"availability":      models.AvailabilityAvailable,
	}
	if err := s.Profiles.Merge(profileID, partial); err != nil {
		return nil, err
	}
	prof.IsProfileComplete = true
	prof.Availability = models.AvailabilityAvailable
	return prof, nil
}

// partialFor builds the merge document for one step and validates the
// step's inputs.
func partialFor(step string, in StepInput) (map[string]interface{}, error) {
	switch step {
	case StepBasic:
		if in.Name == "" {
			return nil, fmt.Errorf("name is required")
		}
		if !utils.IsValidSpecialty(in.Specialty) {
			return nil, fmt.Errorf("specialty %q is not recognised", in.Specialty)
		}
		return map[string]interface{}{
			"name":      in.Name,
			"specialty": in.Specialty,
			"bio":       in.Bio,
		}, nil

	case StepLocation:
		if !utils.IsValidLocation(in.Location) {
			return nil, fmt.Errorf("location %q is not supported", in.Location)
		}
		for _, loc := range in.TravelPolicy.Locations {
			if !utils.IsValidLocation(loc) {
				return nil, fmt.Errorf("travel location %q is not supported", loc)
			}
		}
		return map[string]interface{}{
			"location":     in.Location,
			"travelPolicy": in.TravelPolicy,
		}, nil

	case StepServices:
		valid := make([]models.Service, 0, len(in.Services))
		for _, svc := range in.Services {
			if svc.Name == "" || svc.Price <= 0 {
				continue
			}
			valid = append(valid, svc)
		}
		if len(valid) == 0 {
			return nil, fmt.Errorf("at least one service with a positive price is required")
		}
		return map[string]interface{}{"services": valid}, nil

	case StepPortfolio:
		return map[string]interface{}{
			"tiktokUrls":         in.TikTokURLs,
			"instagramEmbedUrls": in.InstagramURL,
			"socials":            in.Socials,
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownStep, step)
}

func stateOf(prof *models.ProfessionalProfile) *State {
	hasService := false
	for _, svc := range prof.Services {
		if svc.Name != "" && svc.Price > 0 {
			hasService = true
			break
		}
	}
	return &State{
		Steps: map[string]bool{
			StepBasic:     prof.Name != "" && prof.Specialty != "",
			StepLocation:  prof.Location != "",
			StepServices:  hasService,
			StepPortfolio: len(prof.TikTokURLs) > 0 || len(prof.InstagramURLs) > 0 || prof.Socials != (models.SocialLinks{}),
		},
		Complete: prof.IsProfileComplete,
	}
}
