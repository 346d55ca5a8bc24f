package onboarding

import (
	"context"
	"errors"
	"fmt"
	"testing"

	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
)

// stubProfileStore applies merge documents to an in-memory profile the
// way the document store would.
type stubProfileStore struct {
	profile *models.ProfessionalProfile
}

func (s *stubProfileStore) GetByID(id string) (*models.ProfessionalProfile, error) {
	if s.profile == nil || s.profile.ID != id {
		return nil, nil
	}
	cp := *s.profile
	return &cp, nil
}

func (s *stubProfileStore) GetByEmail(email string) (*models.ProfessionalProfile, error) {
	return nil, nil
}

func (s *stubProfileStore) Create(p *models.ProfessionalProfile) error {
	s.profile = p
	return nil
}

func (s *stubProfileStore) Merge(id string, partial map[string]interface{}) error {
	if s.profile == nil || s.profile.ID != id {
		return fmt.Errorf("profile with id %s not found", id)
	}
	for k, v := range partial {
		switch k {
		case "name":
			s.profile.Name = v.(string)
		case "specialty":
			s.profile.Specialty = v.(string)
		case "bio":
			s.profile.Bio = v.(string)
		case "location":
			s.profile.Location = v.(string)
		case "travelPolicy":
			s.profile.TravelPolicy = v.(models.TravelPolicy)
		case "services":
			s.profile.Services = v.([]models.Service)
		case "tiktokUrls":
			s.profile.TikTokURLs = v.([]string)
		case "instagramEmbedUrls":
			s.profile.InstagramURLs = v.([]string)
		case "socials":
			s.profile.Socials = v.(models.SocialLinks)
		case "isProfileComplete":
			s.profile.IsProfileComplete = v.(bool)
		case "availability":
			s.profile.Availability = v.(string)
		}
	}
	return nil
}

func (s *stubProfileStore) Query(filters []profileRepo.QueryFilter) ([]models.ProfessionalProfile, error) {
	return nil, nil
}

func newWizard() (*DefaultOnboardingService, *stubProfileStore) {
	store := &stubProfileStore{profile: &models.ProfessionalProfile{
		ID:           "pro_1",
		Email:        "jasmine@example.com",
		Name:         "Jasmine Lee",
		Availability: models.AvailabilityUnavailable,
	}}
	return &DefaultOnboardingService{Profiles: store}, store
}

func TestGetStateOnShellProfile(t *testing.T) {
	svc, _ := newWizard()

	st, err := svc.GetState(context.Background(), "pro_1")
	if err != nil {
		t.Fatalf("GetState: %v", err)
	}
	if st.Complete {
		t.Fatal("expected shell profile to be incomplete")
	}
	// Name alone does not satisfy the basic step; specialty is required too.
	if st.Steps[StepBasic] || st.Steps[StepLocation] || st.Steps[StepServices] {
		t.Fatalf("expected no required step satisfied, got %+v", st.Steps)
	}
}

func TestSubmitBasicStepMergesAndValidates(t *testing.T) {
	svc, store := newWizard()
	ctx := context.Background()

	if _, err := svc.SubmitStep(ctx, "pro_1", StepBasic, StepInput{
		Name:      "Jasmine Lee",
		Specialty: "DJ",
	}); err == nil {
		t.Fatal("expected error for unrecognised specialty")
	}

	st, err := svc.SubmitStep(ctx, "pro_1", StepBasic, StepInput{
		Name:      "Jasmine Lee",
		Specialty: "Nail Artistry",
		Bio:       "Nail artist based in Dublin 2.",
	})
	if err != nil {
		t.Fatalf("SubmitStep basic: %v", err)
	}
	if !st.Steps[StepBasic] {
		t.Fatalf("expected basic step satisfied, got %+v", st.Steps)
	}
	if store.profile.Specialty != "Nail Artistry" || store.profile.Bio == "" {
		t.Fatalf("expected merged fields, got %+v", store.profile)
	}
}

func TestSubmitLocationStepValidatesAreas(t *testing.T) {
	svc, store := newWizard()
	ctx := context.Background()

	if _, err := svc.SubmitStep(ctx, "pro_1", StepLocation, StepInput{Location: "Galway"}); err == nil {
		t.Fatal("expected error for unsupported location")
	}
	if _, err := svc.SubmitStep(ctx, "pro_1", StepLocation, StepInput{
		Location:     "Dublin 2 (D02)",
		TravelPolicy: models.TravelPolicy{Locations: []string{"Narnia"}},
	}); err == nil {
		t.Fatal("expected error for unsupported travel location")
	}

	st, err := svc.SubmitStep(ctx, "pro_1", StepLocation, StepInput{
		Location:     "Dublin 2 (D02)",
		TravelPolicy: models.TravelPolicy{Locations: []string{"Dublin 4 (D04)"}},
	})
	if err != nil {
		t.Fatalf("SubmitStep location: %v", err)
	}
	if !st.Steps[StepLocation] {
		t.Fatalf("expected location step satisfied, got %+v", st.Steps)
	}
	if len(store.profile.TravelPolicy.Locations) != 1 {
		t.Fatalf("expected travel policy stored, got %+v", store.profile.TravelPolicy)
	}
}

func TestSubmitServicesStepDropsInvalidEntries(t *testing.T) {
	svc, store := newWizard()
	ctx := context.Background()

	if _, err := svc.SubmitStep(ctx, "pro_1", StepServices, StepInput{
		Services: []models.Service{{Name: "Freebie", Price: 0}},
	}); err == nil {
		t.Fatal("expected error when no service has a positive price")
	}

	st, err := svc.SubmitStep(ctx, "pro_1", StepServices, StepInput{
		Services: []models.Service{
			{Name: "Gel Manicure", Price: 45, Duration: 60, Category: "Nails"},
			{Name: "", Price: 30},
			{Name: "Freebie", Price: 0},
		},
	})
	if err != nil {
		t.Fatalf("SubmitStep services: %v", err)
	}
	if !st.Steps[StepServices] {
		t.Fatalf("expected services step satisfied, got %+v", st.Steps)
	}
	if len(store.profile.Services) != 1 || store.profile.Services[0].Name != "Gel Manicure" {
		t.Fatalf("expected only the valid service kept, got %+v", store.profile.Services)
	}
}

func TestOperationsRejectUnknownProfile(t *testing.T) {
	svc, _ := newWizard()
	ctx := context.Background()

	if _, err := svc.GetState(ctx, "ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound from GetState, got %v", err)
	}
	if _, err := svc.Complete(ctx, "ghost"); !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound from Complete, got %v", err)
	}
}

func TestSubmitUnknownStep(t *testing.T) {
	svc, _ := newWizard()

	_, err := svc.SubmitStep(context.Background(), "pro_1", "payments", StepInput{})
	if !errors.Is(err, ErrUnknownStep) {
		t.Fatalf("expected ErrUnknownStep, got %v", err)
	}
}

func TestCompleteGatesOnRequiredSteps(t *testing.T) {
	svc, store := newWizard()
	ctx := context.Background()

	if _, err := svc.Complete(ctx, "pro_1"); !errors.Is(err, ErrIncompleteProfile) {
		t.Fatalf("expected ErrIncompleteProfile, got %v", err)
	}

	steps := []struct {
		step string
		in   StepInput
	}{
		{StepBasic, StepInput{Name: "Jasmine Lee", Specialty: "Nail Artistry"}},
		{StepLocation, StepInput{Location: "Dublin 2 (D02)"}},
		{StepServices, StepInput{Services: []models.Service{{Name: "Gel Manicure", Price: 45}}}},
	}
	for _, s := range steps {
		if _, err := svc.SubmitStep(ctx, "pro_1", s.step, s.in); err != nil {
			t.Fatalf("SubmitStep %s: %v", s.step, err)
		}
	}

	prof, err := svc.Complete(ctx, "pro_1")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if !prof.IsProfileComplete || prof.Availability != models.AvailabilityAvailable {
		t.Fatalf("expected complete and available, got %+v", prof)
	}
	if !store.profile.IsProfileComplete || store.profile.Availability != models.AvailabilityAvailable {
		t.Fatalf("expected flags persisted, got %+v", store.profile)
	}
}

func TestPortfolioStepIsOptionalForCompletion(t *testing.T) {
	svc, _ := newWizard()
	ctx := context.Background()

	st, err := svc.SubmitStep(ctx, "pro_1", StepPortfolio, StepInput{
		TikTokURLs: []string{"https://www.tiktok.com/@jasmine/video/1"},
	})
	if err != nil {
		t.Fatalf("SubmitStep portfolio: %v", err)
	}
	if !st.Steps[StepPortfolio] {
		t.Fatalf("expected portfolio step satisfied, got %+v", st.Steps)
	}

	// Portfolio alone never completes the profile.
	if _, err := svc.Complete(ctx, "pro_1"); !errors.Is(err, ErrIncompleteProfile) {
		t.Fatalf("expected ErrIncompleteProfile, got %v", err)
	}
}
