package catalog

import (
	"context"
	"testing"

	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
)

type stubProfileStore struct {
	profiles []models.ProfessionalProfile
}

func (s *stubProfileStore) GetByID(id string) (*models.ProfessionalProfile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			return &s.profiles[i], nil
		}
	}
	return nil, nil
}

func (s *stubProfileStore) GetByEmail(email string) (*models.ProfessionalProfile, error) {
	return nil, nil
}

func (s *stubProfileStore) Create(p *models.ProfessionalProfile) error {
	s.profiles = append(s.profiles, *p)
	return nil
}

func (s *stubProfileStore) Merge(id string, partial map[string]interface{}) error {
	return nil
}

func (s *stubProfileStore) Query(filters []profileRepo.QueryFilter) ([]models.ProfessionalProfile, error) {
	return s.profiles, nil
}

func catalogFixture() *stubProfileStore {
	return &stubProfileStore{profiles: []models.ProfessionalProfile{
		{ID: "pro_1", Name: "Jasmine Lee", Specialty: "Nail Artistry", Location: "Dublin 2 (D02)"},
		{ID: "pro_2", Name: "Aoife Murphy", Specialty: "Hair Colorist & Stylist", Location: "Dublin 4 (D04)"},
		{ID: "pro_3", Name: "Chloe Nguyen", Specialty: "Nail Artistry", Location: "Dublin 8 (D08)"},
		{ID: "pro_4", Name: "David Kim", Specialty: "Makeup Artist", Location: "Dublin 2 (D02)"},
	}}
}

func TestStartSessionOpensUnfiltered(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)

	view, err := svc.StartSession(context.Background(), "client_1")
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if view.Total != 4 || view.Index != 0 {
		t.Fatalf("expected 4 profiles at index 0, got total %d index %d", view.Total, view.Index)
	}
	if view.Profile == nil || view.Profile.ID != "pro_1" {
		t.Fatalf("expected cursor on pro_1, got %+v", view.Profile)
	}
	if !view.CanAdvance || view.CanRetreat {
		t.Fatalf("expected advance-only at the start, got advance=%v retreat=%v", view.CanAdvance, view.CanRetreat)
	}
	if view.Filter.Specialty != FilterAll || view.Filter.Location != FilterAll {
		t.Fatalf("expected All/All filter, got %+v", view.Filter)
	}
}

func TestAdvanceAndRetreatClampAtBoundaries(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "client_1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// Retreat at index zero is a no-op.
	view, err := svc.Retreat(ctx, "client_1")
	if err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if view.Index != 0 {
		t.Fatalf("expected index pinned at 0, got %d", view.Index)
	}

	for i := 0; i < 10; i++ {
		if view, err = svc.Advance(ctx, "client_1"); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	if view.Index != 3 || view.CanAdvance {
		t.Fatalf("expected cursor clamped at the last profile, got index %d advance=%v", view.Index, view.CanAdvance)
	}
	if view.Profile.ID != "pro_4" {
		t.Fatalf("expected pro_4 at the end, got %s", view.Profile.ID)
	}

	if view, err = svc.Retreat(ctx, "client_1"); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if view.Index != 2 || view.Profile.ID != "pro_3" {
		t.Fatalf("expected pro_3 at index 2, got %s at %d", view.Profile.ID, view.Index)
	}
}

func TestApplyFilterIsConjunctiveAndOrderPreserving(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "client_1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	view, err := svc.ApplyFilter(ctx, "client_1", Filter{Specialty: "Nail Artistry", Location: FilterAll})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if view.Total != 2 || view.Profile.ID != "pro_1" {
		t.Fatalf("expected pro_1/pro_3 with cursor on pro_1, got total %d on %s", view.Total, view.Profile.ID)
	}

	if view, err = svc.Advance(ctx, "client_1"); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if view.Profile.ID != "pro_3" {
		t.Fatalf("expected original relative order, got %s", view.Profile.ID)
	}

	// Both dimensions must hold.
	view, err = svc.ApplyFilter(ctx, "client_1", Filter{Specialty: "Nail Artistry", Location: "Dublin 2 (D02)"})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if view.Total != 1 || view.Profile.ID != "pro_1" {
		t.Fatalf("expected only pro_1, got total %d on %+v", view.Total, view.Profile)
	}
}

func TestApplyFilterResetsCursor(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "client_1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.Advance(ctx, "client_1"); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	view, err := svc.ApplyFilter(ctx, "client_1", Filter{Specialty: FilterAll, Location: FilterAll})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if view.Index != 0 {
		t.Fatalf("expected cursor reset to 0, got %d", view.Index)
	}
}

func TestApplyFilterNormalizesEmptyDimensions(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "client_1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	view, err := svc.ApplyFilter(ctx, "client_1", Filter{})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if view.Filter.Specialty != FilterAll || view.Filter.Location != FilterAll {
		t.Fatalf("expected empty dimensions treated as All, got %+v", view.Filter)
	}
	if view.Total != 4 {
		t.Fatalf("expected the full list, got %d", view.Total)
	}
}

func TestFilterWithNoMatchesYieldsEmptyView(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "client_1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	view, err := svc.ApplyFilter(ctx, "client_1", Filter{Specialty: "Braid Specialist", Location: FilterAll})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if view.Total != 0 || view.Profile != nil {
		t.Fatalf("expected empty view, got total %d profile %+v", view.Total, view.Profile)
	}
	if view.CanAdvance || view.CanRetreat {
		t.Fatal("expected no movement on an empty list")
	}
}

func TestSessionsAreIndependentPerUser(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)
	ctx := context.Background()

	if _, err := svc.StartSession(ctx, "client_1"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	if _, err := svc.StartSession(ctx, "client_2"); err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if _, err := svc.Advance(ctx, "client_1"); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	view, err := svc.Current(ctx, "client_2")
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if view.Index != 0 {
		t.Fatalf("expected client_2 cursor untouched, got %d", view.Index)
	}
}

func TestSnapshotSurvivesCacheCodec(t *testing.T) {
	original := catalogFixture().profiles

	raw, err := encodeSnapshot(original)
	if err != nil {
		t.Fatalf("encodeSnapshot: %v", err)
	}
	decoded, err := decodeSnapshot(raw)
	if err != nil {
		t.Fatalf("decodeSnapshot: %v", err)
	}

	if len(decoded) != len(original) {
		t.Fatalf("expected %d profiles, got %d", len(original), len(decoded))
	}
	for i := range original {
		if decoded[i].ID != original[i].ID || decoded[i].Specialty != original[i].Specialty {
			t.Fatalf("profile %d changed across the codec: %+v vs %+v", i, decoded[i], original[i])
		}
	}

	if _, err := decodeSnapshot([]byte("{not json")); err == nil {
		t.Fatal("expected malformed snapshot to be rejected")
	}
}

func TestOperationsRequireASession(t *testing.T) {
	svc := NewDefaultCatalogService(catalogFixture(), nil)

	if _, err := svc.Current(context.Background(), "nobody"); err == nil {
		t.Fatal("expected error without a session")
	}
	if _, err := svc.Advance(context.Background(), "nobody"); err == nil {
		t.Fatal("expected error without a session")
	}
}
