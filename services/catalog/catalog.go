package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
	"beautymatch/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// FilterAll matches every value of a filter dimension.
const FilterAll = "All"

// The discoverable-profile query result is shared by every new browse
// session, so it is cached briefly in Redis. A professional completing
// onboarding becomes visible once the snapshot expires.
const (
	catalogSnapshotKey = "catalog:discoverable"
	catalogSnapshotTTL = time.Minute
)

// Filter is the pair of equality predicates applied to the browse
// list. Each dimension is either FilterAll or an exact match; both
// must hold (logical AND).
type Filter struct {
	Specialty string `json:"specialty"`
	Location  string `json:"location"`
}

// View is the cursor-addressable snapshot returned by every catalog
// operation.
type View struct {
	Profile    *models.ProfessionalProfile `json:"profile,omitempty"`
	Index      int                         `json:"index"`
	Total      int                         `json:"total"`
	CanAdvance bool                        `json:"canAdvance"`
	CanRetreat bool                        `json:"canRetreat"`
	Filter     Filter                      `json:"filter"`
}

// CatalogService exposes a filtered, cursor-addressable view over the
// discoverable profiles (complete and currently available).
type CatalogService interface {
	StartSession(ctx context.Context, userID string) (*View, error)
	ApplyFilter(ctx context.Context, userID string, f Filter) (*View, error)
	Advance(ctx context.Context, userID string) (*View, error)
	Retreat(ctx context.Context, userID string) (*View, error)
	Current(ctx context.Context, userID string) (*View, error)
}

type browseSession struct {
	all      []models.ProfessionalProfile
	filtered []models.ProfessionalProfile
	filter   Filter
	cursor   int
}

// DefaultCatalogService keeps one browse session per user. Each
// session snapshots the store at StartSession time; the store stays
// the durable owner and the snapshot is a cache.
type DefaultCatalogService struct {
	ProfileRepo profileRepo.ProfileRepository
	Cache       *redis.Client

	mu       sync.Mutex
	sessions map[string]*browseSession
}

// NewDefaultCatalogService creates a catalog service over the profile
// store. Cache may be nil, in which case every session hits the store.
func NewDefaultCatalogService(repo profileRepo.ProfileRepository, cache *redis.Client) *DefaultCatalogService {
	return &DefaultCatalogService{
		ProfileRepo: repo,
		Cache:       cache,
		sessions:    make(map[string]*browseSession),
	}
}

// StartSession fetches the discoverable profiles and opens a fresh
// browse session with no filter and the cursor at zero.
func (s *DefaultCatalogService) StartSession(ctx context.Context, userID string) (*View, error) {
	profiles, ok := s.cachedSnapshot(ctx)
	if !ok {
		var err error
		profiles, err = s.ProfileRepo.Query([]profileRepo.QueryFilter{
			{Field: "isProfileComplete", Value: true},
			{Field: "availability", Value: models.AvailabilityAvailable},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		s.storeSnapshot(ctx, profiles)
	}

	sess := &browseSession{
		all:    profiles,
		filter: Filter{Specialty: FilterAll, Location: FilterAll},
	}
	sess.refilter()

	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()

	return sess.view(), nil
}

// ApplyFilter replaces the session filter and synchronously resets the
// cursor to the first matching profile.
func (s *DefaultCatalogService) ApplyFilter(ctx context.Context, userID string, f Filter) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if f.Specialty == "" {
		f.Specialty = FilterAll
	}
	if f.Location == "" {
		f.Location = FilterAll
	}
	sess.filter = f
	sess.refilter()
	return sess.view(), nil
}

// Advance moves the cursor to the next profile; a no-op at the end of
// the filtered list.
func (s *DefaultCatalogService) Advance(ctx context.Context, userID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if sess.cursor < len(sess.filtered)-1 {
		sess.cursor++
	}
	return sess.view(), nil
}

// Retreat moves the cursor to the previous profile; a no-op at index zero.
func (s *DefaultCatalogService) Retreat(ctx context.Context, userID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	if sess.cursor > 0 {
		sess.cursor--
	}
	return sess.view(), nil
}

// Current returns the view at the present cursor position.
func (s *DefaultCatalogService) Current(ctx context.Context, userID string) (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(userID)
	if err != nil {
		return nil, err
	}
	return sess.view(), nil
}

// cachedSnapshot returns the cached discoverable-profile list, or
// (nil, false) when no cache is configured or the entry is absent.
func (s *DefaultCatalogService) cachedSnapshot(ctx context.Context) ([]models.ProfessionalProfile, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, catalogSnapshotKey).Bytes()
	if err != nil {
		return nil, false
	}
	profiles, err := decodeSnapshot(raw)
	if err != nil {
		utils.GetLogger().Warn("catalog: discarding malformed snapshot", zap.Error(err))
		return nil, false
	}
	return profiles, true
}

// storeSnapshot caches the discoverable-profile list best-effort.
func (s *DefaultCatalogService) storeSnapshot(ctx context.Context, profiles []models.ProfessionalProfile) {
	if s.Cache == nil {
		return
	}
	raw, err := encodeSnapshot(profiles)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, catalogSnapshotKey, raw, catalogSnapshotTTL).Err(); err != nil {
		utils.GetLogger().Warn("catalog: failed to cache snapshot", zap.Error(err))
	}
}

func encodeSnapshot(profiles []models.ProfessionalProfile) ([]byte, error) {
	return json.Marshal(profiles)
}

func decodeSnapshot(raw []byte) ([]models.ProfessionalProfile, error) {
	var profiles []models.ProfessionalProfile
	if err := json.Unmarshal(raw, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

func (s *DefaultCatalogService) session(userID string) (*browseSession, error) {
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, fmt.Errorf("no browse session for user %s", userID)
	}
	return sess, nil
}

// refilter rebuilds the filtered list in original relative order and
// resets the cursor.
func (b *browseSession) refilter() {
	b.filtered = b.filtered[:0]
	for _, p := range b.all {
		if !matches(b.filter.Specialty, p.Specialty) {
			continue
		}
		if !matches(b.filter.Location, p.Location) {
			continue
		}
		b.filtered = append(b.filtered, p)
	}
	b.cursor = 0
}

func matches(predicate, value string) bool {
	return predicate == FilterAll || predicate == value
}

func (b *browseSession) view() *View {
	v := &View{
		Index:      b.cursor,
		Total:      len(b.filtered),
		CanAdvance: b.cursor < len(b.filtered)-1,
		CanRetreat: b.cursor > 0,
		Filter:     b.filter,
	}
	if b.cursor < len(b.filtered) {
		p := b.filtered[b.cursor]
		v.Profile = &p
	}
	return v
}
