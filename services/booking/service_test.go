package booking

import (
	"context"
	"testing"

	profileRepo "beautymatch/database/repository/profile"
	"beautymatch/models"
)

type stubBookingStore struct {
	store map[string]*models.Booking
}

func newStubBookingStore() *stubBookingStore {
	return &stubBookingStore{store: make(map[string]*models.Booking)}
}

func (s *stubBookingStore) GetByID(id string) (*models.Booking, error) {
	b, ok := s.store[id]
	if !ok {
		return nil, nil
	}
	cp := *b
	cp.Messages = append([]models.Message{}, b.Messages...)
	return &cp, nil
}

func (s *stubBookingStore) Create(b *models.Booking) error {
	s.store[b.ID] = b
	return nil
}

func (s *stubBookingStore) SetStatus(id string, status models.BookingStatus) (bool, error) {
	b, ok := s.store[id]
	if !ok || b.Status != models.BookingPending {
		return false, nil
	}
	b.Status = status
	return true, nil
}

func (s *stubBookingStore) AppendMessage(id string, msg models.Message) error {
	b := s.store[id]
	b.Messages = append(b.Messages, msg)
	return nil
}

func (s *stubBookingStore) ListForUser(userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range s.store {
		if b.ClientID == userID || b.ProfessionalID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type stubProfileStore struct {
	profiles map[string]*models.ProfessionalProfile
}

func (s *stubProfileStore) GetByID(id string) (*models.ProfessionalProfile, error) {
	p, ok := s.profiles[id]
	if !ok {
		return nil, nil
	}
	return p, nil
}

func (s *stubProfileStore) GetByEmail(email string) (*models.ProfessionalProfile, error) {
	return nil, nil
}

func (s *stubProfileStore) Create(p *models.ProfessionalProfile) error {
	s.profiles[p.ID] = p
	return nil
}

func (s *stubProfileStore) Merge(id string, partial map[string]interface{}) error {
	return nil
}

func (s *stubProfileStore) Query(filters []profileRepo.QueryFilter) ([]models.ProfessionalProfile, error) {
	return nil, nil
}

type stubNotifier struct {
	events []models.BookingEvent
}

func (s *stubNotifier) Publish(_ context.Context, event models.BookingEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *stubNotifier) ListForUser(_ context.Context, _ string) ([]models.Notification, error) {
	return nil, nil
}

func (s *stubNotifier) MarkRead(_ context.Context, _ []string) error {
	return nil
}

func newTestBookingService() (*DefaultBookingService, *stubBookingStore, *stubNotifier) {
	repo := newStubBookingStore()
	notifier := &stubNotifier{}
	profiles := &stubProfileStore{profiles: map[string]*models.ProfessionalProfile{
		"pro_1": {
			ID:           "pro_1",
			Name:         "Jasmine Lee",
			ProfileImage: "https://example.com/jasmine.jpg",
			Services: []models.Service{
				{Name: "Gel Manicure", Price: 45, Duration: 60, Category: "Nails"},
				{Name: "Consultation", Price: 0},
			},
		},
	}}
	svc := &DefaultBookingService{Repo: repo, ProfileRepo: profiles, NotificationSvc: notifier}
	return svc, repo, notifier
}

func clientParty() Party {
	return Party{ID: "client_1", Name: "Sophie Byrne", Image: "https://example.com/sophie.jpg"}
}

func TestCreateStartsPendingWithSnapshots(t *testing.T) {
	svc, _, notifier := newTestBookingService()

	b, err := svc.Create(context.Background(), CreateRequest{
		Client:            clientParty(),
		ProfessionalID:    "pro_1",
		ServiceName:       "Gel Manicure",
		Message:           "  Looking forward to it  ",
		RequestedDateTime: "2026-09-02T14:00",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if b.Status != models.BookingPending {
		t.Fatalf("expected pending status, got %s", b.Status)
	}
	if b.ClientName != "Sophie Byrne" || b.ProfessionalName != "Jasmine Lee" {
		t.Fatalf("expected party snapshots, got %q / %q", b.ClientName, b.ProfessionalName)
	}
	if b.Service.Name != "Gel Manicure" || b.Service.Price != 45 {
		t.Fatalf("expected embedded service snapshot, got %+v", b.Service)
	}
	if len(b.Messages) != 1 || b.Messages[0].Text != "Looking forward to it" {
		t.Fatalf("expected one trimmed initial message, got %+v", b.Messages)
	}
	if b.Messages[0].SenderID != "client_1" {
		t.Fatalf("expected initial message from the client, got %s", b.Messages[0].SenderID)
	}

	if len(notifier.events) != 1 {
		t.Fatalf("expected one event, got %d", len(notifier.events))
	}
	ev := notifier.events[0]
	if ev.Type != models.NotificationBookingRequest || ev.ActorID != "client_1" {
		t.Fatalf("expected booking_request by client_1, got %s by %s", ev.Type, ev.ActorID)
	}
}

func TestCreateOmitsEmptyInitialMessage(t *testing.T) {
	svc, _, _ := newTestBookingService()

	b, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
		Message:        "   ",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(b.Messages) != 0 {
		t.Fatalf("expected no messages for a blank note, got %d", len(b.Messages))
	}
}

func TestCreateRejectsUnknownProfessional(t *testing.T) {
	svc, repo, notifier := newTestBookingService()

	if _, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "no_such_pro",
		ServiceName:    "Gel Manicure",
	}); err != ErrProfessionalNotFound {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
	if len(repo.store) != 0 || len(notifier.events) != 0 {
		t.Fatalf("expected nothing stored or published, got %d bookings and %d events", len(repo.store), len(notifier.events))
	}
}

func TestCreateRejectsUnofferedOrUnpricedService(t *testing.T) {
	svc, _, notifier := newTestBookingService()

	if _, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Balayage",
	}); err != ErrServiceNotOffered {
		t.Fatalf("expected ErrServiceNotOffered for unknown service, got %v", err)
	}

	if _, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Consultation",
	}); err != ErrServiceNotOffered {
		t.Fatalf("expected ErrServiceNotOffered for zero-price service, got %v", err)
	}

	if len(notifier.events) != 0 {
		t.Fatalf("expected no events on rejected create, got %d", len(notifier.events))
	}
}

func TestUpdateStatusApprovesPendingBooking(t *testing.T) {
	svc, repo, notifier := newTestBookingService()

	created, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	b, err := svc.UpdateStatus(context.Background(), created.ID, "pro_1", models.BookingApproved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if b.Status != models.BookingApproved {
		t.Fatalf("expected approved, got %s", b.Status)
	}
	if stored := repo.store[created.ID]; stored.Status != models.BookingApproved {
		t.Fatalf("expected stored status approved, got %s", stored.Status)
	}

	last := notifier.events[len(notifier.events)-1]
	if last.Type != models.NotificationBookingApproved || last.ActorID != "pro_1" {
		t.Fatalf("expected booking_approved by pro_1, got %s by %s", last.Type, last.ActorID)
	}
}

func TestUpdateStatusRejectsNonPendingBooking(t *testing.T) {
	svc, repo, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), created.ID, "pro_1", models.BookingDeclined); err != nil {
		t.Fatalf("first UpdateStatus: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, "pro_1", models.BookingApproved); err != ErrBookingNotPending {
		t.Fatalf("expected ErrBookingNotPending, got %v", err)
	}
	if stored := repo.store[created.ID]; stored.Status != models.BookingDeclined {
		t.Fatalf("expected status left declined, got %s", stored.Status)
	}
}

func TestUpdateStatusGuards(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.UpdateStatus(context.Background(), "missing", "pro_1", models.BookingApproved); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), created.ID, "client_1", models.BookingApproved); err != ErrProfessionalOnly {
		t.Fatalf("expected ErrProfessionalOnly, got %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), created.ID, "pro_1", models.BookingCancelled); err != ErrInvalidStatus {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestSendMessageAppendsWithoutTouchingStatus(t *testing.T) {
	svc, repo, notifier := newTestBookingService()

	created, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
		Message:        "hi",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	b, err := svc.SendMessage(context.Background(), created.ID, Party{ID: "pro_1", Name: "Jasmine Lee"}, "  Can you do 3pm instead?  ")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if len(b.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(b.Messages))
	}
	if b.Messages[0].Text != "hi" {
		t.Fatalf("expected earlier messages untouched, got %q", b.Messages[0].Text)
	}
	if b.Messages[1].Text != "Can you do 3pm instead?" || b.Messages[1].SenderID != "pro_1" {
		t.Fatalf("unexpected appended message %+v", b.Messages[1])
	}
	if repo.store[created.ID].Status != models.BookingPending {
		t.Fatalf("expected status untouched by messaging, got %s", repo.store[created.ID].Status)
	}

	last := notifier.events[len(notifier.events)-1]
	if last.Type != models.NotificationNewMessage || last.ActorID != "pro_1" {
		t.Fatalf("expected new_message by pro_1, got %s by %s", last.Type, last.ActorID)
	}
}

func TestSendMessageGuards(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.SendMessage(context.Background(), created.ID, clientParty(), "   "); err != ErrEmptyMessage {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), created.ID, Party{ID: "stranger"}, "hello"); err != ErrNotParticipant {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
	if _, err := svc.SendMessage(context.Background(), "missing", clientParty(), "hello"); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestGetRestrictsToParticipants(t *testing.T) {
	svc, _, _ := newTestBookingService()

	created, err := svc.Create(context.Background(), CreateRequest{
		Client:         clientParty(),
		ProfessionalID: "pro_1",
		ServiceName:    "Gel Manicure",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := svc.Get(context.Background(), created.ID, "client_1"); err != nil {
		t.Fatalf("Get as client: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID, "pro_1"); err != nil {
		t.Fatalf("Get as professional: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID, "stranger"); err != ErrNotParticipant {
		t.Fatalf("expected ErrNotParticipant, got %v", err)
	}
	if _, err := svc.Get(context.Background(), "missing", "client_1"); err != ErrBookingNotFound {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}
