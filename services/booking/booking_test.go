package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"roomreserve/database/store"
	"roomreserve/models"
)

func mustDate(t *testing.T, year int, month time.Month, day int) time.Time {
	t.Helper()
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// stubDispatcher records notifications and optionally fails.
type stubDispatcher struct {
	notified []models.Booking
	fail     bool
}

func (d *stubDispatcher) Notify(ctx context.Context, booking models.Booking) error {
	if d.fail {
		return errors.New("smtp unreachable")
	}
	d.notified = append(d.notified, booking)
	return nil
}

// failingStore fails Save while delegating Load to a memory store.
type failingStore struct {
	*store.MemoryStore
}

func (s *failingStore) Save(ctx context.Context, bookings []models.Booking) error {
	return errors.New("disk full")
}

func newTestService() (*DefaultBookingService, *stubDispatcher) {
	dispatcher := &stubDispatcher{}
	svc := NewBookingService(store.NewMemoryStore(), dispatcher)
	return svc, dispatcher
}

func validRequest() models.BookingRequest {
	return models.BookingRequest{
		Room:         models.RoomMusic,
		Date:         time.Date(2024, time.July, 4, 0, 0, 0, 0, time.Local),
		TimeSlotIDs:  []string{"14:00", "14:30"},
		TeamHeadName: "Ada Lovelace",
		TeamName:     "Analytical Engines",
		Phone:        "+1 (555) 010-1234",
		Email:        "ada@example.com",
		Purpose:      "Band rehearsal",
	}
}

func TestAvailableSlots_EmptyStore(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	slots, err := svc.AvailableSlots(ctx, models.RoomDance, mustDate(t, 2024, time.June, 1))
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	if len(slots) != 36 {
		t.Fatalf("expected 36 slots, got %d", len(slots))
	}
	for _, slot := range slots {
		if slot.IsBooked {
			t.Errorf("slot %s booked on empty store", slot.ID)
		}
	}
}

func TestAvailableSlots_ReadIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := mustDate(t, 2024, time.July, 4)

	if _, err := svc.Submit(ctx, validRequest()); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	first, err := svc.AvailableSlots(ctx, models.RoomMusic, date)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	second, err := svc.AvailableSlots(ctx, models.RoomMusic, date)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("reads differ at index %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestAvailableSlots_UnknownRoom(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.AvailableSlots(context.Background(), models.Room("garage"), mustDate(t, 2024, time.June, 1))
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSubmit_EndToEnd(t *testing.T) {
	svc, dispatcher := newTestService()
	ctx := context.Background()
	date := mustDate(t, 2024, time.July, 4)

	result, err := svc.Submit(ctx, validRequest())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	b := result.Booking
	if !strings.HasPrefix(b.ID, "booking-") {
		t.Errorf("expected id prefix booking-, got %s", b.ID)
	}
	if len(b.TimeSlots) != 2 {
		t.Fatalf("expected 2 snapshot slots, got %d", len(b.TimeSlots))
	}
	for _, slot := range b.TimeSlots {
		if !slot.IsBooked {
			t.Errorf("snapshot slot %s not marked booked", slot.ID)
		}
	}
	if b.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
	if result.EmailWarning != "" {
		t.Errorf("unexpected email warning: %s", result.EmailWarning)
	}
	if len(dispatcher.notified) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(dispatcher.notified))
	}

	slots, err := svc.AvailableSlots(ctx, models.RoomMusic, date)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	bookedCount := 0
	for _, slot := range slots {
		switch slot.ID {
		case "14:00", "14:30":
			if !slot.IsBooked {
				t.Errorf("slot %s should be booked", slot.ID)
			}
			bookedCount++
		default:
			if slot.IsBooked {
				t.Errorf("slot %s should be free", slot.ID)
			}
		}
	}
	if bookedCount != 2 {
		t.Errorf("expected 2 booked slots, got %d", bookedCount)
	}
}

func TestSubmit_ConflictAllOrNothing(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	date := mustDate(t, 2024, time.June, 1)

	first := validRequest()
	first.Room = models.RoomDance
	first.Date = date
	first.TimeSlotIDs = []string{"9:00"}
	if _, err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	second := validRequest()
	second.Room = models.RoomDance
	second.Date = date
	second.TimeSlotIDs = []string{"9:00", "9:30"}
	_, err := svc.Submit(ctx, second)

	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
	if len(conflictErr.SlotIDs) != 1 || conflictErr.SlotIDs[0] != "9:00" {
		t.Errorf("expected conflict on 9:00, got %v", conflictErr.SlotIDs)
	}

	// The non-conflicting half of the request must not have been committed.
	slots, err := svc.AvailableSlots(ctx, models.RoomDance, date)
	if err != nil {
		t.Fatalf("AvailableSlots: %v", err)
	}
	for _, slot := range slots {
		if slot.ID == "9:30" && slot.IsBooked {
			t.Error("slot 9:30 was partially committed despite the conflict")
		}
	}
}

func TestSubmit_SameSlotDifferentRoomOrDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	base := validRequest()
	base.Room = models.RoomDance
	base.TimeSlotIDs = []string{"9:00"}
	if _, err := svc.Submit(ctx, base); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	otherRoom := validRequest()
	otherRoom.Room = models.RoomSRC
	otherRoom.TimeSlotIDs = []string{"9:00"}
	if _, err := svc.Submit(ctx, otherRoom); err != nil {
		t.Errorf("same slot in another room should not conflict: %v", err)
	}

	otherDay := validRequest()
	otherDay.Room = models.RoomDance
	otherDay.Date = base.Date.AddDate(0, 0, 1)
	otherDay.TimeSlotIDs = []string{"9:00"}
	if _, err := svc.Submit(ctx, otherDay); err != nil {
		t.Errorf("same slot on another day should not conflict: %v", err)
	}
}

func TestSubmit_ConflictIgnoresTimeOfDay(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first := validRequest()
	first.Date = time.Date(2024, time.June, 1, 15, 4, 5, 0, time.Local)
	first.TimeSlotIDs = []string{"10:00"}
	if _, err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	second := validRequest()
	second.Date = mustDate(t, 2024, time.June, 1)
	second.TimeSlotIDs = []string{"10:00"}
	_, err := svc.Submit(ctx, second)
	var conflictErr *ConflictError
	if !errors.As(err, &conflictErr) {
		t.Fatalf("expected ConflictError for same calendar day, got %v", err)
	}
}

func TestSubmit_ValidationPrecedesConflict(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first := validRequest()
	first.TimeSlotIDs = []string{"9:00"}
	if _, err := svc.Submit(ctx, first); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Invalid email plus a conflicting slot: validation must win.
	second := validRequest()
	second.TimeSlotIDs = []string{"9:00"}
	second.Email = "not-an-email"
	_, err := svc.Submit(ctx, second)
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestSubmit_ValidationRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.BookingRequest)
		field  string
	}{
		{"unknown room", func(r *models.BookingRequest) { r.Room = "garage" }, "room"},
		{"zero date", func(r *models.BookingRequest) { r.Date = time.Time{} }, "date"},
		{"no slots", func(r *models.BookingRequest) { r.TimeSlotIDs = nil }, "timeSlotIds"},
		{"unknown slot", func(r *models.BookingRequest) { r.TimeSlotIDs = []string{"5:00"} }, "timeSlotIds"},
		{"missing team head", func(r *models.BookingRequest) { r.TeamHeadName = "  " }, "teamHeadName"},
		{"missing team name", func(r *models.BookingRequest) { r.TeamName = "" }, "teamName"},
		{"missing phone", func(r *models.BookingRequest) { r.Phone = "" }, "phone"},
		{"missing email", func(r *models.BookingRequest) { r.Email = "" }, "email"},
		{"missing purpose", func(r *models.BookingRequest) { r.Purpose = "" }, "purpose"},
		{"malformed email", func(r *models.BookingRequest) { r.Email = "ada@nodot" }, "email"},
		{"short phone", func(r *models.BookingRequest) { r.Phone = "555-0101" }, "phone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()
			req := validRequest()
			tt.mutate(&req)

			_, err := svc.Submit(context.Background(), req)
			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("expected field %s, got %s", tt.field, validationErr.Field)
			}
		})
	}
}

func TestSubmit_PhoneFormatsAccepted(t *testing.T) {
	for _, phone := range []string{"5550101234", "+91 98765-43210", "(555) 010-12345"} {
		svc, _ := newTestService()
		req := validRequest()
		req.Phone = phone
		if _, err := svc.Submit(context.Background(), req); err != nil {
			t.Errorf("phone %q rejected: %v", phone, err)
		}
	}
}

func TestSubmit_NotificationFailureDoesNotRollBack(t *testing.T) {
	svc, dispatcher := newTestService()
	dispatcher.fail = true
	ctx := context.Background()

	result, err := svc.Submit(ctx, validRequest())
	if err != nil {
		t.Fatalf("Submit should succeed despite dispatch failure: %v", err)
	}
	if result.EmailWarning == "" {
		t.Error("expected an email warning on the result")
	}

	bookings, err := svc.ListAllBookings(ctx)
	if err != nil {
		t.Fatalf("ListAllBookings: %v", err)
	}
	if len(bookings) != 1 {
		t.Fatalf("expected the booking to be persisted, got %d records", len(bookings))
	}
}

func TestSubmit_PersistenceFailureAbortsCommit(t *testing.T) {
	dispatcher := &stubDispatcher{}
	svc := NewBookingService(&failingStore{store.NewMemoryStore()}, dispatcher)

	_, err := svc.Submit(context.Background(), validRequest())
	var persistenceErr *PersistenceError
	if !errors.As(err, &persistenceErr) {
		t.Fatalf("expected PersistenceError, got %v", err)
	}
	if len(dispatcher.notified) != 0 {
		t.Error("no notification should be sent for an aborted commit")
	}
}

func TestSubmit_DeduplicatesAndOrdersSlots(t *testing.T) {
	svc, _ := newTestService()
	req := validRequest()
	req.TimeSlotIDs = []string{"14:30", "14:00", "14:30"}

	result, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	ids := result.Booking.TimeSlotIDs
	if len(ids) != 2 || ids[0] != "14:00" || ids[1] != "14:30" {
		t.Errorf("expected deduplicated grid-ordered ids [14:00 14:30], got %v", ids)
	}
}

func TestListAllBookings_Sorted(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	later := validRequest()
	later.Date = mustDate(t, 2024, time.July, 5)
	later.TimeSlotIDs = []string{"8:00"}
	if _, err := svc.Submit(ctx, later); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	sameDayLater := validRequest()
	sameDayLater.Date = mustDate(t, 2024, time.July, 4)
	sameDayLater.TimeSlotIDs = []string{"18:00"}
	if _, err := svc.Submit(ctx, sameDayLater); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	sameDayEarlier := validRequest()
	sameDayEarlier.Date = mustDate(t, 2024, time.July, 4)
	sameDayEarlier.TimeSlotIDs = []string{"7:00"}
	if _, err := svc.Submit(ctx, sameDayEarlier); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	bookings, err := svc.ListAllBookings(ctx)
	if err != nil {
		t.Fatalf("ListAllBookings: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(bookings))
	}
	if bookings[0].TimeSlotIDs[0] != "7:00" || bookings[1].TimeSlotIDs[0] != "18:00" || bookings[2].TimeSlotIDs[0] != "8:00" {
		t.Errorf("unexpected order: %s, %s, %s",
			bookings[0].TimeSlotIDs[0], bookings[1].TimeSlotIDs[0], bookings[2].TimeSlotIDs[0])
	}
}
