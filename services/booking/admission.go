package booking

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"roomreserve/models"
	"roomreserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)
)

// Submit runs the validate-check-commit admission sequence: validate
// the request shape, re-read the store, reject on any slot conflict
// (all-or-nothing), otherwise append the new booking and persist.
// The confirmation email is dispatched after the commit; its failure
// is downgraded to a warning on the result.
func (s *DefaultBookingService) Submit(ctx context.Context, req models.BookingRequest) (*SubmitResult, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	booking, err := s.admit(ctx, req)
	if err != nil {
		return nil, err
	}

	result := &SubmitResult{Booking: booking}
	if err := s.Dispatcher.Notify(ctx, *booking); err != nil {
		utils.GetLogger().Warn("confirmation email dispatch failed",
			zap.String("bookingId", booking.ID), zap.Error(err))
		result.EmailWarning = "booking confirmed, but the confirmation email could not be sent"
	}
	if s.SheetSync != nil {
		if err := s.SheetSync.Append(ctx, *booking); err != nil {
			utils.GetLogger().Warn("sheet sync failed",
				zap.String("bookingId", booking.ID), zap.Error(err))
		}
	}
	return result, nil
}

// admit performs the conflict check and commit under the admission
// mutex so concurrent submissions cannot both observe the same
// pre-conflict store state.
func (s *DefaultBookingService) admit(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings, err := s.Store.Load(ctx)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Err: err}
	}

	requested := normalizeSlotIDs(req.TimeSlotIDs)
	booked := bookedSlotIDs(bookings, req.Room, req.Date)

	var conflicts []string
	for _, id := range requested {
		if _, taken := booked[id]; taken {
			conflicts = append(conflicts, id)
		}
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Room: req.Room, Date: req.Date, SlotIDs: conflicts}
	}

	now := s.now()
	booking := models.Booking{
		ID:           newBookingID(now),
		Room:         req.Room,
		Date:         req.Date,
		TimeSlotIDs:  requested,
		TimeSlots:    snapshotSlots(requested),
		TeamHeadName: req.TeamHeadName,
		TeamName:     req.TeamName,
		Phone:        req.Phone,
		Email:        req.Email,
		Purpose:      req.Purpose,
		CreatedAt:    now,
	}

	if err := s.Store.Save(ctx, append(bookings, booking)); err != nil {
		return nil, &PersistenceError{Op: "save", Err: err}
	}

	utils.GetLogger().Info("booking committed",
		zap.String("bookingId", booking.ID),
		zap.String("room", string(booking.Room)),
		zap.String("date", booking.Date.Format("2006-01-02")),
		zap.Int("slots", len(requested)))
	return &booking, nil
}

// validateRequest checks the request shape and reports the first
// violated rule.
func validateRequest(req models.BookingRequest) error {
	if !req.Room.Valid() {
		return newValidationError("room", "unknown room")
	}
	if req.Date.IsZero() {
		return newValidationError("date", "date is required")
	}
	if len(req.TimeSlotIDs) == 0 {
		return newValidationError("timeSlotIds", "select at least one time slot")
	}
	byID := slotsByID()
	for _, id := range req.TimeSlotIDs {
		if _, ok := byID[id]; !ok {
			return newValidationError("timeSlotIds", fmt.Sprintf("unknown time slot %q", id))
		}
	}
	if strings.TrimSpace(req.TeamHeadName) == "" {
		return newValidationError("teamHeadName", "team head name is required")
	}
	if strings.TrimSpace(req.TeamName) == "" {
		return newValidationError("teamName", "team name is required")
	}
	if strings.TrimSpace(req.Phone) == "" {
		return newValidationError("phone", "phone is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return newValidationError("email", "email is required")
	}
	if strings.TrimSpace(req.Purpose) == "" {
		return newValidationError("purpose", "purpose is required")
	}
	if !emailPattern.MatchString(req.Email) {
		return newValidationError("email", "enter a valid email address")
	}
	digits := nonDigitPattern.ReplaceAllString(req.Phone, "")
	if len(digits) < 10 {
		return newValidationError("phone", "enter a valid phone number (at least 10 digits)")
	}
	return nil
}

// normalizeSlotIDs deduplicates the requested ids and orders them by
// grid position, so booking snapshots always read in day order.
func normalizeSlotIDs(ids []string) []string {
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var ordered []string
	for _, slot := range GenerateTimeSlots() {
		if _, ok := want[slot.ID]; ok {
			ordered = append(ordered, slot.ID)
		}
	}
	return ordered
}

// snapshotSlots copies the requested templates into the booking with
// IsBooked set, so the record reflects exactly which sub-ranges were
// reserved even if the grid definition ever changes.
func snapshotSlots(ids []string) []models.TimeSlot {
	byID := slotsByID()
	slots := make([]models.TimeSlot, 0, len(ids))
	for _, id := range ids {
		slot := byID[id]
		slot.IsBooked = true
		slots = append(slots, slot)
	}
	return slots
}

// newBookingID generates a booking id from the commit timestamp plus a
// random suffix. Collisions are accepted as negligible; the id is not a
// cryptographic guarantee.
func newBookingID(now time.Time) string {
	suffix := strings.SplitN(uuid.NewString(), "-", 2)[0]
	return fmt.Sprintf("booking-%d-%s", now.UnixMilli(), suffix)
}
