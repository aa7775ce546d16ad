package handlers

import (
	"errors"
	"net/http"
	"time"

	"roomreserve/models"
	"roomreserve/services/booking"
	"roomreserve/services/notification"
	"roomreserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Service booking.BookingService
	Emails  *notification.EmailDispatcher
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, emails *notification.EmailDispatcher, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Emails: emails, Logger: logger}
}

// bookingRequestInput is the wire form of a booking submission; the
// date arrives as a plain "YYYY-MM-DD" day marker.
type bookingRequestInput struct {
	Room         string   `json:"room"`
	Date         string   `json:"date"`
	TimeSlotIDs  []string `json:"timeSlotIds"`
	TeamHeadName string   `json:"teamHeadName"`
	TeamName     string   `json:"teamName"`
	Phone        string   `json:"phone"`
	Email        string   `json:"email"`
	Purpose      string   `json:"purpose"`
}

// ListRooms returns the fixed room catalogue.
func (h *BookingHandler) ListRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": models.RoomCatalogue})
}

// GetAvailability returns the slot grid for a room and date with booked
// slots flagged.
func (h *BookingHandler) GetAvailability(c *gin.Context) {
	room := models.Room(c.Param("room"))
	date, err := parseDay(c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected date=YYYY-MM-DD")
		return
	}

	slots, err := h.Service.AvailableSlots(c.Request.Context(), room, date)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"room":  room,
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}

// SubmitBooking admits a booking request.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var input bookingRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	var date time.Time
	if input.Date != "" {
		var err error
		date, err = parseDay(input.Date)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid date", "expected YYYY-MM-DD")
			return
		}
	}

	result, err := h.Service.Submit(c.Request.Context(), models.BookingRequest{
		Room:         models.Room(input.Room),
		Date:         date,
		TimeSlotIDs:  input.TimeSlotIDs,
		TeamHeadName: input.TeamHeadName,
		TeamName:     input.TeamName,
		Phone:        input.Phone,
		Email:        input.Email,
		Purpose:      input.Purpose,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	resp := gin.H{"booking": result.Booking}
	if result.EmailWarning != "" {
		resp["emailWarning"] = result.EmailWarning
	}
	c.JSON(http.StatusCreated, resp)
}

// ListBookings returns every booking for the overview view.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.ListAllBookings(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// ListSentEmails returns the journal of composed confirmation emails.
func (h *BookingHandler) ListSentEmails(c *gin.Context) {
	emails := []models.ConfirmationEmail{}
	if h.Emails != nil {
		emails = h.Emails.SentEmails()
	}
	c.JSON(http.StatusOK, gin.H{"emails": emails})
}

// respondError maps engine error types onto HTTP statuses.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var conflictErr *booking.ConflictError
	var persistenceErr *booking.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, "validation failed", validationErr.Error())
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, gin.H{
			"message":          "slot conflict",
			"details":          conflictErr.Error(),
			"conflictingSlots": conflictErr.SlotIDs,
		})
	case errors.As(err, &persistenceErr):
		h.Logger.Error("booking store failure", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", "could not access the booking store")
	default:
		h.Logger.Error("unexpected booking error", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal error", "unexpected failure")
	}
}

// parseDay parses a "YYYY-MM-DD" day marker in local time; RFC3339
// timestamps are accepted and truncated to their local day.
func parseDay(s string) (time.Time, error) {
	if t, err := time.ParseInLocation("2006-01-02", s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	local := t.Local()
	y, m, d := local.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local), nil
}
