package handlers

import (
	"errors"
	"net/http"

	"beautymatch/models"
	"beautymatch/services/auth"
	"beautymatch/services/booking"
	"beautymatch/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingService booking.BookingService
	AuthService    auth.AuthService
}

// NewBookingHandler creates a new BookingHandler instance.
func NewBookingHandler(bookingSvc booking.BookingService, authSvc auth.AuthService) *BookingHandler {
	return &BookingHandler{BookingService: bookingSvc, AuthService: authSvc}
}

// party resolves the acting account into a booking party snapshot.
func (h *BookingHandler) party(c *gin.Context) (booking.Party, bool) {
	userID := c.GetString("userID")
	acc, err := h.AuthService.GetAccount(c, userID)
	if err != nil || acc == nil {
		utils.JSONError(c, http.StatusUnauthorized, "Account not found", "")
		return booking.Party{}, false
	}
	return booking.Party{ID: acc.ID, Name: acc.Name, Image: acc.ProfileImage}, true
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		ProfessionalID    string `json:"professionalId" binding:"required"`
		ServiceName       string `json:"serviceName" binding:"required"`
		Message           string `json:"message"`
		RequestedDateTime string `json:"requestedDateTime"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	client, ok := h.party(c)
	if !ok {
		return
	}

	b, err := h.BookingService.Create(c, booking.CreateRequest{
		Client:            client,
		ProfessionalID:    req.ProfessionalID,
		ServiceName:       req.ServiceName,
		Message:           req.Message,
		RequestedDateTime: req.RequestedDateTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrProfessionalNotFound):
			utils.JSONError(c, http.StatusNotFound, "Professional not found", err.Error())
		case errors.Is(err, booking.ErrServiceNotOffered):
			utils.JSONError(c, http.StatusBadRequest, "Service not offered", err.Error())
		default:
			logger.Error("CreateBookingHandler: create failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid status payload", err.Error())
		return
	}

	bookingID := c.Param("id")
	actorID := c.GetString("userID")

	b, err := h.BookingService.UpdateStatus(c, bookingID, actorID, models.BookingStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		case errors.Is(err, booking.ErrBookingNotPending):
			utils.JSONError(c, http.StatusConflict, "Booking is not pending", err.Error())
		case errors.Is(err, booking.ErrInvalidStatus):
			utils.JSONError(c, http.StatusBadRequest, "Invalid status", err.Error())
		case errors.Is(err, booking.ErrProfessionalOnly):
			utils.JSONError(c, http.StatusForbidden, "Not allowed", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to update booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// SendMessageHandler handles POST /api/bookings/:id/messages.
func (h *BookingHandler) SendMessageHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid message payload", err.Error())
		return
	}

	sender, ok := h.party(c)
	if !ok {
		return
	}

	b, err := h.BookingService.SendMessage(c, c.Param("id"), sender, req.Text)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		case errors.Is(err, booking.ErrNotParticipant):
			utils.JSONError(c, http.StatusForbidden, "Not a booking party", err.Error())
		case errors.Is(err, booking.ErrEmptyMessage):
			utils.JSONError(c, http.StatusBadRequest, "Empty message", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	b, err := h.BookingService.Get(c, c.Param("id"), c.GetString("userID"))
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, "Booking not found", err.Error())
		case errors.Is(err, booking.ErrNotParticipant):
			utils.JSONError(c, http.StatusForbidden, "Not a booking party", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.BookingService.ListForUser(c, c.GetString("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}
