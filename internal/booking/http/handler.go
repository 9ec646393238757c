package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/generatik/adspace-booking-backend/internal/booking"
	"github.com/generatik/adspace-booking-backend/internal/pkg/apperror"
	"github.com/generatik/adspace-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	req := booking.CreateRequest{
		AdSpaceID:       body.AdSpaceID,
		AdvertiserName:  body.AdvertiserName,
		AdvertiserEmail: body.AdvertiserEmail,
		StartDate:       body.StartDate.Time,
		EndDate:         body.EndDate.Time,
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"adSpaceId": body.AdSpaceID,
			"error":     err.Error(),
		}).Warn("booking creation failed")
		response.Error(c, err)
		return
	}

	logrus.WithField("id", b.ID).Info("booking created")
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid booking id"))
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		logrus.WithField("id", id).Warn("booking not found")
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	filter := booking.Filter{
		Status: booking.Status(c.Query("status")),
	}

	bookings, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"status": filter.Status,
		"count":  len(bookings),
	}).Debug("listed bookings")

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Approve(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid booking id"))
		return
	}

	b, err := h.service.Approve(c.Request.Context(), id)
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": id, "error": err.Error()}).Warn("booking approval failed")
		response.Error(c, err)
		return
	}

	logrus.WithField("id", id).Info("booking approved")
	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Reject(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid booking id"))
		return
	}

	b, err := h.service.Reject(c.Request.Context(), id)
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": id, "error": err.Error()}).Warn("booking rejection failed")
		response.Error(c, err)
		return
	}

	logrus.WithField("id", id).Info("booking rejected")
	c.JSON(http.StatusOK, NewBookingResponse(b))
}
