package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/generatik/adspace-booking-backend/internal/adspace"
	"github.com/generatik/adspace-booking-backend/internal/pkg/apperror"
	"github.com/generatik/adspace-booking-backend/internal/pkg/response"
)

type Handler struct {
	service adspace.Service
}

func NewHandler(service adspace.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	filter := adspace.Filter{
		Type: adspace.Type(c.Query("type")),
		City: adspace.City(c.Query("city")),
	}

	spaces, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"type":  filter.Type,
		"city":  filter.City,
		"count": len(spaces),
	}).Debug("listed ad spaces")

	items := make([]AdSpaceResponse, len(spaces))
	for i, s := range spaces {
		items[i] = NewAdSpaceResponse(s)
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid ad space id"))
		return
	}

	space, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		logrus.WithField("id", id).Warn("ad space not found")
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewAdSpaceResponse(space))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid ad space id"))
		return
	}

	var body UpdateAdSpaceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid request body"))
		return
	}

	req := adspace.UpdateRequest{
		Name:               body.Name,
		Type:               adspace.Type(body.Type),
		City:               adspace.City(body.City),
		PricePerDay:        body.PricePerDay,
		Address:            body.Address,
		AvailabilityStatus: adspace.AvailabilityStatus(body.AvailabilityStatus),
	}

	space, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	logrus.WithField("id", id).Info("ad space updated")
	c.JSON(http.StatusOK, NewAdSpaceResponse(space))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		response.Error(c, apperror.Wrap(err, http.StatusBadRequest, "invalid ad space id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	logrus.WithField("id", id).Info("ad space deleted")
	c.Status(http.StatusNoContent)
}
