package http

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/D-J-M-Rohit/Air-Pro/module/core/domain"
)

type observerService interface {
	GetAll(ctx context.Context) ([]domain.Observer, error)
	GetByIdentity(ctx context.Context, identity string) (*domain.Observer, error)
	SaveLocation(ctx context.Context, identity, lat, lon string, reportedAt time.Time) error
	SetSubscription(ctx context.Context, identity string, subscribed bool) error
}

type locationRequest struct {
	Latitude  string `json:"latitude" validate:"required,latitude"`
	Longitude string `json:"longitude" validate:"required,longitude"`
}

type subscriptionRequest struct {
	Subscribed *bool `json:"subscribed" validate:"required"`
}

type observerResponse struct {
	Identity   string  `json:"identity"`
	Email      *string `json:"email,omitempty"`
	Latitude   *string `json:"latitude,omitempty"`
	Longitude  *string `json:"longitude,omitempty"`
	ReportedAt *int64  `json:"reported_at,omitempty"`
	Subscribed bool    `json:"subscribed"`
}

type ObserverHandler struct {
	observerSvc observerService
	validate    *validator.Validate
}

func NewObserverHandler(observerSvc observerService, validate *validator.Validate) *ObserverHandler {
	return &ObserverHandler{observerSvc: observerSvc, validate: validate}
}

func (h *ObserverHandler) Register(r *gin.RouterGroup) {
	r.GET("/observers", h.GetAllObservers)
	r.GET("/observers/:identity/location", h.GetLocation)
	r.PUT("/observers/:identity/location", h.UpdateLocation)
	r.PUT("/observers/:identity/subscription", h.UpdateSubscription)
}

func (h *ObserverHandler) GetAllObservers(c *gin.Context) {
	observers, err := h.observerSvc.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch observers"})
		return
	}

	out := make([]observerResponse, 0, len(observers))
	for i := range observers {
		out = append(out, toObserverResponse(&observers[i]))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ObserverHandler) GetLocation(c *gin.Context) {
	identity := c.Param("identity")

	obs, err := h.observerSvc.GetByIdentity(c.Request.Context(), identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch observer"})
		return
	}
	if obs == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "observer not found"})
		return
	}

	c.JSON(http.StatusOK, toObserverResponse(obs))
}

func (h *ObserverHandler) UpdateLocation(c *gin.Context) {
	identity := c.Param("identity")

	var req locationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The server assigns the report time; clients only say where.
	err := h.observerSvc.SaveLocation(c.Request.Context(), identity, req.Latitude, req.Longitude, time.Now().UTC())
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "observer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update location"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ObserverHandler) UpdateSubscription(c *gin.Context) {
	identity := c.Param("identity")

	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.observerSvc.SetSubscription(c.Request.Context(), identity, *req.Subscribed)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "observer not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subscription"})
		return
	}

	c.Status(http.StatusNoContent)
}

func toObserverResponse(obs *domain.Observer) observerResponse {
	resp := observerResponse{
		Identity:   obs.Identity,
		Email:      obs.Email,
		Latitude:   obs.Lat,
		Longitude:  obs.Lon,
		Subscribed: obs.Subscribed,
	}
	if obs.ReportedAt != nil {
		ts := obs.ReportedAt.Unix()
		resp.ReportedAt = &ts
	}
	return resp
}
