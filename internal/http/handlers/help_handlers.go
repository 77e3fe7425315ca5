package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/domain"
)

var helpLog = logrus.WithField("prefix", "http.help")

// HelpHandlers handles help request submission, listing, and triage.
type HelpHandlers struct {
	helpSvc domain.HelpRequestService
}

// NewHelpHandlers creates new help request handlers.
func NewHelpHandlers(helpSvc domain.HelpRequestService) *HelpHandlers {
	return &HelpHandlers{helpSvc: helpSvc}
}

// SubmitRequest is a public help-request submission body.
type SubmitRequest struct {
	ReporterContact string   `json:"reporterContact"`
	DisasterType    string   `json:"disasterType"`
	Description     string   `json:"description"`
	Severity        string   `json:"severity"`
	ManualAddress   string   `json:"manualAddress"`
	Lat             *float64 `json:"lat"`
	Lon             *float64 `json:"lon"`
}

// UpdateStatusRequest transitions a request's status.
type UpdateStatusRequest struct {
	NewStatus string `json:"newStatus" binding:"required"`
}

// Submit handles POST /api/help/request.
func (h *HelpHandlers) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	created, err := h.helpSvc.Submit(c.Request.Context(), domain.SubmitHelpInput{
		ReporterContact: req.ReporterContact,
		DisasterType:    req.DisasterType,
		Description:     req.Description,
		Severity:        req.Severity,
		ManualAddress:   req.ManualAddress,
		Lat:             req.Lat,
		Lon:             req.Lon,
	})
	if err != nil {
		switch err {
		case domain.ErrInvalidLocation:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Location data (GPS or manual address) is required."})
		case domain.ErrMissingField:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Reporter contact, disaster type and description are required."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during help request submission."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Help request successfully submitted. Responders are being notified.",
		"request": created,
	})
}

// ListActive handles GET /api/help/alerts. A store failure degrades to an
// empty list rather than failing the read.
func (h *HelpHandlers) ListActive(c *gin.Context) {
	requests, err := h.helpSvc.ListActive(c.Request.Context())
	if err != nil {
		helpLog.WithError(err).Warn("active alert listing degraded to empty result")
		c.JSON(http.StatusOK, []domain.HelpRequest{})
		return
	}
	c.JSON(http.StatusOK, requests)
}

// UpdateStatus handles PUT /api/help/alerts/:id/status. The admin gate
// middleware has already authorized the caller.
func (h *HelpHandlers) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	updated, err := h.helpSvc.UpdateStatus(c.Request.Context(), id, domain.RequestStatus(req.NewStatus))
	if err != nil {
		switch err {
		case domain.ErrInvalidStatus:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status provided."})
		case domain.ErrRequestNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Help request not found."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during status update."})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Status updated to " + string(updated.Status),
		"request": updated,
	})
}
