package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/you/dmhub/domain"
)

// VolunteerHandlers handles volunteer registration.
type VolunteerHandlers struct {
	volunteerSvc domain.VolunteerService
}

// NewVolunteerHandlers creates new volunteer handlers.
func NewVolunteerHandlers(volunteerSvc domain.VolunteerService) *VolunteerHandlers {
	return &VolunteerHandlers{volunteerSvc: volunteerSvc}
}

// RegisterVolunteerRequest is the volunteer registration body.
type RegisterVolunteerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required"`
	Location string `json:"location" binding:"required"`
	Skills   string `json:"skills"`
}

// Register handles POST /api/volunteer/register.
func (h *VolunteerHandlers) Register(c *gin.Context) {
	var req RegisterVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	_, err := h.volunteerSvc.Register(c.Request.Context(), &domain.Volunteer{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Location: req.Location,
		Skills:   req.Skills,
	})
	if err != nil {
		switch err {
		case domain.ErrAlreadyRegistered:
			c.JSON(http.StatusBadRequest, gin.H{"message": "This email or phone number is already registered."})
		case domain.ErrMissingField:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Name, email, phone and location are required."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error during volunteer registration."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Volunteer successfully registered. Thank you!"})
}
