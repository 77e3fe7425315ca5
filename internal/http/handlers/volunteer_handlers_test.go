package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you/dmhub/domain"
	"github.com/you/dmhub/internal/mocks"
)

func setupVolunteerRouter(svc *mocks.MockVolunteerService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewVolunteerHandlers(svc)
	r := gin.New()
	r.POST("/api/volunteer/register", h.Register)
	return r
}

func TestVolunteerHandlers_Register(t *testing.T) {
	svc := mocks.NewMockVolunteerService()

	var got *domain.Volunteer
	svc.RegisterFunc = func(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
		got = v
		return v, nil
	}
	r := setupVolunteerRouter(svc)

	w := performJSON(r, http.MethodPost, "/api/volunteer/register", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"phone":    "+911234567890",
		"location": "Hyderabad",
		"skills":   "first aid",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "successfully registered")
	require.NotNil(t, got)
	assert.Equal(t, "Hyderabad", got.Location)
}

func TestVolunteerHandlers_Register_Duplicate(t *testing.T) {
	svc := mocks.NewMockVolunteerService()
	svc.RegisterFunc = func(ctx context.Context, v *domain.Volunteer) (*domain.Volunteer, error) {
		return nil, domain.ErrAlreadyRegistered
	}
	r := setupVolunteerRouter(svc)

	w := performJSON(r, http.MethodPost, "/api/volunteer/register", gin.H{
		"name":     "Asha",
		"email":    "asha@example.com",
		"phone":    "+911234567890",
		"location": "Hyderabad",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestVolunteerHandlers_Register_Validation(t *testing.T) {
	r := setupVolunteerRouter(mocks.NewMockVolunteerService())

	w := performJSON(r, http.MethodPost, "/api/volunteer/register", gin.H{
		"name":  "Asha",
		"email": "asha@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
