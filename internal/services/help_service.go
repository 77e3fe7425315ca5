package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/domain"
)

var helpLog = logrus.WithField("prefix", "help")

const (
	// completedVisibility is how long Completed requests stay visible in
	// the active listing.
	completedVisibility = 24 * time.Hour
	// activeListLimit caps the active listing.
	activeListLimit = 20
)

// HelpServiceImpl implements domain.HelpRequestService.
type HelpServiceImpl struct {
	repo       domain.HelpRequestRepository
	dispatcher domain.Dispatcher
	now        func() time.Time
}

// NewHelpService creates a new help request lifecycle service.
func NewHelpService(repo domain.HelpRequestRepository, dispatcher domain.Dispatcher) *HelpServiceImpl {
	return &HelpServiceImpl{
		repo:       repo,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// Submit implements domain.HelpRequestService. The record is durable
// before any notification fires, and the dispatcher runs detached so the
// caller never waits on (or fails because of) SMS delivery.
func (s *HelpServiceImpl) Submit(ctx context.Context, input domain.SubmitHelpInput) (*domain.HelpRequest, error) {
	if input.ManualAddress == "" && (input.Lat == nil || input.Lon == nil) {
		return nil, domain.ErrInvalidLocation
	}
	if input.ReporterContact == "" || input.DisasterType == "" || input.Description == "" {
		return nil, domain.ErrMissingField
	}

	req := &domain.HelpRequest{
		ReporterContact: input.ReporterContact,
		DisasterType:    input.DisasterType,
		Description:     input.Description,
		Severity:        domain.ParseSeverity(input.Severity),
		ManualAddress:   input.ManualAddress,
		Status:          domain.StatusPending,
		Timestamp:       s.now().UTC(),
	}
	if input.Lat != nil && input.Lon != nil {
		req.Geolocation = &domain.GeoPoint{Lat: *input.Lat, Lon: *input.Lon}
	}

	if err := s.repo.Create(ctx, req); err != nil {
		return nil, err
	}

	// Detached from the request context: the HTTP response must not wait
	// for fan-out, and cancelling the request must not cancel the sends.
	go s.dispatcher.Dispatch(context.Background(), req)

	helpLog.WithFields(logrus.Fields{
		"id":       req.ID,
		"type":     req.DisasterType,
		"severity": req.Severity,
	}).Info("help request submitted")
	return req, nil
}

// ListActive implements domain.HelpRequestService.
func (s *HelpServiceImpl) ListActive(ctx context.Context) ([]domain.HelpRequest, error) {
	completedSince := s.now().UTC().Add(-completedVisibility)
	return s.repo.ListActive(ctx, completedSince, activeListLimit)
}

// UpdateStatus implements domain.HelpRequestService. Authorization is the
// session gate's job; by the time this runs the caller is a known admin.
func (s *HelpServiceImpl) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.HelpRequest, error) {
	if !status.AdminSettable() {
		return nil, domain.ErrInvalidStatus
	}

	req, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	helpLog.WithFields(logrus.Fields{"id": id, "status": status}).Info("help request status updated")
	return req, nil
}
