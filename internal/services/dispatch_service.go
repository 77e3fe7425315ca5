package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/you/dmhub/domain"
)

var dispatchLog = logrus.WithField("prefix", "dispatch")

// DispatchServiceImpl implements domain.Dispatcher. Fan-out is decoupled
// from the triggering write: a stored request must never fail because an
// SMS could not be delivered, so every error below is logged and dropped.
type DispatchServiceImpl struct {
	adminRepo     domain.AdminRepository
	volunteerRepo domain.VolunteerRepository
	sms           domain.SMSService
	matcher       domain.LocationMatcher
}

// NewDispatchService creates a new notification dispatcher.
func NewDispatchService(
	adminRepo domain.AdminRepository,
	volunteerRepo domain.VolunteerRepository,
	sms domain.SMSService,
	matcher domain.LocationMatcher,
) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		adminRepo:     adminRepo,
		volunteerRepo: volunteerRepo,
		sms:           sms,
		matcher:       matcher,
	}
}

// Dispatch implements domain.Dispatcher.
func (s *DispatchServiceImpl) Dispatch(ctx context.Context, req *domain.HelpRequest) {
	s.NotifyAdmins(ctx, req)
	s.NotifyVolunteers(ctx, req)
}

// NotifyAdmins sends the alert SMS to every registered admin and returns
// the number of successful sends.
func (s *DispatchServiceImpl) NotifyAdmins(ctx context.Context, req *domain.HelpRequest) int {
	admins, err := s.adminRepo.ListAll(ctx)
	if err != nil {
		dispatchLog.WithError(err).Warn("could not load admin directory, skipping admin alerts")
		return 0
	}
	if len(admins) == 0 {
		dispatchLog.Warn("no admin users registered, skipping admin alerts")
		return 0
	}

	body := fmt.Sprintf(
		"NEW DISASTER ALERT\nType: %s\nSev: %s\nLoc: %s\nContact: %s",
		req.DisasterType, req.Severity, locationSummary(req), req.ReporterContact,
	)

	phones := make([]string, 0, len(admins))
	for _, a := range admins {
		phones = append(phones, a.Phone)
	}

	sent := s.fanOut(phones, body)
	dispatchLog.WithFields(logrus.Fields{
		"request": req.ID,
		"sent":    sent,
		"total":   len(phones),
	}).Info("admin alert fan-out complete")
	return sent
}

// NotifyVolunteers sends a truncated-detail SMS to every volunteer whose
// location matches the request's search key and returns the number of
// successful sends.
func (s *DispatchServiceImpl) NotifyVolunteers(ctx context.Context, req *domain.HelpRequest) int {
	key := s.matcher.SearchKey(req)
	if key == "" {
		dispatchLog.WithField("request", req.ID).Info("no volunteer search key could be derived, skipping")
		return 0
	}

	volunteers, err := s.volunteerRepo.FindByLocationKey(ctx, key)
	if err != nil {
		dispatchLog.WithError(err).Warn("volunteer lookup failed, skipping volunteer alerts")
		return 0
	}
	if len(volunteers) == 0 {
		dispatchLog.WithField("key", key).Info("no volunteers matched location key")
		return 0
	}

	details := req.ManualAddress
	if details == "" {
		details = req.Description
	}
	if len(details) > 50 {
		details = details[:50]
	}

	body := fmt.Sprintf(
		"VOLUNTEER ALERT\nURGENT: %s (Sev: %s) near %s.\nDetails: %s...\nContact: %s",
		req.DisasterType, req.Severity, strings.ToUpper(key), details, req.ReporterContact,
	)

	phones := make([]string, 0, len(volunteers))
	for _, v := range volunteers {
		phones = append(phones, v.Phone)
	}

	sent := s.fanOut(phones, body)
	dispatchLog.WithFields(logrus.Fields{
		"request": req.ID,
		"key":     key,
		"sent":    sent,
		"total":   len(phones),
	}).Info("volunteer alert fan-out complete")
	return sent
}

// fanOut sends body to each phone concurrently. Every send is isolated: a
// failure is logged and counted out, never propagated to siblings.
func (s *DispatchServiceImpl) fanOut(phones []string, body string) int {
	var wg sync.WaitGroup
	var sent int64

	for _, phone := range phones {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			if err := s.sms.SendSMS(to, body); err != nil {
				dispatchLog.WithError(err).WithField("to", to).Warn("SMS send failed")
				return
			}
			atomic.AddInt64(&sent, 1)
		}(phone)
	}

	wg.Wait()
	return int(sent)
}

// locationSummary renders the request location for the admin alert body.
func locationSummary(req *domain.HelpRequest) string {
	if req.ManualAddress != "" {
		return req.ManualAddress
	}
	if req.Geolocation != nil {
		return fmt.Sprintf("GPS: %.2f, %.2f", req.Geolocation.Lat, req.Geolocation.Lon)
	}
	return "Unknown"
}
