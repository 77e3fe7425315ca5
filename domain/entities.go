package domain

import "time"

// Severity classifies how serious a reported disaster is.
type Severity string

const (
	SeverityMinor    Severity = "Minor"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
	SeverityCritical Severity = "Critical"
)

// ParseSeverity maps a submitted severity string onto the known set,
// defaulting to Moderate for empty or unrecognized values.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityMinor, SeverityModerate, SeveritySevere, SeverityCritical:
		return Severity(s)
	default:
		return SeverityModerate
	}
}

// RequestStatus is the lifecycle state of a help request.
type RequestStatus string

const (
	StatusPending    RequestStatus = "Pending"
	StatusConfirmed  RequestStatus = "Confirmed"
	StatusDispatched RequestStatus = "Dispatched"
	StatusResolved   RequestStatus = "Resolved"
	StatusCompleted  RequestStatus = "Completed"
)

// AdminSettable reports whether an admin may set this status through the
// status-update endpoint. Confirmed and Resolved exist in stored data but
// are not reachable through the API.
func (s RequestStatus) AdminSettable() bool {
	switch s {
	case StatusPending, StatusDispatched, StatusCompleted:
		return true
	default:
		return false
	}
}

// GeoPoint is a WGS84 coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// HelpRequest is a public report of an emergency needing response.
type HelpRequest struct {
	ID              string        `json:"id"`
	ReporterContact string        `json:"reporterContact"`
	DisasterType    string        `json:"disasterType"`
	Description     string        `json:"description"`
	Severity        Severity      `json:"severity"`
	ManualAddress   string        `json:"manualAddress,omitempty"`
	Geolocation     *GeoPoint     `json:"geolocation,omitempty"`
	Status          RequestStatus `json:"status"`
	Timestamp       time.Time     `json:"timestamp"`
}

// SubmitHelpInput carries a public help-request submission. Lat and Lon are
// pointers so an absent coordinate is distinguishable from zero.
type SubmitHelpInput struct {
	ReporterContact string
	DisasterType    string
	Description     string
	Severity        string
	ManualAddress   string
	Lat             *float64
	Lon             *float64
}

// AdminUser is an operator permitted to triage help requests. The email
// doubles as the bearer credential issued at login.
type AdminUser struct {
	ID           uint      `json:"-"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Phone        string    `json:"phone"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// Volunteer is a registered responder matched to requests by free-text
// location. Volunteers are immutable after registration.
type Volunteer struct {
	ID           uint      `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	Skills       string    `json:"skills,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// OtpPayload is the pending data carried by a challenge until the code is
// verified. Registration challenges carry all three fields; reset
// challenges carry phone and email only.
type OtpPayload struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	PasswordHash string `json:"passwordHash,omitempty"`
}

// OtpChallenge is a time-boxed one-time code keyed by phone number.
// At most one challenge is live per phone; issuing a new one replaces it.
type OtpChallenge struct {
	Phone     string     `json:"phone"`
	Code      string     `json:"code"`
	Payload   OtpPayload `json:"payload"`
	CreatedAt time.Time  `json:"createdAt"`
}

// HazardEvent is a geolocated event from the live hazard feed, shaped as a
// GeoJSON feature for the map client.
type HazardEvent struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Properties HazardProperties `json:"properties"`
	Geometry   HazardGeometry   `json:"geometry"`
}

type HazardProperties struct {
	Mag      float64 `json:"mag"`
	Place    string  `json:"place"`
	Time     int64   `json:"time"`
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
}

type HazardGeometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}
