package entity

// UpcomingEvent is one scheduled industry event. The capitalized and spaced
// JSON keys mirror the backend's response verbatim; the upstream data model
// is outside this service's control.
type UpcomingEvent struct {
	ID        int64   `json:"id"`
	Quarter   *string `json:"Quarter,omitempty"`
	Territory *string `json:"Territory,omitempty"`
	Type      *string `json:"Type,omitempty"`
	EventName *string `json:"Event Name,omitempty"`
	EventDate *string `json:"Event Date,omitempty"`
}
