package record

import "time"

// Record is the durable meeting summary created when a booking completes.
// Exactly one record may ever reference a given booking; the database keeps
// that invariant with a unique index on booking_id.
type Record struct {
	ID              string    `json:"id"`
	BookingID       string    `json:"bookingId"`
	GroupID         string    `json:"groupId"`
	Summary         string    `json:"summary"`
	Homework        string    `json:"homework,omitempty"`
	NextMeetingDate string    `json:"nextMeetingDate,omitempty"` // 2006-01-02
	AttachmentIDs   []string  `json:"attachmentIds"`
	CreatorID       string    `json:"creatorId"`
	CreatedAt       time.Time `json:"createdAt"`
}
