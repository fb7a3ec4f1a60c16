package booking

import "time"

type Status string

const (
	StatusPending             Status = "pending"
	StatusApproved            Status = "approved"
	StatusRejected            Status = "rejected"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusCancelled           Status = "cancelled"
	StatusCompleted           Status = "completed"
	StatusExpired             Status = "expired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusRescheduleRequested,
		StatusCancelled, StatusCompleted, StatusExpired:
		return true
	}
	return false
}

// Terminal statuses are immutable except for overseer overrides.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusCancelled, StatusCompleted, StatusExpired:
		return true
	}
	return false
}

// Active statuses count towards the group overlap check.
func (s Status) Active() bool {
	return s == StatusPending || s == StatusApproved
}

type Kind string

const (
	KindOnSite Kind = "on_site"
	KindRemote Kind = "remote"
)

func (k Kind) Valid() bool {
	return k == KindOnSite || k == KindRemote
}

// AuditEntry is one line of a booking's ordered audit trail.
type AuditEntry struct {
	At        time.Time `json:"at"`
	ActorID   string    `json:"actorId"`
	ActorName string    `json:"actorName"`
	Action    string    `json:"action"`
	Note      string    `json:"note,omitempty"`
}

// Proposal is the embedded reschedule proposal. At most one may be
// outstanding per booking; it is cleared the moment it is answered.
type Proposal struct {
	ProposerID string    `json:"proposerId"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	StartsAt   time.Time `json:"startsAt"`
	EndsAt     time.Time `json:"endsAt"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Booking struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	// Wall-clock values as entered by the creator, plus the derived
	// absolute instants used for overlap checks and reminders.
	Date      string    `json:"date"`      // 2006-01-02
	StartTime string    `json:"startTime"` // 15:04
	EndTime   string    `json:"endTime"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`

	Kind     Kind   `json:"kind"`
	Location string `json:"location"`
	Notes    string `json:"notes"`

	GroupID        string   `json:"groupId"`
	CreatorID      string   `json:"creatorId"`
	CreatorName    string   `json:"creatorName"`
	ParticipantIDs []string `json:"participantIds"`

	Status             Status    `json:"status"`
	RejectionReason    string    `json:"rejectionReason,omitempty"`
	CancellationReason string    `json:"cancellationReason,omitempty"`
	DeclineReason      string    `json:"declineReason,omitempty"`
	Proposal           *Proposal `json:"proposal,omitempty"`

	ReminderSent bool   `json:"reminderSent"`
	RecordID     string `json:"recordId,omitempty"`

	Audit []AuditEntry `json:"audit"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Group is the owning project group of a booking. The assigned approver is
// the counterpart for every booking created inside the group.
type Group struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ApproverID string   `json:"approverId"`
	MemberIDs  []string `json:"memberIds"`
}
