package attachment

import "time"

// OwnerKind identifies which entity an attachment belongs to.
type OwnerKind string

const (
	OwnerBooking OwnerKind = "booking"
	OwnerRecord  OwnerKind = "record"
)

func (k OwnerKind) Valid() bool {
	return k == OwnerBooking || k == OwnerRecord
}

// Owner is the polymorphic owner reference of an attachment.
type Owner struct {
	Kind OwnerKind `json:"kind"`
	ID   string    `json:"id"`
}

// Attachment is the stored metadata of one uploaded file. The bytes
// themselves live in the blob store under BlobKey. Booking-owned attachments
// expire after a fixed retention window; record-owned ones persist.
type Attachment struct {
	ID         string     `json:"id"`
	Owner      Owner      `json:"owner"`
	FileName   string     `json:"fileName"`
	MediaType  string     `json:"mediaType"`
	Size       int64      `json:"size"`
	BlobKey    string     `json:"-"`
	UploaderID string     `json:"uploaderId"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}
