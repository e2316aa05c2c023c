package domain

import "time"

// Review is the persisted review state of one segment: the last edited
// target text and the parity verdict computed for it.
type Review struct {
	ID         int64        `json:"id"`
	FileID     int64        `json:"file_id"`
	SegmentKey string       `json:"segment_key"`
	Target     string       `json:"target"`
	Status     ParityStatus `json:"status"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
