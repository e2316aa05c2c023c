package domain

import "time"

type Job struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`   // validate_project
	Status    string    `json:"status"` // queued, running, done, failed, canceled
	ProjectID *int64    `json:"project_id"`
	Progress  int       `json:"progress"`
	Total     int       `json:"total"`
	Tallies   RowTally  `json:"tallies"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// RowTally counts normalized rows per parity status across a job.
type RowTally struct {
	OK      int `json:"ok"`
	Missing int `json:"missing"`
	Extra   int `json:"extra"`
	Unknown int `json:"unknown"`
}

type JobLog struct {
	ID      int64     `json:"id"`
	JobID   int64     `json:"job_id"`
	Time    time.Time `json:"ts"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}
