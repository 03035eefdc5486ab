package models

import "time"

// SubmissionProvenance is owned 1:1 by its AudioSubmission and is
// cascade-deleted with it. All identity fields are best-effort.
type SubmissionProvenance struct {
	ID           int64     `db:"id"`
	SubmissionID int64     `db:"submission_id"`
	IPAddress    *string   `db:"ip_address"`
	Username     *string   `db:"username"`
	UserAgent    *string   `db:"user_agent"`
	RecordedAt   time.Time `db:"recorded_at"`
}
