package models

import "time"

// AuditFields are the audit and version columns shared by every table.
type AuditFields struct {
	CreatedAt     time.Time `db:"created_at"`
	CreatedBy     string    `db:"created_by"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
	LastUpdatedBy string    `db:"last_updated_by"`
	Version       int64     `db:"version"`
}

// ApprovalColumns are the workflow columns of approvable tables.
type ApprovalColumns struct {
	Status               string     `db:"status"`
	SubmittedBy          *string    `db:"submitted_by"`
	SubmittedAt          *time.Time `db:"submitted_at"`
	ReviewedBy           *string    `db:"reviewed_by"`
	ReviewedAt           *time.Time `db:"reviewed_at"`
	RejectionReason      *string    `db:"rejection_reason"`
	EditedSinceRejection bool       `db:"edited_since_rejection"`
}
