package mapping

import (
	"time"

	"github.com/SscSPs/lease_management_app/internal/core/domain"
	"github.com/SscSPs/lease_management_app/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
		Version:       d.Version,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
		Version:       m.Version,
	}
}

// ToModelApproval converts workflow state to its nullable columns.
func ToModelApproval(d domain.Approval) models.ApprovalColumns {
	return models.ApprovalColumns{
		Status:               string(d.Status),
		SubmittedBy:          StringPtr(d.SubmittedBy),
		SubmittedAt:          d.SubmittedAt,
		ReviewedBy:           StringPtr(d.ReviewedBy),
		ReviewedAt:           d.ReviewedAt,
		RejectionReason:      StringPtr(d.RejectionReason),
		EditedSinceRejection: d.EditedSinceRejection,
	}
}

// ToDomainApproval converts workflow columns to domain state.
func ToDomainApproval(m models.ApprovalColumns) domain.Approval {
	return domain.Approval{
		Status:               domain.ApprovalStatus(m.Status),
		SubmittedBy:          StringValue(m.SubmittedBy),
		SubmittedAt:          m.SubmittedAt,
		ReviewedBy:           StringValue(m.ReviewedBy),
		ReviewedAt:           m.ReviewedAt,
		RejectionReason:      StringValue(m.RejectionReason),
		EditedSinceRejection: m.EditedSinceRejection,
	}
}

// StringPtr maps "" to NULL.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// StringValue maps NULL to "".
func StringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DateToTime maps a civil date to a DATE column value.
func DateToTime(d domain.Date) time.Time {
	return d.Time()
}

// DatePtr maps a zero date to NULL.
func DatePtr(d domain.Date) *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time()
	return &t
}

// DateFromPtr maps NULL to the zero date.
func DateFromPtr(t *time.Time) domain.Date {
	if t == nil {
		return domain.Date{}
	}
	return domain.DateOf(*t)
}
