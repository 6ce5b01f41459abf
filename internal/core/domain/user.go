package domain

import "time"

// UserRole is the back-office role of a user.
type UserRole string

const (
	RoleAdmin      UserRole = "ADMIN"
	RoleDataEntry  UserRole = "DATA_ENTRY"
	RoleManagement UserRole = "MANAGEMENT" // Management representative, reviews submissions
)

// IsValid reports whether r is a known role.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDataEntry, RoleManagement:
		return true
	}
	return false
}

// User represents a user of the application in the domain.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (e.g., UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty" db:"deleted_at"` // Used for soft delete
}

// Capability is an action class guarded by role.
type Capability string

const (
	CapabilityRead   Capability = "READ"
	CapabilityEdit   Capability = "EDIT"   // create, edit and submit records
	CapabilityReview Capability = "REVIEW" // approve or reject submissions
	CapabilityAdmin  Capability = "ADMIN"  // manage users and reference data
)

// Actor identifies who performs an operation. It is passed explicitly into
// every service call instead of being read from ambient state.
type Actor struct {
	UserID string
	Role   UserRole
}

// Can reports whether the actor's role grants the capability.
func (a Actor) Can(c Capability) bool {
	switch c {
	case CapabilityRead:
		return a.Role.IsValid()
	case CapabilityEdit:
		return a.Role == RoleAdmin || a.Role == RoleDataEntry
	case CapabilityReview:
		return a.Role == RoleAdmin || a.Role == RoleManagement
	case CapabilityAdmin:
		return a.Role == RoleAdmin
	}
	return false
}
