package models

import "time"

// Role classifies a user account. The set is closed; unknown values are
// rejected when a user is created.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin:
		return true
	}
	return false
}

// User represents a registered account in the system.
type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Role             Role      `json:"role"`
	MedicalLicenseID string    `json:"medical_license_id,omitempty"`
	PasswordHash     string    `json:"-"` // Never expose this to the client
	CreatedAt        time.Time `json:"created_at"`
}
