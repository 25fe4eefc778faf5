package registry

import (
	"encoding/json"
	"time"
)

// Role selects which detail pair a registration carries.
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Details is the role-specific half of a registration. Each role has
// exactly one implementation, so a record can never carry both pairs
// or a pair that disagrees with its role.
type Details interface {
	Role() Role
}

// StudentDetails is the pair required when registering a student.
type StudentDetails struct {
	GradeLevel string
	StudentID  string
}

// Role implements Details.
func (StudentDetails) Role() Role { return RoleStudent }

// TeacherDetails is the pair required when registering a teacher.
type TeacherDetails struct {
	Subject    string
	EmployeeID string
}

// Role implements Details.
func (TeacherDetails) Role() Role { return RoleTeacher }

// Registration is one submitted student or teacher record. It is
// created by Service.Submit and never mutated afterwards.
type Registration struct {
	ID        string
	FullName  string
	Email     string
	Details   Details
	CreatedAt time.Time
}

// timestampLayout matches what the form page shows next to each entry.
const timestampLayout = "1/2/2006, 3:04:05 PM"

// CreatedAtDisplay is the stored submission timestamp in display form.
func (r Registration) CreatedAtDisplay() string {
	return r.CreatedAt.Format(timestampLayout)
}

// MarshalJSON flattens the role-specific pair next to the common
// fields, which is the shape the form client renders.
func (r Registration) MarshalJSON() ([]byte, error) {
	out := map[string]string{
		"id":        r.ID,
		"fullName":  r.FullName,
		"email":     r.Email,
		"role":      string(r.Details.Role()),
		"createdAt": r.CreatedAtDisplay(),
	}
	switch d := r.Details.(type) {
	case StudentDetails:
		out["gradeLevel"] = d.GradeLevel
		out["studentId"] = d.StudentID
	case TeacherDetails:
		out["subject"] = d.Subject
		out["employeeId"] = d.EmployeeID
	}
	return json.Marshal(out)
}
