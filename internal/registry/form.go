package registry

import (
	"regexp"
	"sort"
	"strings"
)

// emailPattern is deliberately loose: local@domain.tld is enough.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// FormValues is the transient input buffer behind the registration
// form. It mirrors Registration minus the generated fields; only the
// pair matching Role is consulted, the other pair is carried but
// ignored.
type FormValues struct {
	Role       Role   `json:"role"`
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	GradeLevel string `json:"gradeLevel"`
	StudentID  string `json:"studentId"`
	Subject    string `json:"subject"`
	EmployeeID string `json:"employeeId"`
}

// ValidationError reports every failed field in one pass so the form
// can show all messages at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid fields: " + strings.Join(names, ", ")
}

// Validate checks the rules for the currently selected role. A nil
// return means the values can become a Registration.
func (v FormValues) Validate() error {
	errs := map[string]string{}

	if !v.Role.Valid() {
		errs["role"] = "role must be student or teacher"
	}
	if strings.TrimSpace(v.FullName) == "" {
		errs["fullName"] = "full name is required"
	}
	switch {
	case strings.TrimSpace(v.Email) == "":
		errs["email"] = "email is required"
	case !emailPattern.MatchString(v.Email):
		errs["email"] = "enter a valid email address"
	}

	switch v.Role {
	case RoleStudent:
		if strings.TrimSpace(v.GradeLevel) == "" {
			errs["gradeLevel"] = "grade level is required"
		}
		if strings.TrimSpace(v.StudentID) == "" {
			errs["studentId"] = "student ID is required"
		}
	case RoleTeacher:
		if strings.TrimSpace(v.Subject) == "" {
			errs["subject"] = "subject is required"
		}
		if strings.TrimSpace(v.EmployeeID) == "" {
			errs["employeeId"] = "employee ID is required"
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}

// details builds the role-appropriate pair. Call only after Validate.
func (v FormValues) details() Details {
	if v.Role == RoleTeacher {
		return TeacherDetails{Subject: v.Subject, EmployeeID: v.EmployeeID}
	}
	return StudentDetails{GradeLevel: v.GradeLevel, StudentID: v.StudentID}
}

// Reset clears every field except the selected role, which stays the
// default for the next entry.
func (v *FormValues) Reset() {
	*v = FormValues{Role: v.Role}
}
