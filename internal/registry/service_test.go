package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitValidStudent(t *testing.T) {
	store := NewStore()
	svc := NewService(store)
	fixed := time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	before := store.Summary()
	reg, err := svc.Submit(validStudent())
	require.NoError(t, err)

	assert.NotEmpty(t, reg.ID)
	assert.Equal(t, "Jordan Lee", reg.FullName)
	assert.Equal(t, "jordan@school.edu", reg.Email)
	assert.Equal(t, fixed, reg.CreatedAt)
	require.IsType(t, StudentDetails{}, reg.Details)
	d := reg.Details.(StudentDetails)
	assert.Equal(t, "10", d.GradeLevel)
	assert.Equal(t, "STU-2045", d.StudentID)

	after := store.Summary()
	assert.Equal(t, before.Total+1, after.Total)
	assert.Equal(t, before.Students+1, after.Students)
	assert.Equal(t, before.Teachers, after.Teachers)

	// newest entry is first
	assert.Equal(t, reg.ID, store.List()[0].ID)
}

func TestSubmitInvalidLeavesListUnchanged(t *testing.T) {
	store := NewStore()
	svc := NewService(store)

	_, err := svc.Submit(validStudent())
	require.NoError(t, err)
	before := store.Len()

	bad := validStudent()
	bad.Email = "not-an-email"
	_, err = svc.Submit(bad)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, before, store.Len())
}

func TestSubmitAssignsUniqueIDs(t *testing.T) {
	svc := NewService(NewStore())

	a, err := svc.Submit(validStudent())
	require.NoError(t, err)
	b, err := svc.Submit(validTeacher())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestSubmitTeacherDetails(t *testing.T) {
	svc := NewService(NewStore())

	reg, err := svc.Submit(validTeacher())
	require.NoError(t, err)

	require.IsType(t, TeacherDetails{}, reg.Details)
	d := reg.Details.(TeacherDetails)
	assert.Equal(t, "Physics", d.Subject)
	assert.Equal(t, "EMP-114", d.EmployeeID)
	assert.Equal(t, RoleTeacher, reg.Details.Role())
}
