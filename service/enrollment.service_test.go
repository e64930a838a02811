package service

import (
	"testing"

	"enrollapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollUserValidatesReferences(t *testing.T) {
	userSvc, _, enrollmentSvc := newServices()
	userSvc.CreateUser("Jane", "j@d")

	_, err := enrollmentSvc.EnrollUser(1, 99, models.RoleStudent)
	assert.ErrorIs(t, err, ErrCourseNotFound)

	_, err = enrollmentSvc.EnrollUser(42, 1, models.RoleStudent)
	assert.ErrorIs(t, err, ErrUserNotFound)

	enrollment, err := enrollmentSvc.EnrollUser(1, 1, models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, 1, enrollment.ID)
}

func TestEnrollUserIsIdempotent(t *testing.T) {
	userSvc, _, enrollmentSvc := newServices()
	userSvc.CreateUser("Jane", "j@d")

	first, err := enrollmentSvc.EnrollUser(1, 1, models.RoleStudent)
	require.NoError(t, err)
	second, err := enrollmentSvc.EnrollUser(1, 1, models.RoleStudent)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, enrollmentSvc.QueryEnrollments(1, 0, ""), 1)
}

func TestWithdraw(t *testing.T) {
	userSvc, _, enrollmentSvc := newServices()
	userSvc.CreateUser("Jane", "j@d")

	enrollment, err := enrollmentSvc.EnrollUser(1, 1, models.RoleStudent)
	require.NoError(t, err)

	withdrawn, err := enrollmentSvc.Withdraw(enrollment.ID)
	require.NoError(t, err)
	assert.Equal(t, enrollment, withdrawn)

	_, err = enrollmentSvc.GetEnrollmentByID(enrollment.ID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)

	_, err = enrollmentSvc.Withdraw(enrollment.ID)
	assert.ErrorIs(t, err, ErrEnrollmentNotFound)
}

func TestQueryEnrollmentsSinglePredicateWins(t *testing.T) {
	userSvc, _, enrollmentSvc := newServices()
	userSvc.CreateUser("Jane", "j@d")

	_, err := enrollmentSvc.EnrollUser(1, 1, models.RoleStudent)
	require.NoError(t, err)
	_, err = enrollmentSvc.EnrollUser(1, 2, models.RoleTeacher)
	require.NoError(t, err)

	// With both courseId and userId set, only the course filter applies.
	byBoth := enrollmentSvc.QueryEnrollments(1, 1, "")
	require.Len(t, byBoth, 1)
	assert.Equal(t, 1, byBoth[0].CourseID)

	// With courseId absent the user filter applies; role is still ignored.
	byUser := enrollmentSvc.QueryEnrollments(1, 0, models.RoleStudent)
	assert.Len(t, byUser, 2)

	// Role alone does filter.
	byRole := enrollmentSvc.QueryEnrollments(0, 0, models.RoleTeacher)
	require.Len(t, byRole, 1)
	assert.Equal(t, 2, byRole[0].CourseID)

	// Nothing supplied returns every enrollment.
	assert.Len(t, enrollmentSvc.QueryEnrollments(0, 0, ""), 2)
}
