package service

import (
	"enrollapi/models"
	"enrollapi/store"
)

// EnrollmentService owns enrollment mutations and the filtered queries.
type EnrollmentService struct {
	users       *store.UserStore
	courses     *store.CourseStore
	enrollments *store.EnrollmentStore
}

func NewEnrollmentService(users *store.UserStore, courses *store.CourseStore, enrollments *store.EnrollmentStore) *EnrollmentService {
	return &EnrollmentService{
		users:       users,
		courses:     courses,
		enrollments: enrollments,
	}
}

// EnrollUser enrolls the user in the course under the given role. Both the
// user and the course must exist. Enrolling the same (user, course, role)
// twice returns the original enrollment instead of creating a duplicate.
func (s *EnrollmentService) EnrollUser(userID, courseID int, role string) (models.Enrollment, error) {
	if _, found := s.courses.GetByID(courseID); !found {
		return models.Enrollment{}, ErrCourseNotFound
	}
	if _, found := s.users.GetByID(userID); !found {
		return models.Enrollment{}, ErrUserNotFound
	}

	candidate := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
		Role:     role,
	}
	return s.enrollments.Upsert(candidate), nil
}

func (s *EnrollmentService) Withdraw(enrollmentID int) (models.Enrollment, error) {
	enrollment, found := s.enrollments.Withdraw(enrollmentID)
	if !found {
		return models.Enrollment{}, ErrEnrollmentNotFound
	}
	return enrollment, nil
}

func (s *EnrollmentService) GetEnrollmentByID(enrollmentID int) (models.Enrollment, error) {
	enrollment, found := s.enrollments.GetByID(enrollmentID)
	if !found {
		return models.Enrollment{}, ErrEnrollmentNotFound
	}
	return enrollment, nil
}

// QueryEnrollments filters by at most ONE of the supplied values, picked by
// priority courseID > userID > role. Supplying a course id means the user id
// and role are ignored even when set. This mirrors the system's historical
// behavior and callers depend on it; do not turn it into an AND of all three.
func (s *EnrollmentService) QueryEnrollments(userID, courseID int, role string) []models.Enrollment {
	filter := models.EnrollmentFilter{}
	if courseID != 0 {
		filter.CourseID = &courseID
	} else if userID != 0 {
		filter.UserID = &userID
	} else if role != "" {
		filter.Role = &role
	}
	return s.enrollments.GetByMultiConditions(filter)
}
