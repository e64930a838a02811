package service

import (
	"enrollapi/models"
	"enrollapi/store"
)

// CourseService serves the read-only catalog and the courses-for-a-user join.
type CourseService struct {
	users       *store.UserStore
	courses     *store.CourseStore
	enrollments *store.EnrollmentStore
}

func NewCourseService(users *store.UserStore, courses *store.CourseStore, enrollments *store.EnrollmentStore) *CourseService {
	return &CourseService{
		users:       users,
		courses:     courses,
		enrollments: enrollments,
	}
}

func (s *CourseService) GetCourseByID(courseID int) (models.Course, error) {
	course, found := s.courses.GetByID(courseID)
	if !found {
		return models.Course{}, ErrCourseNotFound
	}
	return course, nil
}

// GetCoursesByUserID resolves every course the user is enrolled in, in
// enrollment insertion order. The catalog is static, so an unresolvable
// course id should not occur; if it ever does the row is skipped.
func (s *CourseService) GetCoursesByUserID(userID int) ([]models.Course, error) {
	if _, found := s.users.GetByID(userID); !found {
		return nil, ErrUserNotFound
	}

	enrollments := s.enrollments.GetByUserID(userID)

	courses := []models.Course{}
	for _, enrollment := range enrollments {
		course, found := s.courses.GetByID(enrollment.CourseID)
		if !found {
			continue
		}
		courses = append(courses, course)
	}
	return courses, nil
}
