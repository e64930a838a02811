package service

import (
	"enrollapi/models"
	"enrollapi/store"
)

// UserService owns user CRUD and the users-in-a-course join.
type UserService struct {
	users       *store.UserStore
	courses     *store.CourseStore
	enrollments *store.EnrollmentStore
}

func NewUserService(users *store.UserStore, courses *store.CourseStore, enrollments *store.EnrollmentStore) *UserService {
	return &UserService{
		users:       users,
		courses:     courses,
		enrollments: enrollments,
	}
}

// CreateUser stores a new user. The store assigns the id.
func (s *UserService) CreateUser(name, email string) models.User {
	return s.users.Save(models.User{Name: name, Email: email})
}

func (s *UserService) GetUserByID(id int) (models.User, error) {
	user, found := s.users.GetByID(id)
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// FindUsers filters by whichever of email and name is non-empty. With both
// empty every user is returned. An empty result is not an error.
func (s *UserService) FindUsers(email, name string) []models.User {
	switch {
	case email != "" && name != "":
		return s.users.GetByEmailAndName(email, name)
	case email != "":
		return s.users.GetByEmail(email)
	case name != "":
		return s.users.GetByName(name)
	default:
		return s.users.List()
	}
}

// EditUser patches name and email. Empty values leave the stored field as is.
func (s *UserService) EditUser(id int, name, email string) (models.User, error) {
	user, found := s.users.Update(id, name, email)
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) DeleteUser(id int) (models.User, error) {
	user, found := s.users.DeleteByID(id)
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

// GetUsersByCourseID resolves every user enrolled in the course, in enrollment
// insertion order. A user deleted after enrolling leaves an orphaned
// enrollment behind; those rows are skipped here so the rest of the roster is
// still served.
func (s *UserService) GetUsersByCourseID(courseID int) ([]models.User, error) {
	if _, found := s.courses.GetByID(courseID); !found {
		return nil, ErrCourseNotFound
	}

	enrollments := s.enrollments.GetByCourseID(courseID)

	users := []models.User{}
	for _, enrollment := range enrollments {
		user, found := s.users.GetByID(enrollment.UserID)
		if !found {
			continue
		}
		users = append(users, user)
	}
	return users, nil
}
