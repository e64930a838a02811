package store

import (
	"sync"

	"enrollapi/models"
)

// CourseStore is a read-only catalog seeded at construction. There are no
// create, update or delete operations for courses.
type CourseStore struct {
	mu      sync.Mutex
	courses []models.Course
}

func NewCourseStore() *CourseStore {
	return &CourseStore{
		courses: []models.Course{
			{ID: 1, Name: "Software engineering 101"},
			{ID: 2, Name: "成為 Cool 大師的路上"},
			{ID: 3, Name: "You Don't Know Js"},
			{ID: 4, Name: "I Don't Know Js yet"},
		},
	}
}

// GetByID returns the course with the given id.
func (s *CourseStore) GetByID(id int) (models.Course, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, course := range s.courses {
		if course.ID == id {
			return course, true
		}
	}
	return models.Course{}, false
}
