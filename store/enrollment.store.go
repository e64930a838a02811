package store

import (
	"sync"

	"enrollapi/models"
)

// EnrollmentStore keeps enrollment records in memory, in insertion order.
// Foreign keys are not checked here; callers validate them before inserting.
type EnrollmentStore struct {
	mu        sync.Mutex
	rows      []models.Enrollment
	idCounter int
}

func NewEnrollmentStore() *EnrollmentStore {
	return &EnrollmentStore{}
}

// Upsert returns an existing enrollment matching the candidate instead of
// inserting a duplicate. A zero/empty candidate field matches ANY stored value
// for that field, so a partially specified candidate can dedup against an
// unrelated row. That wildcard rule is load-bearing; callers rely on it.
func (s *EnrollmentStore) Upsert(candidate models.Enrollment) models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if (candidate.UserID == 0 || row.UserID == candidate.UserID) &&
			(candidate.CourseID == 0 || row.CourseID == candidate.CourseID) &&
			(candidate.Role == "" || row.Role == candidate.Role) {
			return row
		}
	}

	s.idCounter++
	candidate.ID = s.idCounter
	s.rows = append(s.rows, candidate)
	return candidate
}

// Withdraw removes the enrollment by id and returns it.
func (s *EnrollmentStore) Withdraw(enrollmentID int) (models.Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, row := range s.rows {
		if row.ID == enrollmentID {
			s.rows = append(s.rows[:i], s.rows[i+1:]...)
			return row, true
		}
	}
	return models.Enrollment{}, false
}

// GetByID returns the enrollment with the given id.
func (s *EnrollmentStore) GetByID(enrollmentID int) (models.Enrollment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, row := range s.rows {
		if row.ID == enrollmentID {
			return row, true
		}
	}
	return models.Enrollment{}, false
}

// GetByCourseID returns all enrollments for the course. A zero courseID is a
// wildcard: every row is returned, not none.
func (s *EnrollmentStore) GetByCourseID(courseID int) []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Enrollment{}
	for _, row := range s.rows {
		if courseID == 0 || row.CourseID == courseID {
			matched = append(matched, row)
		}
	}
	return matched
}

// GetByUserID returns all enrollments for the user. A zero userID is a
// wildcard, same as GetByCourseID.
func (s *EnrollmentStore) GetByUserID(userID int) []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Enrollment{}
	for _, row := range s.rows {
		if userID == 0 || row.UserID == userID {
			matched = append(matched, row)
		}
	}
	return matched
}

// GetByMultiConditions returns all enrollments matching every predicate set on
// the filter. An empty filter matches every row.
func (s *EnrollmentStore) GetByMultiConditions(filter models.EnrollmentFilter) []models.Enrollment {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.Enrollment{}
	for _, row := range s.rows {
		if filter.UserID != nil && row.UserID != *filter.UserID {
			continue
		}
		if filter.CourseID != nil && row.CourseID != *filter.CourseID {
			continue
		}
		if filter.Role != nil && row.Role != *filter.Role {
			continue
		}
		matched = append(matched, row)
	}
	return matched
}
