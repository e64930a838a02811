package store

import (
	"sync"

	"enrollapi/models"
)

// UserStore keeps user records in memory, in insertion order. Ids are assigned
// by the store and never reused, even after a delete.
type UserStore struct {
	mu          sync.Mutex
	users       []models.User
	incrementID int
}

func NewUserStore() *UserStore {
	return &UserStore{}
}

// Save assigns the next id to the user, overwriting any id the caller set,
// and appends it. Never fails.
func (s *UserStore) Save(newUser models.User) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.incrementID++
	newUser.ID = s.incrementID
	s.users = append(s.users, newUser)
	return newUser
}

// GetByID returns the user with the given id. Absence is a valid result here,
// not an error.
func (s *UserStore) GetByID(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}

// GetByName returns all users with exactly the given name.
func (s *UserStore) GetByName(name string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.User{}
	for _, user := range s.users {
		if user.Name == name {
			matched = append(matched, user)
		}
	}
	return matched
}

// GetByEmail returns all users with exactly the given email.
func (s *UserStore) GetByEmail(email string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.User{}
	for _, user := range s.users {
		if user.Email == email {
			matched = append(matched, user)
		}
	}
	return matched
}

// GetByEmailAndName returns all users matching both fields exactly.
func (s *UserStore) GetByEmailAndName(email, name string) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := []models.User{}
	for _, user := range s.users {
		if user.Email == email && user.Name == name {
			matched = append(matched, user)
		}
	}
	return matched
}

// List returns a copy of all users in insertion order.
func (s *UserStore) List() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := make([]models.User, len(s.users))
	copy(all, s.users)
	return all
}

// Update patches the user in place. An empty name or email leaves the stored
// value untouched; this is a partial patch, not a replace.
func (s *UserStore) Update(id int, name, email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if name != "" {
			s.users[i].Name = name
		}
		if email != "" {
			s.users[i].Email = email
		}
		return s.users[i], true
	}
	return models.User{}, false
}

// DeleteByID removes the user and returns it. Enrollments referencing the user
// are not touched.
func (s *UserStore) DeleteByID(id int) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, user := range s.users {
		if user.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return user, true
		}
	}
	return models.User{}, false
}
