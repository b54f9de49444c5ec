package stores

import (
	"errors"
	"fmt"

	"canteen-order-system/models"

	"golang.org/x/crypto/bcrypt"
)

// UserStore holds staff accounts with bcrypt password hashes.
// It is not safe for concurrent use.
type UserStore struct {
	users []*models.User
	cost  int
}

// NewUserStore creates an empty UserStore hashing with the given bcrypt cost.
// Costs outside bcrypt's range fall back to bcrypt.DefaultCost.
func NewUserStore(cost int) *UserStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &UserStore{cost: cost}
}

// Add registers a user, hashing the plain password
func (s *UserStore) Add(uid, name, username, password string, role models.Role) (*models.User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if _, ok := s.FindByUsername(username); ok {
		return nil, fmt.Errorf("username %s: %w", username, ErrDuplicate)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for %s: %w", username, err)
	}

	u := &models.User{
		UID:          uid,
		Name:         name,
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}
	s.users = append(s.users, u)
	return u, nil
}

// FindByUsername returns the user with the given login name
func (s *UserStore) FindByUsername(username string) (*models.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return nil, false
}

// Login checks the credentials and returns the matching user
func (s *UserStore) Login(username, password string) (*models.User, error) {
	u, ok := s.FindByUsername(username)
	if !ok {
		return nil, ErrBadCredentials
	}
	err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to verify password for %s: %w", username, err)
	}
	return u, nil
}

// Edit updates the user with uid.
// Seeded accounts may share a uid, in which case the most recently added one is changed.
func (s *UserStore) Edit(uid, name, username, password string, role models.Role) error {
	for i := len(s.users) - 1; i >= 0; i-- {
		u := s.users[i]
		if u.UID != uid {
			continue
		}
		if other, ok := s.FindByUsername(username); ok && other != u {
			return fmt.Errorf("username %s: %w", username, ErrDuplicate)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
		if err != nil {
			return fmt.Errorf("failed to hash password for %s: %w", username, err)
		}
		u.Name = name
		u.Username = username
		u.PasswordHash = hash
		u.Role = role
		return nil
	}
	return fmt.Errorf("user %s: %w", uid, ErrNotFound)
}

// List returns users, most recently added first
func (s *UserStore) List() []*models.User {
	out := make([]*models.User, 0, len(s.users))
	for i := len(s.users) - 1; i >= 0; i-- {
		out = append(out, s.users[i])
	}
	return out
}
