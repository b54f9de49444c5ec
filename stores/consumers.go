package stores

import (
	"fmt"

	"canteen-order-system/models"
)

// ConsumerStore keeps consumers keyed by uid, newest first when listed.
// It is not safe for concurrent use.
type ConsumerStore struct {
	consumers []*models.Consumer
	byUID     map[string]*models.Consumer
}

// NewConsumerStore creates an empty ConsumerStore
func NewConsumerStore() *ConsumerStore {
	return &ConsumerStore{byUID: make(map[string]*models.Consumer)}
}

// Add registers a consumer
func (s *ConsumerStore) Add(c models.Consumer) (*models.Consumer, error) {
	if c.UID == "" {
		return nil, fmt.Errorf("consumer uid is required")
	}
	if _, ok := s.byUID[c.UID]; ok {
		return nil, fmt.Errorf("consumer %s: %w", c.UID, ErrDuplicate)
	}

	stored := c
	s.consumers = append(s.consumers, &stored)
	s.byUID[c.UID] = &stored
	return &stored, nil
}

// Get returns the consumer with uid
func (s *ConsumerStore) Get(uid string) (*models.Consumer, bool) {
	c, ok := s.byUID[uid]
	return c, ok
}

// Edit replaces a consumer's name and type. Orders already placed keep the old name.
func (s *ConsumerStore) Edit(uid, name string, t models.ConsumerType) error {
	c, ok := s.byUID[uid]
	if !ok {
		return fmt.Errorf("consumer %s: %w", uid, ErrNotFound)
	}
	c.Name = name
	c.Type = t
	return nil
}

// GetOrCreate returns the consumer with uid, registering a student if it is new.
// created reports whether a record was added.
func (s *ConsumerStore) GetOrCreate(uid, name string) (c *models.Consumer, created bool, err error) {
	if existing, ok := s.byUID[uid]; ok {
		return existing, false, nil
	}
	c, err = s.Add(models.Consumer{UID: uid, Name: name, Type: models.ConsumerStudent})
	if err != nil {
		return nil, false, err
	}
	return c, true, nil
}

// List returns consumers, most recently added first
func (s *ConsumerStore) List() []*models.Consumer {
	out := make([]*models.Consumer, 0, len(s.consumers))
	for i := len(s.consumers) - 1; i >= 0; i-- {
		out = append(out, s.consumers[i])
	}
	return out
}
