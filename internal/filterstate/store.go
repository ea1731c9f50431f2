// Package filterstate tracks the active purchase-list view: filters, sort
// order and pagination. Filters and sort are persisted per user; pagination
// is session-local and always starts fresh.
package filterstate

import (
	"encoding/json"
	"log"
	"sync"

	"budget-tracker/internal/models"
	"budget-tracker/internal/userdata"
)

// persistedState is the stored subset of the view state.
type persistedState struct {
	Filters models.Filters     `json:"filters"`
	Sort    models.SortOptions `json:"sort"`
}

// State is a snapshot of the full view state.
type State struct {
	Filters    models.Filters
	Sort       models.SortOptions
	Pagination models.Pagination
}

// DefaultSort is the ordering applied when nothing is saved.
func DefaultSort() models.SortOptions {
	return models.SortOptions{Field: models.SortByDate, Direction: models.SortDesc}
}

// DefaultPagination is the page applied on activation and after any filter
// or sort change.
func DefaultPagination() models.Pagination {
	return models.Pagination{Page: 1, Limit: 20}
}

// Store holds the active user's view state.
type Store struct {
	mu     sync.Mutex
	data   *userdata.Service
	userID string
	state  State

	subscribers map[int]func(State)
	nextSubID   int
}

// NewStore returns a store with default state and no active user.
func NewStore(data *userdata.Service) *Store {
	return &Store{
		data:        data,
		state:       defaultState(),
		subscribers: make(map[int]func(State)),
	}
}

func defaultState() State {
	return State{Sort: DefaultSort(), Pagination: DefaultPagination()}
}

// SetUser switches the active user and loads their saved filters and sort.
// Corrupt or absent saved state falls back to defaults. Pagination is reset
// regardless of what was active before.
func (s *Store) SetUser(userID string) error {
	s.mu.Lock()

	s.userID = userID
	s.state = defaultState()
	if userID == "" {
		s.notifyLocked()
		return nil
	}

	raw, found, err := s.data.GetFilterState(userID)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if found {
		var saved persistedState
		if err := json.Unmarshal([]byte(raw), &saved); err != nil {
			log.Printf("filterstate: discarding corrupt saved state for %s: %v", userID, err)
		} else {
			s.state.Filters = saved.Filters
			if saved.Sort.Field != "" {
				s.state.Sort = saved.Sort
			}
		}
	}
	s.notifyLocked()
	return nil
}

// Current returns a snapshot of the view state.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetFilters replaces the active filters and resets to the first page.
func (s *Store) SetFilters(filters models.Filters) error {
	return s.update(func(st *State) {
		st.Filters = filters
		st.Pagination.Page = 1
	})
}

// ClearFilters removes every active filter and resets to the first page.
func (s *Store) ClearFilters() error {
	return s.update(func(st *State) {
		st.Filters = models.Filters{}
		st.Pagination.Page = 1
	})
}

// SetSort changes the ordering and resets to the first page.
func (s *Store) SetSort(sort models.SortOptions) error {
	return s.update(func(st *State) {
		st.Sort = sort
		st.Pagination.Page = 1
	})
}

// SetPagination merges the given page and limit over the current values.
// Zero fields keep their current value. Pagination is never persisted.
func (s *Store) SetPagination(p models.Pagination) {
	s.mu.Lock()
	if p.Page > 0 {
		s.state.Pagination.Page = p.Page
	}
	if p.Limit > 0 {
		s.state.Pagination.Limit = p.Limit
	}
	s.notifyLocked()
}

// ResetPagination returns to the first page with the default limit.
func (s *Store) ResetPagination() {
	s.mu.Lock()
	s.state.Pagination = DefaultPagination()
	s.notifyLocked()
}

// HasActiveFilters reports whether any filter is set.
func (s *Store) HasActiveFilters() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countFilters(s.state.Filters) > 0
}

// FilterCount returns the number of distinct filter groups in use. Each
// group counts once no matter how many values it holds.
func (s *Store) FilterCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countFilters(s.state.Filters)
}

func countFilters(f models.Filters) int {
	count := 0
	if f.DateRange != nil {
		count++
	}
	if len(f.Categories) > 0 {
		count++
	}
	if len(f.PaymentMethods) > 0 {
		count++
	}
	if f.AmountRange != nil {
		count++
	}
	if f.SearchTerm != "" {
		count++
	}
	if len(f.Tags) > 0 {
		count++
	}
	if f.MerchantName != "" {
		count++
	}
	if len(f.Currencies) > 0 {
		count++
	}
	return count
}

// Subscribe registers fn to run with a snapshot after every change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// update applies a mutation, persists filters and sort when a user is
// active, and notifies subscribers. The mutation is rolled back if
// persistence fails.
func (s *Store) update(mutate func(*State)) error {
	s.mu.Lock()

	previous := s.state
	mutate(&s.state)

	if s.userID != "" {
		raw, err := json.Marshal(persistedState{Filters: s.state.Filters, Sort: s.state.Sort})
		if err == nil {
			err = s.data.SaveFilterState(s.userID, string(raw))
		}
		if err != nil {
			s.state = previous
			s.mu.Unlock()
			return err
		}
	}
	s.notifyLocked()
	return nil
}

// notifyLocked snapshots state and subscribers, releases the lock, then
// invokes the callbacks. Callers must hold s.mu; it is unlocked on return.
func (s *Store) notifyLocked() {
	snapshot := s.state
	fns := make([]func(State), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
