// Package preferences manages per-user settings with sensible defaults,
// persisting them through the user data store and notifying subscribers on
// every change.
package preferences

import (
	"sync"

	"github.com/shopspring/decimal"

	"budget-tracker/internal/models"
	"budget-tracker/internal/userdata"
)

// DefaultPreferences returns the settings applied to users who have never
// saved any.
func DefaultPreferences() models.UserPreferences {
	return models.UserPreferences{
		DefaultCurrency: models.CurrencyCAD,
		DateFormat:      "MM/DD/YYYY",
		Theme:           "system",
		Language:        "en",
		Notifications: models.NotificationPrefs{
			Email:                     true,
			Push:                      false,
			WeeklyReport:              true,
			MonthlyReport:             true,
			LargeTransactionAlert:     true,
			LargeTransactionThreshold: decimal.NewFromInt(500),
		},
		Privacy: models.PrivacyPrefs{
			ShareAnalytics:  false,
			RememberFilters: true,
		},
	}
}

// NotificationUpdate is a partial change to notification settings. Nil
// fields keep their current value.
type NotificationUpdate struct {
	Email                     *bool
	Push                      *bool
	WeeklyReport              *bool
	MonthlyReport             *bool
	LargeTransactionAlert     *bool
	LargeTransactionThreshold *decimal.Decimal
}

// PrivacyUpdate is a partial change to privacy settings.
type PrivacyUpdate struct {
	ShareAnalytics  *bool
	RememberFilters *bool
}

// Store holds the active user's preferences. With no active user it serves
// defaults and skips persistence.
type Store struct {
	mu     sync.Mutex
	data   *userdata.Service
	userID string
	prefs  models.UserPreferences

	subscribers map[int]func(models.UserPreferences)
	nextSubID   int
}

// NewStore returns a store serving defaults until SetUser is called.
func NewStore(data *userdata.Service) *Store {
	return &Store{
		data:        data,
		prefs:       DefaultPreferences(),
		subscribers: make(map[int]func(models.UserPreferences)),
	}
}

// SetUser switches the active user, loading their saved preferences or
// establishing (and persisting) defaults for a first-timer. An empty userID
// deactivates the store and resets it to defaults.
func (s *Store) SetUser(userID string) error {
	s.mu.Lock()

	if userID == "" {
		s.userID = ""
		s.prefs = DefaultPreferences()
		s.notifyLocked()
		return nil
	}

	saved, err := s.data.GetPreferences(userID)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.userID = userID
	if saved != nil {
		s.prefs = *saved
	} else {
		s.prefs = DefaultPreferences()
		if err := s.data.SavePreferences(userID, s.prefs); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.notifyLocked()
	return nil
}

// Current returns a snapshot of the active preferences.
func (s *Store) Current() models.UserPreferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

// SetDefaultCurrency updates the default currency.
func (s *Store) SetDefaultCurrency(c models.Currency) error {
	return s.update(func(p *models.UserPreferences) { p.DefaultCurrency = c })
}

// SetDateFormat updates the display date format.
func (s *Store) SetDateFormat(format string) error {
	return s.update(func(p *models.UserPreferences) { p.DateFormat = format })
}

// SetTheme updates the UI theme.
func (s *Store) SetTheme(theme string) error {
	return s.update(func(p *models.UserPreferences) { p.Theme = theme })
}

// SetLanguage updates the display language.
func (s *Store) SetLanguage(lang string) error {
	return s.update(func(p *models.UserPreferences) { p.Language = lang })
}

// UpdateNotifications merges the given fields over the notification
// settings.
func (s *Store) UpdateNotifications(u NotificationUpdate) error {
	return s.update(func(p *models.UserPreferences) {
		n := &p.Notifications
		if u.Email != nil {
			n.Email = *u.Email
		}
		if u.Push != nil {
			n.Push = *u.Push
		}
		if u.WeeklyReport != nil {
			n.WeeklyReport = *u.WeeklyReport
		}
		if u.MonthlyReport != nil {
			n.MonthlyReport = *u.MonthlyReport
		}
		if u.LargeTransactionAlert != nil {
			n.LargeTransactionAlert = *u.LargeTransactionAlert
		}
		if u.LargeTransactionThreshold != nil {
			n.LargeTransactionThreshold = *u.LargeTransactionThreshold
		}
	})
}

// UpdatePrivacy merges the given fields over the privacy settings.
func (s *Store) UpdatePrivacy(u PrivacyUpdate) error {
	return s.update(func(p *models.UserPreferences) {
		if u.ShareAnalytics != nil {
			p.Privacy.ShareAnalytics = *u.ShareAnalytics
		}
		if u.RememberFilters != nil {
			p.Privacy.RememberFilters = *u.RememberFilters
		}
	})
}

// ResetToDefaults restores and persists the default preferences for the
// active user.
func (s *Store) ResetToDefaults() error {
	return s.update(func(p *models.UserPreferences) { *p = DefaultPreferences() })
}

// Subscribe registers fn to run with a snapshot after every change. The
// returned function removes the subscription.
func (s *Store) Subscribe(fn func(models.UserPreferences)) func() {
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

// update applies a mutation, persists it when a user is active, and
// notifies subscribers. The mutation is rolled back if persistence fails.
func (s *Store) update(mutate func(*models.UserPreferences)) error {
	s.mu.Lock()

	previous := s.prefs
	mutate(&s.prefs)

	if s.userID != "" {
		if err := s.data.SavePreferences(s.userID, s.prefs); err != nil {
			s.prefs = previous
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
	snapshot := s.prefs
	fns := make([]func(models.UserPreferences), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
}
