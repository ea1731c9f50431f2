// Package userdata persists per-user profiles, preferences and purchase
// lists through the key-value store, enforcing user-id namespacing on every
// operation.
//
// Read-side corruption is deliberately forgiving: stored JSON that no longer
// parses is logged and treated as absent rather than failing the caller.
// Write failures (quota) always propagate.
package userdata

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"budget-tracker/internal/models"
	"budget-tracker/internal/storage"
)

// ErrNotAuthenticated is returned when an operation requires a user
// identifier and none was provided.
var ErrNotAuthenticated = errors.New("user must be authenticated to access data")

// ErrUserDataNotFound is returned when an operation requires an existing
// profile that is absent.
var ErrUserDataNotFound = errors.New("user data not found")

const (
	resourceProfile      = "profile"
	resourcePreferences  = "preferences"
	resourceTransactions = "transactions"
	resourcePurchases    = "purchases"
	resourceFilters      = "filters"
)

// Service provides user-scoped data access over a Store.
type Service struct {
	store storage.Store
	now   func() time.Time
}

// NewService returns a Service persisting through store.
func NewService(store storage.Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetClock overrides the service's notion of "now". Intended for tests.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// GetProfile returns the stored profile for userID, or nil when absent.
// Corrupt stored JSON degrades to nil with a logged warning.
func (s *Service) GetProfile(userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	raw, ok, err := s.store.Get(storage.UserKey(userID, resourceProfile))
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		log.Printf("userdata: failed to parse stored profile for %s: %v", userID, err)
		return nil, nil
	}
	return &profile, nil
}

// SaveProfile persists profile under its own user id.
func (s *Service) SaveProfile(profile *models.UserProfile) error {
	if profile == nil || profile.UserID == "" {
		return ErrNotAuthenticated
	}

	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.store.Set(storage.UserKey(profile.UserID, resourceProfile), string(raw)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// GetPreferences returns the stored preferences for userID, or nil when
// absent or corrupt.
func (s *Service) GetPreferences(userID string) (*models.UserPreferences, error) {
	if userID == "" {
		return nil, ErrNotAuthenticated
	}

	raw, ok, err := s.store.Get(storage.UserKey(userID, resourcePreferences))
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var prefs models.UserPreferences
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		log.Printf("userdata: failed to parse stored preferences for %s: %v", userID, err)
		return nil, nil
	}
	return &prefs, nil
}

// SavePreferences persists prefs for userID.
func (s *Service) SavePreferences(userID string, prefs models.UserPreferences) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	raw, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}
	if err := s.store.Set(storage.UserKey(userID, resourcePreferences), string(raw)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// Initialize ensures a profile exists for userID. It reports true for a new
// user (profile created, onboarding incomplete) and false for a returning
// one (last-login and last-updated timestamps advanced). Callers use the
// flag to decide whether to seed starter data.
func (s *Service) Initialize(userID, email, name, picture string) (bool, error) {
	if userID == "" {
		return false, ErrNotAuthenticated
	}

	existing, err := s.GetProfile(userID)
	if err != nil {
		return false, err
	}

	now := s.now()
	if existing != nil {
		existing.LastUpdatedAt = now
		existing.Metadata.LastLoginAt = now
		if err := s.SaveProfile(existing); err != nil {
			return false, err
		}
		return false, nil
	}

	profile := &models.UserProfile{
		UserID:        userID,
		Email:         email,
		Name:          name,
		Picture:       picture,
		CreatedAt:     now,
		LastUpdatedAt: now,
		Metadata: models.ProfileMetadata{
			OnboardingCompleted: false,
			LastLoginAt:         now,
		},
	}
	if err := s.SaveProfile(profile); err != nil {
		return false, err
	}
	return true, nil
}

// HasCompletedOnboarding reports whether userID finished onboarding. An
// absent profile counts as not completed.
func (s *Service) HasCompletedOnboarding(userID string) (bool, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	return profile.Metadata.OnboardingCompleted, nil
}

// CompleteOnboarding marks onboarding done. It fails with
// ErrUserDataNotFound when no profile exists yet.
func (s *Service) CompleteOnboarding(userID string) error {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return fmt.Errorf("%w: %s", ErrUserDataNotFound, userID)
	}

	profile.LastUpdatedAt = s.now()
	profile.Metadata.OnboardingCompleted = true
	return s.SaveProfile(profile)
}

// GetPurchases returns the stored purchase list for userID. The second
// result reports whether any list was stored; a corrupt list reads as
// absent.
func (s *Service) GetPurchases(userID string) ([]models.Purchase, bool, error) {
	if userID == "" {
		return nil, false, ErrNotAuthenticated
	}

	raw, ok, err := s.store.Get(storage.UserKey(userID, resourcePurchases))
	if err != nil {
		return nil, false, fmt.Errorf("get purchases: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	var purchases []models.Purchase
	if err := json.Unmarshal([]byte(raw), &purchases); err != nil {
		log.Printf("userdata: failed to parse stored purchases for %s: %v", userID, err)
		return nil, false, nil
	}
	return purchases, true, nil
}

// SavePurchases persists the full purchase list for userID.
func (s *Service) SavePurchases(userID string, purchases []models.Purchase) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	raw, err := json.Marshal(purchases)
	if err != nil {
		return fmt.Errorf("encode purchases: %w", err)
	}
	if err := s.store.Set(storage.UserKey(userID, resourcePurchases), string(raw)); err != nil {
		return fmt.Errorf("save purchases: %w", err)
	}
	return nil
}

// GetFilterState returns the raw persisted filter selection for userID.
func (s *Service) GetFilterState(userID string) (string, bool, error) {
	if userID == "" {
		return "", false, ErrNotAuthenticated
	}
	return s.store.Get(storage.UserKey(userID, resourceFilters))
}

// SaveFilterState persists the raw filter selection for userID.
func (s *Service) SaveFilterState(userID, raw string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}
	return s.store.Set(storage.UserKey(userID, resourceFilters), raw)
}

// Clear removes the user's profile, preferences, filter state and purchase
// lists. Other users' keys are untouched. Individual delete failures are
// logged and skipped so a partial clear removes as much as it can.
func (s *Service) Clear(userID string) error {
	if userID == "" {
		return ErrNotAuthenticated
	}

	for _, resource := range []string{
		resourceProfile,
		resourcePreferences,
		resourceTransactions,
		resourcePurchases,
		resourceFilters,
	} {
		key := storage.UserKey(userID, resource)
		if err := s.store.Delete(key); err != nil {
			log.Printf("userdata: failed to remove key %s: %v", key, err)
		}
	}
	return nil
}
