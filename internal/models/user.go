package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProfileMetadata tracks per-user lifecycle flags.
type ProfileMetadata struct {
	OnboardingCompleted bool      `json:"onboardingCompleted"`
	LastLoginAt         time.Time `json:"lastLoginAt"`
}

// UserProfile is the stored record for an authenticated user. It is created
// on first login and updated on every subsequent one.
type UserProfile struct {
	UserID        string          `json:"userId"`
	Email         string          `json:"email"`
	Name          string          `json:"name,omitempty"`
	Picture       string          `json:"picture,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	Metadata      ProfileMetadata `json:"metadata"`
}

// NotificationPrefs holds notification toggles and the large-transaction
// alert threshold.
type NotificationPrefs struct {
	Email                     bool            `json:"email"`
	Push                      bool            `json:"push"`
	WeeklyReport              bool            `json:"weeklyReport"`
	MonthlyReport             bool            `json:"monthlyReport"`
	LargeTransactionAlert     bool            `json:"largeTransactionAlert"`
	LargeTransactionThreshold decimal.Decimal `json:"largeTransactionThreshold"`
}

// PrivacyPrefs holds privacy toggles.
type PrivacyPrefs struct {
	ShareAnalytics  bool `json:"shareAnalytics"`
	RememberFilters bool `json:"rememberFilters"`
}

// UserPreferences are per-user settings, scoped 1:1 to a user identifier.
type UserPreferences struct {
	DefaultCurrency Currency          `json:"defaultCurrency"`
	DateFormat      string            `json:"dateFormat"`
	Theme           string            `json:"theme"`
	Language        string            `json:"language"`
	Notifications   NotificationPrefs `json:"notifications"`
	Privacy         PrivacyPrefs      `json:"privacy"`
}
