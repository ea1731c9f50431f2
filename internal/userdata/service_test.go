package userdata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"budget-tracker/internal/models"
	"budget-tracker/internal/storage"
)

// ServiceTestSuite provides a test suite for user data operations.
type ServiceTestSuite struct {
	suite.Suite
	store   *storage.MemoryStore
	service *Service
	clock   time.Time
}

// SetupTest runs before each test.
func (suite *ServiceTestSuite) SetupTest() {
	suite.store = storage.NewMemoryStore()
	suite.service = NewService(suite.store)
	suite.clock = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	suite.service.SetClock(func() time.Time { return suite.clock })
}

func (suite *ServiceTestSuite) advance(d time.Duration) {
	suite.clock = suite.clock.Add(d)
}

func (suite *ServiceTestSuite) TestGetProfile_Absent() {
	profile, err := suite.service.GetProfile("auth0|u1")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), profile)
}

func (suite *ServiceTestSuite) TestGetProfile_RequiresUser() {
	_, err := suite.service.GetProfile("")
	assert.ErrorIs(suite.T(), err, ErrNotAuthenticated)
}

func (suite *ServiceTestSuite) TestGetProfile_CorruptDegradesToAbsent() {
	require.NoError(suite.T(), suite.store.Set("auth0|u1:profile", "{not json"))

	profile, err := suite.service.GetProfile("auth0|u1")
	require.NoError(suite.T(), err, "corrupt data must not be an error to the caller")
	assert.Nil(suite.T(), profile)
}

func (suite *ServiceTestSuite) TestSaveProfile_RequiresUserID() {
	err := suite.service.SaveProfile(&models.UserProfile{Email: "a@b.c"})
	assert.ErrorIs(suite.T(), err, ErrNotAuthenticated)
}

func (suite *ServiceTestSuite) TestInitialize_NewThenReturning() {
	isNew, err := suite.service.Initialize("auth0|u1", "u1@example.com", "User One", "")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), isNew, "first initialize should report a new user")

	profile, err := suite.service.GetProfile("auth0|u1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), profile)
	assert.Equal(suite.T(), "u1@example.com", profile.Email)
	assert.False(suite.T(), profile.Metadata.OnboardingCompleted)
	firstLogin := profile.Metadata.LastLoginAt

	suite.advance(2 * time.Hour)

	isNew, err = suite.service.Initialize("auth0|u1", "u1@example.com", "User One", "")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), isNew, "second initialize should report a returning user")

	profile, err = suite.service.GetProfile("auth0|u1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), profile)
	assert.False(suite.T(), profile.Metadata.OnboardingCompleted, "onboarding flag must survive re-login")
	assert.True(suite.T(), profile.Metadata.LastLoginAt.After(firstLogin), "last login must advance")
	assert.True(suite.T(), profile.LastUpdatedAt.After(profile.CreatedAt))
}

func (suite *ServiceTestSuite) TestOnboarding() {
	done, err := suite.service.HasCompletedOnboarding("auth0|u1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), done, "absent profile counts as not onboarded")

	err = suite.service.CompleteOnboarding("auth0|u1")
	assert.ErrorIs(suite.T(), err, ErrUserDataNotFound)

	_, err = suite.service.Initialize("auth0|u1", "u1@example.com", "", "")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.service.CompleteOnboarding("auth0|u1"))

	done, err = suite.service.HasCompletedOnboarding("auth0|u1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), done)
}

func (suite *ServiceTestSuite) TestPreferencesRoundTrip() {
	prefs, err := suite.service.GetPreferences("auth0|u1")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), prefs)

	saved := models.UserPreferences{
		DefaultCurrency: models.CurrencyUSD,
		DateFormat:      "YYYY-MM-DD",
		Theme:           "dark",
		Language:        "fr",
	}
	require.NoError(suite.T(), suite.service.SavePreferences("auth0|u1", saved))

	prefs, err = suite.service.GetPreferences("auth0|u1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), prefs)
	assert.Equal(suite.T(), saved.DefaultCurrency, prefs.DefaultCurrency)
	assert.Equal(suite.T(), "dark", prefs.Theme)
}

func (suite *ServiceTestSuite) TestPurchasesRoundTrip() {
	_, found, err := suite.service.GetPurchases("auth0|u1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)

	list := []models.Purchase{{ID: "p1", UserID: "auth0|u1", Description: "Coffee"}}
	require.NoError(suite.T(), suite.service.SavePurchases("auth0|u1", list))

	got, found, err := suite.service.GetPurchases("auth0|u1")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	require.Len(suite.T(), got, 1)
	assert.Equal(suite.T(), "p1", got[0].ID)
}

func (suite *ServiceTestSuite) TestPurchases_CorruptDegradesToAbsent() {
	require.NoError(suite.T(), suite.store.Set("auth0|u1:purchases", "[{broken"))

	_, found, err := suite.service.GetPurchases("auth0|u1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)
}

func (suite *ServiceTestSuite) TestQuotaErrorPropagates() {
	small := storage.NewMemoryStoreWithQuota(16)
	service := NewService(small)

	err := service.SavePurchases("auth0|u1", []models.Purchase{
		{ID: "p1", Description: "a purchase large enough to blow the quota"},
	})
	require.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, storage.ErrQuotaExceeded)
}

func (suite *ServiceTestSuite) TestClear_RemovesOnlyThatUser() {
	_, err := suite.service.Initialize("auth0|u1", "u1@example.com", "", "")
	require.NoError(suite.T(), err)
	_, err = suite.service.Initialize("auth0|u2", "u2@example.com", "", "")
	require.NoError(suite.T(), err)

	require.NoError(suite.T(), suite.service.SavePurchases("auth0|u1", []models.Purchase{{ID: "p1"}}))
	require.NoError(suite.T(), suite.service.SavePurchases("auth0|u2", []models.Purchase{{ID: "p2"}}))

	require.NoError(suite.T(), suite.service.Clear("auth0|u1"))

	profile, err := suite.service.GetProfile("auth0|u1")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), profile)
	_, found, err := suite.service.GetPurchases("auth0|u1")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), found)

	// The other user's data is intact.
	profile, err = suite.service.GetProfile("auth0|u2")
	require.NoError(suite.T(), err)
	assert.NotNil(suite.T(), profile)
	got, found, err := suite.service.GetPurchases("auth0|u2")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), found)
	assert.Len(suite.T(), got, 1)
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}
