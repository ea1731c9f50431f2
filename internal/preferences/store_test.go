package preferences

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"budget-tracker/internal/models"
	"budget-tracker/internal/storage"
	"budget-tracker/internal/userdata"
)

// StoreTestSuite provides a test suite for the preferences store.
type StoreTestSuite struct {
	suite.Suite
	data  *userdata.Service
	store *Store
}

// SetupTest runs before each test.
func (suite *StoreTestSuite) SetupTest() {
	suite.data = userdata.NewService(storage.NewMemoryStore())
	suite.store = NewStore(suite.data)
}

func (suite *StoreTestSuite) TestDefaults() {
	prefs := suite.store.Current()

	assert.Equal(suite.T(), models.CurrencyCAD, prefs.DefaultCurrency)
	assert.Equal(suite.T(), "MM/DD/YYYY", prefs.DateFormat)
	assert.Equal(suite.T(), "system", prefs.Theme)
	assert.Equal(suite.T(), "en", prefs.Language)
	assert.True(suite.T(), prefs.Notifications.Email)
	assert.False(suite.T(), prefs.Notifications.Push)
	assert.True(suite.T(), prefs.Notifications.LargeTransactionAlert)
	assert.True(suite.T(), prefs.Notifications.LargeTransactionThreshold.Equal(decimal.NewFromInt(500)))
	assert.False(suite.T(), prefs.Privacy.ShareAnalytics)
	assert.True(suite.T(), prefs.Privacy.RememberFilters)
}

func (suite *StoreTestSuite) TestSetUser_PersistsDefaultsForFirstTimer() {
	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))

	saved, err := suite.data.GetPreferences("auth0|u1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), saved, "defaults must be written on first activation")
	assert.Equal(suite.T(), models.CurrencyCAD, saved.DefaultCurrency)
}

func (suite *StoreTestSuite) TestSetUser_LoadsSavedPreferences() {
	saved := DefaultPreferences()
	saved.Theme = "dark"
	saved.DefaultCurrency = models.CurrencyUSD
	require.NoError(suite.T(), suite.data.SavePreferences("auth0|u1", saved))

	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))

	prefs := suite.store.Current()
	assert.Equal(suite.T(), "dark", prefs.Theme)
	assert.Equal(suite.T(), models.CurrencyUSD, prefs.DefaultCurrency)
}

func (suite *StoreTestSuite) TestSetUser_EmptyResetsToDefaults() {
	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))
	require.NoError(suite.T(), suite.store.SetTheme("dark"))

	require.NoError(suite.T(), suite.store.SetUser(""))

	assert.Equal(suite.T(), "system", suite.store.Current().Theme)
}

func (suite *StoreTestSuite) TestSetters_PersistForActiveUser() {
	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))

	require.NoError(suite.T(), suite.store.SetDefaultCurrency(models.CurrencyUSD))
	require.NoError(suite.T(), suite.store.SetDateFormat("YYYY-MM-DD"))
	require.NoError(suite.T(), suite.store.SetLanguage("fr"))

	saved, err := suite.data.GetPreferences("auth0|u1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), saved)
	assert.Equal(suite.T(), models.CurrencyUSD, saved.DefaultCurrency)
	assert.Equal(suite.T(), "YYYY-MM-DD", saved.DateFormat)
	assert.Equal(suite.T(), "fr", saved.Language)
}

func (suite *StoreTestSuite) TestSetters_WithoutUserStayLocal() {
	require.NoError(suite.T(), suite.store.SetTheme("dark"))
	assert.Equal(suite.T(), "dark", suite.store.Current().Theme)

	saved, err := suite.data.GetPreferences("auth0|u1")
	require.NoError(suite.T(), err)
	assert.Nil(suite.T(), saved, "no persistence without an active user")
}

func (suite *StoreTestSuite) TestUpdateNotifications_PartialMerge() {
	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))

	push := true
	threshold := decimal.NewFromInt(1000)
	require.NoError(suite.T(), suite.store.UpdateNotifications(NotificationUpdate{
		Push:                      &push,
		LargeTransactionThreshold: &threshold,
	}))

	prefs := suite.store.Current()
	assert.True(suite.T(), prefs.Notifications.Push)
	assert.True(suite.T(), prefs.Notifications.LargeTransactionThreshold.Equal(threshold))
	assert.True(suite.T(), prefs.Notifications.Email, "untouched fields keep their values")
	assert.True(suite.T(), prefs.Notifications.WeeklyReport)
}

func (suite *StoreTestSuite) TestUpdatePrivacy() {
	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))

	share := true
	remember := false
	require.NoError(suite.T(), suite.store.UpdatePrivacy(PrivacyUpdate{
		ShareAnalytics:  &share,
		RememberFilters: &remember,
	}))

	prefs := suite.store.Current()
	assert.True(suite.T(), prefs.Privacy.ShareAnalytics)
	assert.False(suite.T(), prefs.Privacy.RememberFilters)
}

func (suite *StoreTestSuite) TestResetToDefaults() {
	require.NoError(suite.T(), suite.store.SetUser("auth0|u1"))
	require.NoError(suite.T(), suite.store.SetTheme("dark"))
	require.NoError(suite.T(), suite.store.SetDefaultCurrency(models.CurrencyUSD))

	require.NoError(suite.T(), suite.store.ResetToDefaults())

	prefs := suite.store.Current()
	assert.Equal(suite.T(), "system", prefs.Theme)
	assert.Equal(suite.T(), models.CurrencyCAD, prefs.DefaultCurrency)

	saved, err := suite.data.GetPreferences("auth0|u1")
	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), saved)
	assert.Equal(suite.T(), "system", saved.Theme)
}

func (suite *StoreTestSuite) TestQuotaErrorRollsBack() {
	small := userdata.NewService(storage.NewMemoryStoreWithQuota(16))
	store := NewStore(small)

	err := store.SetUser("auth0|u1")
	assert.ErrorIs(suite.T(), err, storage.ErrQuotaExceeded)

	store.userID = "auth0|u1" // activate without the initial write
	err = store.SetTheme("dark")
	assert.ErrorIs(suite.T(), err, storage.ErrQuotaExceeded)
	assert.Equal(suite.T(), "system", store.Current().Theme, "failed writes must not change state")
}

func (suite *StoreTestSuite) TestSubscribe() {
	var seen []string
	unsubscribe := suite.store.Subscribe(func(p models.UserPreferences) {
		seen = append(seen, p.Theme)
	})

	require.NoError(suite.T(), suite.store.SetTheme("dark"))
	require.NoError(suite.T(), suite.store.SetTheme("light"))

	unsubscribe()
	require.NoError(suite.T(), suite.store.SetTheme("system"))

	assert.Equal(suite.T(), []string{"dark", "light"}, seen)
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}
