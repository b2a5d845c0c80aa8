package state

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakePrefs struct {
	token    string
	hasToken bool
	theme    string
	language string
}

func (f *fakePrefs) SetToken(sessionID, token string) error {
	f.token = token
	f.hasToken = true
	return nil
}

func (f *fakePrefs) DeleteToken(sessionID string) error {
	f.token = ""
	f.hasToken = false
	return nil
}

func (f *fakePrefs) SetTheme(sessionID, theme string) error {
	f.theme = theme
	return nil
}

func (f *fakePrefs) SetLanguage(sessionID, language string) error {
	f.language = language
	return nil
}

func newTestAppStore() (*AppStore, *fakePrefs) {
	prefs := &fakePrefs{}
	return NewAppStore("sess-1", prefs, nopLogger{}), prefs
}

func TestLoginThenLogout(t *testing.T) {
	store, prefs := newTestAppStore()

	store.Login(model.User{ID: "1", Name: "A", Email: "a@x.com"}, "tok123")

	assert.True(t, store.IsAuthenticated())
	assert.Equal(t, "tok123", store.Token())
	assert.Equal(t, "tok123", prefs.token)

	store.Logout()

	snap := store.Snapshot()
	assert.False(t, snap.IsAuthenticated)
	assert.Nil(t, snap.User)
	assert.Empty(t, snap.Token)
	assert.Empty(t, snap.Cart)
	assert.Zero(t, snap.CartTotal)
	assert.False(t, prefs.hasToken)
}

func TestLoginClearsError(t *testing.T) {
	store, _ := newTestAppStore()
	store.SetError("bad credentials")

	store.Login(model.User{ID: "1"}, "tok")

	assert.Empty(t, store.Snapshot().Error)
}

func TestUpdateUserWithoutSession(t *testing.T) {
	store, _ := newTestAppStore()

	name := "B"
	err := store.UpdateUser(model.UserPatch{Name: &name})

	assert.ErrorIs(t, err, ErrNoActiveSession)
	assert.Nil(t, store.User())
}

func TestUpdateUserMergesFields(t *testing.T) {
	store, _ := newTestAppStore()
	store.Login(model.User{ID: "1", Name: "A", Email: "a@x.com"}, "tok")

	name := "B"
	phone := "+233201234567"
	require.NoError(t, store.UpdateUser(model.UserPatch{Name: &name, Phone: &phone}))

	user := store.User()
	require.NotNil(t, user)
	assert.Equal(t, "B", user.Name)
	assert.Equal(t, "+233201234567", user.Phone)
	assert.Equal(t, "a@x.com", user.Email) // untouched
}

func TestCartMergeByID(t *testing.T) {
	store, _ := newTestAppStore()

	store.AddToCart(model.CartItem{ID: "5", Price: 10, Quantity: 1})
	store.AddToCart(model.CartItem{ID: "5", Price: 10, Quantity: 2})

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, 30.0, store.CartValue())
}

func TestCartDistinctIDs(t *testing.T) {
	store, _ := newTestAppStore()

	store.AddToCart(model.CartItem{ID: "a", Price: 100, Quantity: 1})
	store.AddToCart(model.CartItem{ID: "b", Price: 50, Quantity: 2})

	assert.Len(t, store.Cart(), 2)
	assert.Equal(t, 200.0, store.CartValue())
}

func TestCartTotalInvariant(t *testing.T) {
	store, _ := newTestAppStore()

	check := func() {
		assert.Equal(t, CartTotal(store.Cart()), store.CartValue())
	}

	store.AddToCart(model.CartItem{ID: "a", Price: 12.5, Quantity: 2})
	check()
	store.AddToCart(model.CartItem{ID: "b", Price: 99.99, Quantity: 1})
	check()
	qty := 4
	store.UpdateCartItem("a", model.CartItemPatch{Quantity: &qty})
	check()
	store.RemoveFromCart("b")
	check()
	store.RemoveFromCart("missing") // no-op
	check()
	store.ClearCart()
	check()
	assert.Zero(t, store.CartValue())
}

func TestAddToCartDefaultsQuantity(t *testing.T) {
	store, _ := newTestAppStore()

	store.AddToCart(model.CartItem{ID: "a", Price: 10})

	cart := store.Cart()
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 10.0, store.CartValue())
}

func TestUpdateCartItemAbsentIsNoop(t *testing.T) {
	store, _ := newTestAppStore()
	store.AddToCart(model.CartItem{ID: "a", Price: 10, Quantity: 1})

	price := 999.0
	store.UpdateCartItem("missing", model.CartItemPatch{Price: &price})

	assert.Equal(t, 10.0, store.CartValue())
}

func TestNotificationDismissalIdempotent(t *testing.T) {
	store, _ := newTestAppStore()

	first := store.AddNotification(model.NotificationInfo, "Booked", "Your flight is booked")
	second := store.AddNotification(model.NotificationError, "Failed", "Payment declined")
	third := store.AddNotification(model.NotificationInfo, "Reminder", "Check in opens soon")

	// Removing an unknown id mutates nothing.
	store.RemoveNotification(uuid.New())
	assert.Len(t, store.Notifications(), 3)

	// Removing an existing id removes exactly that entry, preserving order.
	store.RemoveNotification(second.ID)
	remaining := store.Notifications()
	require.Len(t, remaining, 2)
	assert.Equal(t, first.ID, remaining[0].ID)
	assert.Equal(t, third.ID, remaining[1].ID)

	// Double removal is a no-op.
	store.RemoveNotification(second.ID)
	assert.Len(t, store.Notifications(), 2)
}

func TestNotificationIDsUnique(t *testing.T) {
	store, _ := newTestAppStore()

	seen := make(map[uuid.UUID]bool)
	for i := 0; i < 50; i++ {
		n := store.AddNotification(model.NotificationInfo, "t", "b")
		assert.False(t, seen[n.ID])
		seen[n.ID] = true
	}
}

func TestThemeAndLanguagePersist(t *testing.T) {
	store, prefs := newTestAppStore()

	store.SetTheme("dark")
	store.SetLanguage("fr")

	snap := store.Snapshot()
	assert.Equal(t, "dark", snap.Theme)
	assert.Equal(t, "fr", snap.Language)
	assert.Equal(t, "dark", prefs.theme)
	assert.Equal(t, "fr", prefs.language)
}

func TestHydrateDoesNotAuthenticate(t *testing.T) {
	store, _ := newTestAppStore()

	store.Hydrate("tok-restored", "dark", "es")

	assert.False(t, store.IsAuthenticated())
	assert.Equal(t, "tok-restored", store.Token())
	assert.Equal(t, "dark", store.Snapshot().Theme)
}
