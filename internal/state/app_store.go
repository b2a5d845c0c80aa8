package state

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/logger"
)

// ErrNoActiveSession is returned when a profile merge is dispatched without a
// logged-in user. The store is left untouched.
var ErrNoActiveSession = errors.New("no active session")

// PreferenceWriter mirrors the three durable fields (token, theme, language)
// to storage. Write failures never fail the action, they are logged and the
// in-memory state still moves.
type PreferenceWriter interface {
	SetToken(sessionID, token string) error
	DeleteToken(sessionID string) error
	SetTheme(sessionID, theme string) error
	SetLanguage(sessionID, language string) error
}

// AppStore is the single source of truth for one visitor's session, cart and
// cross-cutting UI flags. Mutations happen only through dispatched actions;
// each action runs atomically under the store mutex.
type AppStore struct {
	mu        sync.Mutex
	sessionID string

	user  *model.User
	token string

	cart      []model.CartItem
	cartTotal float64

	loading bool
	errMsg  string

	theme    string
	language string

	notifications []model.Notification

	prefs PreferenceWriter
	log   logger.ILogger
}

func NewAppStore(sessionID string, prefs PreferenceWriter, log logger.ILogger) *AppStore {
	return &AppStore{
		sessionID: sessionID,
		theme:     "light",
		language:  "en",
		prefs:     prefs,
		log:       log,
	}
}

// Dispatch runs one action through the reducer.
func (s *AppStore) Dispatch(action AppAction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reduce(action)
}

func (s *AppStore) reduce(action AppAction) error {
	switch a := action.(type) {
	case LoginAction:
		user := a.User
		s.user = &user
		s.token = a.Token
		s.errMsg = ""
		s.persistToken(a.Token)
		s.log.Info("AppStore", "Session opened", map[string]interface{}{"session_id": s.sessionID, "user_id": user.ID})

	case LogoutAction:
		s.user = nil
		s.token = ""
		s.cart = nil
		s.cartTotal = 0
		if s.prefs != nil {
			if err := s.prefs.DeleteToken(s.sessionID); err != nil {
				s.log.Warn("AppStore", "Failed to remove persisted token", map[string]interface{}{"error": err.Error()})
			}
		}
		s.log.Info("AppStore", "Session closed", map[string]interface{}{"session_id": s.sessionID})

	case UpdateUserAction:
		if s.user == nil || s.token == "" {
			s.log.Warn("AppStore", "Profile merge without active session ignored", map[string]interface{}{"session_id": s.sessionID})
			return ErrNoActiveSession
		}
		merged := a.Patch.Apply(*s.user)
		s.user = &merged

	case AddToCartAction:
		item := a.Item
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		merged := false
		for i := range s.cart {
			if s.cart[i].ID == item.ID {
				s.cart[i].Quantity += item.Quantity
				merged = true
				break
			}
		}
		if !merged {
			s.cart = append(s.cart, item)
		}
		s.cartTotal = CartTotal(s.cart)

	case RemoveFromCartAction:
		for i := range s.cart {
			if s.cart[i].ID == a.ID {
				s.cart = append(s.cart[:i], s.cart[i+1:]...)
				break
			}
		}
		s.cartTotal = CartTotal(s.cart)

	case UpdateCartItemAction:
		for i := range s.cart {
			if s.cart[i].ID == a.ID {
				updated := a.Patch.Apply(s.cart[i])
				if updated.Quantity < 1 {
					updated.Quantity = 1
				}
				s.cart[i] = updated
				break
			}
		}
		s.cartTotal = CartTotal(s.cart)

	case ClearCartAction:
		s.cart = nil
		s.cartTotal = 0

	case SetAppLoadingAction:
		s.loading = a.Loading

	case SetAppErrorAction:
		s.errMsg = a.Message

	case ClearAppErrorAction:
		s.errMsg = ""

	case SetThemeAction:
		s.theme = a.Theme
		if s.prefs != nil {
			if err := s.prefs.SetTheme(s.sessionID, a.Theme); err != nil {
				s.log.Warn("AppStore", "Failed to persist theme", map[string]interface{}{"error": err.Error()})
			}
		}

	case SetLanguageAction:
		s.language = a.Language
		if s.prefs != nil {
			if err := s.prefs.SetLanguage(s.sessionID, a.Language); err != nil {
				s.log.Warn("AppStore", "Failed to persist language", map[string]interface{}{"error": err.Error()})
			}
		}

	case AddNotificationAction:
		s.notifications = append(s.notifications, a.Notification)

	case RemoveNotificationAction:
		for i := range s.notifications {
			if s.notifications[i].ID == a.ID {
				s.notifications = append(s.notifications[:i], s.notifications[i+1:]...)
				break
			}
		}
	}

	return nil
}

func (s *AppStore) persistToken(token string) {
	if s.prefs == nil {
		return
	}
	if err := s.prefs.SetToken(s.sessionID, token); err != nil {
		s.log.Warn("AppStore", "Failed to persist token", map[string]interface{}{"error": err.Error()})
	}
}

// CartTotal is the derived cart value, recomputed as a pure function of the
// full collection after every cart mutation.
func CartTotal(items []model.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// --- Convenience dispatchers ---

func (s *AppStore) Login(user model.User, token string) {
	_ = s.Dispatch(LoginAction{User: user, Token: token})
}

func (s *AppStore) Logout() {
	_ = s.Dispatch(LogoutAction{})
}

func (s *AppStore) UpdateUser(patch model.UserPatch) error {
	return s.Dispatch(UpdateUserAction{Patch: patch})
}

func (s *AppStore) AddToCart(item model.CartItem) {
	_ = s.Dispatch(AddToCartAction{Item: item})
}

func (s *AppStore) RemoveFromCart(id string) {
	_ = s.Dispatch(RemoveFromCartAction{ID: id})
}

func (s *AppStore) UpdateCartItem(id string, patch model.CartItemPatch) {
	_ = s.Dispatch(UpdateCartItemAction{ID: id, Patch: patch})
}

func (s *AppStore) ClearCart() {
	_ = s.Dispatch(ClearCartAction{})
}

func (s *AppStore) SetLoading(loading bool) {
	_ = s.Dispatch(SetAppLoadingAction{Loading: loading})
}

func (s *AppStore) SetError(message string) {
	_ = s.Dispatch(SetAppErrorAction{Message: message})
}

func (s *AppStore) ClearError() {
	_ = s.Dispatch(ClearAppErrorAction{})
}

func (s *AppStore) SetTheme(theme string) {
	_ = s.Dispatch(SetThemeAction{Theme: theme})
}

func (s *AppStore) SetLanguage(language string) {
	_ = s.Dispatch(SetLanguageAction{Language: language})
}

// AddNotification assigns the id at insertion time and returns it so the
// caller can dismiss the entry later.
func (s *AppStore) AddNotification(kind, title, body string) model.Notification {
	n := model.Notification{
		ID:        uuid.New(),
		Kind:      kind,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	_ = s.Dispatch(AddNotificationAction{Notification: n})
	return n
}

func (s *AppStore) RemoveNotification(id uuid.UUID) {
	_ = s.Dispatch(RemoveNotificationAction{ID: id})
}

// Hydrate restores the durable fields for a resumed visitor session. The
// restored token alone does not authenticate: IsAuthenticated stays false
// until the upstream profile is re-fetched and Login dispatched.
func (s *AppStore) Hydrate(token, theme, language string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != "" {
		s.token = token
	}
	if theme != "" {
		s.theme = theme
	}
	if language != "" {
		s.language = language
	}
}

// --- Reads ---

// AppSnapshot is a consistent point-in-time copy of the store for rendering.
type AppSnapshot struct {
	IsAuthenticated bool                 `json:"is_authenticated"`
	User            *model.User          `json:"user"`
	Token           string               `json:"token,omitempty"`
	Cart            []model.CartItem     `json:"cart"`
	CartTotal       float64              `json:"cart_total"`
	Loading         bool                 `json:"loading"`
	Error           string               `json:"error,omitempty"`
	Theme           string               `json:"theme"`
	Language        string               `json:"language"`
	Notifications   []model.Notification `json:"notifications"`
}

func (s *AppStore) Snapshot() AppSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := AppSnapshot{
		IsAuthenticated: s.user != nil && s.token != "",
		Token:           s.token,
		Cart:            append([]model.CartItem(nil), s.cart...),
		CartTotal:       s.cartTotal,
		Loading:         s.loading,
		Error:           s.errMsg,
		Theme:           s.theme,
		Language:        s.language,
		Notifications:   append([]model.Notification(nil), s.notifications...),
	}
	if s.user != nil {
		user := *s.user
		snap.User = &user
	}
	return snap
}

// IsAuthenticated holds iff both user and token are present.
func (s *AppStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.token != ""
}

func (s *AppStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *AppStore) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

func (s *AppStore) Cart() []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.CartItem(nil), s.cart...)
}

func (s *AppStore) CartValue() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartTotal
}

func (s *AppStore) Notifications() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Notification(nil), s.notifications...)
}
