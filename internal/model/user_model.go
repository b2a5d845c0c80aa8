package model

// User is the authenticated traveller profile as returned by the upstream
// auth API. The store treats it as an opaque record apart from the merge
// semantics of profile updates.
type User struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Email       string                  `json:"email"`
	Phone       string                  `json:"phone,omitempty"`
	AvatarURL   string                  `json:"avatar_url,omitempty"`
	Preferences NotificationPreferences `json:"notification_preferences"`
}

type NotificationPreferences struct {
	EmailEnabled bool `json:"email_enabled"`
	PushEnabled  bool `json:"push_enabled"`
}

// UserPatch carries a shallow profile merge. Nil fields are left untouched.
type UserPatch struct {
	Name        *string                  `json:"name,omitempty"`
	Email       *string                  `json:"email,omitempty"`
	Phone       *string                  `json:"phone,omitempty"`
	AvatarURL   *string                  `json:"avatar_url,omitempty"`
	Preferences *NotificationPreferences `json:"notification_preferences,omitempty"`
}

// Apply merges the patch into a copy of u and returns it.
func (p UserPatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.AvatarURL != nil {
		u.AvatarURL = *p.AvatarURL
	}
	if p.Preferences != nil {
		u.Preferences = *p.Preferences
	}
	return u
}
