package dto

import (
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User          model.User `json:"user"`
	Authenticated bool       `json:"authenticated"`
}

type UpdateProfileRequest struct {
	Name        *string                        `json:"name,omitempty" validate:"omitempty,min=2"`
	Email       *string                        `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string                        `json:"phone,omitempty"`
	AvatarURL   *string                        `json:"avatar_url,omitempty" validate:"omitempty,url"`
	Preferences *model.NotificationPreferences `json:"notification_preferences,omitempty"`
}

func (r *UpdateProfileRequest) ToPatch() model.UserPatch {
	return model.UserPatch{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		AvatarURL:   r.AvatarURL,
		Preferences: r.Preferences,
	}
}
