package dto

type AddNotificationRequest struct {
	Kind  string `json:"kind" validate:"required,oneof=info success warning error"`
	Title string `json:"title" validate:"required,max=200"`
	Body  string `json:"body" validate:"max=2000"`
}

type PreferenceRequest struct {
	Theme    string `json:"theme" validate:"omitempty,oneof=light dark"`
	Language string `json:"language" validate:"omitempty,bcp47_language_tag"`
}
