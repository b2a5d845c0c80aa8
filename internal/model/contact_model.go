package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage stores a contact-form submission before mail delivery.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(200);not null" json:"email"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	Delivered bool      `gorm:"default:false" json:"delivered"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_contact_messages_created" json:"created_at"`
}
