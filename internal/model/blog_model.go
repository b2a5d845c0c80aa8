package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BlogPost backs the travel blog pages.
type BlogPost struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Slug        string         `gorm:"type:varchar(200);unique;not null;index:idx_blog_posts_slug" json:"slug"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Excerpt     string         `gorm:"type:text" json:"excerpt"`
	Body        string         `gorm:"type:text;not null" json:"body"`
	CoverImage  string         `gorm:"type:varchar(500)" json:"cover_image,omitempty"`
	Author      string         `gorm:"type:varchar(100);not null" json:"author"`
	Tags        datatypes.JSON `gorm:"type:jsonb" json:"tags,omitempty"`
	Published   bool           `gorm:"default:false;index:idx_blog_posts_published" json:"published"`
	PublishedAt *time.Time     `json:"published_at,omitempty"`
	CreatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}
