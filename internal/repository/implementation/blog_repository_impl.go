package implementation

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository"
)

type BlogRepositoryImpl struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &BlogRepositoryImpl{db: db}
}

func (r *BlogRepositoryImpl) ListPublished(ctx context.Context, limit, offset int) ([]model.BlogPost, int64, error) {
	var posts []model.BlogPost
	var total int64

	db := r.db.WithContext(ctx).Model(&model.BlogPost{}).Where("published = ?", true)

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := db.Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error

	return posts, total, err
}

func (r *BlogRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND published = ?", slug, true).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepositoryImpl) Create(ctx context.Context, post *model.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}
