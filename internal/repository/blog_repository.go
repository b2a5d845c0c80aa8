package repository

import (
	"context"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type BlogRepository interface {
	ListPublished(ctx context.Context, limit, offset int) ([]model.BlogPost, int64, error)
	FindBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
	Create(ctx context.Context, post *model.BlogPost) error
}
