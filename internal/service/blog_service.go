package service

import (
	"context"
	"errors"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/dto"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/repository"
)

var ErrPostNotFound = errors.New("post not found")

const (
	defaultBlogPageSize = 10
	maxBlogPageSize     = 50
)

type IBlogService interface {
	List(ctx context.Context, limit, offset int) (*dto.BlogListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error)
}

type blogService struct {
	repo repository.BlogRepository
}

func NewBlogService(repo repository.BlogRepository) IBlogService {
	return &blogService{repo: repo}
}

func (s *blogService) List(ctx context.Context, limit, offset int) (*dto.BlogListResponse, error) {
	if limit <= 0 {
		limit = defaultBlogPageSize
	}
	if limit > maxBlogPageSize {
		limit = maxBlogPageSize
	}
	if offset < 0 {
		offset = 0
	}

	posts, total, err := s.repo.ListPublished(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dto.BlogListResponse{
		Posts:  posts,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}

func (s *blogService) GetBySlug(ctx context.Context, slug string) (*model.BlogPost, error) {
	post, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}
