package dto

import (
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type BlogListResponse struct {
	Posts  []model.BlogPost `json:"posts"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}
