package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type ContactRepository interface {
	Create(ctx context.Context, message *model.ContactMessage) error
	MarkDelivered(ctx context.Context, id uuid.UUID) error
}
