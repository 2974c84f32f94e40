package usecase

import (
	"context"

	"github.com/capdigital/capsite-api/internal/entity"
	"github.com/capdigital/capsite-api/internal/infra/database"
	"github.com/capdigital/capsite-api/internal/infra/mail"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	List(ctx context.Context, filter database.ListFilter) ([]entity.Lead, int, error)
	Update(ctx context.Context, id string, status, notes *string) (*entity.Lead, error)
	Delete(ctx context.Context, id string) error
}

type UserRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type EmailService interface {
	SendLeadNotification(data mail.LeadNotificationData) error
}

// TokenEncoder mints session tokens at login. Verification lives in the auth
// middleware, which holds the full codec.
type TokenEncoder interface {
	Encode(userID, email string) (string, error)
}
