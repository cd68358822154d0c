package register

import (
	"context"

	"github.com/magabrotheeeer/storefront-backend/internal/models"
)

type Service interface {
	Register(ctx context.Context, email, password, name string) (*models.User, string, error)
}
