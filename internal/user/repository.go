package user

import (
	"context"

	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/user/dto"
)

type Repository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context, filters *dto.UserFilters) ([]model.User, int, error)
	Update(ctx context.Context, user *model.User) error
	Delete(ctx context.Context, id int64) error

	// CountSales reports how many sales a delete of the user would remove.
	CountSales(ctx context.Context, id int64) (int, error)

	IsEmailUnique(ctx context.Context, email string, excludeID int64) (bool, error)
}
