package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/termoflexpro/termoflex-store/internal/database"
	"github.com/termoflexpro/termoflex-store/internal/logger"
	"github.com/termoflexpro/termoflex-store/internal/model"
	"github.com/termoflexpro/termoflex-store/internal/user"
	"github.com/termoflexpro/termoflex-store/internal/user/dto"
	"github.com/termoflexpro/termoflex-store/internal/validation"
	"go.uber.org/zap"
)

type userUseCase struct {
	repo   user.Repository
	logger logger.ZapLogger
}

func NewUserUseCase(repo user.Repository, log logger.ZapLogger) user.UseCase {
	return &userUseCase{
		repo:   repo,
		logger: log.With(zap.String("entity", "user")),
	}
}

func (uc *userUseCase) CreateUser(ctx context.Context, input *dto.CreateUserInput) (*model.User, error) {
	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = model.NullIfBlank(in.Phone)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.StatusActive
	}

	u := &model.User{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: model.NullIfBlank(in.Address),
		Status:  status,
	}
	if err := validate(u); err != nil {
		return nil, err
	}

	unique, err := uc.repo.IsEmailUnique(ctx, u.Email, 0)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, fmt.Errorf("email %q already registered: %w", u.Email, database.ErrDuplicateKey)
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) GetUser(ctx context.Context, id int64) (*model.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, database.ErrNotFound
	}
	return u, nil
}

func (uc *userUseCase) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	u, err := uc.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, database.ErrNotFound
	}
	return u, nil
}

func (uc *userUseCase) ListUsers(ctx context.Context, filters *dto.UserFilters) ([]model.User, int, error) {
	if filters == nil {
		filters = &dto.UserFilters{}
	}
	return uc.repo.FindAll(ctx, filters)
}

func (uc *userUseCase) UpdateUser(ctx context.Context, input *dto.UpdateUserInput) (*model.User, error) {
	u, err := uc.GetUser(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	in := *input
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = model.NullIfBlank(in.Phone)
	if err := validation.Struct(&in); err != nil {
		return nil, err
	}

	if in.Email != u.Email {
		unique, err := uc.repo.IsEmailUnique(ctx, in.Email, u.ID)
		if err != nil {
			return nil, err
		}
		if !unique {
			return nil, fmt.Errorf("email %q already registered: %w", in.Email, database.ErrDuplicateKey)
		}
	}

	u.Name = in.Name
	u.Email = in.Email
	u.Phone = in.Phone
	u.Address = model.NullIfBlank(in.Address)
	if in.Status != "" {
		u.Status = in.Status
	}
	if err := validate(u); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (uc *userUseCase) DeleteUser(ctx context.Context, id int64) error {
	sales, err := uc.repo.CountSales(ctx, id)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	if sales > 0 {
		uc.logger.Info("User deleted with their sales",
			zap.Int64("user_id", id),
			zap.Int("ventas", sales),
		)
	}
	return nil
}

func validate(u *model.User) error {
	if !u.Status.Valid() {
		return database.NewValidationError("estado", "must be active or inactive")
	}
	return nil
}
