package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/accounts"

	"gorm.io/gorm"
)

type gormUserRepository struct {
	uow *UnitOfWork
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(uow *UnitOfWork) accounts.UserRepository {
	return &gormUserRepository{uow: uow}
}

// Create stages the user and saves it through the unit of work.
func (r *gormUserRepository) Create(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	r.uow.Add(user)
	if _, err := r.uow.SaveChanges(ctx); err != nil {
		r.uow.RejectChanges()
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id int64) (*accounts.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormUserRepository) GetByUserName(ctx context.Context, userName string) (*accounts.User, error) {
	return r.first(ctx, "user_name = ?", userName)
}

func (r *gormUserRepository) first(ctx context.Context, query string, arg any) (*accounts.User, error) {
	var user accounts.User
	if err := r.uow.DB(ctx).Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %v: %w", arg, accounts.ErrUserNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

type gormUserTokenRepository struct {
	uow *UnitOfWork
}

// NewGormUserTokenRepository creates a new GORM-based UserTokenRepository implementation
func NewGormUserTokenRepository(uow *UnitOfWork) accounts.UserTokenRepository {
	return &gormUserTokenRepository{uow: uow}
}

func (r *gormUserTokenRepository) Add(ctx context.Context, token *accounts.UserToken) error {
	r.uow.Add(token)
	if _, err := r.uow.SaveChanges(ctx); err != nil {
		r.uow.RejectChanges()
		return fmt.Errorf("failed to store user token: %w", err)
	}
	return nil
}

func (r *gormUserTokenRepository) Exists(ctx context.Context, userID int64, tokenHash string, now time.Time) (bool, error) {
	var count int64
	err := r.uow.DB(ctx).Model(&accounts.UserToken{}).
		Where("user_id = ? AND token_hash = ? AND token_expiration_date_time > ?", userID, tokenHash, now).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user token: %w", err)
	}
	return count > 0, nil
}

func (r *gormUserTokenRepository) DeleteByHash(ctx context.Context, userID int64, tokenHash string) error {
	err := r.uow.DB(ctx).
		Where("user_id = ? AND token_hash = ?", userID, tokenHash).
		Delete(&accounts.UserToken{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete user token: %w", err)
	}
	return nil
}

func (r *gormUserTokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.uow.DB(ctx).Where("token_expiration_date_time <= ?", now).Delete(&accounts.UserToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired user tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}
