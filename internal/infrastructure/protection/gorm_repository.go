package protection

import (
	"context"
	"fmt"

	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/domain/protection"
	"github.com/alirizaadiyahsi/DNTFrameworkCore/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormRepository creates a new GORM-based protection key repository
func NewGormRepository(db *gorm.DB, logger logger.Logger) (protection.Repository, error) {
	return &gormRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormRepository) GetAllElements(ctx context.Context) ([]protection.ProtectionKey, error) {
	var keys []protection.ProtectionKey
	if err := r.db.WithContext(ctx).Order("id").Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch protection keys: %w", err)
	}
	return keys, nil
}

func (r *gormRepository) StoreElement(ctx context.Context, key *protection.ProtectionKey) error {
	if key.FriendlyName == "" {
		return fmt.Errorf("validation error: friendly name is required")
	}
	if len(key.Data) == 0 {
		return fmt.Errorf("validation error: key data is required")
	}

	if err := r.db.WithContext(ctx).Create(key).Error; err != nil {
		return fmt.Errorf("failed to store protection key: %w", err)
	}

	r.logger.Info("Stored protection key ", key.FriendlyName)
	return nil
}
