// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"fivestar/internal/domain/entity"
	domainerrors "fivestar/internal/domain/errors"
	"fivestar/internal/domain/repository"
	"fivestar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// tokenRepository implements the repository.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{
		db: db,
	}
}

// SaveToken upserts a delivery token keyed by its value. A re-registration of
// the same token refreshes last_used and updated_at but keeps created_at.
func (repo *tokenRepository) SaveToken(ctx context.Context, token *entity.DeliveryToken) error {
	now := time.Now().UTC()

	tokenM := fromTokenDomain(token)
	tokenM.CreatedAt = now
	tokenM.UpdatedAt = now
	tokenM.LastUsed = now

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"user_id", "device_info", "is_dev_mode_stub", "updated_at", "last_used",
			}),
		}).
		Create(tokenM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required token information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save delivery token")
	}

	// Update the entity with the server-assigned values.
	token.CreatedAt = tokenM.CreatedAt
	token.UpdatedAt = tokenM.UpdatedAt
	token.LastUsed = tokenM.LastUsed

	return nil
}

// FindTokensByUser retrieves all delivery tokens registered for an identity.
func (repo *tokenRepository) FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeliveryToken, error) {
	var tokenModels []*model.DeliveryTokenModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("last_used DESC").
		Find(&tokenModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find tokens by user")
	}

	tokens := make([]*entity.DeliveryToken, 0, len(tokenModels))
	for _, tokenM := range tokenModels {
		tokens = append(tokens, toTokenDomain(tokenM))
	}

	return tokens, nil
}

// DeleteToken removes the record keyed by the token value.
func (repo *tokenRepository) DeleteToken(ctx context.Context, token string) error {
	result := repo.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&model.DeliveryTokenModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete token")
	}

	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// DeleteTokensByUser removes every token registered for an identity.
func (repo *tokenRepository) DeleteTokensByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.DeliveryTokenModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete tokens by user")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM DeliveryTokenModel to a domain DeliveryToken entity.
func toTokenDomain(data *model.DeliveryTokenModel) *entity.DeliveryToken {
	if data == nil {
		return nil
	}

	return &entity.DeliveryToken{
		Token:  data.Token,
		UserID: data.UserID,
		DeviceInfo: entity.DeviceInfo{
			UserAgent: data.DeviceInfo.UserAgent,
			Platform:  data.DeviceInfo.Platform,
			Language:  data.DeviceInfo.Language,
		},
		IsDevModeStub: data.IsDevModeStub,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		LastUsed:      data.LastUsed,
	}
}

// fromTokenDomain converts a domain DeliveryToken entity to a GORM DeliveryTokenModel.
func fromTokenDomain(data *entity.DeliveryToken) *model.DeliveryTokenModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryTokenModel{
		Token:  data.Token,
		UserID: data.UserID,
		DeviceInfo: model.DeviceInfo{
			UserAgent: data.DeviceInfo.UserAgent,
			Platform:  data.DeviceInfo.Platform,
			Language:  data.DeviceInfo.Language,
		},
		IsDevModeStub: data.IsDevModeStub,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		LastUsed:      data.LastUsed,
	}
}
