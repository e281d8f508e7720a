// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"fivestar/internal/domain/entity"
	"fivestar/internal/domain/repository"
	"fivestar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// broadcastRepository implements the repository.BroadcastRepository interface.
type broadcastRepository struct {
	db *gorm.DB
}

// NewBroadcastRepository is the constructor for broadcastRepository.
func NewBroadcastRepository(db *gorm.DB) repository.BroadcastRepository {
	return &broadcastRepository{
		db: db,
	}
}

// FindActiveBroadcasts retrieves up to limit active broadcasts, newest first.
func (repo *broadcastRepository) FindActiveBroadcasts(ctx context.Context, limit int) ([]*entity.BroadcastNotification, error) {
	var broadcastModels []*model.BroadcastNotificationModel

	query := repo.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&broadcastModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active broadcasts")
	}

	broadcasts := make([]*entity.BroadcastNotification, 0, len(broadcastModels))
	for _, broadcastM := range broadcastModels {
		broadcasts = append(broadcasts, toBroadcastDomain(broadcastM))
	}

	return broadcasts, nil
}

// toBroadcastDomain converts a GORM BroadcastNotificationModel to a domain BroadcastNotification entity.
func toBroadcastDomain(data *model.BroadcastNotificationModel) *entity.BroadcastNotification {
	if data == nil {
		return nil
	}

	return &entity.BroadcastNotification{
		ID:        data.ID,
		Title:     data.Title,
		Body:      data.Body,
		Type:      data.Type,
		Priority:  data.Priority,
		Active:    data.Active,
		CreatedAt: data.CreatedAt,
	}
}
