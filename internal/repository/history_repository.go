package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Iultina/currency-converter-bot/internal/model"
)

// HistoryRepository stores recorded rate requests.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository(db *gorm.DB) *HistoryRepository {
	return &HistoryRepository{db: db}
}

func (r *HistoryRepository) Append(ctx context.Context, userID uint, rate float64, at time.Time) (*model.History, error) {
	entry := model.History{UserID: userID, Rate: rate, Date: at}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("append history: %w", err)
	}
	return &entry, nil
}

// ListPage returns one newest-first page of a user's history together with
// the total row count. Pages are 1-indexed; a page past the end comes back
// empty rather than as an error.
func (r *HistoryRepository) ListPage(ctx context.Context, userID uint, page, pageSize int) ([]model.History, int64, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.History{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count history: %w", err)
	}

	var entries []model.History
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("list history: %w", err)
	}

	return entries, total, nil
}
