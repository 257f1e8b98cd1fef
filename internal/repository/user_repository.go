package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Iultina/currency-converter-bot/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByChatID(ctx context.Context, chatID int64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("chat_id = ?", chatID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user row. A concurrent insert for the same chat is
// rejected by the unique index and surfaces as gorm.ErrDuplicatedKey.
func (r *UserRepository) Create(ctx context.Context, chatID int64) (*model.User, error) {
	user := model.User{ChatID: chatID}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return &user, nil
}

// GetOrCreate finds the user for a chat, creating the row on first contact.
// Losing a duplicate-key race means someone else just created it, so re-read.
func (r *UserRepository) GetOrCreate(ctx context.Context, chatID int64) (*model.User, error) {
	user, err := r.FindByChatID(ctx, chatID)
	switch {
	case err == nil:
		return user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = r.Create(ctx, chatID)
		if err == nil {
			return user, nil
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByChatID(ctx, chatID)
		}
		return nil, err
	default:
		return nil, fmt.Errorf("find user: %w", err)
	}
}

// SetSubscribed flips the daily-update flag. Setting the same value twice is
// a no-op.
func (r *UserRepository) SetSubscribed(ctx context.Context, user *model.User, subscribed bool) error {
	if err := r.db.WithContext(ctx).Model(user).Update("subscribed", subscribed).Error; err != nil {
		return fmt.Errorf("update subscription: %w", err)
	}
	return nil
}

func (r *UserRepository) ListSubscribed(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := r.db.WithContext(ctx).Where("subscribed = ?", true).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
