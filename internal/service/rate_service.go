package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Iultina/currency-converter-bot/internal/model"
	"github.com/Iultina/currency-converter-bot/internal/repository"
)

// RateFetcher yields the current exchange rate.
type RateFetcher interface {
	Fetch(ctx context.Context) (float64, error)
}

// RateService fetches the current rate and records the request in history.
type RateService struct {
	fetcher     RateFetcher
	historyRepo *repository.HistoryRepository
}

func NewRateService(fetcher RateFetcher, historyRepo *repository.HistoryRepository) *RateService {
	return &RateService{fetcher: fetcher, historyRepo: historyRepo}
}

// CurrentRate returns the rate for the user and appends a history row.
// Nothing is recorded when the fetch fails.
func (s *RateService) CurrentRate(ctx context.Context, user *model.User) (float64, error) {
	rate, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	if _, err := s.historyRepo.Append(ctx, user.ID, rate, time.Now()); err != nil {
		return 0, fmt.Errorf("record rate request: %w", err)
	}
	return rate, nil
}

// HistoryPage returns one page of the user's past requests.
func (s *RateService) HistoryPage(ctx context.Context, user *model.User, page, pageSize int) ([]model.History, int64, error) {
	return s.historyRepo.ListPage(ctx, user.ID, page, pageSize)
}
