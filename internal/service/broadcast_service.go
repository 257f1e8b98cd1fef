package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Iultina/currency-converter-bot/internal/repository"
)

// Sender delivers one text message to a chat.
type Sender interface {
	SendText(chatID int64, text string) error
}

// BroadcastService pushes the daily rate to every subscribed user.
type BroadcastService struct {
	userRepo *repository.UserRepository
	fetcher  RateFetcher
	sender   Sender
	currency string
}

func NewBroadcastService(userRepo *repository.UserRepository, fetcher RateFetcher, sender Sender, currency string) *BroadcastService {
	return &BroadcastService{
		userRepo: userRepo,
		fetcher:  fetcher,
		sender:   sender,
		currency: currency,
	}
}

// Run executes one broadcast cycle: a single fetch, then a fan-out to all
// subscribers. A failed send skips that recipient only; a failed fetch skips
// the whole cycle until the next day. Broadcasts never write history rows.
func (s *BroadcastService) Run(ctx context.Context) error {
	users, err := s.userRepo.ListSubscribed(ctx)
	if err != nil {
		return fmt.Errorf("list subscribers: %w", err)
	}
	if len(users) == 0 {
		log.Println("[info] broadcast skipped: no subscribers")
		return nil
	}

	rate, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch rate: %w", err)
	}

	text := fmt.Sprintf("Ежедневное обновление: текущий курс доллара - %s %s",
		strconv.FormatFloat(rate, 'f', -1, 64), strings.ToUpper(s.currency))

	delivered := 0
	for _, user := range users {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.sender.SendText(user.ChatID, text); err != nil {
			log.Printf("broadcast to %d: %v", user.ChatID, err)
			continue
		}
		delivered++
	}

	log.Printf("[info] broadcast delivered to %d of %d subscribers", delivered, len(users))
	return nil
}
