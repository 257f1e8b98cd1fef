package bot

import (
	"context"
	"errors"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"gorm.io/gorm"

	"github.com/Iultina/currency-converter-bot/internal/config"
	"github.com/Iultina/currency-converter-bot/internal/pagination"
	"github.com/Iultina/currency-converter-bot/internal/repository"
	"github.com/Iultina/currency-converter-bot/internal/service"
)

// Bot wires the Telegram API to the rate and storage services.
type Bot struct {
	api      *tgbotapi.BotAPI
	userRepo *repository.UserRepository
	rateSvc  *service.RateService
	config   *config.Config
}

func New(token string, userRepo *repository.UserRepository, rateSvc *service.RateService, cfg *config.Config) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create bot api: %w", err)
	}

	log.Printf("[info] bot authorized on account %s", api.Self.UserName)

	return &Bot{
		api:      api,
		userRepo: userRepo,
		rateSvc:  rateSvc,
		config:   cfg,
	}, nil
}

// Start begins polling updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) error {
	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	log.Println("[info] start polling updates")

	go func() {
		<-ctx.Done()
		b.api.StopReceivingUpdates()
	}()

	for update := range updates {
		switch {
		case update.CallbackQuery != nil:
			if err := b.handleCallback(ctx, update.CallbackQuery); err != nil {
				log.Printf("handle callback: %v", err)
			}
		case update.Message != nil:
			if update.Message.Chat == nil || !update.Message.Chat.IsPrivate() {
				continue
			}
			if err := b.handleMessage(ctx, update.Message); err != nil {
				log.Printf("handle message: %v", err)
			}
		}
	}

	return nil
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) error {
	if msg.IsCommand() {
		log.Printf("[info] command from %d: /%s", msg.Chat.ID, msg.Command())
		return b.handleCommand(ctx, msg)
	}
	return b.sendText(msg.Chat.ID, "Я понимаю только команды и кнопки. Начните с /start.")
}

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) error {
	switch msg.Command() {
	case "start":
		return b.handleStart(ctx, msg)
	case "help":
		return b.handleHelp(ctx, msg)
	default:
		return b.sendText(msg.Chat.ID, "Команда не поддерживается. Загляните в /help.")
	}
}

func (b *Bot) handleStart(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.userRepo.GetOrCreate(ctx, msg.Chat.ID)
	if err != nil {
		return b.replyError(msg.Chat.ID, "start", err)
	}
	return b.sendMenu(msg.Chat.ID, "Выберите действие:", user.Subscribed)
}

func (b *Bot) handleHelp(ctx context.Context, msg *tgbotapi.Message) error {
	user, err := b.userRepo.GetOrCreate(ctx, msg.Chat.ID)
	if err != nil {
		return b.replyError(msg.Chat.ID, "help", err)
	}
	text := "Я показываю курс доллара.\n" +
		"• «Текущий курс» - получить курс, запрос попадёт в историю\n" +
		"• «История запросов» - ваши прошлые запросы постранично\n" +
		"• Подписка - ежедневная рассылка курса"
	return b.sendMenu(msg.Chat.ID, text, user.Subscribed)
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) error {
	if cb == nil || cb.Message == nil {
		return nil
	}
	if _, err := b.api.Request(tgbotapi.NewCallback(cb.ID, "")); err != nil {
		log.Printf("callback ack: %v", err)
	}

	chatID := cb.Message.Chat.ID
	act, page := parseAction(cb.Data)

	switch act {
	case actionCurrentRate:
		return b.handleCurrentRate(ctx, chatID)
	case actionHistory:
		return b.handleHistory(ctx, chatID, page)
	case actionBackToMain:
		return b.handleBackToMain(ctx, chatID)
	case actionSubscribe:
		return b.handleSubscription(ctx, chatID, true)
	case actionUnsubscribe:
		return b.handleSubscription(ctx, chatID, false)
	default:
		// Stale or foreign callback data is deliberately ignored.
		return nil
	}
}

func (b *Bot) handleCurrentRate(ctx context.Context, chatID int64) error {
	user, err := b.userRepo.GetOrCreate(ctx, chatID)
	if err != nil {
		return b.replyError(chatID, "current rate", err)
	}

	rate, err := b.rateSvc.CurrentRate(ctx, user)
	if err != nil {
		log.Printf("current rate for chat %d: %v", chatID, err)
		return b.sendMenu(chatID, "Не удалось получить курс. Попробуйте позже.", user.Subscribed)
	}

	log.Printf("[info] rate %s sent to chat %d", formatRate(rate), chatID)
	text := fmt.Sprintf("Текущий курс доллара: %s %s", formatRate(rate), b.currencyLabel())
	return b.sendMenu(chatID, text, user.Subscribed)
}

func (b *Bot) handleHistory(ctx context.Context, chatID int64, page int) error {
	user, err := b.userRepo.FindByChatID(ctx, chatID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return b.sendMenu(chatID, "История пуста.", false)
		}
		return b.replyError(chatID, "history", err)
	}

	entries, total, err := b.rateSvc.HistoryPage(ctx, user, page, b.config.HistoryPageSize)
	if err != nil {
		return b.replyError(chatID, "history", err)
	}

	window := pagination.Paginate(int(total), page, b.config.HistoryPageSize)
	if len(entries) == 0 {
		if page <= 1 {
			return b.sendMenu(chatID, "История пуста.", user.Subscribed)
		}
		return b.sendKeyboard(chatID, "На этой странице пусто.", historyKeyboard(window))
	}

	return b.sendKeyboard(chatID, formatHistoryPage(entries, window, b.currencyLabel()), historyKeyboard(window))
}

func (b *Bot) handleBackToMain(ctx context.Context, chatID int64) error {
	user, err := b.userRepo.GetOrCreate(ctx, chatID)
	if err != nil {
		return b.replyError(chatID, "main menu", err)
	}
	return b.sendMenu(chatID, "Выберите действие:", user.Subscribed)
}

func (b *Bot) handleSubscription(ctx context.Context, chatID int64, subscribe bool) error {
	user, err := b.userRepo.GetOrCreate(ctx, chatID)
	if err != nil {
		return b.replyError(chatID, "subscription", err)
	}
	if err := b.userRepo.SetSubscribed(ctx, user, subscribe); err != nil {
		return b.replyError(chatID, "subscription", err)
	}

	log.Printf("[info] chat %d subscribed=%t", chatID, subscribe)
	text := "Вы успешно подписались на обновления."
	if !subscribe {
		text = "Вы отписались от обновлений."
	}
	return b.sendMenu(chatID, text, subscribe)
}

// replyError logs the failure and sends a short generic notice. Raw errors
// never reach the chat.
func (b *Bot) replyError(chatID int64, op string, err error) error {
	log.Printf("%s for chat %d: %v", op, chatID, err)
	return b.sendText(chatID, "Что-то пошло не так. Попробуйте ещё раз позже.")
}

func (b *Bot) sendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendMenu(chatID int64, text string, subscribed bool) error {
	return b.sendKeyboard(chatID, text, mainMenuKeyboard(subscribed))
}

func (b *Bot) sendKeyboard(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	_, err := b.api.Send(msg)
	return err
}

// SendText implements the broadcast sender.
func (b *Bot) SendText(chatID int64, text string) error {
	return b.sendText(chatID, text)
}

func (b *Bot) currencyLabel() string {
	return currencyLabel(b.config.RateCurrency)
}
