package telegram

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "bottle-counter/internal/application"
	"bottle-counter/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для подсчёта бутылок в ящике по фотографии.

📸 Отправьте мне фото ящика сверху, и я посчитаю бутылки.

📋 Команды:
/count — начать подсчёт
/method — переключить способ детекции
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте фото ящика с бутылками (вид сверху)
2️⃣ Бот найдёт крышки бутылок на изображении
3️⃣ Вы получите фото с обведёнными бутылками и их количество

💡 Рекомендации:
• Снимайте при хорошем освещении
• Держите камеру строго над ящиком
• Фото должно быть чётким

📋 Команды:
/count — начать подсчёт
/method — переключить способ детекции (Хаф / контуры / оба)
/cancel — отменить операцию`

	msgAwaitingPhoto   = "📸 Отправьте фото ящика с бутылками."
	msgCancelled       = "❌ Операция отменена. Отправьте /count для нового подсчёта."
	msgSendPhoto       = "📸 Пожалуйста, отправьте фото ящика с бутылками."
	msgUnknownCommand  = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing      = "⏳ Считаю бутылки..."
	msgProcessingError = "⚠️ Не удалось обработать изображение. Попробуйте сделать другое фото."
)

// methodNames человекочитаемые названия методов детекции
var methodNames = map[entity.Method]string{
	entity.MethodHough:   "преобразование Хафа",
	entity.MethodContour: "анализ контуров",
	entity.MethodBoth:    "оба метода",
}

// Bot представляет Telegram-бота
type Bot struct {
	api     *tgbotapi.BotAPI
	users   *app.UserService
	counter *app.CountService
	params  entity.Params
}

// NewBot создаёт нового бота
func NewBot(token string, users *app.UserService, counter *app.CountService, params entity.Params) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:     api,
		users:   users,
		counter: counter,
		params:  params,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	user, err := b.users.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Обработка фото
	if len(msg.Photo) > 0 {
		b.handlePhoto(ctx, msg, user)
		return
	}

	// Текстовое сообщение (не команда)
	b.sendMessage(msg.Chat.ID, msgSendPhoto)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	switch msg.Command() {
	case "start":
		b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgStart)

	case "help":
		b.sendMessage(msg.Chat.ID, msgHelp)

	case "count":
		b.users.BeginCount(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgAwaitingPhoto)

	case "method":
		updated, err := b.users.SwitchMethod(ctx, user.ID, user.ChatID)
		if err != nil {
			log.Printf("Error switching method: %v", err)
			return
		}
		b.sendMessage(msg.Chat.ID, fmt.Sprintf("🔧 Способ детекции: %s.", methodNames[updated.Method]))

	case "cancel":
		b.users.Cancel(ctx, user.ID, user.ChatID)
		b.sendMessage(msg.Chat.ID, msgCancelled)

	default:
		b.sendMessage(msg.Chat.ID, msgUnknownCommand)
	}
}

// handlePhoto считает бутылки на присланном фото
func (b *Bot) handlePhoto(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	// Устанавливаем состояние "обработка"
	b.users.SetState(ctx, user.ID, user.ChatID, entity.StateProcessing)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	// Получаем файл с максимальным разрешением
	photo := msg.Photo[len(msg.Photo)-1]

	imageData, err := b.downloadFile(photo.FileID)
	if err != nil {
		log.Printf("Error downloading photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.users.Cancel(ctx, user.ID, user.ChatID)
		return
	}

	params := b.params
	params.Method = user.Method

	out, err := b.counter.Process(ctx, imageData, params)
	if err != nil {
		log.Printf("Error processing photo: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		b.users.Cancel(ctx, user.ID, user.ChatID)
		return
	}

	caption := fmt.Sprintf("🍾 Найдено бутылок: %d (%s)", out.Result.Count(), methodNames[out.Result.Method])
	reply := tgbotapi.NewPhoto(msg.Chat.ID, tgbotapi.FileBytes{Name: "bottles.jpg", Bytes: out.Annotated})
	reply.Caption = caption
	if _, err := b.api.Send(reply); err != nil {
		log.Printf("Error sending photo: %v", err)
		b.sendMessage(msg.Chat.ID, caption)
	}

	// Возвращаем пользователя в главное меню
	b.counter.AcceptPhoto(ctx, user.ID, user.ChatID)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
