package handler

import (
	"strconv"
	"strings"
	"time"

	"attendance-bot/internal/config"
	"attendance-bot/internal/service"
	"attendance-bot/pkg/telegram"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	client            telegram.Sender
	employeeService   *service.EmployeeService
	attendanceService *service.AttendanceService
	config            *config.BotConfig
	now               func() time.Time
}

func NewHandler(
	client telegram.Sender,
	employeeService *service.EmployeeService,
	attendanceService *service.AttendanceService,
	cfg *config.BotConfig,
) *Handler {
	return &Handler{
		client:            client,
		employeeService:   employeeService,
		attendanceService: attendanceService,
		config:            cfg,
		now:               time.Now,
	}
}

func (h *Handler) HandleUpdates(updates tgbotapi.UpdatesChannel) {
	for update := range updates {
		h.HandleUpdate(update)
	}
}

// HandleUpdate обрабатывает одно обновление от Telegram
func (h *Handler) HandleUpdate(update tgbotapi.Update) {
	// Обработка callback query (для inline кнопок)
	if update.CallbackQuery != nil {
		h.handleCallbackQuery(update.CallbackQuery)
		return
	}

	if update.Message == nil {
		return
	}

	h.handleMessage(update.Message)
}

// handleCallbackQuery обрабатывает inline кнопки
func (h *Handler) handleCallbackQuery(callback *tgbotapi.CallbackQuery) {
	if callback.Message == nil || callback.Message.Chat == nil {
		return
	}
	chatID := callback.Message.Chat.ID
	data := callback.Data

	// Удаляем клавиатуру
	editMsg := tgbotapi.NewEditMessageReplyMarkup(chatID, callback.Message.MessageID, tgbotapi.NewInlineKeyboardMarkup())
	h.request(editMsg)

	switch {
	case strings.HasPrefix(data, "confirm_remove_"):
		h.confirmRemoveEmployee(chatID, strings.TrimPrefix(data, "confirm_remove_"))
	case data == "cancel_remove":
		h.reply(chatID, "❌ Удаление сотрудника отменено.")
	}

	// Отвечаем на callback (убираем "часики" у кнопки)
	h.request(tgbotapi.NewCallback(callback.ID, ""))
}

func (h *Handler) handleMessage(message *tgbotapi.Message) {
	if message.Chat == nil {
		return
	}

	username := ""
	if message.From != nil {
		username = message.From.UserName
	}
	logrus.Infof("[%s] %s", username, message.Text)

	if message.IsCommand() {
		h.handleCommand(message)
		return
	}

	h.reply(message.Chat.ID, "🤖 Я понимаю только команды. Используйте /help для списка команд.")
}

// requireAdmin проверяет права и сообщает об отказе
func (h *Handler) requireAdmin(chatID int64, command string) bool {
	if h.config.IsAdmin(chatID) {
		return true
	}

	logrus.WithFields(logrus.Fields{
		"chat_id": chatID,
		"command": command,
	}).Warn("Unauthorized access to admin command")
	h.reply(chatID, "❌ Доступ запрещен. Эта команда только для администраторов.")
	return false
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.client.Send(c); err != nil {
		logrus.WithError(err).Error("Failed to send telegram message")
	}
}

func (h *Handler) request(c tgbotapi.Chattable) {
	if _, err := h.client.Request(c); err != nil {
		logrus.WithError(err).Warn("Telegram request failed")
	}
}

func parseID(s string) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, strconv.ErrSyntax
	}
	return uint(id), nil
}
