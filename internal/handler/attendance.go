package handler

import (
	"bytes"

	"attendance-bot/internal/report"
	"attendance-bot/internal/service"
	"attendance-bot/pkg/attendance"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// лимит Telegram 4096 символов, оставляем запас на сводку и разметку
const maxGridMessageLen = 3500

// buildGrid разбирает период из аргументов и строит табель
func (h *Handler) buildGrid(chatID int64, args string) (*attendance.Grid, bool) {
	period, err := service.ParsePeriodArgs(args, h.now())
	if err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return nil, false
	}

	grid, err := h.attendanceService.Grid(period)
	if err != nil {
		logrus.WithError(err).Error("Failed to build attendance grid")
		h.reply(chatID, "❌ Ошибка построения табеля: "+err.Error())
		return nil, false
	}

	return grid, true
}

// showGrid отправляет табель моноширинным текстом
func (h *Handler) showGrid(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	grid, ok := h.buildGrid(chatID, args)
	if !ok {
		return
	}

	if len(grid.Rows) == 0 {
		h.reply(chatID, report.FormatSummary(grid)+"\n\n📭 Сотрудников пока нет.")
		return
	}

	table := report.FormatText(grid)
	if len(table) > maxGridMessageLen {
		h.reply(chatID, report.FormatSummary(grid)+"\n\n📎 Табель слишком большой для сообщения. Используйте /export "+message.CommandArguments())
		return
	}

	msg := tgbotapi.NewMessage(chatID, report.FormatSummary(grid)+"\n\n```\n"+table+"```")
	msg.ParseMode = "Markdown"
	h.send(msg)
}

// exportGrid отправляет табель файлом Excel
func (h *Handler) exportGrid(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID

	grid, ok := h.buildGrid(chatID, args)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.WriteXLSX(grid, &buf); err != nil {
		logrus.WithError(err).Error("Failed to render xlsx")
		h.reply(chatID, "❌ Ошибка формирования файла: "+err.Error())
		return
	}

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  report.FileName(grid.Period),
		Bytes: buf.Bytes(),
	})
	doc.Caption = report.FormatSummary(grid)
	h.send(doc)
}
