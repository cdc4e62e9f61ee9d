package handler

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = `📋 Доступные команды:

📅 Табель посещаемости:
/grid - Табель за текущий месяц
/grid [месяц] - Табель за месяц текущего года
/grid [год месяц] - Табель за месяц и год
    Пример: /grid 2024 11
/grid [дата_начала дата_окончания] - Табель за период
    Пример: /grid 25.11.2024 05.12.2024
/export [...] - То же самое, но файлом Excel

👥 Сотрудники:
/employees - Список сотрудников и их отсутствий

💡 Обозначения в табеле:
P - присутствовал
A - отсутствовал
- - выходной (суббота, воскресенье)`

const adminHelpText = `👑 Администрирование:
/addemployee Имя [| дни] - Добавить сотрудника
    Пример: /addemployee Иван Петров | 05, 12
/leaves ID дни - Задать дни отсутствия
    Пример: /leaves 3 05, 12, 23
/leaves ID - Очистить дни отсутствия
/removeemployee ID - Удалить сотрудника
/reload - Загрузить сотрудников из JSON файла`

func (h *Handler) handleCommand(message *tgbotapi.Message) {
	command := message.Command()
	args := message.CommandArguments()

	switch command {
	case "start", "help":
		h.sendHelpMessage(message)
	case "helpadmin":
		h.sendAdminHelpMessage(message)

	// Табель (все пользователи)
	case "grid", "table":
		h.showGrid(message, args)
	case "export":
		h.exportGrid(message, args)

	// Сотрудники
	case "employees":
		h.listEmployees(message)
	case "addemployee":
		h.addEmployee(message, args)
	case "leaves":
		h.setLeaves(message, args)
	case "removeemployee":
		h.removeEmployee(message, args)
	case "reload":
		h.reloadEmployees(message)

	default:
		h.sendUnknownCommand(message)
	}
}

func (h *Handler) sendUnknownCommand(message *tgbotapi.Message) {
	h.reply(message.Chat.ID, "❌ Неизвестная команда. Используйте /help для списка команд.")
}

func (h *Handler) sendHelpMessage(message *tgbotapi.Message) {
	text := helpText
	if h.config.IsAdmin(message.Chat.ID) {
		text += "\n\n" + adminHelpText
	}
	h.reply(message.Chat.ID, text)
}

func (h *Handler) sendAdminHelpMessage(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID, "helpadmin") {
		return
	}

	text := adminHelpText
	if h.config.EmployeesFixture != "" {
		text += fmt.Sprintf("\n\n📁 Файл сотрудников: %s", h.config.EmployeesFixture)
	}
	h.reply(chatID, text)
}
