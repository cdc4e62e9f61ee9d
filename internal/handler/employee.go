package handler

import (
	"errors"
	"fmt"
	"strings"

	"attendance-bot/internal/repository"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

// listEmployees показывает сотрудников с их отсутствиями
func (h *Handler) listEmployees(message *tgbotapi.Message) {
	chatID := message.Chat.ID

	employees, err := h.employeeService.ListEmployees()
	if err != nil {
		logrus.WithError(err).Error("Failed to list employees")
		h.reply(chatID, "❌ Ошибка получения сотрудников: "+err.Error())
		return
	}

	h.reply(chatID, h.employeeService.FormatEmployeeList(employees))
}

// addEmployee добавляет сотрудника: /addemployee Имя | 05, 12
func (h *Handler) addEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID, "addemployee") {
		return
	}

	if strings.TrimSpace(args) == "" {
		h.reply(chatID, "❌ Неверный формат. Используйте: /addemployee Имя [| дни]")
		return
	}

	name, leaves, _ := strings.Cut(args, "|")

	employee, err := h.employeeService.AddEmployee(name, leaves)
	if err != nil {
		logrus.WithError(err).Error("Failed to add employee")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Сотрудник добавлен!\n\n🆔 ID: %d\n👤 Имя: %s\n🏖️ Отсутствия: %s",
		employee.ID, employee.Name, leavesOrNone(employee.Leaves)))
}

// setLeaves задает дни отсутствия: /leaves 3 05, 12
func (h *Handler) setLeaves(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID, "leaves") {
		return
	}

	idStr, leaves, _ := strings.Cut(strings.TrimSpace(args), " ")
	id, err := parseID(idStr)
	if err != nil {
		h.reply(chatID, "❌ Неверный формат. Используйте: /leaves ID дни")
		return
	}

	employee, err := h.employeeService.SetLeaves(id, leaves)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		h.reply(chatID, fmt.Sprintf("❌ Сотрудник с ID %d не найден", id))
		return
	}
	if err != nil {
		logrus.WithError(err).Error("Failed to set leaves")
		h.reply(chatID, "❌ "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Отсутствия обновлены!\n\n👤 %s\n🏖️ Дни: %s (%d)",
		employee.Name, leavesOrNone(employee.Leaves), employee.LeaveCount()))
}

// removeEmployee спрашивает подтверждение удаления
func (h *Handler) removeEmployee(message *tgbotapi.Message, args string) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID, "removeemployee") {
		return
	}

	id, err := parseID(args)
	if err != nil {
		h.reply(chatID, "❌ Неверный формат. Используйте: /removeemployee ID")
		return
	}

	employee, err := h.employeeService.GetEmployee(id)
	if err != nil {
		h.reply(chatID, fmt.Sprintf("❌ Сотрудник с ID %d не найден", id))
		return
	}

	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("⚠️ Удалить сотрудника %s (ID %d)?", employee.Name, employee.ID))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Да", fmt.Sprintf("confirm_remove_%d", employee.ID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Нет", "cancel_remove"),
		),
	)
	h.send(msg)
}

func (h *Handler) confirmRemoveEmployee(chatID int64, idStr string) {
	if !h.requireAdmin(chatID, "confirm_remove") {
		return
	}

	id, err := parseID(idStr)
	if err != nil {
		return
	}

	if err := h.employeeService.RemoveEmployee(id); err != nil {
		h.reply(chatID, "❌ "+err.Error())
		return
	}
	h.reply(chatID, fmt.Sprintf("✅ Сотрудник с ID %d удален.", id))
}

// reloadEmployees перечитывает сотрудников из JSON файла
func (h *Handler) reloadEmployees(message *tgbotapi.Message) {
	chatID := message.Chat.ID
	if !h.requireAdmin(chatID, "reload") {
		return
	}

	if h.config.EmployeesFixture == "" {
		h.reply(chatID, "❌ Файл сотрудников не настроен (EMPLOYEES_FIXTURE).")
		return
	}

	count, err := h.employeeService.LoadFromJSON(h.config.EmployeesFixture)
	if err != nil {
		logrus.WithError(err).Error("Failed to reload employees")
		h.reply(chatID, "❌ Ошибка загрузки: "+err.Error())
		return
	}

	h.reply(chatID, fmt.Sprintf("✅ Загружено сотрудников: %d", count))
}

func leavesOrNone(leaves string) string {
	if leaves == "" {
		return "нет"
	}
	return leaves
}
