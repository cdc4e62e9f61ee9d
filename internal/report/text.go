package report

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"attendance-bot/pkg/attendance"
)

const maxNameWidth = 16

// FormatText рисует табель моноширинной таблицей:
// строка с номерами дней, строка с днями недели и по строке на сотрудника.
func FormatText(grid *attendance.Grid) string {
	if grid == nil {
		return ""
	}

	nameWidth := len("Name")
	for _, row := range grid.Rows {
		nameWidth = max(nameWidth, min(utf8.RuneCountInString(row.Employee.Name), maxNameWidth))
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%4s %s", "ID", pad("Name", nameWidth))
	for _, col := range grid.Columns {
		fmt.Fprintf(&b, " %2s", col.Key)
	}
	b.WriteString("   P   A\n")

	fmt.Fprintf(&b, "%4s %s", "", pad("", nameWidth))
	for _, col := range grid.Columns {
		fmt.Fprintf(&b, " %2s", col.ShortWeekday()[:2])
	}
	b.WriteString("\n")

	for _, row := range grid.Rows {
		fmt.Fprintf(&b, "%4d %s", row.Employee.ID, pad(row.Employee.Name, nameWidth))
		for _, col := range grid.Columns {
			fmt.Fprintf(&b, " %2s", row.Cells[col.Key].String())
		}
		fmt.Fprintf(&b, " %3d %3d\n", row.Totals.Present, row.Totals.Absent)
	}

	return b.String()
}

// FormatSummary - короткая сводка по периоду для подписи к табелю
func FormatSummary(grid *attendance.Grid) string {
	if grid == nil {
		return ""
	}

	absent := 0
	for _, row := range grid.Rows {
		absent += row.Totals.Absent
	}

	return fmt.Sprintf("📅 Период: %s\n📊 Дней: %d, рабочих: %d\n👥 Сотрудников: %d, пропусков всего: %d",
		grid.Period.String(), len(grid.Columns), grid.WorkingDays(), len(grid.Rows), absent)
}

// pad обрезает или дополняет пробелами строку до ширины в символах
func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n > width {
		runes := []rune(s)
		return string(runes[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-n)
}
