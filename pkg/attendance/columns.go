package attendance

import (
	"fmt"
	"time"
)

// DayColumn - одна колонка табеля (один день периода)
type DayColumn struct {
	Key       string       `json:"key"` // день месяца с ведущим нулем: "01".."31"
	Date      time.Time    `json:"date"`
	Weekday   time.Weekday `json:"weekday"`
	IsWeekend bool         `json:"is_weekend"`
}

// ShortWeekday - краткое название дня недели для второй строки заголовка
func (c DayColumn) ShortWeekday() string {
	return c.Weekday.String()[:3]
}

// BuildColumns строит колонки табеля по периоду.
//
// Дни перебираются по одному от начала до конца включительно. Ключ колонки -
// номер дня месяца, поэтому в периоде длиннее месяца повторяющиеся номера
// схлопываются в первую встреченную колонку.
func BuildColumns(p Period) ([]DayColumn, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	columns := make([]DayColumn, 0, min(p.Days(), 31))
	seen := make(map[string]struct{}, 31)

	end := dateOf(p.End)
	for date := dateOf(p.Start); !date.After(end); date = date.AddDate(0, 0, 1) {
		key := DayKey(date.Day())
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		weekday := date.Weekday()
		columns = append(columns, DayColumn{
			Key:       key,
			Date:      date,
			Weekday:   weekday,
			IsWeekend: IsWeekend(weekday),
		})
	}

	return columns, nil
}

// DayKey форматирует номер дня месяца как ключ колонки
func DayKey(day int) string {
	return fmt.Sprintf("%02d", day)
}

// IsWeekend - суббота или воскресенье
func IsWeekend(weekday time.Weekday) bool {
	return weekday == time.Saturday || weekday == time.Sunday
}
