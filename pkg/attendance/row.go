package attendance

import "strings"

// Employee - сотрудник и его строка с днями отсутствия ("05, 12, 23")
type Employee struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Leaves string `json:"leaves"`
}

// Status - отметка в ячейке табеля
type Status int

const (
	Present Status = iota
	Absent
	NonWorking
)

// String возвращает символ ячейки: P - был, A - отсутствовал, "-" - выходной
func (s Status) String() string {
	switch s {
	case Present:
		return "P"
	case Absent:
		return "A"
	case NonWorking:
		return "-"
	default:
		return "?"
	}
}

// ParseLeaves разбирает строку с днями отсутствия в набор токенов.
// Пробелы вокруг токенов отбрасываются, пустые токены пропускаются.
func ParseLeaves(leaves string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, token := range strings.Split(leaves, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		tokens[token] = struct{}{}
	}
	return tokens
}

// FormatRow вычисляет отметки сотрудника по колонкам табеля.
//
// Выходной всегда NonWorking, даже если день указан в отпуске. Токены, которым
// не соответствует ни одна колонка, просто не влияют на результат.
func FormatRow(employee Employee, columns []DayColumn) map[string]Status {
	leaveDays := ParseLeaves(employee.Leaves)

	row := make(map[string]Status, len(columns))
	for _, col := range columns {
		switch {
		case col.IsWeekend:
			row[col.Key] = NonWorking
		case hasToken(leaveDays, col.Key):
			row[col.Key] = Absent
		default:
			row[col.Key] = Present
		}
	}
	return row
}

func hasToken(tokens map[string]struct{}, key string) bool {
	_, ok := tokens[key]
	return ok
}
