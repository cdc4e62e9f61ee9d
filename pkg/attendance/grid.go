package attendance

// Totals - количество отметок каждого вида в строке
type Totals struct {
	Present    int `json:"present"`
	Absent     int `json:"absent"`
	NonWorking int `json:"non_working"`
}

// Row - строка табеля одного сотрудника
type Row struct {
	Employee Employee          `json:"employee"`
	Cells    map[string]Status `json:"cells"`
	Totals   Totals            `json:"totals"`
}

// Grid - готовый табель: колонки и строки в порядке входного списка сотрудников
type Grid struct {
	Period  Period      `json:"period"`
	Columns []DayColumn `json:"columns"`
	Rows    []Row       `json:"rows"`
}

// NewRow строит строку табеля сотрудника и считает итоги
func NewRow(employee Employee, columns []DayColumn) Row {
	cells := FormatRow(employee, columns)

	var totals Totals
	for _, status := range cells {
		switch status {
		case Present:
			totals.Present++
		case Absent:
			totals.Absent++
		case NonWorking:
			totals.NonWorking++
		}
	}

	return Row{Employee: employee, Cells: cells, Totals: totals}
}

// BuildGrid строит колонки периода и строки для всех сотрудников
func BuildGrid(p Period, employees []Employee) (*Grid, error) {
	columns, err := BuildColumns(p)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, 0, len(employees))
	for _, e := range employees {
		rows = append(rows, NewRow(e, columns))
	}

	return &Grid{Period: p, Columns: columns, Rows: rows}, nil
}

// Status возвращает отметку строки по ключу колонки
func (r Row) Status(key string) (Status, bool) {
	s, ok := r.Cells[key]
	return s, ok
}

// Count - сколько ячеек строки имеют указанную отметку
func (r Row) Count(status Status) int {
	switch status {
	case Present:
		return r.Totals.Present
	case Absent:
		return r.Totals.Absent
	case NonWorking:
		return r.Totals.NonWorking
	}
	return 0
}

// WorkingDays - количество будних дней в табеле
func (g *Grid) WorkingDays() int {
	n := 0
	for _, c := range g.Columns {
		if !c.IsWeekend {
			n++
		}
	}
	return n
}
