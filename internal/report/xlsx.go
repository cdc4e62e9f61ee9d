package report

import (
	"fmt"
	"io"

	"attendance-bot/pkg/attendance"

	"github.com/xuri/excelize/v2"
)

const SheetName = "Attendance"

// первые две колонки листа заняты ID и именем
const firstDayCol = 3

// WriteXLSX выгружает табель в Excel: шапка с днями и днями недели,
// выходные закрашены серым, пропуски красным.
func WriteXLSX(grid *attendance.Grid, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return err
	}
	weekendStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#6C757D"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	absentStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC3545"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}
	presentStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return err
	}

	// Шапка: ID | Name | 01 .. NN, под ней дни недели
	set := func(col, row int, value any, style int) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
		return f.SetCellStyle(SheetName, cell, cell, style)
	}

	if err := set(1, 1, "ID", headerStyle); err != nil {
		return err
	}
	if err := set(2, 1, "Name", headerStyle); err != nil {
		return err
	}
	for i, c := range grid.Columns {
		style := headerStyle
		if c.IsWeekend {
			style = weekendStyle
		}
		if err := set(firstDayCol+i, 1, c.Key, style); err != nil {
			return err
		}
		if err := set(firstDayCol+i, 2, c.ShortWeekday(), style); err != nil {
			return err
		}
	}

	totalsCol := firstDayCol + len(grid.Columns)
	if err := set(totalsCol, 1, "P", headerStyle); err != nil {
		return err
	}
	if err := set(totalsCol+1, 1, "A", headerStyle); err != nil {
		return err
	}

	for r, row := range grid.Rows {
		rowNum := r + 3
		if err := set(1, rowNum, row.Employee.ID, presentStyle); err != nil {
			return err
		}
		nameCell, _ := excelize.CoordinatesToCellName(2, rowNum)
		if err := f.SetCellValue(SheetName, nameCell, row.Employee.Name); err != nil {
			return err
		}

		for i, c := range grid.Columns {
			status := row.Cells[c.Key]
			style := presentStyle
			switch status {
			case attendance.NonWorking:
				style = weekendStyle
			case attendance.Absent:
				style = absentStyle
			}
			if err := set(firstDayCol+i, rowNum, status.String(), style); err != nil {
				return err
			}
		}

		if err := set(totalsCol, rowNum, row.Totals.Present, presentStyle); err != nil {
			return err
		}
		if err := set(totalsCol+1, rowNum, row.Totals.Absent, presentStyle); err != nil {
			return err
		}
	}

	if err := f.SetColWidth(SheetName, "B", "B", 24); err != nil {
		return err
	}
	if len(grid.Columns) > 0 {
		first, _ := excelize.ColumnNumberToName(firstDayCol)
		last, _ := excelize.ColumnNumberToName(totalsCol + 1)
		if err := f.SetColWidth(SheetName, first, last, 5); err != nil {
			return err
		}
	}
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      2,
		TopLeftCell: "C3",
		ActivePane:  "bottomRight",
	}); err != nil {
		return err
	}

	return f.Write(w)
}

// FileName - имя файла выгрузки для периода
func FileName(p attendance.Period) string {
	return fmt.Sprintf("attendance_%s_%s.xlsx", p.Start.Format("2006-01-02"), p.End.Format("2006-01-02"))
}
