package mockdata

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"attendance-bot/pkg/attendance"
)

// EmployeeJSON - запись сотрудника в файле с тестовыми данными
type EmployeeJSON struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Leaves string `json:"leaves"`
}

// ParseEmployeesJSON - читает файл и возвращает список сотрудников
func ParseEmployeesJSON(filePath string) ([]attendance.Employee, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open JSON file: %w", err)
	}
	defer f.Close()

	return ParseEmployees(f)
}

// ParseEmployees - парсит JSON массив сотрудников
func ParseEmployees(r io.Reader) ([]attendance.Employee, error) {
	var records []EmployeeJSON
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}

	employees := make([]attendance.Employee, 0, len(records))
	seen := make(map[int]struct{}, len(records))

	for i, rec := range records {
		name := strings.TrimSpace(rec.Name)
		if name == "" {
			return nil, fmt.Errorf("record %d: employee name is empty", i)
		}
		if rec.ID <= 0 {
			return nil, fmt.Errorf("record %d (%s): id must be positive", i, name)
		}
		if _, ok := seen[rec.ID]; ok {
			return nil, fmt.Errorf("record %d (%s): duplicate id %d", i, name, rec.ID)
		}
		seen[rec.ID] = struct{}{}

		employees = append(employees, attendance.Employee{
			ID:     rec.ID,
			Name:   name,
			Leaves: rec.Leaves,
		})
	}

	return employees, nil
}
