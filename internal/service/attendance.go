package service

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"attendance-bot/internal/repository"
	"attendance-bot/pkg/attendance"

	"github.com/sirupsen/logrus"
)

type AttendanceService struct {
	employeeRepo repository.EmployeeRepository
	logger       *logrus.Logger
}

func NewAttendanceService(employeeRepo repository.EmployeeRepository) *AttendanceService {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &AttendanceService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}
}

// MonthGrid строит табель за месяц. month - индекс месяца с нуля
func (s *AttendanceService) MonthGrid(year, month int) (*attendance.Grid, error) {
	p, err := attendance.MonthPeriod(year, month)
	if err != nil {
		return nil, err
	}
	return s.Grid(p)
}

// RangeGrid строит табель за произвольный диапазон дат
func (s *AttendanceService) RangeGrid(start, end time.Time) (*attendance.Grid, error) {
	p, err := attendance.RangePeriod(start, end)
	if err != nil {
		return nil, err
	}
	return s.Grid(p)
}

// Grid строит табель за период по всем сотрудникам из базы
func (s *AttendanceService) Grid(p attendance.Period) (*attendance.Grid, error) {
	columns, err := attendance.BuildColumns(p)
	if err != nil {
		return nil, err
	}

	employees, err := s.employeeRepo.GetAll()
	if err != nil {
		s.logger.WithError(err).Error("Failed to load employees for grid")
		return nil, fmt.Errorf("ошибка получения сотрудников: %w", err)
	}

	// Строки не зависят друг от друга, считаем их параллельно
	rows := make([]attendance.Row, len(employees))
	var wg sync.WaitGroup
	for i := range employees {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rows[i] = attendance.NewRow(employees[i].ToAttendance(), columns)
		}(i)
	}
	wg.Wait()

	s.logger.WithFields(logrus.Fields{
		"period":    p.String(),
		"columns":   len(columns),
		"employees": len(rows),
	}).Debug("Attendance grid built")

	return &attendance.Grid{Period: p, Columns: columns, Rows: rows}, nil
}

// ParsePeriodArgs разбирает аргументы команды в период.
//
// Поддерживаются: пусто (текущий месяц), "месяц", "год месяц" (месяц 1-12)
// и "дата_начала дата_окончания" в формате ДД.ММ.ГГГГ.
func ParsePeriodArgs(args string, now time.Time) (attendance.Period, error) {
	parts := strings.Fields(args)

	switch len(parts) {
	case 0:
		return attendance.MonthPeriod(now.Year(), int(now.Month())-1)
	case 1:
		month, err := strconv.Atoi(parts[0])
		if err != nil || month < 1 || month > 12 {
			return attendance.Period{}, fmt.Errorf("неверный месяц. Используйте число от 1 до 12")
		}
		return attendance.MonthPeriod(now.Year(), month-1)
	case 2:
		if strings.Contains(parts[0], ".") || strings.Contains(parts[0], "-") {
			return parseDateRange(parts[0], parts[1])
		}

		year, err := strconv.Atoi(parts[0])
		if err != nil || year < 2000 || year > 2100 {
			return attendance.Period{}, fmt.Errorf("неверный год. Используйте год между 2000 и 2100")
		}
		month, err := strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return attendance.Period{}, fmt.Errorf("неверный месяц. Используйте число от 1 до 12")
		}
		return attendance.MonthPeriod(year, month-1)
	default:
		return attendance.Period{}, fmt.Errorf("неверный формат. Используйте: [год месяц], [месяц] или [дата_начала дата_окончания]")
	}
}

func parseDateRange(from, to string) (attendance.Period, error) {
	start, err := parseDate(from)
	if err != nil {
		return attendance.Period{}, fmt.Errorf("ошибка парсинга даты начала: %w", err)
	}
	end, err := parseDate(to)
	if err != nil {
		return attendance.Period{}, fmt.Errorf("ошибка парсинга даты окончания: %w", err)
	}

	p, err := attendance.RangePeriod(start, end)
	if err != nil {
		return attendance.Period{}, fmt.Errorf("дата окончания не может быть раньше даты начала")
	}
	return p, nil
}

// parseDate парсит дату из строки
func parseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"02.01.2006",
		"02-01-2006",
		"2006-01-02",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("неверный формат даты. Используйте ДД.ММ.ГГГГ")
}
