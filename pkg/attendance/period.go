package attendance

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod - период задан некорректно (месяц вне 0-11 или начало позже конца)
var ErrInvalidPeriod = errors.New("invalid period")

// Period - включительный диапазон календарных дат, по которому строится табель
type Period struct {
	Start time.Time
	End   time.Time
}

// MonthPeriod - период на весь месяц. month - индекс месяца с нуля (0 = январь, 11 = декабрь)
func MonthPeriod(year, month int) (Period, error) {
	if month < 0 || month > 11 {
		return Period{}, fmt.Errorf("%w: month index %d is out of range 0-11", ErrInvalidPeriod, month)
	}

	start := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
	return Period{Start: start, End: LastDayOfMonth(year, month)}, nil
}

// RangePeriod - период с явными датами начала и окончания
func RangePeriod(start, end time.Time) (Period, error) {
	p := Period{Start: dateOf(start), End: dateOf(end)}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// LastDayOfMonth возвращает последний день месяца (month с нуля), високосные годы учитываются
func LastDayOfMonth(year, month int) time.Time {
	// нулевой день следующего месяца = последний день текущего
	return time.Date(year, time.Month(month+2), 0, 0, 0, 0, 0, time.UTC)
}

// Validate проверяет, что начало не позже конца
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrInvalidPeriod)
	}
	if dateOf(p.Start).After(dateOf(p.End)) {
		return fmt.Errorf("%w: start %s is after end %s",
			ErrInvalidPeriod, p.Start.Format(time.DateOnly), p.End.Format(time.DateOnly))
	}
	return nil
}

// Days возвращает количество календарных дней в периоде
func (p Period) Days() int {
	start, end := dateOf(p.Start), dateOf(p.End)
	if start.After(end) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

func (p Period) String() string {
	return fmt.Sprintf("%s - %s", p.Start.Format("02.01.2006"), p.End.Format("02.01.2006"))
}

// dateOf отбрасывает время и часовой пояс, оставляя календарную дату
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
