package models

import (
	"strings"
	"time"

	"attendance-bot/pkg/attendance"
)

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Leaves    string    `gorm:"not null;default:''" json:"leaves"` // дни отсутствия через запятую: "05, 12"
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

// ToAttendance переводит модель в сотрудника для построения табеля
func (e *Employee) ToAttendance() attendance.Employee {
	return attendance.Employee{
		ID:     int(e.ID),
		Name:   e.Name,
		Leaves: e.Leaves,
	}
}

// LeaveCount - сколько дней отсутствия указано
func (e *Employee) LeaveCount() int {
	return len(attendance.ParseLeaves(e.Leaves))
}

// IsValid проверяет валидность данных
func (e *Employee) IsValid() bool {
	return strings.TrimSpace(e.Name) != ""
}
