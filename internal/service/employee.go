package service

import (
	"fmt"
	"strconv"
	"strings"

	"attendance-bot/internal/models"
	"attendance-bot/internal/repository"
	"attendance-bot/pkg/mockdata"

	"github.com/sirupsen/logrus"
)

type EmployeeService struct {
	repo   repository.EmployeeRepository
	logger *logrus.Logger
}

func NewEmployeeService(repo repository.EmployeeRepository) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		logger: logrus.New(),
	}
}

// AddEmployee создает сотрудника
func (s *EmployeeService) AddEmployee(name, leaves string) (*models.Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("имя сотрудника не может быть пустым")
	}

	employee := &models.Employee{
		Name:   name,
		Leaves: NormalizeLeaves(leaves),
	}

	if err := s.repo.Create(employee); err != nil {
		return nil, fmt.Errorf("ошибка создания сотрудника: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":     employee.ID,
		"name":   employee.Name,
		"leaves": employee.Leaves,
	}).Info("Employee added")

	return employee, nil
}

// SetLeaves заменяет список дней отсутствия сотрудника
func (s *EmployeeService) SetLeaves(id uint, leaves string) (*models.Employee, error) {
	normalized := NormalizeLeaves(leaves)

	if err := s.repo.UpdateLeaves(id, normalized); err != nil {
		return nil, fmt.Errorf("ошибка обновления отсутствий: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"id":     id,
		"leaves": normalized,
	}).Info("Employee leaves updated")

	return s.repo.GetByID(id)
}

// RemoveEmployee удаляет сотрудника
func (s *EmployeeService) RemoveEmployee(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("ошибка удаления сотрудника: %w", err)
	}

	s.logger.WithField("id", id).Info("Employee removed")
	return nil
}

// GetEmployee возвращает сотрудника по ID
func (s *EmployeeService) GetEmployee(id uint) (*models.Employee, error) {
	return s.repo.GetByID(id)
}

// ListEmployees возвращает всех сотрудников по порядку ID
func (s *EmployeeService) ListEmployees() ([]models.Employee, error) {
	return s.repo.GetAll()
}

// LoadFromJSON заменяет сотрудников в базе данными из JSON файла
func (s *EmployeeService) LoadFromJSON(filePath string) (int, error) {
	records, err := mockdata.ParseEmployeesJSON(filePath)
	if err != nil {
		return 0, err
	}

	employees := make([]models.Employee, 0, len(records))
	for _, rec := range records {
		employees = append(employees, models.Employee{
			ID:     uint(rec.ID),
			Name:   rec.Name,
			Leaves: NormalizeLeaves(rec.Leaves),
		})
	}

	// Удаляем старые записи (чтобы избежать дублирования)
	if err := s.repo.DeleteAll(); err != nil {
		s.logger.Warnf("Failed to delete old employees: %v", err)
	}

	if err := s.repo.BulkCreate(employees); err != nil {
		return 0, err
	}

	s.logger.WithFields(logrus.Fields{
		"file":      filePath,
		"employees": len(employees),
	}).Info("Employees loaded from JSON")

	return len(employees), nil
}

// FormatEmployeeList форматирует список сотрудников для отображения
func (s *EmployeeService) FormatEmployeeList(employees []models.Employee) string {
	if len(employees) == 0 {
		return "📭 Сотрудников пока нет"
	}

	var result strings.Builder
	result.WriteString("👥 Сотрудники:\n\n")

	for _, e := range employees {
		leaves := e.Leaves
		if leaves == "" {
			leaves = "нет"
		}
		result.WriteString(fmt.Sprintf("%d. %s - отсутствия: %s\n", e.ID, e.Name, leaves))
	}

	return result.String()
}

// NormalizeLeaves приводит строку отсутствий к виду "05, 12".
// Числовые токены дополняются ведущим нулем, остальные оставляются как есть
// и при построении табеля просто ни с чем не совпадут.
func NormalizeLeaves(leaves string) string {
	var tokens []string
	for _, token := range strings.Split(leaves, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		if day, err := strconv.Atoi(token); err == nil && day >= 0 && day < 100 {
			token = fmt.Sprintf("%02d", day)
		}
		tokens = append(tokens, token)
	}
	return strings.Join(tokens, ", ")
}
