package repository

import (
	"errors"

	"attendance-bot/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type EmployeeRepository interface {
	Create(employee *models.Employee) error
	BulkCreate(employees []models.Employee) error
	GetByID(id uint) (*models.Employee, error)
	GetAll() ([]models.Employee, error)
	UpdateLeaves(id uint, leaves string) error
	Delete(id uint) error
	DeleteAll() error
	Count() (int64, error)
}

type GormEmployeeRepository struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewGormEmployeeRepository(db *gorm.DB) (*GormEmployeeRepository, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	// Автомиграция
	if err := db.AutoMigrate(&models.Employee{}); err != nil {
		logger.WithError(err).Error("Failed to auto-migrate employees table")
		return nil, err
	}

	logger.Info("Employee repository initialized")

	return &GormEmployeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *GormEmployeeRepository) Create(employee *models.Employee) error {
	if !employee.IsValid() {
		r.logger.WithField("name", employee.Name).Warn("Invalid employee data")
		return errors.New("employee name is required")
	}

	if err := r.db.Create(employee).Error; err != nil {
		r.logger.WithError(err).Error("Failed to create employee")
		return err
	}

	r.logger.WithFields(logrus.Fields{
		"id":   employee.ID,
		"name": employee.Name,
	}).Debug("Employee created")

	return nil
}

func (r *GormEmployeeRepository) BulkCreate(employees []models.Employee) error {
	if len(employees) == 0 {
		return nil
	}
	return r.db.Create(&employees).Error
}

func (r *GormEmployeeRepository) GetByID(id uint) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEmployeeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *GormEmployeeRepository) GetAll() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *GormEmployeeRepository) UpdateLeaves(id uint, leaves string) error {
	result := r.db.Model(&models.Employee{}).
		Where("id = ?", id).
		Update("leaves", leaves)

	if result.Error != nil {
		r.logger.WithError(result.Error).Error("Failed to update employee leaves")
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

func (r *GormEmployeeRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Employee{}, id)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrEmployeeNotFound
	}

	return nil
}

func (r *GormEmployeeRepository) DeleteAll() error {
	return r.db.Exec("DELETE FROM employees").Error
}

func (r *GormEmployeeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Employee{}).Count(&count).Error
	return count, err
}
