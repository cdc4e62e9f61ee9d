package main

import (
	"os"
	"os/signal"
	"syscall"

	"attendance-bot/internal/config"
	"attendance-bot/internal/handler"
	"attendance-bot/internal/repository"
	"attendance-bot/internal/service"
	"attendance-bot/pkg/telegram"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetBotConfig()
	logrus.SetLevel(cfg.LogLevel)
	logrus.Info("Config initialized...")

	// Инициализируем SQLite базу данных
	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	employeeRepo, err := repository.NewGormEmployeeRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create employee repository")
	}

	employeeService := service.NewEmployeeService(employeeRepo)
	attendanceService := service.NewAttendanceService(employeeRepo)

	// Пустую базу заполняем из файла с тестовыми данными
	if cfg.EmployeesFixture != "" {
		count, err := employeeRepo.Count()
		if err != nil {
			logrus.WithError(err).Warn("Failed to count employees")
		} else if count == 0 {
			loaded, err := employeeService.LoadFromJSON(cfg.EmployeesFixture)
			if err != nil {
				logrus.WithError(err).Warn("Failed to load employees fixture")
			} else {
				logrus.Infof("Loaded %d employees from %s", loaded, cfg.EmployeesFixture)
			}
		}
	}

	// Создаем клиент Telegram
	client, err := telegram.NewClient(cfg.TelegramToken, cfg.Debug)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(
		client,
		employeeService,
		attendanceService,
		cfg,
	)

	updates := client.Updates()

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Запускаем обработку сообщений
	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	client.Stop()

	// Закрываем соединение с БД
	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}
