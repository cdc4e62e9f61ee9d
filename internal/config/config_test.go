package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "token")
	t.Setenv("BASE_ADMIN_CHAT_ID", "42")
	t.Setenv("DATABASE_URL", "attendance.db")
}

func TestLoad(t *testing.T) {
	setRequired(t)
	t.Setenv("EMPLOYEES_FIXTURE", "testdata/employees.json")
	t.Setenv("BOT_DEBUG", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramToken)
	assert.Equal(t, int64(42), cfg.BaseAdminChatID)
	assert.Equal(t, "attendance.db", cfg.DatabaseURL)
	assert.Equal(t, "testdata/employees.json", cfg.EmployeesFixture)
	assert.True(t, cfg.Debug)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("BOT_DEBUG", "not-a-bool")
	t.Setenv("LOG_LEVEL", "loud")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Debug)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
}

func TestLoadMissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		unset   string
		wantErr string
	}{
		{"token", "TELEGRAM_BOT_TOKEN", "could not get bot token"},
		{"admin", "BASE_ADMIN_CHAT_ID", "could not get admin chat id"},
		{"db", "DATABASE_URL", "could not get db url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
		})
	}
}

func TestIsAdmin(t *testing.T) {
	cfg := &BotConfig{BaseAdminChatID: 42}
	assert.True(t, cfg.IsAdmin(42))
	assert.False(t, cfg.IsAdmin(7))

	assert.False(t, (&BotConfig{}).IsAdmin(0))
}
