package conf_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zabka-mb/backend/conf"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SMTP_HOST_NAME", "smtp.example.com")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_MAIL", "noreply@zabkambsolutions.in")
	t.Setenv("SMTP_PASS", "secret")
	t.Setenv("SMTP_SECURE", "true")
}

func TestGetConfigFromEnv(t *testing.T) {
	setValidEnv(t)
	t.Setenv("STAFF_MAIL", "staff@zabkambsolutions.in")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://zabkambsolutions.in")

	cfg, err := conf.GetConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HttpAddress)
	assert.Equal(t, "ZabkaContactForms", cfg.ContactTableName)
	assert.Equal(t, []string{"http://localhost:3000", "https://zabkambsolutions.in"},
		cfg.AllowedOrigins)

	assert.Equal(t, "smtp.example.com", cfg.Smtp.Host)
	assert.Equal(t, 465, cfg.Smtp.Port)
	assert.True(t, cfg.Smtp.Secure)
	assert.Equal(t, "noreply@zabkambsolutions.in", cfg.Smtp.SenderAddress)
	assert.Equal(t, "staff@zabkambsolutions.in", cfg.Smtp.StaffAddress)
}

func TestGetConfigFromEnvStaffDefaultsToSender(t *testing.T) {
	setValidEnv(t)
	t.Setenv("STAFF_MAIL", "")

	cfg, err := conf.GetConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, cfg.Smtp.SenderAddress, cfg.Smtp.StaffAddress)
}

func TestGetConfigFromEnvRequiresSmtpHost(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SMTP_HOST_NAME", "")

	_, err := conf.GetConfigFromEnv()
	assert.Error(t, err)
}

func TestGetConfigFromEnvRejectsBadPort(t *testing.T) {
	setValidEnv(t)
	t.Setenv("SMTP_PORT", "not-a-port")

	_, err := conf.GetConfigFromEnv()
	assert.Error(t, err)
}
