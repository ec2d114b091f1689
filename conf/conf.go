package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds everything the server needs from the environment.
type Config struct {
	HttpAddress string
	AwsRegion   string

	ContactTableName string
	CareerTableName  string
	PartnerTableName string

	AllowedOrigins []string

	Smtp SmtpConfig
}

// SmtpConfig configures the outbound mail transport.
type SmtpConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	Secure   bool // implicit TLS on connect

	// SenderAddress is the From address of every outgoing mail and the
	// recipient of staff notices.
	SenderAddress string
	StaffAddress  string
}

func GetConfigFromEnv() (Config, error) {
	cfg := Config{
		HttpAddress:      getEnvOr("HTTP_ADDRESS", ":8080"),
		AwsRegion:        getEnvOr("AWS_REGION", "eu-central-1"),
		ContactTableName: getEnvOr("CONTACT_TABLE_NAME", "ZabkaContactForms"),
		CareerTableName:  getEnvOr("CAREER_TABLE_NAME", "ZabkaCareerForms"),
		PartnerTableName: getEnvOr("PARTNER_TABLE_NAME", "ZabkaPartnerForms"),
	}

	origins := getEnvOr("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	smtp, err := getSmtpConfigFromEnv()
	if err != nil {
		return Config{}, err
	}
	cfg.Smtp = smtp

	return cfg, nil
}

func getSmtpConfigFromEnv() (SmtpConfig, error) {
	host := os.Getenv("SMTP_HOST_NAME")
	if host == "" {
		return SmtpConfig{}, fmt.Errorf("SMTP_HOST_NAME is not set")
	}

	portStr := getEnvOr("SMTP_PORT", "587")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return SmtpConfig{}, fmt.Errorf("invalid SMTP_PORT %q: %w", portStr, err)
	}

	sender := os.Getenv("SMTP_MAIL")
	if sender == "" {
		return SmtpConfig{}, fmt.Errorf("SMTP_MAIL is not set")
	}

	return SmtpConfig{
		Host:          host,
		Port:          port,
		Username:      sender,
		Password:      os.Getenv("SMTP_PASS"),
		Secure:        os.Getenv("SMTP_SECURE") == "true",
		SenderAddress: sender,
		StaffAddress:  getEnvOr("STAFF_MAIL", sender),
	}, nil
}

func getEnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
