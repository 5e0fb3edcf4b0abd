package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Business BusinessConfig
	Payroll  PayrollConfig
	Targets  TargetsConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Name           string
	Port           int
	Env            string
	FrontendOrigin string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// BusinessConfig holds call-center wide settings: the single operating
// timezone every shift and payroll date is evaluated in, and the date the
// telemetry system went live. Days before the launch date are paid as
// ghost days.
type BusinessConfig struct {
	Timezone        string
	Location        *time.Location
	LaunchDate      time.Time
	AutoAbsenceCron string
}

// PayrollConfig holds the pay-policy constants: the monthly free-late
// allowance, the check-in grace period, the flat commission rate, and the
// performance score weights.
type PayrollConfig struct {
	FreeLates          int
	LateGraceMinutes   int
	CommissionRate     decimal.Decimal
	ClampNegativeTotal bool
	CallsWeight        float64
	TalkTimeWeight     float64
	LeadsWeight        float64
}

// TargetSet is one employment type's daily performance targets.
type TargetSet struct {
	Calls           int
	TalkTimeSeconds int
	Leads           int
}

type TargetsConfig struct {
	FullTime TargetSet
	PartTime TargetSet
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "sales_management"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Name:           getEnv("APP_NAME", "sales-management"),
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
	}

	// Business configuration
	tz := getEnv("BUSINESS_TIMEZONE", "Asia/Karachi")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid BUSINESS_TIMEZONE %q: %w", tz, err)
	}

	launchStr := getEnv("SYSTEM_LAUNCH_DATE", "")
	if launchStr == "" {
		return nil, fmt.Errorf("SYSTEM_LAUNCH_DATE is required")
	}
	launchDate, err := time.ParseInLocation("2006-01-02", launchStr, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid SYSTEM_LAUNCH_DATE: %w", err)
	}

	config.Business = BusinessConfig{
		Timezone:        tz,
		Location:        loc,
		LaunchDate:      launchDate,
		AutoAbsenceCron: getEnv("CRON_MARK_ABSENT", "0 6 * * *"),
	}

	// Payroll policy configuration
	freeLates, err := getEnvInt("FREE_LATES_PER_MONTH", 3)
	if err != nil {
		return nil, err
	}
	graceMinutes, err := getEnvInt("LATE_GRACE_MINUTES", 15)
	if err != nil {
		return nil, err
	}
	commissionRate, err := decimal.NewFromString(getEnv("SALE_COMMISSION_RATE", "0.05"))
	if err != nil {
		return nil, fmt.Errorf("invalid SALE_COMMISSION_RATE: %w", err)
	}
	callsWeight, err := getEnvFloat("SCORE_WEIGHT_CALLS", 0.40)
	if err != nil {
		return nil, err
	}
	talkWeight, err := getEnvFloat("SCORE_WEIGHT_TALK_TIME", 0.30)
	if err != nil {
		return nil, err
	}
	leadsWeight, err := getEnvFloat("SCORE_WEIGHT_LEADS", 0.30)
	if err != nil {
		return nil, err
	}

	config.Payroll = PayrollConfig{
		FreeLates:          freeLates,
		LateGraceMinutes:   graceMinutes,
		CommissionRate:     commissionRate,
		ClampNegativeTotal: getEnv("PAYROLL_CLAMP_NEGATIVE_TOTAL", "false") == "true",
		CallsWeight:        callsWeight,
		TalkTimeWeight:     talkWeight,
		LeadsWeight:        leadsWeight,
	}

	// Performance targets per employment type
	config.Targets, err = loadTargets()
	if err != nil {
		return nil, err
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func loadTargets() (TargetsConfig, error) {
	var targets TargetsConfig

	load := func(prefix string, fallback TargetSet) (TargetSet, error) {
		calls, err := getEnvInt(prefix+"_CALLS", fallback.Calls)
		if err != nil {
			return TargetSet{}, err
		}
		talk, err := getEnvInt(prefix+"_TALK_SECONDS", fallback.TalkTimeSeconds)
		if err != nil {
			return TargetSet{}, err
		}
		leads, err := getEnvInt(prefix+"_LEADS", fallback.Leads)
		if err != nil {
			return TargetSet{}, err
		}
		return TargetSet{Calls: calls, TalkTimeSeconds: talk, Leads: leads}, nil
	}

	var err error
	targets.FullTime, err = load("TARGET_FULL_TIME", TargetSet{Calls: 120, TalkTimeSeconds: 10800, Leads: 3})
	if err != nil {
		return targets, err
	}
	targets.PartTime, err = load("TARGET_PART_TIME", TargetSet{Calls: 60, TalkTimeSeconds: 5400, Leads: 2})
	if err != nil {
		return targets, err
	}
	return targets, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be a valid port number")
	}
	if c.Payroll.FreeLates < 0 {
		return fmt.Errorf("FREE_LATES_PER_MONTH must not be negative")
	}
	if c.Payroll.LateGraceMinutes < 0 {
		return fmt.Errorf("LATE_GRACE_MINUTES must not be negative")
	}
	if c.Payroll.CommissionRate.IsNegative() || c.Payroll.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("SALE_COMMISSION_RATE must be between 0 and 1")
	}
	weightSum := c.Payroll.CallsWeight + c.Payroll.TalkTimeWeight + c.Payroll.LeadsWeight
	if math.Abs(weightSum-1.0) > 1e-9 {
		return fmt.Errorf("score weights must sum to 1.0, got %.4f", weightSum)
	}
	for _, set := range []struct {
		name string
		t    TargetSet
	}{
		{"TARGET_FULL_TIME", c.Targets.FullTime},
		{"TARGET_PART_TIME", c.Targets.PartTime},
	} {
		if set.t.Calls <= 0 || set.t.TalkTimeSeconds <= 0 || set.t.Leads <= 0 {
			return fmt.Errorf("%s targets must all be positive", set.name)
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, nil
}
