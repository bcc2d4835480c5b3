package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/muskiz/beach-handball/models"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	ServerPort   int
	JWTSecretKey string

	// Один из двух обязателен. Хеш имеет приоритет.
	AdminPassword     string
	AdminPasswordHash string

	CORSOrigins []string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string

	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	SMTPFrom  string
	NotifyTo  []string
	PublicURL string

	Fees   map[models.Division]int
	Limits models.CategoryLimits

	LoginRatePerMinute int
	// TrustProxy: брать IP клиента из X-Forwarded-For/X-Real-IP.
	// Включать только за своим reverse proxy, иначе заголовок подделывается.
	TrustProxy bool
}

// R2Enabled сообщает, заданы ли все параметры Cloudflare R2.
func (c *Config) R2Enabled() bool {
	return c.R2AccountID != "" && c.R2AccessKeyID != "" && c.R2SecretAccessKey != "" &&
		c.R2BucketName != "" && c.R2PublicBaseURL != ""
}

func (c *Config) SMTPEnabled() bool {
	return c.SMTPHost != "" && c.SMTPFrom != "" && len(c.NotifyTo) > 0
}

// Load загружает конфигурацию из переменных окружения.
// Опционально подгружает .env файл (полезно для локальной разработки).
func Load() (*Config, error) {
	// Ошибку не считаем фатальной: в проде .env обычно нет.
	_ = godotenv.Load()

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminPassword == "" && adminHash == "" {
		return nil, fmt.Errorf("either ADMIN_PASSWORD or ADMIN_PASSWORD_HASH must be set")
	}

	port, err := intEnv("SERVER_PORT", 8080)
	if err != nil {
		return nil, err
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	smtpPort, err := intEnv("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}

	loginRate, err := intEnv("LOGIN_RATE_PER_MINUTE", 10)
	if err != nil {
		return nil, err
	}
	if loginRate <= 0 {
		return nil, fmt.Errorf("LOGIN_RATE_PER_MINUTE must be positive, got %d", loginRate)
	}

	trustProxy, err := boolEnv("TRUST_PROXY", false)
	if err != nil {
		return nil, err
	}

	fees := make(map[models.Division]int, 3)
	limits := make(models.CategoryLimits, 3)
	for _, d := range []struct {
		division   models.Division
		suffix     string
		fee, limit int
	}{
		{models.DivisionElite, "ELITE", 250, 8},
		{models.DivisionAmateur, "AMATEUR", 150, 16},
		{models.DivisionJuvenile, "JUVENIL", 100, 12},
	} {
		fee, err := intEnv("FEE_"+d.suffix, d.fee)
		if err != nil {
			return nil, err
		}
		limit, err := intEnv("LIMIT_"+d.suffix, d.limit)
		if err != nil {
			return nil, err
		}
		if fee < 0 || limit < 0 {
			return nil, fmt.Errorf("FEE_%s and LIMIT_%s must not be negative", d.suffix, d.suffix)
		}
		fees[d.division] = fee
		limits[d.division] = limit
	}

	cfg := &Config{
		ServerPort:         port,
		JWTSecretKey:       jwtKey,
		AdminPassword:      adminPassword,
		AdminPasswordHash:  adminHash,
		CORSOrigins:        listEnv("CORS_ORIGINS", []string{"*"}),
		R2AccountID:        os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:      os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:  os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:       os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:    os.Getenv("R2_PUBLIC_BASE_URL"),
		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           smtpPort,
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPass:           os.Getenv("SMTP_PASS"),
		SMTPFrom:           os.Getenv("SMTP_FROM"),
		NotifyTo:           listEnv("SMTP_NOTIFY_TO", nil),
		PublicURL:          strings.TrimRight(os.Getenv("PUBLIC_URL"), "/"),
		Fees:               fees,
		Limits:             limits,
		LoginRatePerMinute: loginRate,
		TrustProxy:         trustProxy,
	}

	return cfg, nil
}

func intEnv(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func boolEnv(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	return v, nil
}

func listEnv(key string, def []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
