package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// APIConfig centraliza la configuración del servicio API.
type APIConfig struct {
	HTTPPort         string        `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL      string        `env:"DATABASE_URL,required"`
	JWTSecret        string        `env:"JWT_SECRET"`
	JWTIssuer        string        `env:"JWT_ISSUER" envDefault:"securebank"`
	JWTAudience      string        `env:"JWT_AUDIENCE" envDefault:"securebank-web"`
	JWTValidityDays  int           `env:"JWT_VALIDITY_DAYS" envDefault:"7"`
	StoreTimeout     time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`
	BcryptCost       int           `env:"BCRYPT_COST" envDefault:"0"`
	LoginMaxAttempts int           `env:"LOGIN_MAX_ATTEMPTS" envDefault:"10"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW" envDefault:"5m"`
	SMTPHost         string        `env:"SMTP_HOST"`
	SMTPPort         int           `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser         string        `env:"SMTP_USER"`
	SMTPPass         string        `env:"SMTP_PASS"`
	SMTPFrom         string        `env:"SMTP_FROM"`
	SMTPFromName     string        `env:"SMTP_FROM_NAME"`
	SMTPUseTLS       bool          `env:"SMTP_USE_TLS" envDefault:"false"`
	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
}

// WebConfig centraliza la configuración del front web.
type WebConfig struct {
	HTTPPort     string `env:"WEB_PORT" envDefault:"8081"`
	APIBaseURL   string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	TemplateGlob string `env:"TEMPLATE_GLOB" envDefault:"web/templates/*.tmpl"`
}

// LoadAPIConfig carga la configuración del API desde variables de entorno.
func LoadAPIConfig() (*APIConfig, error) {
	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadWebConfig carga la configuración del front web desde variables de entorno.
func LoadWebConfig() (*WebConfig, error) {
	var cfg WebConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
