package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	DBUser string `envconfig:"DB_USER" default:"root"`
	DBPass string `envconfig:"DB_PASS" default:""`
	DBHost string `envconfig:"DB_HOST" default:"127.0.0.1"`
	DBPort string `envconfig:"DB_PORT" default:"3306"`
	DBName string `envconfig:"DB_NAME" default:"boba_order"`

	MidtransServerKey string `envconfig:"MIDTRANS_SERVER_KEY" default:""`
	MidtransClientKey string `envconfig:"MIDTRANS_CLIENT_KEY" default:""`
	MidtransEnv       string `envconfig:"MIDTRANS_ENV" default:"sandbox"`

	LLMBaseURL string `envconfig:"LLM_BASE_URL" default:"https://api.openai.com"`
	LLMAPIKey  string `envconfig:"LLM_API_KEY" default:""`
	LLMModel   string `envconfig:"LLM_MODEL" default:"gpt-4o-mini"`
}

// Load processes typed config from the environment (after godotenv has
// loaded .env in main).
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// InitDB opens the MySQL connection from config.
func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
