package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ZoVoS/welsh-advanced/pkg/validator"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	ProviderDB   = "db"
	ProviderHTTP = "http"
	ProviderFS   = "fs"
)

type Config struct {
	App      AppConfig      `mapstructure:"app" validate:"required"`
	Quiz     QuizConfig     `mapstructure:"quiz" validate:"required"`
	Provider ProviderConfig `mapstructure:"provider" validate:"required"`
	API      APIConfig      `mapstructure:"api"`
	BotToken string         `mapstructure:"bot_token" validate:"required"`
	DB       DBConfig       `mapstructure:"db" validate:"-"`
	Env      string         `mapstructure:"env" validate:"oneof=development production staging"`
}

type AppConfig struct {
	Timeout       time.Duration `mapstructure:"timeout" validate:"min=1"`
	AdvanceDelay  time.Duration `mapstructure:"advance_delay" validate:"min=0"`
	AutoplayDelay time.Duration `mapstructure:"autoplay_delay" validate:"min=0"`
	TickInterval  time.Duration `mapstructure:"tick_interval" validate:"min=1"`
}

type QuizConfig struct {
	Difficulty         int  `mapstructure:"difficulty" validate:"min=1,max=20"`
	QuestionCount      int  `mapstructure:"question_count" validate:"min=1,max=100"`
	PreferPrimaryText  bool `mapstructure:"prefer_primary_text"`
	PreferPrimaryMedia bool `mapstructure:"prefer_primary_media"`
}

type ProviderConfig struct {
	Kind      string `mapstructure:"kind" validate:"oneof=db http fs"`
	BaseURL   string `mapstructure:"base_url" validate:"required_if=Kind http"`
	AssetsDir string `mapstructure:"assets_dir" validate:"required_if=Kind fs"`
	PublicURL string `mapstructure:"public_url" validate:"omitempty,url"`
}

type APIConfig struct {
	Enabled        bool     `mapstructure:"enabled"`
	Addr           string   `mapstructure:"addr" validate:"required_if=Enabled true"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	// Admin exposes the vocabulary management routes. They carry no auth.
	Admin     bool  `mapstructure:"admin"`
	MaxUpload int64 `mapstructure:"max_upload" validate:"min=0"`
}

type DBConfig struct {
	Conn DBConn `mapstructure:"conn"`
	Cfg  DBCfg  `mapstructure:"cfg"`
}

type DBConn struct {
	Host     string `mapstructure:"host" validate:"required"`
	Port     string `mapstructure:"port" validate:"required"`
	User     string `mapstructure:"user" validate:"required"`
	Password string `mapstructure:"password" validate:"required"`
	Name     string `mapstructure:"name" validate:"required"`
	SSL      string `mapstructure:"ssl" validate:"oneof=disable require verify-full"`
}

type DBCfg struct {
	MaxOpenConns    int           `mapstructure:"max_open_conns" validate:"min=1,max=1000"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns" validate:"min=0,max=100"`
	ConnMaxLifeTime time.Duration `mapstructure:"conn_max_life_time" validate:"min=0"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time" validate:"min=0"`
}

// NeedsDB reports whether the configuration requires a Postgres connection.
func (c *Config) NeedsDB() bool {
	return c.Provider.Kind == ProviderDB
}

var envBindings = map[string]string{
	"bot_token":           "BOT_TOKEN",
	"env":                 "APP_ENV",
	"provider.kind":       "PROVIDER_KIND",
	"provider.base_url":   "PROVIDER_BASE_URL",
	"provider.assets_dir": "ASSETS_DIR",
	"provider.public_url": "PUBLIC_URL",
	"api.addr":            "API_ADDR",
	"api.admin":           "API_ADMIN",
	"db.conn.host":        "DB_HOST",
	"db.conn.port":        "DB_PORT",
	"db.conn.user":        "DB_USER",
	"db.conn.password":    "DB_PASSWORD",
	"db.conn.name":        "DB_NAME",
	"db.conn.ssl":         "DB_SSL",
}

func Init() (*Config, error) {
	// .env is optional; real environment variables win over it
	_ = godotenv.Load()

	v := viper.New()

	v.AutomaticEnv()

	configName := os.Getenv("CONFIG_NAME")
	if configName == "" {
		configName = "default"
	}
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs"
	}

	v.AddConfigPath(configPath)
	v.SetConfigName(configName)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Config{}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.ValidateStruct(cfg); err != nil {
		return nil, err
	}

	if cfg.NeedsDB() {
		if err := validator.ValidateStruct(cfg.DB); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}
