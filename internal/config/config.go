package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	S3       S3Config       `mapstructure:"s3"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Log      LogConfig      `mapstructure:"log"`
	Sync     SyncConfig     `mapstructure:"sync"`
	App      AppConfig      `mapstructure:"app"`
	Coach    CoachConfig    `mapstructure:"coach"`
}

type ServerConfig struct {
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	URI  string `mapstructure:"uri"`
	Name string `mapstructure:"name"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	BucketName      string `mapstructure:"bucket_name"`
	UseSSL          bool   `mapstructure:"use_ssl"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Stdout bool   `mapstructure:"stdout"`
	JSON   bool   `mapstructure:"json"`
}

// SyncConfig controls the live athlete snapshot.
type SyncConfig struct {
	// PollInterval is used when the database cannot stream changes.
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

// CoachConfig is the coach account created at startup. Coaches cannot sign
// up through the API.
type CoachConfig struct {
	Name     string `mapstructure:"name"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type AppConfig struct {
	// Timezone decides what "today" is for charts, streaks and session dates.
	Timezone    string        `mapstructure:"timezone"`
	PhotoURLTTL time.Duration `mapstructure:"photo_url_ttl"`
}

// Location resolves the configured timezone.
func (a AppConfig) Location() (*time.Location, error) {
	return time.LoadLocation(a.Timezone)
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// server.address -> SERVER_ADDRESS
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("database.uri", "mongodb://localhost:27017")
	v.SetDefault("database.name", "abfit")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.use_ssl", true)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.stdout", true)
	v.SetDefault("log.json", false)
	v.SetDefault("sync.poll_interval", "15s")
	v.SetDefault("app.timezone", "America/Sao_Paulo")
	v.SetDefault("app.photo_url_ttl", "15m")
	v.SetDefault("coach.name", "Coach")
	v.SetDefault("coach.email", "")
	v.SetDefault("coach.password", "")

	// A missing config file is fine, env vars and defaults still apply.
	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, err
	}

	if config.JWT.Secret == "" {
		return config, errors.New("jwt.secret must be set")
	}
	if config.Coach.Email != "" && config.Coach.Password == "" {
		return config, errors.New("coach.password must be set together with coach.email")
	}
	if _, err = config.App.Location(); err != nil {
		return config, err
	}

	return config, nil
}
