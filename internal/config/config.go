package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/dlclark/regexp2"
	"github.com/fsnotify/fsnotify"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Lookahead needs regexp2; the stdlib regexp engine rejects the pattern.
const signingKeyPattern = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`

var errWeakSigningKey = errors.New("jwt_signing_key must be at least 8 characters and contain a letter and a digit")

type AppConfig struct {
	API        *APIConfig        `mapstructure:"api"`
	Gin        *GinConfig        `mapstructure:"gin"`
	Postgres   *PostgresConfig   `mapstructure:"postgres"`
	Validation *ValidationConfig `mapstructure:"validation"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	Port               string `mapstructure:"port"`
	BaseURL            string `mapstructure:"base_url"`
	AuthEnabled        bool   `mapstructure:"auth_enabled"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	LoginPassword      string `mapstructure:"login_password"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

// ValidationConfig carries the payload-validation switches that differ
// between the gated and ungated deployments.
type ValidationConfig struct {
	StrictPrice          bool `mapstructure:"strict_price"`
	CheckDescriptionType bool `mapstructure:"check_description_type"`
}

func Load(configPath string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed, restart to apply", zap.String("file", e.Name))
	})

	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	// Secrets can be overridden from the environment so they never have to
	// live in the checked-in YAML.
	if key := os.Getenv("JWT_SIGNING_KEY"); key != "" {
		conf.API.JWTSigningKey = key
	}
	if password := os.Getenv("LOGIN_PASSWORD"); password != "" {
		conf.API.LoginPassword = password
	}

	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("conf.Validate -> %w", err)
	}

	return conf, nil
}

func (c *AppConfig) Validate() error {
	if c.API == nil || c.Gin == nil || c.Postgres == nil || c.Validation == nil {
		return errors.New("config is missing one of the api/gin/postgres/validation sections")
	}

	err := validation.ValidateStruct(
		c.API,
		validation.Field(&c.API.Environment, validation.Required),
		validation.Field(&c.API.Port, validation.Required),
	)
	if err != nil {
		return err
	}

	if !c.API.AuthEnabled {
		return nil
	}

	err = validation.ValidateStruct(
		c.API,
		validation.Field(&c.API.JWTSigningKey, validation.Required),
		validation.Field(&c.API.LoginPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	strength := regexp2.MustCompile(signingKeyPattern, regexp2.None)
	if ok, _ := strength.MatchString(c.API.JWTSigningKey); !ok {
		return errWeakSigningKey
	}

	return nil
}
