package core

import (
	"fmt"
	"net"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug        bool
		TestMode     bool
		Env          string // DEV (default), TEST, QA, PROD
		AppName      string
		Build        string
		SecretKey    []byte
		RollbarToken string
		CORSOrigins  []string
		Server       ServerConfig
		Database     DatabaseConfig
	}

	ServerConfig struct {
		Addr               string
		DebugHost          string
		ShutdownTimeout    time.Duration
		JWTExpirationDelta time.Duration
	}

	DatabaseConfig struct {
		Engine        string
		Name          string
		User          string
		Password      string
		AdminUser     string
		AdminPassword string
		Host          string
		Port          string
		DisableTLS    bool
	}
)

func (dc DatabaseConfig) Address() string {
	return net.JoinHostPort(dc.Host, dc.Port)
}

// NewConfig loads the app configuration from the environment.
// An optional .env file is loaded first if present.
// The token signing key has no default; NewConfig fails when SECRETKEY is unset.
func NewConfig() (*Config, error) {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "TeacherPortal")
	conf.SetDefault("build", "dev")
	conf.SetDefault("corsOrigins", []string{"http://localhost:4200"})
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugHost", "localhost:6060")
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", time.Hour)
	conf.SetDefault("dbEngine", "postgres")
	conf.SetDefault("dbName", "teacherportal")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbDisableTLS", true)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		if err = godotenv.Load(); err != nil {
			return nil, errors.Wrap(err, "loading .env")
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "checking .env")
	}
	conf.AutomaticEnv()

	c := &Config{
		Debug:        conf.GetBool("debug"),
		TestMode:     strings.EqualFold(env, "TEST"),
		Env:          env,
		AppName:      conf.GetString("appName"),
		Build:        conf.GetString("build"),
		SecretKey:    []byte(conf.GetString("secretKey")),
		RollbarToken: conf.GetString("rollbarToken"),
		CORSOrigins:  conf.GetStringSlice("corsOrigins"),
		Server: ServerConfig{
			Addr:               conf.GetString("serverAddr"),
			DebugHost:          conf.GetString("serverDebugHost"),
			ShutdownTimeout:    conf.GetDuration("shutdownTimeout"),
			JWTExpirationDelta: conf.GetDuration("jwtExpirationDelta"),
		},
		Database: DatabaseConfig{
			Engine:        conf.GetString("dbEngine"),
			Name:          conf.GetString("dbName"),
			User:          conf.GetString("dbUser"),
			Password:      conf.GetString("dbPassword"),
			AdminUser:     conf.GetString("dbAdminUser"),
			AdminPassword: conf.GetString("dbAdminPassword"),
			Host:          conf.GetString("dbHost"),
			Port:          conf.GetString("dbPort"),
			DisableTLS:    conf.GetBool("dbDisableTLS"),
		},
	}

	if len(c.SecretKey) == 0 {
		return nil, fmt.Errorf("SECRETKEY is not set")
	}
	return c, nil
}
