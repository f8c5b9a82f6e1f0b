package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Conflict policies applied by callers of the conflict detector.
const (
	PolicyReject = "reject"
	PolicyWarn   = "warn"
)

type (
	Config struct {
		Debug        bool
		TestMode     bool
		AppName      string
		Env          string `validate:"required"`
		Build        string
		RollbarToken string
		Host         string
		Schedule     ScheduleConfig
	}

	ScheduleConfig struct {
		File           string
		ConflictPolicy string `validate:"oneof=reject warn"`
		TwelveHour     bool
		Color          bool
	}
)

// NewConfig loads the configuration from defaults, an optional `config/.env.<env>` file and the environment.
// Environment variables are prefixed by the environment name, e.g. `DEV_SCHEDULE_CONFLICTPOLICY=warn`.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Timetable")
	v.SetDefault("build", "develop")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("host", "localhost")
	v.SetDefault("schedule.file", "schedules.json")
	v.SetDefault("schedule.conflictPolicy", PolicyReject)
	v.SetDefault("schedule.twelveHour", false)
	v.SetDefault("schedule.color", true)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(configDir(), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Env:          env,
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Host:         v.GetString("host"),
		Schedule: ScheduleConfig{
			File:           v.GetString("schedule.file"),
			ConflictPolicy: CleanString(v.GetString("schedule.conflictPolicy"), true /* lower */),
			TwelveHour:     v.GetBool("schedule.twelveHour"),
			Color:          v.GetBool("schedule.color"),
		},
	}
}

func (conf *Config) Validate() error {
	if err := Validate.Struct(conf); err != nil {
		return errors.Wrap(err, "validating config")
	}
	return nil
}

// configDir is `CONFIG_DIR` when set, `./config` otherwise.
func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(wd, "config")
}
