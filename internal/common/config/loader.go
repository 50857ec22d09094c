package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "binday-scheduler/internal/common/errors"
	"binday-scheduler/internal/wasteapi"
)

// Load assembles the configuration from the environment. A .env file in the
// working directory is honored when present. Validation failures are config
// errors and abort before any network call.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	v := viper.New()
	v.AutomaticEnv()
	applyDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to unmarshal config", err.Error())
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("waste_api_url", "")
	v.SetDefault("postcode", "")
	v.SetDefault("house_number", "")
	v.SetDefault("collection_count", wasteapi.DefaultCollectionCount)

	v.SetDefault("timezone", "")
	v.SetDefault("immediate_reminder", false)
	v.SetDefault("day_before_reminder_time", "20:30")
	v.SetDefault("day_of_reminder_time", "07:30")

	v.SetDefault("slack_access_token", "")
	v.SetDefault("slack_recipients", "")

	v.SetDefault("twilio_account_sid", "")
	v.SetDefault("twilio_auth_token", "")
	v.SetDefault("twilio_messaging_service_sid", "")
	v.SetDefault("twilio_recipients", "")

	v.SetDefault("sns_region", "")
	v.SetDefault("sns_recipients", "")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
}

func validate(cfg *Config) error {
	if !cfg.WasteAPI.Configured() {
		return apperrors.NewConfigError(
			"invalid or missing waste collection api config",
			"WASTE_API_URL, POSTCODE and HOUSE_NUMBER are required",
		)
	}

	if cfg.SenderCount() == 0 {
		return apperrors.NewConfigError(
			"invalid or missing message senders",
			"configure at least one of Slack, Twilio or SNS",
		)
	}

	if _, err := cfg.Location(); err != nil {
		return err
	}

	for key, value := range map[string]string{
		"DAY_BEFORE_REMINDER_TIME": cfg.Preferences.DayBeforeReminderTime,
		"DAY_OF_REMINDER_TIME":     cfg.Preferences.DayOfReminderTime,
	} {
		if _, err := time.Parse("15:04", value); err != nil {
			return apperrors.NewConfigError(
				fmt.Sprintf("invalid %s '%s'", key, value),
				"expected HH:MM",
			)
		}
	}

	return nil
}

// Location resolves the configured IANA timezone, defaulting to the host's
// local zone when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Preferences.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Preferences.Timezone)
	if err != nil {
		return nil, apperrors.NewConfigError(
			fmt.Sprintf("invalid timezone '%s'", c.Preferences.Timezone),
			err.Error(),
		)
	}
	return loc, nil
}
