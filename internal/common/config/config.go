package config

import "strings"

// Config is the main application configuration struct, assembled once at
// startup and passed down explicitly.
type Config struct {
	WasteAPI    WasteAPIConfig    `mapstructure:",squash"`
	Preferences PreferencesConfig `mapstructure:",squash"`
	Slack       SlackConfig       `mapstructure:",squash"`
	Twilio      TwilioConfig      `mapstructure:",squash"`
	SNS         SNSConfig         `mapstructure:",squash"`
	Logging     LoggingConfig     `mapstructure:",squash"`
}

// WasteAPIConfig points at the council's waste collection API.
type WasteAPIConfig struct {
	BaseURL         string `mapstructure:"waste_api_url"`
	Postcode        string `mapstructure:"postcode"`
	HouseNumber     string `mapstructure:"house_number"`
	CollectionCount int    `mapstructure:"collection_count"`
}

func (w WasteAPIConfig) Configured() bool {
	return w.BaseURL != "" && w.Postcode != "" && w.HouseNumber != ""
}

// PreferencesConfig holds the reminder preferences.
type PreferencesConfig struct {
	Timezone              string `mapstructure:"timezone"`
	ImmediateReminder     bool   `mapstructure:"immediate_reminder"`
	DayBeforeReminderTime string `mapstructure:"day_before_reminder_time"`
	DayOfReminderTime     string `mapstructure:"day_of_reminder_time"`
}

// SlackConfig holds the chat-channel sender credentials and recipients.
type SlackConfig struct {
	AccessToken   string `mapstructure:"slack_access_token"`
	RecipientsRaw string `mapstructure:"slack_recipients"`
}

func (s SlackConfig) Configured() bool {
	return s.AccessToken != "" && s.RecipientsRaw != ""
}

func (s SlackConfig) Recipients() []string {
	return splitRecipients(s.RecipientsRaw)
}

// TwilioConfig holds the Twilio SMS sender credentials and recipients.
type TwilioConfig struct {
	AccountSID          string `mapstructure:"twilio_account_sid"`
	AuthToken           string `mapstructure:"twilio_auth_token"`
	MessagingServiceSID string `mapstructure:"twilio_messaging_service_sid"`
	RecipientsRaw       string `mapstructure:"twilio_recipients"`
}

func (t TwilioConfig) Configured() bool {
	return t.AccountSID != "" && t.AuthToken != "" && t.MessagingServiceSID != "" && t.RecipientsRaw != ""
}

func (t TwilioConfig) Recipients() []string {
	return splitRecipients(t.RecipientsRaw)
}

// SNSConfig holds the AWS SNS SMS sender settings. Optional; SNS only
// supports immediate delivery.
type SNSConfig struct {
	Region        string `mapstructure:"sns_region"`
	RecipientsRaw string `mapstructure:"sns_recipients"`
}

func (s SNSConfig) Configured() bool {
	return s.Region != "" && s.RecipientsRaw != ""
}

func (s SNSConfig) Recipients() []string {
	return splitRecipients(s.RecipientsRaw)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"log_level"`
	Format string `mapstructure:"log_format"`
}

// SenderCount returns how many sender sections are fully configured.
func (c *Config) SenderCount() int {
	count := 0
	if c.Slack.Configured() {
		count++
	}
	if c.Twilio.Configured() {
		count++
	}
	if c.SNS.Configured() {
		count++
	}
	return count
}

func splitRecipients(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	recipients := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	return recipients
}
