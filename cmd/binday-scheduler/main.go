// Command binday-scheduler runs one pass of the waste collection reminder:
// fetch the upcoming collections, evaluate the notification rules, and hand
// the results to every configured sender. The host cron fires it; the
// process never loops.
package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"binday-scheduler/internal/common/config"
	commonhttp "binday-scheduler/internal/common/http"
	"binday-scheduler/internal/common/logger"
	"binday-scheduler/internal/rules"
	"binday-scheduler/internal/senders"
	"binday-scheduler/internal/wasteapi"
)

func main() {
	pastDue := flag.Bool("past-due", false, "set by the host when this trigger fired late")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	if *pastDue {
		log.Warn("trigger is past due", nil)
	}

	ctx := context.Background()

	loc, err := cfg.Location()
	if err != nil {
		zapLog.Fatal("timezone resolution failed", zap.Error(err))
	}

	dispatcher, err := buildDispatcher(ctx, cfg, log)
	if err != nil {
		zapLog.Fatal("sender setup failed", zap.Error(err))
	}

	ruleSet, err := rules.DefaultSet(log, rules.Preferences{
		Location:          loc,
		ImmediateReminder: cfg.Preferences.ImmediateReminder,
		DayBeforeTime:     cfg.Preferences.DayBeforeReminderTime,
		DayOfTime:         cfg.Preferences.DayOfReminderTime,
	})
	if err != nil {
		zapLog.Fatal("rule setup failed", zap.Error(err))
	}

	client := wasteapi.NewClient(cfg.WasteAPI.BaseURL, commonhttp.NewClient(0), log)

	addressID, err := client.LookupAddress(ctx, cfg.WasteAPI.Postcode, cfg.WasteAPI.HouseNumber)
	if err != nil {
		zapLog.Fatal("address lookup failed", zap.Error(err))
	}

	events, err := client.FetchCollections(ctx, addressID, cfg.WasteAPI.CollectionCount)
	if err != nil {
		zapLog.Fatal("collection fetch failed", zap.Error(err))
	}

	notifications := ruleSet.Evaluate(events)
	if len(notifications) == 0 {
		log.Info("no notifications to send", map[string]interface{}{"events": len(events)})
		return
	}

	failures := dispatcher.Dispatch(ctx, notifications)
	log.Info("run complete", map[string]interface{}{
		"notifications": len(notifications),
		"failures":      failures,
	})
}

func buildDispatcher(ctx context.Context, cfg *config.Config, log logger.Logger) (*senders.Dispatcher, error) {
	var list []senders.Sender

	if cfg.Slack.Configured() {
		list = append(list, senders.NewSlackSender(cfg.Slack.AccessToken, cfg.Slack.Recipients(), log))
	}
	if cfg.Twilio.Configured() {
		list = append(list, senders.NewTwilioSender(
			cfg.Twilio.AccountSID,
			cfg.Twilio.AuthToken,
			cfg.Twilio.MessagingServiceSID,
			cfg.Twilio.Recipients(),
			log,
		))
	}
	if cfg.SNS.Configured() {
		snsSender, err := senders.NewSNSSender(ctx, cfg.SNS.Region, cfg.SNS.Recipients(), log)
		if err != nil {
			return nil, err
		}
		list = append(list, snsSender)
	}

	return senders.NewDispatcher(log, list...), nil
}
