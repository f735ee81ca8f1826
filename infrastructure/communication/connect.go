package communication

import (
	"context"

	"timesheet.app/timesheet/config"
)

// Connect builds a notifier from the configured channels. It returns nil
// when neither Slack nor email is configured.
func Connect(ctx context.Context, cfg *config.Config) (*Notifier, error) {
	var channels []Channel
	if cfg.Slack.Token != "" && cfg.Slack.Channel != "" {
		channels = append(channels, NewSlack(cfg.Slack.Token, SlackOption{
			InfoChannelID:  cfg.Slack.Channel,
			ErrorChannelID: cfg.Slack.ErrorChannel,
		}))
	}
	if cfg.Email.From != "" && len(cfg.Email.To) > 0 {
		email, err := ConnectEmail(ctx, cfg.Email.Region, cfg.Email.From, cfg.Email.To)
		if err != nil {
			return nil, err
		}
		channels = append(channels, email)
	}
	if len(channels) == 0 {
		return nil, nil
	}
	return &Notifier{Channels: channels}, nil
}
