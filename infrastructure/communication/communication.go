package communication

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
)

// Slack posts as the bot user. Alerts go to the error channel, everything
// else to the info channel.
type Slack struct {
	client  *slack.Client
	options SlackOption
}

type SlackOption struct {
	InfoChannelID  string
	ErrorChannelID string
	// APIURL overrides the Slack endpoint, for tests.
	APIURL string
}

func NewSlack(token string, options SlackOption) *Slack {
	var opts []slack.Option
	if options.APIURL != "" {
		opts = append(opts, slack.OptionAPIURL(options.APIURL))
	}
	if options.ErrorChannelID == "" {
		options.ErrorChannelID = options.InfoChannelID
	}
	return &Slack{client: slack.New(token, opts...), options: options}
}

func (s *Slack) post(ctx context.Context, channelID string, lines ...string) error {
	_, _, err := s.client.PostMessageContext(ctx,
		channelID,
		slack.MsgOptionText(strings.Join(lines, "\n"), false),
		slack.MsgOptionAsUser(true),
	)
	if err != nil {
		return fmt.Errorf("failed to post to slack channel %s: %w", channelID, err)
	}
	return nil
}

func (this *Slack) Info(ctx context.Context, message string) error {
	return this.post(ctx, this.options.InfoChannelID, message)
}

func (this *Slack) Error(ctx context.Context, message string) error {
	return this.post(ctx, this.options.ErrorChannelID, ":warning: "+message)
}

func (this *Slack) NotifySubmission(ctx context.Context, s WeekSubmission) error {
	return this.Info(ctx, s.Text())
}

func (this *Slack) NotifyDecision(ctx context.Context, d WeekDecision) error {
	return this.Info(ctx, d.Text())
}

func (this *Slack) NotifyReminders(ctx context.Context, reminders []Reminder) error {
	lines := []string{"Incomplete timesheets:"}
	for _, r := range reminders {
		lines = append(lines, "- "+r.Text())
	}
	return this.post(ctx, this.options.InfoChannelID, lines...)
}

// Alert reports a failed job.
func (this *Slack) Alert(ctx context.Context, message string) error {
	return this.Error(ctx, message)
}
