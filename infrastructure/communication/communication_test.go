package communication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timesheet.app/timesheet/timesheet/model"
)

type fakeSES struct {
	inputs []*ses.SendRawEmailInput
	err    error
}

func (f *fakeSES) SendRawEmail(ctx context.Context, params *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, params)
	return &ses.SendRawEmailOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeChannel struct {
	submissions []WeekSubmission
	decisions   []WeekDecision
	reminders   []Reminder
	err         error
}

func (f *fakeChannel) NotifyDecision(ctx context.Context, d WeekDecision) error {
	f.decisions = append(f.decisions, d)
	return f.err
}

func (f *fakeChannel) NotifySubmission(ctx context.Context, s WeekSubmission) error {
	f.submissions = append(f.submissions, s)
	return f.err
}

func (f *fakeChannel) NotifyReminders(ctx context.Context, reminders []Reminder) error {
	f.reminders = append(f.reminders, reminders...)
	return f.err
}

func TestBuildEmailBuffer(t *testing.T) {
	buf, err := BuildEmailBuffer(&EmailInfo{
		From:    "timesheet@example.com",
		To:      []string{"a@example.com", "b@example.com"},
		Subject: "Timesheet export",
		Text:    "See attached.",
		Attachments: []Attachment{
			{Filename: "timesheets.xlsx", ContentType: "application/octet-stream", Content: []byte("xlsx")},
		},
	})
	require.NoError(t, err)

	raw := buf.String()
	assert.Contains(t, raw, "From: timesheet@example.com\r\n")
	assert.Contains(t, raw, "To: a@example.com, b@example.com\r\n")
	assert.Contains(t, raw, "Subject: Timesheet export\r\n")
	assert.Contains(t, raw, "See attached.")
	assert.Contains(t, raw, `filename="timesheets.xlsx"`)
	assert.Contains(t, raw, "eGxzeA==")
}

func TestEmailNotifySubmission(t *testing.T) {
	client := &fakeSES{}
	email := NewEmail(client, "timesheet@example.com", []string{"manager@example.com"})

	err := email.NotifySubmission(context.Background(), WeekSubmission{
		EmployeeName: "Luca Bianchi", WeekStart: "2024-06-03", WeekEnd: "2024-06-09", Hours: 40,
	})
	require.NoError(t, err)
	require.Len(t, client.inputs, 1)
	assert.Equal(t, []string{"manager@example.com"}, client.inputs[0].Destinations)
	raw := string(client.inputs[0].RawMessage.Data)
	assert.Contains(t, raw, "Luca Bianchi submitted the week 2024-06-03 - 2024-06-09 (40.0h)")
}

func TestEmailWithoutRecipients(t *testing.T) {
	email := NewEmail(&fakeSES{}, "timesheet@example.com", nil)
	err := email.NotifySubmission(context.Background(), WeekSubmission{})
	assert.Error(t, err)
}

func TestNotifierFanOut(t *testing.T) {
	ok := &fakeChannel{}
	failing := &fakeChannel{err: errors.New("slack down")}
	n := &Notifier{
		Channels: []Channel{ok, failing},
		Names:    func(ctx context.Context, id int) string { return "Luca Bianchi" },
	}

	err := n.WeekSubmitted(context.Background(), 4, "2024-06-03", "2024-06-09", 40)
	assert.ErrorContains(t, err, "slack down")
	require.Len(t, ok.submissions, 1)
	assert.Equal(t, "Luca Bianchi", ok.submissions[0].EmployeeName)

	assert.NoError(t, n.Remind(context.Background(), nil))
	assert.Empty(t, ok.reminders)

	err = n.WeekDecided(context.Background(), 4, "2024-06-03", "2024-06-09", model.StatusRejected, "Anna Verdi")
	assert.ErrorContains(t, err, "slack down")
	require.Len(t, ok.decisions, 1)
	assert.Equal(t, "The week 2024-06-03 - 2024-06-09 of Luca Bianchi was rejected by Anna Verdi.", ok.decisions[0].Text())
}

func TestSlackNotify(t *testing.T) {
	var posted []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		posted = append(posted, r.Form.Get("channel")+":"+r.Form.Get("text"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true,"channel":"C1","ts":"1.0"}`))
	}))
	defer srv.Close()

	s := NewSlack("xoxb-test", SlackOption{InfoChannelID: "C1", ErrorChannelID: "C9", APIURL: srv.URL + "/"})
	err := s.NotifyReminders(context.Background(), []Reminder{
		{EmployeeName: "Luca Bianchi", WeekStart: "2024-06-03", Days: []string{"2024-06-04"}},
	})
	require.NoError(t, err)
	require.Len(t, posted, 1)
	assert.True(t, strings.HasPrefix(posted[0], "C1:Incomplete timesheets:"))
	assert.Contains(t, posted[0], "week 2024-06-03 is incomplete (2024-06-04)")

	n := &Notifier{Channels: []Channel{s, &fakeChannel{}}}
	require.NoError(t, n.Alert(context.Background(), "reminder failed: gateway down"))
	require.Len(t, posted, 2)
	assert.Equal(t, "C9::warning: reminder failed: gateway down", posted[1])
}
