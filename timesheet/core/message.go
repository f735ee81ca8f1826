package core

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type MessageKind string

const (
	MessageSuccess MessageKind = "success"
	MessageError   MessageKind = "error"
)

// Message is the single user-facing outcome of an operation.
type Message struct {
	Kind MessageKind `json:"kind"`
	Text string      `json:"text"`
}

const (
	msgIncompleteWeek  = "Cannot submit: every day must have exactly %.1f hours. Incomplete days: %s"
	msgIncompleteDay   = "%s %d (%.1fh, missing %.1fh)"
	msgWeekSubmitted   = "Week saved and submitted for approval!"
	msgNothingToSubmit = "No changes to submit"
	msgEntryApproved   = "Timesheet approved!"
	msgEntryRejected   = "Timesheet rejected!"
	msgWeekApproved    = "Week approved!"
	msgWeekRejected    = "Week rejected!"
	msgSaved           = "Saved!"
	msgDeleted         = "Deleted!"
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func init() {
	it := language.Italian
	for key, text := range map[string]string{
		msgIncompleteWeek:  "Impossibile inviare: tutti i giorni devono avere esattamente %.1f ore. Giorni incompleti: %s",
		msgIncompleteDay:   "%s %d (%.1fh, mancano %.1fh)",
		msgWeekSubmitted:   "Settimana salvata e inviata in approvazione!",
		msgNothingToSubmit: "Nessuna modifica da inviare",
		msgEntryApproved:   "Timesheet approvato!",
		msgEntryRejected:   "Timesheet rifiutato!",
		msgWeekApproved:    "Settimana approvata!",
		msgWeekRejected:    "Settimana rifiutata!",
		msgSaved:           "Salvato!",
		msgDeleted:         "Eliminato!",

		ErrInvalidHours.Error():       "Ore non valide",
		ErrWeekendEdit.Error():        "Sabato e domenica non sono modificabili",
		ErrSelectionMissing.Error():   "Seleziona progetto e commessa prima di inserire le ore",
		ErrSubProjectInUse.Error():    "Commessa già utilizzata in un'altra riga",
		ErrSubProjectMismatch.Error(): "La commessa non appartiene al progetto selezionato",
		ErrRowNotFound.Error():        "Riga non trovata",
		ErrDateOutsideWeek.Error():    "Data fuori dalla settimana corrente",
		ErrWeekApproved.Error():       "Settimana già approvata",
		ErrNotPending.Error():         "Il timesheet non è più in attesa di approvazione",

		"Sun": "dom", "Mon": "lun", "Tue": "mar", "Wed": "mer",
		"Thu": "gio", "Fri": "ven", "Sat": "sab",
	} {
		_ = message.SetString(it, key, text)
	}
}

// Localizer renders user-facing messages in one language.
type Localizer struct {
	printer *message.Printer
}

// NewLocalizer falls back to Italian for unknown or empty languages.
func NewLocalizer(lang string) *Localizer {
	tag, err := language.Parse(lang)
	if err != nil || lang == "" {
		tag = language.Italian
	}
	return &Localizer{printer: message.NewPrinter(tag)}
}

// Printer formats in the localizer's language.
func (l *Localizer) Printer() *message.Printer {
	return l.printer
}

func (l *Localizer) Success(key string) Message {
	return Message{Kind: MessageSuccess, Text: l.printer.Sprintf(key)}
}

func (l *Localizer) WeekSubmitted() Message   { return l.Success(msgWeekSubmitted) }
func (l *Localizer) NothingToSubmit() Message { return l.Success(msgNothingToSubmit) }
func (l *Localizer) EntryApproved() Message   { return l.Success(msgEntryApproved) }
func (l *Localizer) EntryRejected() Message   { return l.Success(msgEntryRejected) }
func (l *Localizer) WeekApproved() Message    { return l.Success(msgWeekApproved) }
func (l *Localizer) WeekRejected() Message    { return l.Success(msgWeekRejected) }
func (l *Localizer) Saved() Message           { return l.Success(msgSaved) }
func (l *Localizer) Deleted() Message         { return l.Success(msgDeleted) }

// IncompleteWeek describes every incomplete day of the validation.
func (l *Localizer) IncompleteWeek(v WeekValidation) string {
	days := make([]string, 0, len(v.IncompleteDays))
	for _, d := range v.IncompleteDays {
		day, err := time.Parse(DateLayout, d.Date)
		if err != nil {
			continue
		}
		days = append(days, l.printer.Sprintf(msgIncompleteDay,
			l.printer.Sprintf(weekdayNames[day.Weekday()]), day.Day(), d.Total, d.Missing))
	}
	return l.printer.Sprintf(msgIncompleteWeek, HoursPerDay, strings.Join(days, ", "))
}

// Error turns any error into an error message. Local validation failures are
// translated; gateway errors keep their text.
func (l *Localizer) Error(err error) Message {
	var incomplete *IncompleteWeekError
	if errors.As(err, &incomplete) {
		return Message{Kind: MessageError, Text: l.IncompleteWeek(incomplete.Validation)}
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		if ve.Message != "" {
			return Message{Kind: MessageError, Text: ve.Message}
		}
		for _, sentinel := range []error{
			ErrInvalidHours, ErrWeekendEdit, ErrSelectionMissing, ErrSubProjectInUse,
			ErrSubProjectMismatch, ErrRowNotFound, ErrDateOutsideWeek, ErrWeekApproved,
			ErrNotPending,
		} {
			if errors.Is(ve, sentinel) {
				return Message{Kind: MessageError, Text: l.printer.Sprintf(sentinel.Error())}
			}
		}
	}
	return Message{Kind: MessageError, Text: err.Error()}
}
