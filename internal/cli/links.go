package cli

import (
	"net/url"
	"strings"

	"github.com/theirongolddev/paycheck/internal/model"
)

const calendarTemplateURL = "https://calendar.google.com/calendar/render"

// ReminderTitle is the event title used for expense reminders.
const ReminderTitle = "Expense Reminder"

// ReminderDetails lists the expenses a reminder is for.
func ReminderDetails(r model.Reminder) string {
	var b strings.Builder
	b.WriteString("Tomorrow's expenses:")
	for _, e := range r.Expenses {
		b.WriteString("\n- ")
		b.WriteString(e.Name)
		b.WriteString(": $")
		b.WriteString(e.Amount.StringFixed(2))
	}
	return b.String()
}

// CalendarLink builds a Google Calendar "add event" URL for r, as an
// all-day event on the reminder date.
func CalendarLink(r model.Reminder) string {
	day := r.Date.Format("20060102")
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ReminderTitle)
	q.Set("details", ReminderDetails(r))
	q.Set("dates", day+"/"+day)
	q.Set("add", "true")
	return calendarTemplateURL + "?" + q.Encode()
}
