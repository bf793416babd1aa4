// Package source converts user and legacy input into canonical budget values.
package source

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/paycheck/internal/model"
)

var (
	dayToken  = regexp.MustCompile(`\b(\d{1,2})(?:st|nd|rd|th)?\b(\s*(?:weeks?|days?|months?|years?|(?:mon|tues?|wed(?:nes)?|thu(?:rs)?|fri|sat(?:ur)?|sun)(?:day)?)\b)?`)
	lastToken = regexp.MustCompile(`(?i)\blast\s+day\b|\bend\s+of\s+(?:the\s+)?month\b|\beom\b|\blast\s*$`)
)

// ParseDepositDays reads free text like "1st and 15th" or "15, last day"
// into a deposit schedule. Numbers followed by a unit or weekday ("2 weeks",
// "2nd Friday") are not days of the month. Text with no recognisable day
// keeps only the note.
func ParseDepositDays(text string) model.DepositSchedule {
	text = strings.TrimSpace(text)
	sched := model.DepositSchedule{Note: text}
	if text == "" {
		return sched
	}

	seen := make(map[int]bool)
	for _, m := range dayToken.FindAllStringSubmatch(strings.ToLower(text), -1) {
		if m[2] != "" {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 || n > 31 || seen[n] {
			continue
		}
		seen[n] = true
		sched.Days = append(sched.Days, n)
	}
	slices.Sort(sched.Days)
	sched.LastDay = lastToken.MatchString(text)
	return sched
}

// ParseAmount reads a money amount, tolerating a leading "$" and thousands
// separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "$")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}
	return d, nil
}

// ReadLegacy reads and converts a legacy budget file.
func ReadLegacy(path string) (ImportResult, error) {
	return ReadFile(path, FormatLegacy)
}

// DecodeLegacy converts the browser's stored JSON into a canonical record.
// Expenses whose amount cannot be parsed are skipped; unmatched due dates
// are kept and counted.
func DecodeLegacy(data []byte) (ImportResult, error) {
	var raw LegacyRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return ImportResult{}, fmt.Errorf("decoding legacy record: %w", err)
	}

	res := ImportResult{Record: model.NewRecord()}
	rec := &res.Record

	if s, ok := rawScalar(raw.PaychequeAmount); ok && s != "" {
		amt, err := ParseAmount(s)
		if err != nil {
			return ImportResult{}, fmt.Errorf("decoding paychequeAmount: %w", err)
		}
		rec.PaycheckAmount = amt
	}

	rec.Deposits = decodeDeposits(raw.DepositDates)

	for _, e := range raw.Expenses {
		s, _ := rawScalar(e.Amount)
		amt, err := ParseAmount(s)
		if err != nil {
			res.SkippedExpenses++
			continue
		}
		if !e.DueDate.Valid() {
			res.UnmatchedDates++
		}
		rec.Expenses = append(rec.Expenses, model.Expense{
			Name:    strings.TrimSpace(e.Name),
			Amount:  amt,
			DueDate: e.DueDate,
		})
	}

	rec.Step = decodeStep(raw.CurrentStep, rec)
	return res, nil
}

// decodeDeposits accepts free text or a list of day numbers.
func decodeDeposits(raw json.RawMessage) model.DepositSchedule {
	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 && raw[0] == '[' {
		var days []int
		if err := json.Unmarshal(raw, &days); err == nil {
			var sched model.DepositSchedule
			for _, d := range days {
				if d >= 1 && d <= 31 && !slices.Contains(sched.Days, d) {
					sched.Days = append(sched.Days, d)
				}
			}
			slices.Sort(sched.Days)
			return sched
		}
	}
	s, _ := rawScalar(raw)
	return ParseDepositDays(s)
}

// decodeStep maps the numeric cursor (0, 0.5, 1) onto named steps. A missing
// cursor is inferred from how much of the record is filled in.
func decodeStep(raw json.RawMessage, rec *model.BudgetRecord) model.Step {
	s, ok := rawScalar(raw)
	if ok {
		switch s {
		case "0":
			return model.StepIncome
		case "0.5":
			return model.StepExpenses
		case "1":
			return model.StepSummary
		}
		if st := model.Step(s); st.Valid() {
			return st
		}
	}
	switch {
	case len(rec.Expenses) > 0:
		return model.StepSummary
	case rec.PaycheckAmount.IsPositive():
		return model.StepExpenses
	default:
		return model.StepIncome
	}
}

// rawScalar returns a JSON string or number as text.
func rawScalar(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return strings.TrimSpace(s), true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", false
	}
	return n.String(), true
}
