package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/theirongolddev/paycheck/internal/model"
)

// Format names a document encoding for export and import.
type Format string

// Supported formats. FormatLegacy is import-only.
const (
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatLegacy Format = "legacy"
)

// ParseFormat accepts json, yaml/yml and legacy, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "legacy":
		return FormatLegacy, nil
	}
	return "", fmt.Errorf("unknown format %q (want json, yaml or legacy)", s)
}

// FormatFromPath guesses a format from a file extension, defaulting to legacy.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatLegacy
}

// yamlRecord is the YAML document shape. Amounts are kept as strings so
// they round-trip exactly.
type yamlRecord struct {
	PaycheckAmount string        `yaml:"paycheck_amount"`
	Deposits       yamlDeposits  `yaml:"deposits"`
	Expenses       []yamlExpense `yaml:"expenses"`
	Step           string        `yaml:"current_step"`
}

type yamlDeposits struct {
	Days    []int  `yaml:"days,omitempty"`
	LastDay bool   `yaml:"last_day,omitempty"`
	Note    string `yaml:"note,omitempty"`
}

type yamlExpense struct {
	Name    string `yaml:"name"`
	Amount  string `yaml:"amount"`
	DueDate string `yaml:"due_date,omitempty"`
}

// Export encodes rec as indented JSON or YAML.
func Export(rec model.BudgetRecord, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return append(data, '\n'), nil
	case FormatYAML:
		doc := yamlRecord{
			PaycheckAmount: rec.PaycheckAmount.String(),
			Deposits: yamlDeposits{
				Days:    rec.Deposits.Days,
				LastDay: rec.Deposits.LastDay,
				Note:    rec.Deposits.Note,
			},
			Expenses: make([]yamlExpense, len(rec.Expenses)),
			Step:     string(rec.Step),
		}
		for i, e := range rec.Expenses {
			doc.Expenses[i] = yamlExpense{Name: e.Name, Amount: e.Amount.String(), DueDate: e.DueDate.String()}
		}
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encoding yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("cannot export as %q", format)
}

// Decode reads a document in the given format. Legacy documents go through
// DecodeLegacy; the others must be exports of this program.
func Decode(data []byte, format Format) (ImportResult, error) {
	switch format {
	case FormatLegacy:
		return DecodeLegacy(data)
	case FormatJSON:
		var rec model.BudgetRecord
		if err := json.Unmarshal(data, &rec); err != nil {
			return ImportResult{}, fmt.Errorf("parsing json: %w", err)
		}
		return finish(rec), nil
	case FormatYAML:
		var doc yamlRecord
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return ImportResult{}, fmt.Errorf("parsing yaml: %w", err)
		}
		return fromYAML(doc)
	}
	return ImportResult{}, fmt.Errorf("cannot import %q", format)
}

// ReadFile decodes the document at path.
func ReadFile(path string, format Format) (ImportResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return ImportResult{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Decode(data, format)
}

func fromYAML(doc yamlRecord) (ImportResult, error) {
	rec := model.NewRecord()
	if strings.TrimSpace(doc.PaycheckAmount) != "" {
		amt, err := ParseAmount(doc.PaycheckAmount)
		if err != nil {
			return ImportResult{}, fmt.Errorf("paycheck_amount: %w", err)
		}
		rec.PaycheckAmount = amt
	}
	rec.Deposits = model.DepositSchedule{
		Days:    doc.Deposits.Days,
		LastDay: doc.Deposits.LastDay,
		Note:    doc.Deposits.Note,
	}
	if rec.Deposits.IsZero() && rec.Deposits.Note != "" {
		rec.Deposits = ParseDepositDays(rec.Deposits.Note)
	}

	res := ImportResult{}
	for _, e := range doc.Expenses {
		amt, err := ParseAmount(e.Amount)
		if err != nil {
			res.SkippedExpenses++
			continue
		}
		rec.Expenses = append(rec.Expenses, model.Expense{
			Name:    e.Name,
			Amount:  amt,
			DueDate: model.ParseDueDay(e.DueDate),
		})
	}
	rec.Step = model.Step(doc.Step)

	out := finish(rec)
	out.SkippedExpenses = res.SkippedExpenses
	return out, nil
}

// finish normalises a decoded record and counts unmatched due dates.
func finish(rec model.BudgetRecord) ImportResult {
	if rec.Expenses == nil {
		rec.Expenses = []model.Expense{}
	}
	if !rec.Step.Valid() {
		rec.Step = model.StepIncome
	}
	res := ImportResult{Record: rec}
	for _, e := range rec.Expenses {
		if !e.DueDate.Valid() {
			res.UnmatchedDates++
		}
	}
	return res
}
