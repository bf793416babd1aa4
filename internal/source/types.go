package source

import (
	"encoding/json"

	"github.com/theirongolddev/paycheck/internal/model"
)

// LegacyRecord is the budget shape stored by the browser version under the
// localStorage key "budgetData". Most fields were loosely typed there, so
// they are decoded raw and normalised by DecodeLegacy.
type LegacyRecord struct {
	PaychequeAmount json.RawMessage `json:"paychequeAmount"`
	DepositDates    json.RawMessage `json:"depositDates"`
	Expenses        []LegacyExpense `json:"expenses"`
	CurrentStep     json.RawMessage `json:"currentStep"`
}

// LegacyExpense is one expense row as the browser stored it. Percentage was
// cached against an old total and is ignored on import.
type LegacyExpense struct {
	Name       string          `json:"name"`
	Amount     json.RawMessage `json:"amount"`
	DueDate    model.DueDay    `json:"dueDate"`
	Percentage json.RawMessage `json:"percentage,omitempty"`
}

// ImportResult holds the converted record plus what had to be dropped.
type ImportResult struct {
	Record          model.BudgetRecord
	SkippedExpenses int // rows with an unparseable amount
	UnmatchedDates  int // rows whose due date matches no calendar day
}
