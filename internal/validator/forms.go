package validator

import (
	"strings"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/source"
)

// IncomeInput is the first wizard step as typed.
type IncomeInput struct {
	Paycheck string `validate:"amount"`
	Deposits string `validate:"notblank"`
}

// Apply validates the input and writes it into rec.
func (in IncomeInput) Apply(rec model.BudgetRecord) (model.BudgetRecord, error) {
	if err := Check(in); err != nil {
		return rec, err
	}
	amt, err := source.ParseAmount(in.Paycheck)
	if err != nil {
		return rec, err
	}
	out := rec.Clone()
	out.PaycheckAmount = amt
	out.Deposits = source.ParseDepositDays(in.Deposits)
	if out.Step == model.StepIncome {
		out.Step = model.StepExpenses
	}
	return out, nil
}

// ExpenseInput is one expense row as typed. A custom name overrides the
// selected category.
type ExpenseInput struct {
	Category   string
	CustomName string
	Name       string `validate:"notblank,max=60"`
	Amount     string `validate:"amount"`
	DueDate    string `validate:"omitempty,dueday"`
}

// Resolve fills Name from CustomName or Category.
func (in ExpenseInput) Resolve() ExpenseInput {
	if name := strings.TrimSpace(in.CustomName); name != "" {
		in.Name = name
	} else if in.Name == "" {
		in.Name = strings.TrimSpace(in.Category)
	}
	return in
}

// Expense validates the input and converts it.
func (in ExpenseInput) Expense() (model.Expense, error) {
	in = in.Resolve()
	if err := Check(in); err != nil {
		return model.Expense{}, err
	}
	amt, err := source.ParseAmount(in.Amount)
	if err != nil {
		return model.Expense{}, err
	}
	return model.Expense{
		Name:    strings.TrimSpace(in.Name),
		Amount:  amt,
		DueDate: model.ParseDueDay(in.DueDate),
	}, nil
}
