// Package model defines domain types for paycheck budgets, calendars and charts.
package model

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Step is the wizard cursor persisted with the record.
type Step string

// Wizard steps, in order.
const (
	StepIncome   Step = "income"
	StepExpenses Step = "expenses"
	StepSummary  Step = "summary"
)

// Valid reports whether s is one of the three known steps.
func (s Step) Valid() bool {
	switch s {
	case StepIncome, StepExpenses, StepSummary:
		return true
	}
	return false
}

// DepositSchedule is the canonical form of recurring paycheck deposit days.
// Note keeps the text the user typed; Days and LastDay are what the calendar uses.
type DepositSchedule struct {
	Days    []int  `json:"days,omitempty"`
	LastDay bool   `json:"lastDay,omitempty"`
	Note    string `json:"note,omitempty"`
}

// IsZero reports whether no deposit day is known.
func (d DepositSchedule) IsZero() bool {
	return len(d.Days) == 0 && !d.LastDay
}

// Expense is one recurring monthly payment.
type Expense struct {
	Name    string          `json:"name"`
	Amount  decimal.Decimal `json:"amount"`
	DueDate DueDay          `json:"dueDate"`
}

// BudgetRecord is the single persisted root entity.
type BudgetRecord struct {
	PaycheckAmount decimal.Decimal `json:"paycheckAmount"`
	Deposits       DepositSchedule `json:"depositDates"`
	Expenses       []Expense       `json:"expenses"`
	Step           Step            `json:"currentStep"`
}

// NewRecord returns the empty record used on first load.
func NewRecord() BudgetRecord {
	return BudgetRecord{
		Expenses: []Expense{},
		Step:     StepIncome,
	}
}

// IsEmpty reports whether the wizard has never been completed.
func (r BudgetRecord) IsEmpty() bool {
	return r.PaycheckAmount.IsZero() && len(r.Expenses) == 0 && r.Deposits.IsZero() && r.Deposits.Note == ""
}

// Clone returns a deep copy so callers can replace the record wholesale.
func (r BudgetRecord) Clone() BudgetRecord {
	c := r
	c.Expenses = slices.Clone(r.Expenses)
	if c.Expenses == nil {
		c.Expenses = []Expense{}
	}
	c.Deposits.Days = slices.Clone(r.Deposits.Days)
	return c
}

// WithExpense returns a copy of r with e appended.
func (r BudgetRecord) WithExpense(e Expense) BudgetRecord {
	c := r.Clone()
	c.Expenses = append(c.Expenses, e)
	return c
}

// WithoutExpense returns a copy of r with the expense at index i removed.
func (r BudgetRecord) WithoutExpense(i int) (BudgetRecord, error) {
	if i < 0 || i >= len(r.Expenses) {
		return r, fmt.Errorf("expense index %d out of range [0,%d)", i, len(r.Expenses))
	}
	c := r.Clone()
	c.Expenses = slices.Delete(c.Expenses, i, i+1)
	return c, nil
}
