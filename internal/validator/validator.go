// Package validator checks user input at the form boundary.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/theirongolddev/paycheck/internal/model"
	"github.com/theirongolddev/paycheck/internal/source"
)

// Validate is the shared validator with the paycheck rules registered.
var Validate *validator.Validate

var nonSpace = regexp.MustCompile(`\S`)

func init() {
	Validate = validator.New(validator.WithRequiredStructEnabled())

	// "2024-12"
	_ = Validate.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01", fl.Field().String())
		return err == nil
	})

	_ = Validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return nonSpace.MatchString(fl.Field().String())
	})

	// A money amount greater than zero; "$" and thousands separators allowed.
	_ = Validate.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		d, err := source.ParseAmount(fl.Field().String())
		return err == nil && d.IsPositive()
	})

	// 1..31 with an optional ordinal suffix, or "Last day".
	_ = Validate.RegisterValidation("dueday", func(fl validator.FieldLevel) bool {
		return model.ParseDueDay(fl.Field().String()).Valid()
	})
}

// messages maps a failed rule on a field to what the user is told.
var messages = map[string]string{
	"Amount.amount":           "Please enter a valid amount greater than zero",
	"Amount.required":         "Please enter a valid amount greater than zero",
	"Paycheck.amount":         "Please enter a valid paycheque amount",
	"Paycheck.required":       "Please enter a valid paycheque amount",
	"Deposits.notblank":       "Please enter your typical deposit dates",
	"Name.notblank":           "Please enter a valid expense name",
	"Name.max":                "Expense names are limited to 60 characters",
	"DueDate.dueday":          "Use a day of the month like 1st or 15th, or \"Last day\"",
	"Month.yearmonth":         "Use a month like 2024-04",
	"DefaultThreshold.amount": "Please enter a valid amount greater than zero",
	"LeadDays.gte":            "Reminder lead time cannot be negative",
	"LeadDays.lte":            "Reminder lead time is at most 27 days",
	"MinLabelAngle.gte":       "Label angle cannot be negative",
	"SingleColumn.gte":        "Legend column switch must be at least 1",
	"Theme.oneof":             "Unknown theme",
	"DefaultCommand.oneof":    "Unknown default command",
}

// Check validates v and returns the first failure as a readable error.
func Check(v any) error {
	err := Validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return errors.New(msg)
	}
	return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
}

func checkVar(value, tag, msg string) error {
	if err := Validate.Var(value, tag); err != nil {
		return errors.New(msg)
	}
	return nil
}

// Amount reports whether s is a positive money amount.
func Amount(s string) error {
	return checkVar(s, "amount", messages["Amount.amount"])
}

// PaycheckAmount is Amount with the income wording.
func PaycheckAmount(s string) error {
	return checkVar(s, "amount", messages["Paycheck.amount"])
}

// Deposits reports whether s has any content.
func Deposits(s string) error {
	return checkVar(s, "notblank", messages["Deposits.notblank"])
}

// DueDate accepts an empty value or a recognisable due day.
func DueDate(s string) error {
	return checkVar(s, "omitempty,dueday", messages["DueDate.dueday"])
}

// Month checks a YYYY-MM string.
func Month(s string) error {
	return checkVar(s, "yearmonth", messages["Month.yearmonth"])
}

// Name checks an expense name.
func Name(s string) error {
	return checkVar(s, "notblank,max=60", messages["Name.notblank"])
}
