package validation

import (
	"math"
	"strings"
	"time"

	"github.com/tabrez-nitr/doit/internal/config"
	"github.com/tabrez-nitr/doit/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance using default limits
func NewValidator() *Validator {
	return &Validator{config: nil}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTaskTextLength checks if a task text length is within configured limits
func (v *Validator) IsValidTaskTextLength(text string) bool {
	length := len(strings.TrimSpace(text))
	return length >= v.getTaskTextMinLength() && length <= v.getTaskTextMaxLength()
}

// IsValidDayKey checks if a string is a well-formed YYYY-MM-DD day key
func (v *Validator) IsValidDayKey(s string) bool {
	_, err := domain.ParseDay(s)
	return err == nil
}

// IsValidPriority checks if a priority is one of the known levels
func (v *Validator) IsValidPriority(p domain.Priority) bool {
	return p.IsValid()
}

// IsValidAmount checks if an expense amount is a finite non-negative number
func (v *Validator) IsValidAmount(amount float64) bool {
	return amount >= 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// IsReasonableDate checks if a date is within reasonable bounds
func (v *Validator) IsReasonableDate(t time.Time) bool {
	now := time.Now()
	tenYearsAgo := now.AddDate(-10, 0, 0)
	oneYearFromNow := now.AddDate(1, 0, 0)

	return t.After(tenYearsAgo) && t.Before(oneYearFromNow)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) getTaskTextMinLength() int {
	if v.config != nil {
		return v.config.Validation.TaskTextMinLength
	}
	return 1
}

func (v *Validator) getTaskTextMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TaskTextMaxLength
	}
	return 255
}
