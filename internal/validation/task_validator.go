package validation

import (
	"github.com/tabrez-nitr/doit/internal/domain"
)

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWith creates a task validator over a shared validator
func NewTaskValidatorWith(v *Validator) *TaskValidator {
	return &TaskValidator{validator: v}
}

// ValidateText validates a task text for creation or update
func (tv *TaskValidator) ValidateText(text string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(text)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("task_text")
		return validationError
	}

	if !tv.validator.IsValidTaskTextLength(trimmed) {
		validationError.AddInvalidLengthError("task_text", trimmed,
			tv.validator.getTaskTextMinLength(), tv.validator.getTaskTextMaxLength())
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateID validates a task id
func (tv *TaskValidator) ValidateID(id string) error {
	if !tv.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("task_id")
		return validationError
	}
	return nil
}

// ValidatePriority validates a priority level
func (tv *TaskValidator) ValidatePriority(p domain.Priority) error {
	if !tv.validator.IsValidPriority(p) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", p, "must be High, Medium or Low")
		return validationError
	}
	return nil
}

// ValidateDay validates a calendar day value under the given field name
func (tv *TaskValidator) ValidateDay(field string, day domain.Day) error {
	if day.IsZero() {
		validationError := NewValidationError()
		validationError.AddRequiredError(field)
		return validationError
	}
	return nil
}

// ValidateForCreation validates the inputs of a new task in one pass
func (tv *TaskValidator) ValidateForCreation(text string, priority domain.Priority, day domain.Day) error {
	validationError := NewValidationError()

	collect := func(err error) {
		if err == nil {
			return
		}
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	collect(tv.ValidateText(text))
	collect(tv.ValidatePriority(priority))
	collect(tv.ValidateDay("date", day))

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// GetValidText returns a cleaned task text if valid
func (tv *TaskValidator) GetValidText(text string) (string, error) {
	if err := tv.ValidateText(text); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(text), nil
}
