package validation

// ExpenseValidator provides validation for Expense-related operations
type ExpenseValidator struct {
	validator *Validator
}

// NewExpenseValidator creates a new expense validator
func NewExpenseValidator() *ExpenseValidator {
	return &ExpenseValidator{
		validator: NewValidator(),
	}
}

// NewExpenseValidatorWith creates an expense validator over a shared validator
func NewExpenseValidatorWith(v *Validator) *ExpenseValidator {
	return &ExpenseValidator{validator: v}
}

// ValidateAmount validates an expense amount
func (ev *ExpenseValidator) ValidateAmount(amount float64) error {
	if !ev.validator.IsValidAmount(amount) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("amount", amount, "must be a non-negative number")
		return validationError
	}
	return nil
}

// ValidateDescription validates an expense description
func (ev *ExpenseValidator) ValidateDescription(description string) error {
	if !ev.validator.IsNonEmptyString(description) {
		validationError := NewValidationError()
		validationError.AddRequiredError("description")
		return validationError
	}
	return nil
}

// ValidateID validates an expense id
func (ev *ExpenseValidator) ValidateID(id string) error {
	if !ev.validator.IsNonEmptyString(id) {
		validationError := NewValidationError()
		validationError.AddRequiredError("expense_id")
		return validationError
	}
	return nil
}

// ValidateForCreation validates the inputs of a new expense in one pass
func (ev *ExpenseValidator) ValidateForCreation(amount float64, description string) error {
	validationError := NewValidationError()

	if err := ev.ValidateAmount(amount); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}
	if err := ev.ValidateDescription(description); err != nil {
		if ve, ok := err.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
