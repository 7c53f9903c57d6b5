package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tabrez-nitr/doit/internal/errors"
	"github.com/tabrez-nitr/doit/internal/validation"
)

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	t.Run("translates validation errors", func(t *testing.T) {
		ve := validation.NewValidationError()
		ve.AddRequiredError("task_text")

		err := eh.Handle("add task", ve)
		assert.Equal(t, "failed to add task: task_text is required", err.Error())
	})

	t.Run("translates typed application errors", func(t *testing.T) {
		appErr := errors.NewNotFoundError("task", "abc")

		err := eh.Handle("toggle task", appErr)
		assert.Contains(t, err.Error(), "failed to toggle task")
	})

	t.Run("wraps unknown errors", func(t *testing.T) {
		err := eh.Handle("do thing", fmt.Errorf("boom"))
		assert.Contains(t, err.Error(), "failed to do thing")
		assert.Contains(t, err.Error(), "boom")
	})
}

func TestErrorHandler_Classification(t *testing.T) {
	eh := NewErrorHandler()

	assert.True(t, eh.IsValidationError(validation.NewValidationError()))
	assert.True(t, eh.IsNotFoundError(errors.NewNotFoundError("task", "x")))
	assert.True(t, eh.IsStorageError(errors.NewStorageError("load slot", fmt.Errorf("io"))))
	assert.False(t, eh.IsNotFoundError(fmt.Errorf("plain")))
}
