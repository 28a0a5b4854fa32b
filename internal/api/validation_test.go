package api

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	type form struct {
		Name    string `validate:"required,email"`
		Title   string `validate:"required,max=8"`
		Summary string `validate:"required"`
	}

	v := validator.New()

	t.Run("field errors are translated per field", func(t *testing.T) {
		t.Parallel()

		err := v.Struct(form{Name: "not-an-email", Title: "way too long title"})
		require.Error(t, err)

		fe, ok := ValidationErrors(err)
		require.True(t, ok, "expected a field-level validation error")

		assert.Equal(t, []string{"The name must be a valid email address."}, fe["name"])
		assert.Equal(t, []string{"The title must not be greater than 8 characters."}, fe["title"])
		assert.Equal(t, []string{"The summary field is required."}, fe["summary"])
	})

	t.Run("non-validation errors are passed through", func(t *testing.T) {
		t.Parallel()

		fe, ok := ValidationErrors(errors.New("unexpected EOF"))

		assert.False(t, ok)
		assert.Nil(t, fe)
	})
}
