package validate_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/gaqzi/park-reviewer/internal/platform/validate"
)

type testStruct struct {
	Hello string `validate:"required"`
}

type labelled struct {
	Count int    `validate:"min=1,max=5" label:"count"`
	Place string `validate:"required,max=5,nodigits" label:"place"`
	Color string `validate:"primary"`
	Note  string `validate:"nocr" label:"note"`
}

func init() {
	if err := validate.Register("primary", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "red", "green", "blue":
			return true
		}
		return false
	}); err != nil {
		panic(err)
	}
}

func TestStruct(t *testing.T) {
	ctx := context.Background()

	require.Error(t, validate.Struct(ctx, testStruct{}), "expected an error for an empty object")
	require.NoError(t, validate.Struct(ctx, testStruct{"Hello"}), "when the struct is valid don't error")
}

func TestPartial(t *testing.T) {
	ctx := context.Background()
	s := labelled{Count: 9, Place: "Paris", Color: "red"}

	require.NoError(t, validate.Partial(ctx, s, "Place"), "expected only the place to be checked")
	require.Error(t, validate.Partial(ctx, s, "Count"), "expected the out of range count to fail")
}

func TestMessages(t *testing.T) {
	ctx := context.Background()

	t.Run("returns nothing for a nil error", func(t *testing.T) {
		require.Nil(t, validate.Messages(nil))
	})

	t.Run("describes every failed field by its label", func(t *testing.T) {
		err := validate.Struct(ctx, labelled{Count: 0, Place: "Pa1is", Color: "pink"})
		require.Error(t, err)

		require.Equal(
			t,
			[]string{
				"count must be at least 1",
				"place must not contain digits",
				`Color failed the "primary" check`,
			},
			validate.Messages(err),
		)
	})

	t.Run("describes length limits on text in characters", func(t *testing.T) {
		err := validate.Struct(ctx, labelled{Count: 6, Place: "Anaheim", Color: "red"})

		require.Equal(
			t,
			[]string{"count must be at most 5", "place must be at most 5 characters"},
			validate.Messages(err),
		)
	})

	t.Run("rejects carriage returns but not newlines", func(t *testing.T) {
		require.NoError(t, validate.Struct(ctx, labelled{Count: 1, Place: "Paris", Color: "red", Note: "one\ntwo"}))

		err := validate.Struct(ctx, labelled{Count: 1, Place: "Paris", Color: "red", Note: "one\r\ntwo"})

		require.Equal(t, []string{"note must not contain carriage returns"}, validate.Messages(err))
	})

	t.Run("finds validation errors that have been wrapped", func(t *testing.T) {
		err := fmt.Errorf("failed to validate: %w", validate.Struct(ctx, labelled{Count: 1, Color: "red"}))

		require.Equal(t, []string{"place is required"}, validate.Messages(err))
	})

	t.Run("passes through errors from elsewhere", func(t *testing.T) {
		require.Equal(t, []string{"boom"}, validate.Messages(errors.New("boom")))
	})
}
