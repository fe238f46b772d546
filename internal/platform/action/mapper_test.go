package action_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gaqzi/park-reviewer/internal/platform/action"
)

type (
	testStructA struct{}
	testStructB struct{}
)

func TestMapper(t *testing.T) {
	t.Run("when no named action found return an error", func(t *testing.T) {
		mapper := &action.Mapper{}

		doer, err := mapper.Get("ComplexCalculation")

		require.ErrorContains(t, err, "no action found for: ComplexCalculation")
		require.Nil(t, doer)
	})

	t.Run("returns the saved function for a name", func(t *testing.T) {
		mapper := &action.Mapper{}
		mapper.Add("ComplexCalculation", func(a testStructA, b testStructB) error { return nil })

		doer, err := mapper.Get("ComplexCalculation")
		require.NoError(t, err)

		do, ok := doer.(func(testStructA, testStructB) error)
		require.True(t, ok)
		require.NotNil(t, do)

		require.NoError(t, do(testStructA{}, testStructB{}))
	})

	t.Run("All returns the sorted name of each stored action", func(t *testing.T) {
		mapper := &action.Mapper{}
		require.Empty(t, mapper.All(), "expected a just initialized mapper to have nothing to show")

		mapper.Add("SimpleFunction", func() {})
		mapper.Add("ComplexFunction", func() {})
		require.Equal(
			t,
			[]string{"ComplexFunction", "SimpleFunction"},
			mapper.All(),
			"expected the names of the stored actions to be returned in order",
		)
	})

	t.Run("Merge replaces actions with the same name and keeps the rest", func(t *testing.T) {
		defaults := (&action.Mapper{}).
			Add("Save", func() string { return "default save" }).
			Add("Load", func() string { return "default load" })
		overrides := (&action.Mapper{}).Add("Save", func() string { return "test save" })

		defaults.Merge(overrides).Merge(nil)

		save, err := action.Lookup[func() string](defaults, "Save")
		require.NoError(t, err)
		require.Equal(t, "test save", save())

		load, err := action.Lookup[func() string](defaults, "Load")
		require.NoError(t, err)
		require.Equal(t, "default load", load())
	})

	t.Run("Lookup", func(t *testing.T) {
		t.Run("returns an error when the action has another signature", func(t *testing.T) {
			mapper := (&action.Mapper{}).Add("Save", func(int) error { return nil })

			_, err := action.Lookup[func(string) error](mapper, "Save")

			require.ErrorContains(t, err, `action "Save" is func(int) error, expected func(string) error`)
		})

		t.Run("returns the missing action error when nothing is registered", func(t *testing.T) {
			_, err := action.Lookup[func()](&action.Mapper{}, "Nope")

			require.ErrorContains(t, err, "no action found for: Nope")
		})
	})
}
