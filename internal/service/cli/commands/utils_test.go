package commands

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	clierrors "github.com/myyachtvalue/modelsvc/internal/service/cli/errors"
)

func newDummyCommand(validationFunc cobra.PositionalArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "dummy",
		Args: validationFunc,
		RunE: func(_ *cobra.Command, _ []string) error {
			return errors.New("no error")
		},
	}
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	return cmd
}

func TestNoArgs(t *testing.T) {
	type testCase struct {
		name          string
		args          []string
		withSubCmd    bool
		expectedError string
		usageError    bool
	}

	testCases := []testCase{
		{
			name:          "Without args",
			args:          []string{},
			expectedError: "no error",
		},
		{
			name:          "With args",
			args:          []string{"foo"},
			expectedError: "accepts no arguments",
			usageError:    true,
		},
		{
			name:          "Unknown sub command",
			args:          []string{"foo"},
			withSubCmd:    true,
			expectedError: `unknown command: "foo" for "dummy"`,
			usageError:    true,
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		cmd := newDummyCommand(NoArgs)
		if tc.withSubCmd {
			cmd.AddCommand(&cobra.Command{Use: "sub", Run: func(_ *cobra.Command, _ []string) {}})
		}

		cmd.SetArgs(tc.args)

		err := cmd.Execute()
		require.ErrorContains(t, err, tc.expectedError)

		var usageErr *clierrors.UsageError
		require.Equal(t, tc.usageError, errors.As(err, &usageErr))
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}

func TestFlagErrorFunc(t *testing.T) {
	cmd := newDummyCommand(NoArgs)

	require.NoError(t, FlagErrorFunc(cmd, nil))

	err := FlagErrorFunc(cmd, errors.New("unknown flag: --foo"))

	var usageErr *clierrors.UsageError
	require.True(t, errors.As(err, &usageErr))
	require.EqualError(t, err, "unknown flag: --foo")
}
