package root

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/myyachtvalue/modelsvc/internal/service/cli/commands"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/options"
	"github.com/myyachtvalue/modelsvc/internal/service/cli/streams"
)

func newTestCliOptions(out *bytes.Buffer) *options.CliOptions {
	cliOpts := options.NewCliOptions("1.0.0")
	cliOpts.SetIn(streams.NewIn(strings.NewReader("")))
	cliOpts.SetOut(streams.NewOut(out))

	return cliOpts
}

func TestNewRootCommand(t *testing.T) {
	cmd := NewRootCommand(newTestCliOptions(new(bytes.Buffer)))

	var subCommands []string
	for _, c := range cmd.Commands() {
		subCommands = append(subCommands, c.Name())
	}

	require.Equal(t, []string{"serve", "check", "version"}, subCommands)

	for _, flag := range []string{
		commands.ConfigPathFlag,
		commands.EnvFileFlag,
		commands.TTYFlag,
		commands.NoTTYFlag,
		commands.DebugModeFlag,
		commands.OpenAIAPIKeyFlag,
		commands.OpenAIBaseURLFlag,
		commands.OpenAIModelFlag,
	} {
		require.NotNil(t, cmd.Flags().Lookup(flag), flag)
	}
}

func TestRootCommandFlags(t *testing.T) {
	out := new(bytes.Buffer)
	cliOpts := newTestCliOptions(out)

	cmd := NewRootCommand(cliOpts)
	cmd.SetArgs([]string{"-m", "gpt-4.1", "--base-url", "http://localhost:11434/v1", "-T", "version"})

	require.NoError(t, cmd.Execute())

	rootOpts := cliOpts.RootOpts()
	require.Equal(t, "gpt-4.1", rootOpts.OpenAIModel.Value)
	require.True(t, *rootOpts.OpenAIModel.Changed)
	require.Equal(t, "http://localhost:11434/v1", rootOpts.OpenAIBaseURL)
	require.True(t, rootOpts.NoTTY.Value)
	require.True(t, *rootOpts.NoTTY.Changed)
	require.False(t, *rootOpts.TTY.Changed)
	require.Contains(t, out.String(), "modelsvc version 1.0.0")
}

func TestRootCommandErrors(t *testing.T) {
	type testCase struct {
		name          string
		args          []string
		expectedError string
	}

	testCases := []testCase{
		{
			name:          "Unknown command",
			args:          []string{"generate"},
			expectedError: `unknown command: "generate" for "modelsvc"`,
		},
		{
			name:          "Mutually exclusive flags",
			args:          []string{"--tty", "--no-tty"},
			expectedError: "if any flags in the group [tty no-tty] are set none of the others can be",
		},
		{
			name:          "Unknown flag",
			args:          []string{"--unknown"},
			expectedError: "unknown flag: --unknown",
		},
	}

	testFunc := func(t *testing.T, tc testCase) {
		t.Helper()

		cmd := NewRootCommand(newTestCliOptions(new(bytes.Buffer)))
		cmd.SetArgs(tc.args)

		require.ErrorContains(t, cmd.Execute(), tc.expectedError)
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) { testFunc(t, tc) })
	}
}
