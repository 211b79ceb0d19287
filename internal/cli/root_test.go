package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikerosasdev/crud-alumnos/internal/pkg/auth"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "crud-alumnos", cmd.Use)
	assert.NotNil(t, cmd.RunE, "root should serve when no subcommand is given")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"serve", "migrate", "seed", "hash-password"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	configFlag := cmd.PersistentFlags().Lookup("config")
	require.NotNil(t, configFlag)
	assert.Equal(t, "c", configFlag.Shorthand)
	assert.Equal(t, "configs/config.yaml", configFlag.DefValue)
}

func TestSeedCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	seedCmd, _, err := cmd.Find([]string{"seed"})
	require.NoError(t, err)

	forceFlag := seedCmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag)
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
}

func runHashPassword(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"hash-password"}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestHashPassword_FromArgument(t *testing.T) {
	hash, err := runHashPassword(t, "", "s3cret")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)
	assert.True(t, auth.CheckPassword(hash, "s3cret"))
	assert.False(t, auth.CheckPassword(hash, "other"))
}

func TestHashPassword_FromStdin(t *testing.T) {
	hash, err := runHashPassword(t, "from-stdin\n")
	require.NoError(t, err)

	assert.True(t, auth.CheckPassword(hash, "from-stdin"))
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := runHashPassword(t, "")
	require.Error(t, err)

	_, err = runHashPassword(t, "", "")
	require.Error(t, err)
}

func TestHashPassword_TooManyArgs(t *testing.T) {
	_, err := runHashPassword(t, "", "a", "b")
	require.Error(t, err)
}
