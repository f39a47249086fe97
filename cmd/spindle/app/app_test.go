package app

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xalexb/spindle/config"
	"github.com/0xalexb/spindle/markup"
)

const document = `server:
  port: 25565
  motd: "&cHello"
  tags: ["&aA", 5, "&bB"]
modern: "<red>Hi</red>"
`

func writeDocument(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestGet(t *testing.T) {
	t.Parallel()

	path := writeDocument(t)

	testCases := []struct {
		name string
		args []string
		want string
	}{
		{name: "legacy string", args: []string{"get", path, "server.motd"}, want: "Hello\n"},
		{name: "plain mode", args: []string{"get", path, "server.motd", "--mode", "plain"}, want: "&cHello\n"},
		{
			name: "section serializer",
			args: []string{"get", path, "server.motd", "--serializer", "section"},
			want: "§cHello\n",
		},
		{name: "modern mode", args: []string{"get", path, "modern", "--mode", "modern"}, want: "Hi\n"},
		{name: "integer", args: []string{"get", path, "server.port"}, want: "25565\n"},
		{name: "list", args: []string{"get", path, "server.tags"}, want: "- A\n- 5\n- B\n"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := execute(t, testCase.args...)
			require.NoError(t, err)
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestGet_Map(t *testing.T) {
	t.Parallel()

	got, err := execute(t, "get", writeDocument(t), "server")
	require.NoError(t, err)
	assert.Contains(t, got, "port: 25565")
	assert.Contains(t, got, "&cHello")
}

func TestGet_Errors(t *testing.T) {
	t.Parallel()

	path := writeDocument(t)

	_, err := execute(t, "get", path, "server.missing")
	require.ErrorIs(t, err, config.ErrSectionNotFound)

	_, err = execute(t, "get", path, "server.motd", "--serializer", "html")
	require.ErrorIs(t, err, ErrUnknownSerializer)

	_, err = execute(t, "get", path, "server.motd", "--mode", "fancy")
	require.ErrorIs(t, err, markup.ErrUnknownMode)

	_, err = execute(t, "get", filepath.Join(t.TempDir(), "missing.yml"), "a")
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute(t, "get", path)
	require.Error(t, err)
}

func TestGet_ModeFromEnv(t *testing.T) {
	t.Setenv("SPINDLE_MODE", "plain")

	got, err := execute(t, "get", writeDocument(t), "server.motd")
	require.NoError(t, err)
	assert.Equal(t, "&cHello\n", got)
}

func TestGet_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SPINDLE_MODE", "plain")

	got, err := execute(t, "get", writeDocument(t), "server.motd", "--mode", "legacy")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", got)
}

func TestDump(t *testing.T) {
	t.Parallel()

	path := writeDocument(t)

	got, err := execute(t, "dump", path)
	require.NoError(t, err)
	assert.Contains(t, got, "server:")
	assert.Contains(t, got, "<red>Hi</red>")

	got, err = execute(t, "dump", path, "--section", "server")
	require.NoError(t, err)
	assert.Contains(t, got, "port: 25565")
	assert.NotContains(t, got, "server:")
}

func TestInit(t *testing.T) {
	t.Parallel()

	resources := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(resources, "config.yml"), []byte(document), 0o600))

	folder := filepath.Join(t.TempDir(), "plugin")

	got, err := execute(t, "init", folder, "config.yml", "absent.toml", "--resources", resources)
	require.NoError(t, err)
	assert.Contains(t, got, "present\t"+filepath.Join(folder, "config.yml"))
	assert.Contains(t, got, "missing\t"+filepath.Join(folder, "absent.toml"))

	got, err = execute(t, "get", filepath.Join(folder, "config.yml"), "server.motd")
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", got)
}

func TestRoot_Version(t *testing.T) {
	t.Parallel()

	got, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, got, "dev")
}
