package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitrine/catalog/internal/domain"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormatCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"format", "1234.5"}, "R$1.234,50\n"},
		{[]string{"format", "--symbol=false", "1000000"}, "1.000.000,00\n"},
		{[]string{"format", "--locale", "us", "99.9"}, "$99.90\n"},
		{[]string{"format", "--", "-1234.5"}, "- R$1.234,50\n"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, _, err := run(t, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMaskCommand(t *testing.T) {
	out, _, err := run(t, "mask", "123456")
	require.NoError(t, err)
	assert.Equal(t, "R$1.234,56\n", out)

	out, _, err = run(t, "mask", "--buffer", "--symbol=false", "abc")
	require.NoError(t, err)
	assert.Equal(t, "0,00 (0.00)\n", out)
}

func TestSlugCommand(t *testing.T) {
	out, _, err := run(t, "slug", "Olá", "Mundo")
	require.NoError(t, err)
	assert.Equal(t, "ola-mundo\n", out)
}

func TestUnknownLocale(t *testing.T) {
	_, _, err := run(t, "format", "--locale", "xx", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown locale")
}

func TestProductLifecycle(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "catalog.yaml")

	out, stderr, err := run(t, "--store", storePath, "products", "create",
		"--name", "Cadeira Gamer",
		"--amount", "R$ 1.299,90",
		"--description", "Cadeira reclinável com apoio lombar")
	require.NoError(t, err)
	assert.Contains(t, out, "/product/cadeira-gamer")
	assert.Contains(t, out, "R$1.299,90")
	assert.Contains(t, stderr, "Sucesso")
	id := strings.Fields(out)[0]

	out, _, err = run(t, "--store", storePath, "products", "show", "cadeira-gamer")
	require.NoError(t, err)
	assert.Equal(t, "Cadeira Gamer\nR$1.299,90\nCadeira reclinável com apoio lombar\nhttp://localhost:5173/product/cadeira-gamer\n", out)

	out, _, err = run(t, "--store", storePath, "--locale", "us", "products", "list", "-o", "csv")
	require.NoError(t, err)
	assert.Contains(t, out, `"$1,299.90"`)

	_, _, err = run(t, "--store", storePath, "products", "delete", id)
	require.NoError(t, err)

	_, _, err = run(t, "--store", storePath, "products", "show", "cadeira-gamer")
	assert.Error(t, err)
}

func TestProductCreateValidation(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "catalog.yaml")
	_, _, err := run(t, "--store", storePath, "products", "create", "--name", "ab", "--amount", "0", "--description", "curta")
	require.ErrorIs(t, err, domain.ErrInvalid)
	assert.Contains(t, err.Error(), "Must be greater than 0 (zero).")

	_, statErr := os.Stat(storePath)
	assert.True(t, os.IsNotExist(statErr), "invalid input must not create the store")
}

func TestTagsCommands(t *testing.T) {
	storePath := filepath.Join(t.TempDir(), "catalog.yaml")
	_, _, err := run(t, "--store", storePath, "tags", "create", "--title", "Go avançado")
	require.NoError(t, err)

	out, _, err := run(t, "--store", storePath, "tags", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "go-avancado")
	assert.Contains(t, out, "0 videos")
	assert.Contains(t, out, "Showing 1 of 1 items · Page 1 of 1")

	_, _, err = run(t, "--store", storePath, "tags", "list", "--per-page", "15")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rows per page")
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("locale: us\nwith_symbol: false\n"), 0o644))

	out, _, err := run(t, "--config", cfgPath, "format", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "1,234.50\n", out)

	out, _, err = run(t, "--config", cfgPath, "--symbol", "format", "1234.5")
	require.NoError(t, err)
	assert.Equal(t, "$1,234.50\n", out)
}
