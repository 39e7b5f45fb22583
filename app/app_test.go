package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// flag values survive between executions
	idsFrom, randomIDs, idPrefix, dumpJSON = 0, 0, "", false

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()

	return out.String(), err
}

func TestRender(t *testing.T) {
	out, err := execute(t, "render", "../etc/documents/account.yaml")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, `<div class="dropdown">`), out)
	assert.Contains(t, out, `aria-controls="w0-dropdown"`)
	assert.Contains(t, out, `<a class="dropdown-item" href="/profile">Profile</a>`)
}

func TestRender_SharedSequence(t *testing.T) {
	out, err := execute(t, "render", "--ids-from", "5", "--id-prefix", "doc",
		"../etc/documents/account.yaml", "../etc/documents/site.yaml")
	require.NoError(t, err)

	assert.Contains(t, out, `aria-controls="doc5-dropdown"`)
	assert.Contains(t, out, `<nav id="doc6-navbar"`)
	assert.Contains(t, out, `aria-controls="doc7-dropdown"`)
}

func TestRender_RandomIDs(t *testing.T) {
	out, err := execute(t, "render", "--random-ids", "6", "../etc/documents/account.yaml")
	require.NoError(t, err)

	assert.Regexp(t, `aria-controls="w[a-z0-9]{6}-dropdown"`, out)
}

func TestRender_Errors(t *testing.T) {
	_, err := execute(t, "render")
	assert.Error(t, err)

	_, err = execute(t, "render", "../etc/documents/missing.yaml")
	assert.Error(t, err)
}

func TestConfigDump(t *testing.T) {
	out, err := execute(t, "config", "dump", "--config", "../etc/")
	require.NoError(t, err)
	assert.Contains(t, out, "GoBulma widget preview")

	out, err = execute(t, "config", "dump", "--json", "--config", "../etc/")
	require.NoError(t, err)
	assert.Contains(t, out, `"Title": "GoBulma widget preview"`)
}
