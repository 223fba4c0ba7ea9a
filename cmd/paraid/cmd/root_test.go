package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCommand()
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeProject(t *testing.T, content string) string {
	t.Helper()
	location := filepath.Join(t.TempDir(), ".para", "project.json")
	assert.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
	assert.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestDeriveCommands(t *testing.T) {
	location := writeProject(t, `{"projectId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)

	for _, command := range []string{"workflow", "resource", "trigger"} {
		t.Run(command, func(t *testing.T) {
			out, err := run(t, command, "-p", location, "python.org", "")
			if !assert.NoError(t, err) {
				return
			}
			lines := strings.Split(strings.TrimSpace(out), "\n")
			assert.Len(t, lines, 2)
			assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d", lines[0])
			assert.Len(t, lines[1], 36)
		})
	}
}

func TestDeriveCommand_Env(t *testing.T) {
	location := writeProject(t, `{"projectId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)
	t.Setenv("PARAID_PROJECT", location)
	out, err := run(t, "workflow", "python.org")
	assert.NoError(t, err)
	assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d\n", out)
}

func TestDeriveCommand_InvalidProject(t *testing.T) {
	location := writeProject(t, `{"projectId": ""}`)
	_, err := run(t, "workflow", "-p", location, "x")
	assert.Error(t, err)

	_, err = run(t, "workflow", "-p", filepath.Join(t.TempDir(), "project.json"), "x")
	assert.Error(t, err)
}

func TestInitAndShow(t *testing.T) {
	location := filepath.Join(t.TempDir(), ".para", "project.json")
	out, err := run(t, "init", "-p", location, "--name", "shop")
	if !assert.NoError(t, err) {
		return
	}
	assert.Contains(t, out, "created "+location)

	out, err = run(t, "show", "-p", location)
	assert.NoError(t, err)
	assert.Contains(t, out, "namespace: ")
	assert.Contains(t, out, "name: shop\n")

	_, err = run(t, "init", "-p", location)
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, "validate", "886313e1-3b8a-5372-9b90-0c9aee199e5d")
	assert.NoError(t, err)
	assert.Equal(t, "886313e1-3b8a-5372-9b90-0c9aee199e5d ok\n", out)

	_, err = run(t, "validate", "886313e1-3b8a-5372-9b90-0c9aee199e5d", "123")
	assert.EqualError(t, err, "1 of 2 identifiers invalid")
}

type brokenWriter struct{}

func (brokenWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestValidateCommand_WriteError(t *testing.T) {
	for _, id := range []string{"886313e1-3b8a-5372-9b90-0c9aee199e5d", "123"} {
		rootCmd := NewRootCommand()
		rootCmd.SetOut(brokenWriter{})
		rootCmd.SetErr(brokenWriter{})
		rootCmd.SetArgs([]string{"validate", id})
		err := rootCmd.ExecuteContext(context.Background())
		assert.EqualError(t, err, "broken pipe", id)
	}
}
