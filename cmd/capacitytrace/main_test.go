package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()

	return out.String(), errOut.String(), err
}

func writeScript(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	return path
}

func TestRunPrintsTable(t *testing.T) {
	path := writeScript(t, "name: t\ninitial: [1, 2, 3, 4, 5]\nops:\n  - {op: shrink}\n")
	out, _, err := execute(t, "run", path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, []string{"0", "initial", "5", "10", "-"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"1", "shrink", "5", "5", "10->5"}, strings.Fields(lines[2]))
}

func TestRunValuesAndVerbose(t *testing.T) {
	path := writeScript(t, "ops:\n  - {op: push, value: 7}\n")
	out, logs, err := execute(t, "run", path, "--values", "--verbose")
	require.NoError(t, err)
	require.Contains(t, out, "[7]")
	require.Contains(t, logs, "msg=realloc")
	require.Contains(t, logs, "reason=insert")

	_, logs, err = execute(t, "run", path)
	require.NoError(t, err)
	require.NotContains(t, logs, "msg=realloc")
	require.Contains(t, logs, `msg="replay done"`)
}

func TestRunReportsScriptErrors(t *testing.T) {
	path := writeScript(t, "ops:\n  - {op: push, value: 1}\n  - {op: erase, pos: 5}\n")
	out, _, err := execute(t, "run", path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "op 2 erase")
	require.Contains(t, out, "push", "steps before the failure are still printed")

	_, _, err = execute(t, "run")
	require.Error(t, err)

	_, _, err = execute(t, "run", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
