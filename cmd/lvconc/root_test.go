// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	docA = "rows: 2\ncols: 3\ndata: [1, 2, 3, 4, 5, 6]\n"
	docB = "values:\n  - [1, 2]\n  - [3, 4]\n  - [5, 6]\n"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestMultiplyCmd(t *testing.T) {
	a, b := writeFile(t, "a.yaml", docA), writeFile(t, "b.yaml", docB)

	out, _, err := execute(t, "multiply", "--a", a, "--b", b)
	require.NoError(t, err)
	assert.Equal(t, "{22 28, 49 64}\n", out)

	out, _, err = execute(t, "multiply", "--a", a, "--b", b, "--debug-format")
	require.NoError(t, err)
	assert.Equal(t, "Matrix(row=2, col=2, {22 28, 49 64})\n", out)
}

func TestMultiplyCmd_Stats(t *testing.T) {
	a, b := writeFile(t, "a.yaml", docA), writeFile(t, "b.yaml", docB)

	_, errOut, err := execute(t, "--workers", "2", "multiply", "--a", a, "--b", b, "--stats")
	require.NoError(t, err)
	assert.Contains(t, errOut, "workpool.worker.0: 2\n")
	assert.Contains(t, errOut, "workpool.worker.1: 2\n")
}

func TestMultiplyCmd_Mismatch(t *testing.T) {
	a := writeFile(t, "a.yaml", docA)

	_, _, err := execute(t, "multiply", "--a", a, "--b", a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestRoot_InvalidWorkers(t *testing.T) {
	a := writeFile(t, "a.yaml", docA)

	_, _, err := execute(t, "--workers", "0", "multiply", "--a", a, "--b", a)
	require.ErrorIs(t, err, errInvalidWorkers)

	t.Setenv("LVCONC_WORKERS", "-3")
	_, _, err = execute(t, "multiply", "--a", a, "--b", a)
	require.ErrorIs(t, err, errInvalidWorkers)
}

func TestRoot_BadLogSettings(t *testing.T) {
	a := writeFile(t, "a.yaml", docA)

	_, _, err := execute(t, "--log-level", "loud", "multiply", "--a", a, "--b", a)
	require.Error(t, err)

	_, _, err = execute(t, "--log-format", "xml", "multiply", "--a", a, "--b", a)
	require.Error(t, err)
}

func TestPipelineCmd_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "lvconc.yaml", strings.Join([]string{
		"log:",
		"  format: json",
		"pipeline:",
		"  producers: 3",
		"  max_sleep: 0s",
		"  stop_chance: 1",
		"  secret: 7",
	}, "\n"))

	out, errOut, err := execute(t, "--config", cfg, "pipeline")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "consumer: "))
	assert.True(t, strings.HasSuffix(out, "consumer exit\nsecret: 7\n"), out)
	assert.Equal(t, 3, strings.Count(errOut, `"msg":"producer exit"`))
}

func TestMetricsCmd_Flags(t *testing.T) {
	cfg := writeFile(t, "lvconc.yaml", strings.Join([]string{
		"metrics:",
		"  task_min: 1ms",
		"  task_max: 2ms",
		"  request_min: 1ms",
		"  request_max: 2ms",
	}, "\n"))

	out, _, err := execute(t, "--config", cfg, "metrics", "--fixed", "--interval", "20ms", "--duration", "60ms")
	require.NoError(t, err)
	assert.Contains(t, out, "call.thread.worker.0: ")
	assert.Contains(t, out, "req.page.1: ")
}

func TestRoot_MissingConfig(t *testing.T) {
	_, _, err := execute(t, "--config", "/nonexistent/lvconc.yaml", "pipeline")
	require.Error(t, err)
}
