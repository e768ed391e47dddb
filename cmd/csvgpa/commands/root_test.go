package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/csvgpa/internal/gpa"
)

func writeCSV(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

// runCLI executes the root command with args, capturing stdout.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	if args == nil {
		// SetArgs(nil) would fall back to os.Args.
		args = []string{}
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRunAverage(t *testing.T) {
	path := writeCSV(t, "students.csv", "name,gpa\nAlice,3.5\nBob,4.0\n")

	out, err := runCLI(t, path)
	require.NoError(t, err)
	assert.Equal(t, "3.75\n", out)
	assert.Equal(t, ExitOK, ExitCode(err))
}

func TestRunAverageSkipsInvalidRows(t *testing.T) {
	path := writeCSV(t, "students.csv", "name,gpa\nAlice,3.5\nBob,bad\nCarol,\n")

	out, err := runCLI(t, path)
	require.NoError(t, err)
	assert.Equal(t, "3.50\n", out)
}

func TestRunAverageDefaultFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "students.csv"),
		[]byte("name,gpa\nAlice,2.0\nBob,4.0\n"),
		0o644,
	))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Equal(t, "3.00\n", out)
}

func TestRunAverageNoGPAColumn(t *testing.T) {
	path := writeCSV(t, "students.csv", "name,score\nAlice,3.5\n")

	_, err := runCLI(t, path)
	require.Error(t, err)
	assert.Equal(t, ExitValidation, ExitCode(err))

	// The message names the headers that were found.
	assert.Contains(t, err.Error(), "GPA column")
	assert.Contains(t, err.Error(), "name, score")
}

func TestRunAverageNoDataRows(t *testing.T) {
	path := writeCSV(t, "students.csv", "name,gpa\n")

	_, err := runCLI(t, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, gpa.ErrNoValidData)
	assert.Equal(t, ExitValidation, ExitCode(err))
}

func TestRunAverageEmptyFile(t *testing.T) {
	path := writeCSV(t, "students.csv", "")

	_, err := runCLI(t, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, gpa.ErrNoHeader)
	assert.Equal(t, ExitValidation, ExitCode(err))
}

func TestRunAverageMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.csv")

	_, err := runCLI(t, path)
	require.Error(t, err)
	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.Equal(t, "file not found: "+path, err.Error())
}

func TestRunAverageWithBOM(t *testing.T) {
	path := writeCSV(t, "students.csv", "\uFEFFname,gpa\nAlice,4.0\n")

	out, err := runCLI(t, path)
	require.NoError(t, err)
	assert.Equal(t, "4.00\n", out)
}
