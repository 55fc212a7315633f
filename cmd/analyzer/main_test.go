package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spacesedan/sentibatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func setupEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("OUTPUT_FORMAT", "")
	t.Setenv("STRIP_MARKUP", "")
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String()
}

func decodeError(t *testing.T, out string) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), out)
	return resp.Error
}

const sampleCSV = "reviewText\n" +
	"I love this!\n" +
	"\"Terrible, hated it.\"\n" +
	"It arrived on Tuesday.\n"

func TestRun_Success(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", sampleCSV)

	code, out := execute(t, path, "csv")
	require.Equal(t, 0, code, out)

	var report models.Report
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.Success)
	assert.Equal(t, 3, report.Total())
	assert.Equal(t, 33.33, report.Percentages.Positive)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	for _, key := range []string{"success", "sentiment_counts", "sentiment_percentages", "grouped_reviews"} {
		assert.Contains(t, raw, key)
	}
}

func TestRun_Arity(t *testing.T) {
	setupEnv(t)

	for _, args := range [][]string{{}, {"only-one"}, {"a", "b", "c"}} {
		code, out := execute(t, args...)
		assert.Equal(t, models.ExitCode(models.ErrInvalidArguments), code)
		assert.Equal(t, "Invalid arguments", decodeError(t, out))
	}
}

func TestRun_UnknownFlag(t *testing.T) {
	setupEnv(t)

	code, out := execute(t, "--nope", "file.csv", "csv")
	assert.Equal(t, models.ExitCode(models.ErrInvalidArguments), code)
	assert.Contains(t, decodeError(t, out), "Invalid arguments")
}

func TestRun_HelpIsNotAResult(t *testing.T) {
	setupEnv(t)

	for _, flag := range []string{"--help", "-h"} {
		t.Run(flag, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run([]string{flag}, &stdout, &stderr)

			assert.Equal(t, models.ExitCode(models.ErrInvalidArguments), code)
			assert.Equal(t, "Invalid arguments", decodeError(t, stdout.String()))
			assert.Contains(t, stderr.String(), "analyzer <file> <csv|xlsx|xls|pdf>")
		})
	}
}

func TestRun_DashPrefixedPath(t *testing.T) {
	setupEnv(t)

	code, out := execute(t, "-missing.csv", "csv")
	assert.Equal(t, models.ExitCode(models.ErrInvalidArguments), code)
	assert.Contains(t, decodeError(t, out), "Invalid arguments")

	code, out = execute(t, "--", "-missing.csv", "csv")
	assert.Equal(t, models.ExitCode(models.ErrRead), code)
	assert.Contains(t, decodeError(t, out), "Error reading file: ")
}

func TestRun_EmptyCSV(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", "")

	code, out := execute(t, path, "csv")
	assert.Equal(t, models.ExitCode(models.ErrRead), code)
	assert.Equal(t, "Error reading file: No columns to parse from file", decodeError(t, out))
}

func TestRun_InvalidFormat(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.docx", "irrelevant")

	code, out := execute(t, path, "docx")
	assert.Equal(t, models.ExitCode(models.ErrInvalidFormat), code)
	assert.Equal(t, "Invalid file format. Please upload CSV, XLSX, or PDF files only.", decodeError(t, out))
}

func TestRun_MissingColumn(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", "comment\nI love this!\n")

	code, out := execute(t, path, "csv")
	assert.Equal(t, models.ExitCode(models.ErrMissingColumn), code)
	assert.Equal(t, "Missing 'reviewText' column in the uploaded file", decodeError(t, out))
}

func TestRun_ReadError(t *testing.T) {
	setupEnv(t)

	code, out := execute(t, filepath.Join(t.TempDir(), "missing.csv"), "csv")
	assert.Equal(t, models.ExitCode(models.ErrRead), code)
	assert.Contains(t, decodeError(t, out), "Error reading file: ")
}

func TestRun_CategoryView(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", sampleCSV)

	code, out := execute(t, "--category", "negative", path, "csv")
	require.Equal(t, 0, code, out)

	var view models.CategoryView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, models.Negative, view.Sentiment)
	assert.Equal(t, 1, view.Count)
	assert.Equal(t, []string{"Terrible, hated it."}, view.Reviews)
}

func TestRun_BadCategory(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", sampleCSV)

	code, _ := execute(t, "--category", "mixed", path, "csv")
	assert.Equal(t, models.ExitCode(models.ErrInvalidArguments), code)
}

func TestRun_YAMLOutput(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", sampleCSV)

	code, out := execute(t, "-o", "yaml", path, "csv")
	require.Equal(t, 0, code, out)

	var report models.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.True(t, report.Success)
	assert.Equal(t, []string{"I love this!"}, report.Grouped.Positive)
}

func TestRun_BadOutputFlag(t *testing.T) {
	setupEnv(t)
	path := writeInput(t, "reviews.csv", sampleCSV)

	code, out := execute(t, "-o", "xml", path, "csv")
	assert.Equal(t, models.ExitCode(models.ErrInvalidArguments), code)
	assert.Contains(t, decodeError(t, out), "Invalid arguments")
}
