package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go-talent-dashboard/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--store", "sqlite", "--sqlite-path", dbPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSearchThenQuery(t *testing.T) {
	t.Setenv("EXPORT_DIALECT", "json")
	dir := t.TempDir()
	db := filepath.Join(dir, "talent.db")

	out, err := run(t, db, "search", "--title", "Senior Backend Engineer", "--skills", "Go,PostgreSQL", "--fast")
	require.NoError(t, err)
	assert.Contains(t, out, "[100%]")
	assert.Contains(t, out, "Found 4 candidates")

	out, err = run(t, db, "jobs", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Senior Backend Engineer")
	assert.Contains(t, out, "Go, PostgreSQL")

	out, err = run(t, db, "candidates", "list", "--min-score", "85", "--sort", "name")
	require.NoError(t, err)
	assert.Contains(t, out, "2 of 4 candidates")
	assert.Less(t, strings.Index(out, "Priya"), strings.Index(out, "Rohit"))
	assert.NotContains(t, out, "Vikash")

	out, err = run(t, db, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "Job searches")
	assert.Contains(t, out, "New job search created")
}

func TestCandidatesExportWritesFile(t *testing.T) {
	t.Setenv("EXPORT_DIALECT", "json")
	dir := t.TempDir()
	db := filepath.Join(dir, "talent.db")

	_, err := run(t, db, "search", "--title", "Data Engineer", "--skills", "Spark", "--fast")
	require.NoError(t, err)

	target := filepath.Join(dir, "out.csv")
	out, err := run(t, db, "candidates", "export", "--fields", "full_name,match_score", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, "Exported 4 candidates")

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "Full Name,Match Score", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], `,"92"`), lines[1])
}

func TestSearchRejectsInvalidRequirement(t *testing.T) {
	db := filepath.Join(t.TempDir(), "talent.db")

	_, err := run(t, db, "search", "--title", "QA", "--skills", "Go", "--min-experience", "5", "--max-experience", "2", "--fast")
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))

	var buf bytes.Buffer
	printError(&buf, err)
	assert.Contains(t, buf.String(), "Error:")
}

func TestCandidatesListRejectsBadExperience(t *testing.T) {
	db := filepath.Join(t.TempDir(), "talent.db")

	_, err := run(t, db, "candidates", "list", "--experience", "5-2")
	assert.Error(t, err)
}
