package export_test

import (
	"bytes"
	"testing"
	"time"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

var exportDay = time.Date(2026, 5, 7, 18, 0, 0, 0, time.UTC)

func candidates() []*domain.CandidateProfile {
	return []*domain.CandidateProfile{
		{FullName: "Priya Sharma", CurrentTitle: `Lead "Platform" Engineer`, ExperienceYears: 6, MatchScore: 92, Location: "Bangalore, Karnataka", Skills: []string{"A", "B"}},
		{FullName: "Rohit <Patel>", ExperienceYears: 0, MatchScore: 0},
	}
}

func TestResolveFields(t *testing.T) {
	t.Run("nil means defaults", func(t *testing.T) {
		fields, err := export.ResolveFields(nil)
		require.NoError(t, err)
		require.Len(t, fields, 6)
		assert.Equal(t, "full_name", fields[0].ID)
		assert.Equal(t, "location", fields[5].ID)
	})

	t.Run("empty selection fails", func(t *testing.T) {
		_, err := export.ResolveFields([]string{})
		assert.ErrorIs(t, err, domain.ErrNoExportFields)
	})

	t.Run("unknown field fails", func(t *testing.T) {
		_, err := export.ResolveFields([]string{"full_name", "salary"})
		assert.ErrorIs(t, err, domain.ErrUnknownExportField)
	})

	t.Run("duplicates keep first position", func(t *testing.T) {
		fields, err := export.ResolveFields([]string{"skills", "full_name", "skills"})
		require.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "skills", fields[0].ID)
		assert.Equal(t, "full_name", fields[1].ID)
	})
}

func TestJSONDialectCSV(t *testing.T) {
	fields, err := export.ResolveFields([]string{"skills", "full_name", "current_title", "match_score"})
	require.NoError(t, err)

	data, err := export.WriteCSV(candidates(), fields, domain.DialectJSON)
	require.NoError(t, err)

	want := "Skills,Full Name,Current Title,Match Score\n" +
		`"A, B","Priya Sharma","Lead \"Platform\" Engineer","92"` + "\n" +
		`"","Rohit <Patel>","","0"`
	assert.Equal(t, want, string(data))
}

func TestJSONDialectKeepsLineSeparatorsRaw(t *testing.T) {
	fields, err := export.ResolveFields([]string{"full_name", "location"})
	require.NoError(t, err)

	data, err := export.WriteCSV([]*domain.CandidateProfile{
		{FullName: "a\u2028b\u2029c", Location: `C:\u2028 "x"`},
	}, fields, domain.DialectJSON)
	require.NoError(t, err)

	want := "Full Name,Location\n" +
		"\"a\u2028b\u2029c\",\"C:\\\\u2028 \\\"x\\\"\""
	assert.Equal(t, want, string(data))
}

func TestStandardDialectCSV(t *testing.T) {
	fields, err := export.ResolveFields([]string{"full_name", "skills", "location"})
	require.NoError(t, err)

	data, err := export.WriteCSV(candidates(), fields, domain.DialectStandard)
	require.NoError(t, err)

	want := "Full Name,Skills,Location\n" +
		"Priya Sharma,\"A, B\",\"Bangalore, Karnataka\"\n" +
		"Rohit <Patel>,,\n"
	assert.Equal(t, want, string(data))
}

func TestRender(t *testing.T) {
	t.Run("csv", func(t *testing.T) {
		file, err := export.Render(candidates(), nil, "", "", exportDay)
		require.NoError(t, err)
		assert.Equal(t, "candidates_export_2026-05-07.csv", file.Filename)
		assert.Equal(t, export.ContentTypeCSV, file.ContentType)
		assert.Equal(t, 2, file.Rows)
		assert.True(t, bytes.HasPrefix(file.Data, []byte("Full Name,Current Title,Current Company,Experience,Match Score,Location\n")))
	})

	t.Run("xlsx", func(t *testing.T) {
		file, err := export.Render(candidates(), []string{"full_name", "match_score", "skills"}, domain.FormatXLSX, "", exportDay)
		require.NoError(t, err)
		assert.Equal(t, "candidates_export_2026-05-07.xlsx", file.Filename)

		book, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer book.Close()

		rows, err := book.GetRows("Candidates")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"Full Name", "Match Score", "Skills"}, rows[0])
		assert.Equal(t, []string{"Priya Sharma", "92", "A, B"}, rows[1])
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := export.Render(candidates(), nil, "pdf", "", exportDay)
		assert.ErrorIs(t, err, domain.ErrUnsupportedExportFormat)
	})
}
