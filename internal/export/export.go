// Package export turns candidate lists into downloadable files.
package export

import (
	"fmt"
	"time"

	"go-talent-dashboard/internal/domain"
)

const (
	ContentTypeCSV  = "text/csv;charset=utf-8"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Filename is candidates_export_<yyyy-mm-dd>.<format>.
func Filename(format domain.ExportFormat, now time.Time) string {
	return fmt.Sprintf("candidates_export_%s.%s", now.Format("2006-01-02"), format)
}

// Render resolves the field selection and encodes candidates in the given
// format. An empty format means CSV.
func Render(candidates []*domain.CandidateProfile, selected []string, format domain.ExportFormat, dialect domain.ExportDialect, now time.Time) (*domain.ExportFile, error) {
	fields, err := ResolveFields(selected)
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = domain.FormatCSV
	}

	var (
		data        []byte
		contentType string
	)
	switch format {
	case domain.FormatCSV:
		data, err = WriteCSV(candidates, fields, dialect)
		contentType = ContentTypeCSV
	case domain.FormatXLSX:
		data, err = WriteXLSX(candidates, fields)
		contentType = ContentTypeXLSX
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedExportFormat, format)
	}
	if err != nil {
		return nil, err
	}

	return &domain.ExportFile{
		Filename:    Filename(format, now),
		ContentType: contentType,
		Data:        data,
		Rows:        len(candidates),
	}, nil
}
