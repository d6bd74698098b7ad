package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"go-talent-dashboard/internal/domain"

	"github.com/goccy/go-json"
)

// WriteCSV renders candidates in the requested dialect.
func WriteCSV(candidates []*domain.CandidateProfile, fields []domain.ExportField, dialect domain.ExportDialect) ([]byte, error) {
	switch dialect {
	case domain.DialectJSON, "":
		return writeJSONCSV(candidates, fields)
	case domain.DialectStandard:
		return writeStandardCSV(candidates, fields)
	default:
		return nil, fmt.Errorf("unknown csv dialect: %s", dialect)
	}
}

// writeJSONCSV writes the header labels bare and every data cell as a JSON
// string literal. Lines are separated by "\n" with no trailing newline.
func writeJSONCSV(candidates []*domain.CandidateProfile, fields []domain.ExportField) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(strings.Join(labels(fields), ","))

	var cell bytes.Buffer
	enc := json.NewEncoder(&cell)
	enc.SetEscapeHTML(false)

	for _, c := range candidates {
		buf.WriteByte('\n')
		for i, f := range fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			cell.Reset()
			if err := enc.Encode(FieldValue(c, f.ID)); err != nil {
				return nil, fmt.Errorf("encode %s: %w", f.ID, err)
			}
			buf.Write(unescapeLineSeparators(bytes.TrimSuffix(cell.Bytes(), []byte("\n"))))
		}
	}
	return buf.Bytes(), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes the encoder
// emits back into raw characters, as browsers' JSON.stringify leaves them.
// Every backslash in encoder output starts an escape, so pairs are skipped
// whole and an escaped backslash is never mistaken for one.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}

	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if b[i+1] == 'u' && i+5 < len(b) && string(b[i+2:i+5]) == "202" && (b[i+5] == '8' || b[i+5] == '9') {
			if b[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}

func writeStandardCSV(candidates []*domain.CandidateProfile, fields []domain.ExportField) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(labels(fields)); err != nil {
		return nil, err
	}

	row := make([]string, len(fields))
	for _, c := range candidates {
		for i, f := range fields {
			row[i] = FieldValue(c, f.ID)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
