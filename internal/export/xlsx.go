package export

import (
	"bytes"
	"fmt"

	"go-talent-dashboard/internal/domain"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Candidates"

// numericFields are written as numbers so spreadsheets can sort them.
var numericFields = map[string]bool{
	"experience_years": true,
	"match_score":      true,
}

func WriteXLSX(candidates []*domain.CandidateProfile, fields []domain.ExportField) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, field := range fields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetName, cell, field.Label); err != nil {
			return nil, err
		}
	}

	// Style headers - dark slate background with white text
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E293B"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	endCell, _ := excelize.CoordinatesToCellName(len(fields), 1)
	if err := f.SetCellStyle(sheetName, "A1", endCell, headerStyle); err != nil {
		return nil, err
	}

	for rowIdx, c := range candidates {
		for colIdx, field := range fields {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			var value any = FieldValue(c, field.ID)
			if numericFields[field.ID] {
				value = numericValue(c, field.ID)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
		}
	}

	for i, field := range fields {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := 20.0
		if field.ID == "skills" || field.ID == "soft_skills" {
			width = 40
		}
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func numericValue(c *domain.CandidateProfile, field string) int {
	if field == "match_score" {
		return c.MatchScore
	}
	return c.ExperienceYears
}
