package domain

import "context"

type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatXLSX ExportFormat = "xlsx"
)

// ExportDialect selects how CSV cells are quoted.
type ExportDialect string

const (
	// DialectJSON encodes every cell as a JSON string, so every cell is
	// double-quoted. Files produced by the legacy dashboard use it.
	DialectJSON ExportDialect = "json"
	// DialectStandard follows RFC 4180 and quotes only when needed.
	DialectStandard ExportDialect = "standard"
)

type ExportField struct {
	ID      string `json:"id"`
	Label   string `json:"label"`
	Default bool   `json:"default"`
}

// ExportableFields lists every candidate field that can be exported, in
// the order the export dialog shows them.
var ExportableFields = []ExportField{
	{ID: "full_name", Label: "Full Name", Default: true},
	{ID: "current_title", Label: "Current Title", Default: true},
	{ID: "current_company", Label: "Current Company", Default: true},
	{ID: "experience_years", Label: "Experience", Default: true},
	{ID: "match_score", Label: "Match Score", Default: true},
	{ID: "location", Label: "Location", Default: true},
	{ID: "education", Label: "Education"},
	{ID: "skills", Label: "Skills"},
	{ID: "soft_skills", Label: "Soft Skills"},
	{ID: "source_platform", Label: "Source Platform"},
	{ID: "linkedin_url", Label: "LinkedIn URL"},
	{ID: "naukri_url", Label: "Naukri URL"},
	{ID: "email", Label: "Email"},
	{ID: "phone", Label: "Phone"},
}

func DefaultExportFieldIDs() []string {
	var ids []string
	for _, f := range ExportableFields {
		if f.Default {
			ids = append(ids, f.ID)
		}
	}
	return ids
}

func LookupExportField(id string) (ExportField, bool) {
	for _, f := range ExportableFields {
		if f.ID == id {
			return f, true
		}
	}
	return ExportField{}, false
}

// ExportRequest exports the candidates selected by Query. A nil Fields
// means the default selection; an empty non-nil Fields is rejected.
type ExportRequest struct {
	Query   CandidateQuery `json:"query"`
	Fields  []string       `json:"fields"`
	Format  ExportFormat   `json:"format"`
	Dialect ExportDialect  `json:"dialect"`
}

type ExportFile struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
	Rows        int    `json:"rows"`
}

type ExportUsecase interface {
	ExportCandidates(ctx context.Context, req ExportRequest) (*ExportFile, error)
}
