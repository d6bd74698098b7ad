package usecase

import (
	"context"
	"errors"
	"time"

	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/export"
	"go-talent-dashboard/pkg/apperror"
	"go-talent-dashboard/pkg/logger"
)

type exportUsecase struct {
	candidates     domain.CandidateUsecase
	defaultDialect domain.ExportDialect
	now            func() time.Time
}

// NewExportUsecase exports through the candidate query pipeline so a file
// always matches what the results page shows.
func NewExportUsecase(candidates domain.CandidateUsecase, defaultDialect domain.ExportDialect) domain.ExportUsecase {
	return &exportUsecase{
		candidates:     candidates,
		defaultDialect: defaultDialect,
		now:            time.Now,
	}
}

func (u *exportUsecase) ExportCandidates(ctx context.Context, req domain.ExportRequest) (*domain.ExportFile, error) {
	result, err := u.candidates.QueryCandidates(ctx, req.Query)
	if err != nil {
		return nil, err
	}

	dialect := req.Dialect
	if dialect == "" {
		dialect = u.defaultDialect
	}

	file, err := export.Render(result.Candidates, req.Fields, req.Format, dialect, u.now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoExportFields):
			return nil, apperror.Unprocessable("Select at least one field to export", err)
		case errors.Is(err, domain.ErrUnknownExportField), errors.Is(err, domain.ErrUnsupportedExportFormat):
			return nil, apperror.BadRequest(err.Error())
		default:
			return nil, apperror.Unprocessable("Export failed", err)
		}
	}

	logger.Log.Info("Candidates exported",
		"filename", file.Filename,
		"rows", file.Rows,
		"format", req.Format,
	)
	return file, nil
}
