package services

import (
	"bytes"
	"context"
	"time"

	"github.com/GregMSThompson/budget-backend/internal/budget"
	"github.com/GregMSThompson/budget-backend/internal/dto"
	"github.com/GregMSThompson/budget-backend/internal/errs"
	"github.com/GregMSThompson/budget-backend/internal/models"
	"github.com/GregMSThompson/budget-backend/pkg/logger"
)

type expenseXSStore interface {
	QueryRange(ctx context.Context, uid string, startMs, endMs int64) ([]models.Expense, error)
}

type exportService struct {
	Store expenseXSStore
	loc   *time.Location
}

func NewExportService(store expenseXSStore, loc *time.Location) *exportService {
	if loc == nil {
		loc = time.Local
	}
	return &exportService{Store: store, loc: loc}
}

// ExportCSV renders the user's expenses as CSV: every expense when month is
// empty, otherwise the given "YYYY-MM" month.
func (s *exportService) ExportCSV(ctx context.Context, uid, month string) (dto.CSVExport, error) {
	var start, end int64
	if month != "" {
		w, err := budget.ParseMonth(month, s.loc)
		if err != nil {
			return dto.CSVExport{}, errs.NewValidationError(err.Error())
		}
		start, end = w.StartMs(), w.EndMs()
	}

	records, err := s.Store.QueryRange(ctx, uid, start, end)
	if err != nil {
		return dto.CSVExport{}, errs.WithOfflineMessage(err, OfflineCSV)
	}

	var buf bytes.Buffer
	rows, err := budget.WriteCSV(&buf, records, s.loc)
	if err != nil {
		return dto.CSVExport{}, err
	}

	logger.FromContext(ctx).Info("csv exported", "month", month, "rows", rows, "skipped", len(records)-rows)
	return dto.CSVExport{
		Filename: budget.CSVFilename(month),
		Rows:     rows,
		Body:     buf.Bytes(),
	}, nil
}
