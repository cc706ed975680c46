package service

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"brekkie/internal/domain"
	"brekkie/internal/validation"
)

type SheetRepository interface {
	EnsureSheet(ctx context.Context, name string, weekStart time.Time) (uint, error)
	FindByName(ctx context.Context, name string) (uint, time.Time, error)
}

type RowRepository interface {
	Insert(ctx context.Context, row domain.LedgerRow) (uint, error)
	ListBySheet(ctx context.Context, sheetID uint) ([]domain.LedgerRow, error)
}

// LedgerService appends accepted orders to the weekly ledger. The storage
// handle comes in through the repositories, never from ambient state.
type LedgerService struct {
	sheets         SheetRepository
	rows           RowRepository
	wholesalePrice decimal.Decimal
	logger         *zap.Logger

	// mu serializes resolve-or-create of weekly sheets in this process;
	// the unique key on the sheet name guards across processes.
	mu sync.Mutex
}

func NewLedgerService(
	sheets SheetRepository,
	rows RowRepository,
	wholesalePrice decimal.Decimal,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		sheets:         sheets,
		rows:           rows,
		wholesalePrice: wholesalePrice,
		logger:         logger,
	}
}

// Append records one order in the sheet for the week containing its
// submission moment, creating the sheet on the week's first write.
func (s *LedgerService) Append(ctx context.Context, payload domain.OrderPayload) (*domain.LedgerRow, error) {
	if err := validation.ValidatePayload(&payload); err != nil {
		return nil, err
	}

	if payload.SubmittedAt.IsZero() {
		payload.SubmittedAt = time.Now().UTC()
	}

	sheetName := domain.WeekSheetName(payload.SubmittedAt)
	weekStart := domain.WeekStart(payload.SubmittedAt)

	s.mu.Lock()
	sheetID, err := s.sheets.EnsureSheet(ctx, sheetName, weekStart)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("failed to resolve weekly sheet", zap.String("sheet", sheetName), zap.Error(err))
		return nil, err
	}

	row := domain.NewLedgerRow(payload, s.wholesalePrice)
	row.SheetID = sheetID

	id, err := s.rows.Insert(ctx, row)
	if err != nil {
		s.logger.Error("failed to append ledger row", zap.String("sheet", sheetName), zap.Error(err))
		return nil, err
	}
	row.ID = id

	s.logger.Info("ledger row appended",
		zap.String("sheet", sheetName),
		zap.Uint("rowId", id),
		zap.String("type", row.Type),
		zap.Int("totalUnits", row.TotalUnits),
	)

	return &row, nil
}

// Sheet loads a weekly sheet and its rows by sheet name. A NotFoundError
// from the repository passes through for the controller to map.
func (s *LedgerService) Sheet(ctx context.Context, name string) (*domain.LedgerSheet, error) {
	id, weekStart, err := s.sheets.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	rows, err := s.rows.ListBySheet(ctx, id)
	if err != nil {
		s.logger.Error("failed to load ledger rows", zap.String("sheet", name), zap.Error(err))
		return nil, err
	}

	return &domain.LedgerSheet{
		ID:        id,
		Name:      name,
		WeekStart: weekStart,
		Rows:      rows,
	}, nil
}
