package ledger

import (
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"brekkie/internal/config"
	"brekkie/internal/ledger/controller"
	"brekkie/internal/ledger/repository"
	"brekkie/internal/ledger/service"
)

func NewModule(db *sql.DB, cfg *config.Config, logger *zap.Logger) (*controller.AppendController, *controller.SheetController, error) {
	wholesalePrice, err := decimal.NewFromString(cfg.Ledger.WholesalePricePerLoaf)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing wholesale price %q: %w", cfg.Ledger.WholesalePricePerLoaf, err)
	}

	sheetRepo := repository.NewMySQLSheetRepository(db)
	rowRepo := repository.NewMySQLRowRepository(db)

	ledgerSvc := service.NewLedgerService(sheetRepo, rowRepo, wholesalePrice, logger)

	return controller.NewAppendController(ledgerSvc, logger), controller.NewSheetController(ledgerSvc, logger), nil
}
