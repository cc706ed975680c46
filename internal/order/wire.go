package order

import (
	"go.uber.org/zap"

	"brekkie/internal/config"
	"brekkie/internal/order/controller"
	"brekkie/internal/order/service"
)

func NewModule(cfg *config.Config, logger *zap.Logger) *controller.OrderController {
	forwarder := service.NewForwarder(cfg.Ledger, logger)
	return controller.NewOrderController(forwarder, logger)
}
