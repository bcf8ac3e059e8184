package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"store_management/config"
	"store_management/internal/delivery"
	"store_management/internal/repository"
	"store_management/internal/usecase"
	"store_management/pkg/console"
)

func main() {
	// Logs go to stderr so they never interleave with the interactive UI.
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		logger.SetLevel(logrus.InfoLevel)
	}

	logger.Info("Starting Store Management Console...")

	term := console.New(os.Stdin, os.Stdout)

	// Repository layer
	employeeRepo := repository.NewEmployeeRepository(logger)
	productRepo := repository.NewProductRepository(logger)
	customerRepo := repository.NewCustomerRepository(logger)
	orderRepo := repository.NewOrderRepository(logger)
	logger.Info("Repositories initialized.")

	// Usecase layer
	employeeUseCase := usecase.NewEmployeeUseCase(employeeRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, logger)
	customerUseCase := usecase.NewCustomerUseCase(customerRepo, term, logger)
	purchaseUseCase := usecase.NewPurchaseUseCase(productRepo, orderRepo, term, logger)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, logger)
	logger.Info("Use cases initialized.")

	shell := delivery.NewShell(
		term,
		delivery.NewEmployeeHandler(employeeUseCase, term, logger),
		delivery.NewProductHandler(productUseCase, term, logger),
		delivery.NewPurchaseHandler(customerUseCase, purchaseUseCase, term, logger),
		delivery.NewOrderHandler(orderUseCase, term, logger),
		delivery.NewExportHandler(productRepo, customerRepo, cfg.ExportPath(logger), term, logger),
		logger,
	)
	logger.Info("Handlers initialized.")

	shell.Run()
	logger.Info("Store Management Console stopped.")
}
