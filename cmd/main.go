package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/sbilibin2017/gw-bank-accounts/docs"
	"github.com/sbilibin2017/gw-bank-accounts/internal/handlers"
	"github.com/sbilibin2017/gw-bank-accounts/internal/logger"
	"github.com/sbilibin2017/gw-bank-accounts/internal/middlewares"
	"github.com/sbilibin2017/gw-bank-accounts/internal/repositories"
	"github.com/sbilibin2017/gw-bank-accounts/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Storage drivers
const (
	storageFile   = "file"
	storageMemory = "memory"
)

// @title gw-bank-accounts API
// @version 1.0.0
// @description Local form layer for bank account management backed by JSON files
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFormat,
		storage, accountsFile, transactionsFile,
		strictModify, allowSelfTransfer,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, logFormat,
		storage, accountsFile, transactionsFile,
		strictModify, allowSelfTransfer,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting gw-bank-accounts\nVersion: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging, storage and account policy configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, logFormat string,
	storage, accountsFile, transactionsFile string,
	strictModify, allowSelfTransfer bool,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", "json")

	// Storage config
	storage = getEnv("BANK_STORAGE", storageFile)
	if storage != storageFile && storage != storageMemory {
		err = fmt.Errorf("unknown BANK_STORAGE %q", storage)
		return
	}
	accountsFile = getEnv("BANK_ACCOUNTS_FILE", "accounts.json")
	transactionsFile = getEnv("BANK_TRANSACTIONS_FILE", "transactions.json")

	// Account policy config
	if strictModify, err = strconv.ParseBool(getEnv("BANK_STRICT_MODIFY", "false")); err != nil {
		return
	}
	if allowSelfTransfer, err = strconv.ParseBool(getEnv("BANK_ALLOW_SELF_TRANSFER", "false")); err != nil {
		return
	}

	return
}

// newStores builds the account and ledger stores for the storage driver.
func newStores(storage, accountsFile, transactionsFile string) (services.AccountStore, services.TransactionStore, error) {
	switch storage {
	case storageFile:
		return repositories.NewAccountFileRepository(accountsFile),
			repositories.NewTransactionFileRepository(transactionsFile), nil
	case storageMemory:
		return repositories.NewAccountMemoryRepository(),
			repositories.NewTransactionMemoryRepository(), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", storage)
	}
}

// newRouter wires handlers, middleware and the Swagger UI.
func newRouter(
	appHost, appPort string,
	accounts *services.AccountService,
	ledger *services.LedgerService,
	transfers *services.TransferService,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.SerializeMiddleware())

		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", handlers.NewListAccountsHandler(accounts))
			r.Post("/", handlers.NewCreateAccountHandler(accounts))
			r.Route("/{acno}", func(r chi.Router) {
				r.Get("/", handlers.NewGetAccountHandler(accounts))
				r.Put("/", handlers.NewModifyAccountHandler(accounts))
				r.Delete("/", handlers.NewDeleteAccountHandler(accounts))
				r.Post("/deposit", handlers.NewDepositHandler(accounts))
				r.Post("/withdraw", handlers.NewWithdrawHandler(accounts))
				r.Get("/transactions", handlers.NewHistoryHandler(ledger))
			})
		})
		r.Post("/transfers", handlers.NewTransferHandler(transfers))
	})

	return r
}

// run initializes the logger, stores and services, starts the HTTP server
// and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, logFormat string,
	storage, accountsFile, transactionsFile string,
	strictModify, allowSelfTransfer bool,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Initialize stores
	accountStore, txnStore, err := newStores(storage, accountsFile, transactionsFile)
	if err != nil {
		return err
	}
	log.Infow("Storage initialized",
		"driver", storage,
		"accounts_file", accountsFile,
		"transactions_file", transactionsFile,
	)

	// Initialize services
	ledgerService := services.NewLedgerService(txnStore, time.Now)
	accountService := services.NewAccountService(accountStore, ledgerService, strictModify)
	transferService := services.NewTransferService(accountStore, ledgerService, allowSelfTransfer)
	log.Infow("Account policy", "strict_modify", strictModify, "allow_self_transfer", allowSelfTransfer)

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: newRouter(appHost, appPort, accountService, ledgerService, transferService),
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
