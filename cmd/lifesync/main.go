// Command lifesync is the terminal front end. It always uses the file backend
// under DATA_DIR so it can run without any server.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/comitanigiacomo/lifesync/internal/adapters/repository"
	"github.com/comitanigiacomo/lifesync/internal/cli"
	"github.com/comitanigiacomo/lifesync/internal/config"
	"github.com/comitanigiacomo/lifesync/internal/core/domain"
	"github.com/comitanigiacomo/lifesync/internal/core/services"
	"github.com/comitanigiacomo/lifesync/internal/logging"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrRange) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Warnings only, so that skipped records are visible without drowning the output.
	logger, err := logging.New("warn", "console")
	if err != nil {
		return err
	}
	defer logger.Sync()

	routines := repository.NewJSONRoutineRepository(cfg.DataDir, logger)
	application := &cli.App{
		Routines:    services.NewRoutineService(routines),
		Stats:       services.NewStatsService(routines),
		Journal:     services.NewJournalService(repository.NewJournalFileRepository(cfg.DataDir), nil),
		Attractions: services.NewAttractionService(domain.DefaultAttractions()),
		Chatbot:     services.NewChatbotService(nil),
		Wellness:    services.NewWellnessService(repository.NewHealthFileRepository(cfg.DataDir)),
		DefaultUser: cfg.DefaultUser,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.NewRootCommand(application, version).ExecuteContext(ctx)
}
