// Command list_builder collects the summary of every module file in the
// working directory into list.json.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"earmouse-tools/internal/config"
	"earmouse-tools/internal/logger"
	"earmouse-tools/internal/repository"
	"earmouse-tools/internal/service"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, afero.NewOsFs(), os.Stdout, logger.Get())
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, fs afero.Fs, out io.Writer, log *zap.Logger) int {
	store := repository.NewModuleFileStore(fs, cfg.Tools)

	entries, err := service.NewListBuilder(store, out, log).Build(ctx)
	if err != nil {
		log.Error("List build failed", zap.Error(err))
		return 1
	}

	fmt.Fprintf(out, "created %s with %d items\n", store.ListFileName(), len(entries))
	return 0
}
