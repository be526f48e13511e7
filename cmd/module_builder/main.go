// Command module_builder asks for the fields of an Earmouse module on stdin
// and writes them to module_<ID>.json in the working directory.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"earmouse-tools/internal/config"
	"earmouse-tools/internal/domain"
	"earmouse-tools/internal/logger"
	"earmouse-tools/internal/prompt"
	"earmouse-tools/internal/repository"
	"earmouse-tools/internal/service"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		// Logger is not initialized yet
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, afero.NewOsFs(), os.Stdin, os.Stdout, logger.Get())
	stop()
	_ = logger.Sync()
	os.Exit(code)
}

func run(ctx context.Context, cfg *config.Config, fs afero.Fs, in io.Reader, out io.Writer, log *zap.Logger) int {
	store := repository.NewModuleFileStore(fs, cfg.Tools)
	builder := service.NewModuleBuilder(store, prompt.New(in, out), prompt.ParseIntList, cfg.Tools, log)

	path, err := builder.Build(ctx)
	if err != nil {
		if domain.HasCode(err, domain.ErrInvalidExercise) {
			fmt.Fprintln(out, "First element of first exercise unit should be 0, aborting")
		}
		log.Error("Module build failed", zap.Error(err))
		return 1
	}

	log.Debug("Module build finished", zap.String("path", path))
	fmt.Fprintln(out, "done")
	return 0
}
