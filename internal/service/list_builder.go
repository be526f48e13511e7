package service

import (
	"context"
	"fmt"
	"io"

	"earmouse-tools/internal/domain"

	"go.uber.org/zap"
)

// ListBuilder regenerates the module list from the module files on disk.
type ListBuilder struct {
	repo   domain.ModuleRepository
	out    io.Writer
	logger *zap.Logger
}

// NewListBuilder creates a new ListBuilder
func NewListBuilder(repo domain.ModuleRepository, out io.Writer, logger *zap.Logger) *ListBuilder {
	return &ListBuilder{repo: repo, out: out, logger: logger}
}

// Build loads every module file and writes the list file. Entries follow
// directory enumeration order. The list file is written only after every
// module file has been read successfully.
func (b *ListBuilder) Build(ctx context.Context) ([]domain.ListEntry, error) {
	names, err := b.repo.ListModuleFiles()
	if err != nil {
		return nil, err
	}

	entries := make([]domain.ListEntry, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fmt.Fprintf(b.out, "loading %s\n", name)
		entry, err := b.repo.LoadListEntry(name)
		if err != nil {
			return nil, err
		}
		b.logger.Debug("Loaded module", zap.String("file", name), zap.Int("module_id", entry.ModuleID))
		entries = append(entries, entry)
	}

	path, err := b.repo.SaveList(entries)
	if err != nil {
		return nil, err
	}
	b.logger.Info("Module list written", zap.String("path", path), zap.Int("items", len(entries)))
	return entries, nil
}
