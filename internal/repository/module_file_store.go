package repository

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"earmouse-tools/internal/config"
	"earmouse-tools/internal/domain"
	"earmouse-tools/internal/repository/models"

	"github.com/spf13/afero"
)

const filePerm = 0o644

// ModuleFileStore keeps one JSON file per module plus the list file,
// all in a single directory.
type ModuleFileStore struct {
	fs          afero.Fs
	dir         string
	prefix      string
	listFile    string
	toolVersion string
}

// NewModuleFileStore creates a store rooted at cfg.WorkDir on fs.
func NewModuleFileStore(fs afero.Fs, cfg config.ToolsConfig) *ModuleFileStore {
	return &ModuleFileStore{
		fs:          fs,
		dir:         cfg.WorkDir,
		prefix:      cfg.ModulePrefix,
		listFile:    cfg.ListFile,
		toolVersion: cfg.BuilderVersion,
	}
}

var _ domain.ModuleRepository = (*ModuleFileStore)(nil)

// ModuleFileName returns the file name for a module ID, e.g. module_3.json.
func (s *ModuleFileStore) ModuleFileName(id int) string {
	return s.prefix + strconv.Itoa(id) + ".json"
}

// ListFileName returns the configured list file name.
func (s *ModuleFileStore) ListFileName() string {
	return s.listFile
}

// ListModuleFiles returns the names of regular files containing the module
// prefix, sorted by name. The list file itself is never included.
func (s *ModuleFileStore) ListModuleFiles() ([]string, error) {
	infos, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", s.dir, err)
	}

	var names []string
	for _, info := range infos {
		name := info.Name()
		if info.IsDir() || name == s.listFile {
			continue
		}
		if strings.Contains(name, s.prefix) {
			names = append(names, name)
		}
	}
	return names, nil
}

// CountModuleFiles implements domain.ModuleRepository
func (s *ModuleFileStore) CountModuleFiles() (int, error) {
	names, err := s.ListModuleFiles()
	if err != nil {
		return 0, err
	}
	return len(names), nil
}

// SaveModule implements domain.ModuleRepository
func (s *ModuleFileStore) SaveModule(module *domain.Module) (string, error) {
	data, err := json.Marshal(toModelModule(module, s.toolVersion))
	if err != nil {
		return "", domain.NewInternalError("failed to encode module", err)
	}
	path := filepath.Join(s.dir, s.ModuleFileName(module.ID))
	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write module file %s: %w", path, err)
	}
	return path, nil
}

// LoadModule reads a complete module file.
func (s *ModuleFileStore) LoadModule(fileName string) (*domain.Module, error) {
	data, err := s.readFile(fileName)
	if err != nil {
		return nil, err
	}
	var f models.ModuleFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, domain.NewMalformedModuleError(fileName, err)
	}
	return toDomainModule(&f), nil
}

// LoadListEntry implements domain.ModuleRepository
func (s *ModuleFileStore) LoadListEntry(fileName string) (domain.ListEntry, error) {
	data, err := s.readFile(fileName)
	if err != nil {
		return domain.ListEntry{}, err
	}
	var summary models.ModuleSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return domain.ListEntry{}, domain.NewMalformedModuleError(fileName, err)
	}
	if missing := summary.MissingKeys(); len(missing) > 0 {
		return domain.ListEntry{}, domain.NewMalformedModuleError(fileName,
			fmt.Errorf("missing keys: %s", strings.Join(missing, ", ")))
	}
	return toDomainListEntry(&summary), nil
}

// SaveList implements domain.ModuleRepository
func (s *ModuleFileStore) SaveList(entries []domain.ListEntry) (string, error) {
	data, err := json.Marshal(toModelListItems(entries))
	if err != nil {
		return "", domain.NewInternalError("failed to encode module list", err)
	}
	path := filepath.Join(s.dir, s.listFile)
	if err := afero.WriteFile(s.fs, path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write list file %s: %w", path, err)
	}
	return path, nil
}

func (s *ModuleFileStore) readFile(fileName string) ([]byte, error) {
	path := filepath.Join(s.dir, fileName)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read module file %s: %w", path, err)
	}
	return data, nil
}
