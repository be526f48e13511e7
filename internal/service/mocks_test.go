package service

import (
	"earmouse-tools/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockModuleRepository ---
type MockModuleRepository struct {
	mock.Mock
}

func (m *MockModuleRepository) CountModuleFiles() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockModuleRepository) SaveModule(module *domain.Module) (string, error) {
	args := m.Called(module)
	return args.String(0), args.Error(1)
}

func (m *MockModuleRepository) ListModuleFiles() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockModuleRepository) LoadListEntry(fileName string) (domain.ListEntry, error) {
	args := m.Called(fileName)
	return args.Get(0).(domain.ListEntry), args.Error(1)
}

func (m *MockModuleRepository) SaveList(entries []domain.ListEntry) (string, error) {
	args := m.Called(entries)
	return args.String(0), args.Error(1)
}
