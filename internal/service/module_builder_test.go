package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"earmouse-tools/internal/config"
	"earmouse-tools/internal/domain"
	"earmouse-tools/internal/prompt"
	"earmouse-tools/internal/repository"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testToolsConfig = config.ToolsConfig{
	WorkDir:              "/work",
	ListFile:             "list.json",
	ModulePrefix:         "module_",
	DefaultLowestNote:    0,
	DefaultHighestNote:   41,
	DefaultModuleVersion: 1,
	BuilderVersion:       "0.3",
}

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

func newFileStore(t *testing.T) (*repository.ModuleFileStore, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testToolsConfig.WorkDir, 0o755))
	return repository.NewModuleFileStore(fs, testToolsConfig), fs
}

func newBuilder(repo domain.ModuleRepository, input string) (*ModuleBuilder, *bytes.Buffer) {
	out := &bytes.Buffer{}
	p := prompt.New(strings.NewReader(input), out)
	return NewModuleBuilder(repo, p, prompt.ParseIntList, testToolsConfig, zap.NewNop()), out
}

func TestModuleBuilder_Build_WritesSubmittedValues(t *testing.T) {
	store, fs := newFileStore(t)
	require.NoError(t, afero.WriteFile(fs, "/work/module_1.json", []byte("{}"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/work/list.json", []byte("[]"), 0o644))

	input := lines(
		"",            // module id -> default 2
		"Intervals",   // title
		"Learn them",  // description
		"Intervals",   // short description
		"",            // lowest note -> 0
		"30",          // highest note
		"2",           // exercise count
		"hard",        // invalid difficulty
		"3",           // difficulty
		"",            // empty unit before any input is ignored
		"0,4,7",       // unit 0
		"0",           // unit 1
		"",            // end exercise 0
		"major chord", // answer 0
		"0, 3",        // unit 0
		"1,a",         // invalid unit
		"",            // end exercise 1
		"minor third", // answer 1
	)
	builder, out := newBuilder(store, input)

	path, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/work/module_2.json", path)

	got, err := store.LoadModule("module_2.json")
	require.NoError(t, err)
	want := &domain.Module{
		ID:               2,
		Title:            "Intervals",
		Description:      "Learn them",
		ShortDescription: "Intervals",
		LowestNote:       0,
		HighestNote:      30,
		ExerciseList: []domain.Exercise{
			{{0, 4, 7}, {0}},
			{{0, 3}},
		},
		AnswerList:    []string{"major chord", "minor third"},
		Difficulty:    3,
		ModuleVersion: 1,
	}
	assert.Equal(t, want, got)

	console := out.String()
	assert.Contains(t, console, "Module version defaulting to 1")
	assert.Contains(t, console, "Enter module ID(default=2): ")
	assert.Contains(t, console, "Please enter the values of unit 1 in exercise 0: ")
	assert.Contains(t, console, "Please enter the values of unit 1 in exercise 1: ")
	assert.Equal(t, 2, strings.Count(console, prompt.InvalidInputMessage))
}

func TestModuleBuilder_Build_ExplicitIDAndZeroExercises(t *testing.T) {
	store, fs := newFileStore(t)
	builder, _ := newBuilder(store, lines("17", "t", "d", "s", "5", "", "0", "1"))

	path, err := builder.Build(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/work/module_17.json", path)

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"exerciseList":[]`)
	assert.Contains(t, string(data), `"lowestNote":5`)
	assert.Contains(t, string(data), `"highestNote":41`)
}

func TestModuleBuilder_Build_InvalidFirstValueWritesNothing(t *testing.T) {
	store, fs := newFileStore(t)
	input := lines("", "t", "d", "s", "", "", "2", "1",
		"0,2", "", "ok",
		"3,5", "", "never asked")
	builder, out := newBuilder(store, input)

	_, err := builder.Build(context.Background())
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrInvalidExercise))
	assert.Contains(t, err.Error(), "exercise 1")
	assert.Equal(t, 1, strings.Count(out.String(), "Please give the correct answer"))

	infos, err := afero.ReadDir(fs, "/work")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestModuleBuilder_Build_InputClosed(t *testing.T) {
	repo := new(MockModuleRepository)
	repo.On("CountModuleFiles").Return(0, nil).Once()
	builder, _ := newBuilder(repo, lines("", "title only"))

	_, err := builder.Build(context.Background())
	assert.True(t, domain.HasCode(err, domain.ErrInputClosed))
	repo.AssertNotCalled(t, "SaveModule", mock.Anything)
	repo.AssertExpectations(t)
}

func TestModuleBuilder_Build_CountError(t *testing.T) {
	repo := new(MockModuleRepository)
	repo.On("CountModuleFiles").Return(0, errors.New("permission denied")).Once()
	builder, _ := newBuilder(repo, "")

	_, err := builder.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	repo.AssertExpectations(t)
}

func TestModuleBuilder_Build_SaveError(t *testing.T) {
	repo := new(MockModuleRepository)
	repo.On("CountModuleFiles").Return(4, nil).Once()
	repo.On("SaveModule", mock.MatchedBy(func(m *domain.Module) bool { return m.ID == 5 })).
		Return("", errors.New("disk full")).Once()
	builder, _ := newBuilder(repo, lines("", "t", "d", "s", "", "", "0", "2"))

	_, err := builder.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save module 5")
	repo.AssertExpectations(t)
}

func TestModuleBuilder_Build_Cancelled(t *testing.T) {
	repo := new(MockModuleRepository)
	repo.On("CountModuleFiles").Return(0, nil).Once()
	builder, _ := newBuilder(repo, lines("", "t", "d", "s", "", "", "1", "1", "0", ""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := builder.Build(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	repo.AssertNotCalled(t, "SaveModule", mock.Anything)
}
