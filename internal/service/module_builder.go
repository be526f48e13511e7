package service

import (
	"context"
	"fmt"

	"earmouse-tools/internal/config"
	"earmouse-tools/internal/domain"

	"go.uber.org/zap"
)

// Prompter is the console the module builder talks to.
type Prompter interface {
	Say(format string, args ...any)
	Line(question string) (string, error)
	Int(question string) (int, error)
	IntWithDefault(question string, def int) (int, error)
}

// UnitParser turns one line of operator input into a unit.
type UnitParser func(line string) ([]int, error)

// ModuleBuilder collects a module from the operator and saves it.
type ModuleBuilder struct {
	repo      domain.ModuleRepository
	prompter  Prompter
	parseUnit UnitParser
	cfg       config.ToolsConfig
	logger    *zap.Logger
}

// NewModuleBuilder creates a new ModuleBuilder
func NewModuleBuilder(repo domain.ModuleRepository, prompter Prompter, parseUnit UnitParser, cfg config.ToolsConfig, logger *zap.Logger) *ModuleBuilder {
	return &ModuleBuilder{
		repo:      repo,
		prompter:  prompter,
		parseUnit: parseUnit,
		cfg:       cfg,
		logger:    logger,
	}
}

// Build collects a module and writes it. Nothing is written if any step fails.
func (b *ModuleBuilder) Build(ctx context.Context) (string, error) {
	module, err := b.Collect(ctx)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := b.repo.SaveModule(module)
	if err != nil {
		return "", fmt.Errorf("failed to save module %d: %w", module.ID, err)
	}
	b.logger.Info("Module written",
		zap.String("path", path),
		zap.Int("module_id", module.ID),
		zap.Int("exercises", len(module.ExerciseList)))
	return path, nil
}

// Collect asks the operator for every module field.
func (b *ModuleBuilder) Collect(ctx context.Context) (*domain.Module, error) {
	// No unique ID scheme yet; suggest one past the number of existing files.
	existing, err := b.repo.CountModuleFiles()
	if err != nil {
		return nil, fmt.Errorf("failed to count module files: %w", err)
	}
	suggestedID := existing + 1
	moduleVersion := b.cfg.DefaultModuleVersion
	b.logger.Debug("Suggesting module ID", zap.Int("existing_files", existing), zap.Int("suggested_id", suggestedID))

	p := b.prompter
	p.Say("Module version defaulting to %d", moduleVersion)

	id, err := p.IntWithDefault(fmt.Sprintf("Enter module ID(default=%d): ", suggestedID), suggestedID)
	if err != nil {
		return nil, err
	}
	title, err := p.Line("Enter module title: ")
	if err != nil {
		return nil, err
	}
	description, err := p.Line("Give module description: ")
	if err != nil {
		return nil, err
	}
	shortDescription, err := p.Line("Give short description(used in module list): ")
	if err != nil {
		return nil, err
	}
	lowestNote, err := p.IntWithDefault(
		fmt.Sprintf("What is the lowest note an exercise can use (default=%d) ? ", b.cfg.DefaultLowestNote),
		b.cfg.DefaultLowestNote)
	if err != nil {
		return nil, err
	}
	highestNote, err := p.IntWithDefault(
		fmt.Sprintf("What is the highest note an exercise can use (default=%d) ? ", b.cfg.DefaultHighestNote),
		b.cfg.DefaultHighestNote)
	if err != nil {
		return nil, err
	}
	exerciseCount, err := p.Int("How many different exercises will there be in this module ? ")
	if err != nil {
		return nil, err
	}
	difficulty, err := p.Int("What is the difficulty level (1-4) ? ")
	if err != nil {
		return nil, err
	}

	module := domain.NewModule(id, title, description, shortDescription, lowestNote, highestNote, difficulty, moduleVersion)

	p.Say("\nExercise/answer pairs:")
	p.Say("Exercises can be of arbitary length, to end unit input just enter an empty line")
	p.Say("The first value of an exercise should always be 0, this is the base for the other values")

	for i := 0; i < exerciseCount; i++ {
		exercise, err := b.collectExercise(ctx, i)
		if err != nil {
			return nil, err
		}
		if err := domain.ValidateExercise(i, exercise); err != nil {
			return nil, err
		}
		answer, err := p.Line("Please give the correct answer for this exercise: ")
		if err != nil {
			return nil, err
		}
		if err := module.AddExercise(exercise, answer); err != nil {
			return nil, err
		}
		b.logger.Debug("Exercise added", zap.Int("exercise", i), zap.Int("units", len(exercise)))
	}

	return module, nil
}

// collectExercise reads units until an empty line ends a non-empty exercise.
func (b *ModuleBuilder) collectExercise(ctx context.Context, index int) (domain.Exercise, error) {
	var exercise domain.Exercise
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := b.prompter.Line(fmt.Sprintf("Please enter the values of unit %d in exercise %d: ", len(exercise), index))
		if err != nil {
			return nil, err
		}
		if line == "" {
			if len(exercise) == 0 {
				continue
			}
			return exercise, nil
		}
		unit, err := b.parseUnit(line)
		if err != nil {
			b.logger.Debug("Rejected unit input", zap.String("input", line), zap.Error(err))
			b.prompter.Say("Invalid input, try again...")
			continue
		}
		exercise = append(exercise, domain.Unit(unit))
	}
}
