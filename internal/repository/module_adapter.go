package repository

import (
	"earmouse-tools/internal/domain"
	"earmouse-tools/internal/repository/models"
)

func toModelModule(m *domain.Module, toolVersion string) *models.ModuleFile {
	exercises := make([][][]int, 0, len(m.ExerciseList))
	for _, ex := range m.ExerciseList {
		units := make([][]int, 0, len(ex))
		for _, u := range ex {
			units = append(units, append([]int{}, u...))
		}
		exercises = append(exercises, units)
	}
	answers := append([]string{}, m.AnswerList...)

	return &models.ModuleFile{
		ModuleID:         m.ID,
		Title:            m.Title,
		Description:      m.Description,
		ShortDescription: m.ShortDescription,
		LowestNote:       m.LowestNote,
		HighestNote:      m.HighestNote,
		ExerciseList:     exercises,
		AnswerList:       answers,
		Difficulty:       m.Difficulty,
		Version:          toolVersion,
		ModuleVersion:    m.ModuleVersion,
	}
}

func toDomainModule(f *models.ModuleFile) *domain.Module {
	m := domain.NewModule(f.ModuleID, f.Title, f.Description, f.ShortDescription,
		f.LowestNote, f.HighestNote, f.Difficulty, f.ModuleVersion)
	for _, ex := range f.ExerciseList {
		exercise := make(domain.Exercise, 0, len(ex))
		for _, u := range ex {
			exercise = append(exercise, domain.Unit(u))
		}
		m.ExerciseList = append(m.ExerciseList, exercise)
	}
	m.AnswerList = append(m.AnswerList, f.AnswerList...)
	return m
}

func toDomainListEntry(s *models.ModuleSummary) domain.ListEntry {
	return domain.ListEntry{
		ModuleTitle:      *s.Title,
		ModuleID:         *s.ModuleID,
		Difficulty:       *s.Difficulty,
		ShortDescription: *s.ShortDescription,
		ModuleVersion:    *s.ModuleVersion,
	}
}

func toModelListItems(entries []domain.ListEntry) []models.ListItem {
	items := make([]models.ListItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, models.ListItem{
			ModuleTitle:      e.ModuleTitle,
			ModuleID:         e.ModuleID,
			Difficulty:       e.Difficulty,
			ShortDescription: e.ShortDescription,
			ModuleVersion:    e.ModuleVersion,
		})
	}
	return items
}
