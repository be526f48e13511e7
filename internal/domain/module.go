package domain

// Unit is one step of an exercise: note offsets relative to a base of 0.
type Unit []int

// Exercise is an ordered sequence of units.
type Exercise []Unit

// Module is a self-contained set of exercises for the Earmouse app.
// ExerciseList and AnswerList are paired by position.
type Module struct {
	ID               int
	Title            string
	Description      string
	ShortDescription string
	LowestNote       int
	HighestNote      int
	ExerciseList     []Exercise
	AnswerList       []string
	Difficulty       int
	ModuleVersion    int
}

// ListEntry is the summary of a Module shown in the app's module list.
type ListEntry struct {
	ModuleTitle      string
	ModuleID         int
	Difficulty       int
	ShortDescription string
	ModuleVersion    int
}

// NewModule creates a Module with empty, non-nil exercise and answer lists.
func NewModule(id int, title, description, shortDescription string, lowestNote, highestNote, difficulty, moduleVersion int) *Module {
	return &Module{
		ID:               id,
		Title:            title,
		Description:      description,
		ShortDescription: shortDescription,
		LowestNote:       lowestNote,
		HighestNote:      highestNote,
		ExerciseList:     []Exercise{},
		AnswerList:       []string{},
		Difficulty:       difficulty,
		ModuleVersion:    moduleVersion,
	}
}

// ValidateExercise checks that the exercise starts at the base note.
// index is only used for the error message.
func ValidateExercise(index int, exercise Exercise) error {
	if len(exercise) == 0 || len(exercise[0]) == 0 {
		return NewInvalidInputError("exercise must have at least one non-empty unit")
	}
	if exercise[0][0] != 0 {
		return NewInvalidExerciseError(index, exercise[0][0])
	}
	return nil
}

// AddExercise validates the exercise and appends it with its answer.
func (m *Module) AddExercise(exercise Exercise, answer string) error {
	if err := ValidateExercise(len(m.ExerciseList), exercise); err != nil {
		return err
	}
	m.ExerciseList = append(m.ExerciseList, exercise)
	m.AnswerList = append(m.AnswerList, answer)
	return nil
}

// Validate re-checks every exercise and the exercise/answer pairing.
func (m *Module) Validate() error {
	if len(m.ExerciseList) != len(m.AnswerList) {
		return NewInvalidInputError("exercise list and answer list must have the same length")
	}
	for i, ex := range m.ExerciseList {
		if err := ValidateExercise(i, ex); err != nil {
			return err
		}
	}
	return nil
}

// ToListEntry projects the module onto its list summary.
func (m *Module) ToListEntry() ListEntry {
	return ListEntry{
		ModuleTitle:      m.Title,
		ModuleID:         m.ID,
		Difficulty:       m.Difficulty,
		ShortDescription: m.ShortDescription,
		ModuleVersion:    m.ModuleVersion,
	}
}
