package models

// ModuleFile is the on-disk JSON layout of a module, as read by the app.
type ModuleFile struct {
	ModuleID         int       `json:"moduleId"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription"`
	LowestNote       int       `json:"lowestNote"`
	HighestNote      int       `json:"highestNote"`
	ExerciseList     [][][]int `json:"exerciseList"`
	AnswerList       []string  `json:"answerList"`
	Difficulty       int       `json:"difficulty"`
	Version          string    `json:"version"` // version of the tool that wrote the file
	ModuleVersion    int       `json:"moduleVersion"`
}

// ModuleSummary holds the keys the list builder needs from a module file.
// Pointers tell a missing key apart from a zero value.
type ModuleSummary struct {
	Title            *string `json:"title"`
	ModuleID         *int    `json:"moduleId"`
	Difficulty       *int    `json:"difficulty"`
	ShortDescription *string `json:"shortDescription"`
	ModuleVersion    *int    `json:"moduleVersion"`
}

// MissingKeys returns the JSON keys absent from the decoded file.
func (s *ModuleSummary) MissingKeys() []string {
	var missing []string
	if s.Title == nil {
		missing = append(missing, "title")
	}
	if s.ModuleID == nil {
		missing = append(missing, "moduleId")
	}
	if s.Difficulty == nil {
		missing = append(missing, "difficulty")
	}
	if s.ShortDescription == nil {
		missing = append(missing, "shortDescription")
	}
	if s.ModuleVersion == nil {
		missing = append(missing, "moduleVersion")
	}
	return missing
}

// ListItem is one element of the list file array.
type ListItem struct {
	ModuleTitle      string `json:"module_title"`
	ModuleID         int    `json:"module_id"`
	Difficulty       int    `json:"difficulty"`
	ShortDescription string `json:"short_description"`
	ModuleVersion    int    `json:"module_version"`
}
