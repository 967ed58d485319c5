package models

// SpellingModel pairs an input number with its plain-English words.
type SpellingModel struct {
	Input string `json:"input"`
	Words string `json:"words"`
}

// NewSpelling creates a SpellingModel.
func NewSpelling(input, words string) SpellingModel {
	return SpellingModel{Input: input, Words: words}
}
