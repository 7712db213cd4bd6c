package models

// Phrase is one phrasebook entry: an Italian word with its
// pronunciation aids and Spanish meaning.
type Phrase struct {
	Word       string `json:"word"`
	Phonetic   string `json:"phonetic"`
	Simplified string `json:"simplified"`
	Meaning    string `json:"meaning"`
}

// Tip is one survival-guide note.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}
