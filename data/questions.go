package data

// QuestionDef defines a quiz question loaded from JSON.
type QuestionDef struct {
	ID          string   `json:"id"`          // Unique identifier within its set (e.g., "t1")
	Prompt      string   `json:"prompt"`      // Question text shown to the player
	Options     []string `json:"options"`     // Ordered answer options (letter A maps to index 0)
	Answer      string   `json:"answer"`      // Canonical correct answer; must equal one option
	Explanation string   `json:"explanation"` // Shown after the question resolves
}

// QuestionSetDef groups the questions authored for one difficulty tier.
type QuestionSetDef struct {
	Tier      string        `json:"tier"`
	Questions []QuestionDef `json:"questions"`
}

// QuestionsFile represents the structure of questions.json.
type QuestionsFile struct {
	Sets []QuestionSetDef `json:"sets"`
}

// LoadQuestionSets loads question sets from the embedded questions.json file.
func LoadQuestionSets() ([]QuestionSetDef, error) {
	file, err := Load[QuestionsFile]("questions.json")
	if err != nil {
		return nil, err
	}
	return file.Sets, nil
}

// MustLoadQuestionSets loads question sets, panicking on error.
func MustLoadQuestionSets() []QuestionSetDef {
	sets, err := LoadQuestionSets()
	if err != nil {
		panic(err)
	}
	return sets
}
