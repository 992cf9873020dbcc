package combat

import (
	"strings"

	"github.com/pvaldes/bugdungeon/data"
)

// Question is an immutable quiz question. Identity is the ID; the
// canonical answer always equals one of the options.
type Question struct {
	ID          string
	Prompt      string
	Options     []string // Ordered; letter A maps to index 0
	Answer      string
	Explanation string
}

// QuestionFromDef converts a loaded question definition.
func QuestionFromDef(def data.QuestionDef) Question {
	return Question{
		ID:          def.ID,
		Prompt:      def.Prompt,
		Options:     def.Options,
		Answer:      def.Answer,
		Explanation: def.Explanation,
	}
}

// QuestionsFromDefs converts a slice of loaded question definitions.
func QuestionsFromDefs(defs []data.QuestionDef) []Question {
	questions := make([]Question, 0, len(defs))
	for _, def := range defs {
		questions = append(questions, QuestionFromDef(def))
	}
	return questions
}

// Letter returns the option letter for an index (A for 0, B for 1, ...).
func (q Question) Letter(index int) rune {
	return rune('A' + index)
}

// IsCorrect reports whether a raw answer matches the canonical answer.
// Accepted forms: a single option letter whose option text equals the
// answer, or the full answer text. Both are case-insensitive.
func (q Question) IsCorrect(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}

	if len(trimmed) == 1 {
		letter := strings.ToUpper(trimmed)[0]
		index := int(letter - 'A')
		if index >= 0 && index < len(q.Options) {
			return strings.EqualFold(q.Options[index], q.Answer)
		}
	}

	return strings.EqualFold(trimmed, q.Answer)
}

// fallbackQuestions keeps combat from ever stalling on an empty pool.
var fallbackQuestions = []Question{
	{
		ID:          "fallback_1",
		Prompt:      "What does a loop do?",
		Options:     []string{"Repeats a block of code", "Deletes a file", "Renames a variable", "Stops the program"},
		Answer:      "Repeats a block of code",
		Explanation: "Loops execute their body repeatedly until their condition changes.",
	},
	{
		ID:          "fallback_2",
		Prompt:      "What is a function?",
		Options:     []string{"A reusable block of code", "A type of variable", "A compiler error", "A text file"},
		Answer:      "A reusable block of code",
		Explanation: "Functions package logic behind a name so it can be called anywhere.",
	},
	{
		ID:          "fallback_3",
		Prompt:      "What does a condition control?",
		Options:     []string{"Which branch of code runs", "How fast code runs", "Where code is stored", "Who wrote the code"},
		Answer:      "Which branch of code runs",
		Explanation: "Conditions select between branches at runtime.",
	},
}
