package quiz

type QuestionType string

const (
	TypeMCQ       QuestionType = "mcq"
	TypeFill      QuestionType = "fill"
	TypeMatch     QuestionType = "match"
	TypeListening QuestionType = "listening"
)

var AllQuestionTypes = []QuestionType{
	TypeMCQ,
	TypeFill,
	TypeMatch,
	TypeListening,
}

func (t QuestionType) IsValid() bool {
	for _, v := range AllQuestionTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns the human-readable name shown in the editor.
func (t QuestionType) Label() string {
	switch t {
	case TypeMCQ:
		return "Multiple choice"
	case TypeFill:
		return "Fill in the gap"
	case TypeListening:
		return "Listening"
	case TypeMatch:
		return "Matching headings"
	}
	return string(t)
}

// Option is one answer choice of a multiple-choice or listening question.
type Option struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Image     string `json:"image,omitempty"`
	IsCorrect bool   `json:"isCorrect"`
}

// MatchEntry is one side of a matching pair (a prompt or a response).
type MatchEntry struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Image string `json:"image,omitempty"`
}

// Question is the canonical tagged union for all four question kinds. The
// Type field selects which payload fields are meaningful: Options for mcq
// and listening, Prompts/Responses for match, Answer/Hidden for fill.
//
// Persisted questions carry a numeric id rendered as a string; drafts that
// were never saved carry a temporary new-<timestamp> id.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Content string       `json:"content"`
	Image   string       `json:"image,omitempty"`
	Audio   string       `json:"audio,omitempty"`

	Options   []Option     `json:"options,omitempty"`
	Prompts   []MatchEntry `json:"prompts,omitempty"`
	Responses []MatchEntry `json:"responses,omitempty"`

	Answer string `json:"answer,omitempty"`
	// Hidden runs parallel to Answer, one flag per character.
	Hidden []bool `json:"hiddenPositions,omitempty"`
}

type Topic struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Topics    []Topic    `json:"topics"`
	Questions []Question `json:"questions"`
}

// Row is the flattened shape the quiz table consumes.
type Row struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	DisplayName string         `json:"displayName,omitempty"`
	Topics      []string       `json:"topics"`
	Questions   int            `json:"questions"`
	Types       []QuestionType `json:"types"`
	Avg         float64        `json:"avg"`
	Users       int            `json:"users"`
}
