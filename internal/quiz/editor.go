package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/quizdeck/admin-core/internal/optimistic"
)

var (
	ErrMinOptions     = errors.New("at least two options required")
	ErrMinPrompts     = errors.New("at least one prompt required")
	ErrMinResponses   = errors.New("at least one response required")
	ErrDuplicateTopic = errors.New("topic already added")
)

// Editor holds one quiz's draft state while it is being edited. Questions
// live here until the user saves them; the backend is reconciled separately.
type Editor struct {
	Quiz *Quiz
}

func NewEditor(qz *Quiz) *Editor {
	if qz.Topics == nil {
		qz.Topics = []Topic{}
	}
	return &Editor{Quiz: qz}
}

func defaultOptions() []Option {
	opts := make([]Option, 4)
	for i := range opts {
		opts[i] = Option{ID: fmt.Sprintf("opt-%d", i)}
	}
	opts[0].IsCorrect = true
	return opts
}

func defaultEntries(prefix string) []MatchEntry {
	entries := make([]MatchEntry, 4)
	for i := range entries {
		entries[i] = MatchEntry{ID: fmt.Sprintf("%s-%d", prefix, i)}
	}
	return entries
}

// NewQuestion builds an empty draft of the given type under a temporary id.
// MCQ and listening drafts start with four options, the first one correct;
// matching drafts start with four prompts and four responses.
func NewQuestion(t QuestionType) Question {
	q := Question{
		ID:   optimistic.TempID(),
		Type: t,
	}
	switch t {
	case TypeMCQ, TypeListening:
		q.Options = defaultOptions()
	case TypeMatch:
		q.Prompts = defaultEntries("p")
		q.Responses = defaultEntries("r")
	}
	return q
}

// PrepareForEdit fills in whatever the stored question is missing before the
// editing session starts: empty option/prompt/response lists get the default
// four entries, option ids are backfilled, exactly-one-correct is restored
// when no option is flagged, and the hidden mask is resized to the answer.
func PrepareForEdit(q Question) Question {
	switch q.Type {
	case TypeMCQ, TypeListening:
		if len(q.Options) == 0 {
			q.Options = defaultOptions()
			break
		}
		opts := append([]Option(nil), q.Options...)
		anyCorrect := false
		for i := range opts {
			if opts[i].ID == "" {
				opts[i].ID = fmt.Sprintf("opt-%d", i)
			}
			if opts[i].IsCorrect {
				anyCorrect = true
			}
		}
		if !anyCorrect {
			opts[0].IsCorrect = true
		}
		q.Options = opts
	case TypeMatch:
		if len(q.Prompts) == 0 {
			q.Prompts = defaultEntries("p")
		}
		if len(q.Responses) == 0 {
			q.Responses = defaultEntries("r")
		}
	case TypeFill:
		q.Hidden = resizeMask(q.Hidden, utf8.RuneCountInString(q.Answer))
	}
	return q
}

// ToggleCorrect marks option i as the single correct answer.
func ToggleCorrect(q *Question, i int) error {
	if i < 0 || i >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", i)
	}
	for j := range q.Options {
		q.Options[j].IsCorrect = j == i
	}
	return nil
}

// DeleteOption removes option i, refusing to go below two options. The
// check runs before any mutation.
func DeleteOption(q *Question, i int) error {
	if len(q.Options) <= 2 {
		return ErrMinOptions
	}
	if i < 0 || i >= len(q.Options) {
		return fmt.Errorf("option index %d out of range", i)
	}
	q.Options = append(q.Options[:i], q.Options[i+1:]...)
	return nil
}

func DeletePrompt(q *Question, i int) error {
	if len(q.Prompts) <= 1 {
		return ErrMinPrompts
	}
	if i < 0 || i >= len(q.Prompts) {
		return fmt.Errorf("prompt index %d out of range", i)
	}
	q.Prompts = append(q.Prompts[:i], q.Prompts[i+1:]...)
	return nil
}

func DeleteResponse(q *Question, i int) error {
	if len(q.Responses) <= 1 {
		return ErrMinResponses
	}
	if i < 0 || i >= len(q.Responses) {
		return fmt.Errorf("response index %d out of range", i)
	}
	q.Responses = append(q.Responses[:i], q.Responses[i+1:]...)
	return nil
}

// SetAnswer updates a fill-in question's answer and keeps the hidden mask
// aligned, preserving existing flags for positions that survive. The mask
// has one entry per character, not per byte.
func SetAnswer(q *Question, answer string) {
	old := q.Hidden
	q.Answer = answer
	n := utf8.RuneCountInString(answer)
	q.Hidden = make([]bool, n)
	copy(q.Hidden, old)
	if n == 0 {
		q.Hidden = nil
	}
}

// ToggleHidden flips the blank flag for character i of the answer.
func ToggleHidden(q *Question, i int) error {
	n := utf8.RuneCountInString(q.Answer)
	if i < 0 || i >= n {
		return fmt.Errorf("character index %d out of range", i)
	}
	if len(q.Hidden) < n {
		q.Hidden = resizeMask(q.Hidden, n)
	}
	q.Hidden[i] = !q.Hidden[i]
	return nil
}

// MaskedAnswer renders the learner's view of a fill-in answer: hidden
// characters become underscores, the rest show through.
func MaskedAnswer(q Question) string {
	var b strings.Builder
	i := 0
	for _, ch := range q.Answer {
		if i < len(q.Hidden) && q.Hidden[i] {
			b.WriteByte('_')
		} else {
			b.WriteRune(ch)
		}
		i++
	}
	return b.String()
}

// SaveQuestion upserts a draft into the quiz: an existing id is replaced in
// place, a new one is appended so numbering continues.
func (e *Editor) SaveQuestion(draft Question) {
	for i := range e.Quiz.Questions {
		if e.Quiz.Questions[i].ID == draft.ID {
			e.Quiz.Questions[i] = draft
			return
		}
	}
	e.Quiz.Questions = append(e.Quiz.Questions, draft)
}

// RemoveQuestion drops the question with the given id from the draft. It
// reports whether the question was present.
func (e *Editor) RemoveQuestion(id string) bool {
	for i := range e.Quiz.Questions {
		if e.Quiz.Questions[i].ID == id {
			e.Quiz.Questions = append(e.Quiz.Questions[:i], e.Quiz.Questions[i+1:]...)
			return true
		}
	}
	return false
}

// AddTopic prepends a topic, rejecting names already present.
func (e *Editor) AddTopic(t Topic) error {
	for _, existing := range e.Quiz.Topics {
		if existing.Name == t.Name {
			return ErrDuplicateTopic
		}
	}
	if t.Thumbnail == "" {
		t.Thumbnail = TopicThumbnail(t.Name)
	}
	e.Quiz.Topics = append([]Topic{t}, e.Quiz.Topics...)
	return nil
}

// PersistedQuestionIDs returns the numeric ids of questions that have been
// saved to the backend, skipping temporary drafts.
func (e *Editor) PersistedQuestionIDs() []int {
	ids := make([]int, 0, len(e.Quiz.Questions))
	for _, q := range e.Quiz.Questions {
		if optimistic.IsTempID(q.ID) {
			continue
		}
		if n, err := strconv.Atoi(q.ID); err == nil {
			ids = append(ids, n)
		}
	}
	return ids
}
