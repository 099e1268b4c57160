package quiz

import (
	"errors"
	"reflect"
	"testing"

	"github.com/quizdeck/admin-core/internal/optimistic"
)

func TestNewQuestion(t *testing.T) {
	t.Run("MCQDefaults", func(t *testing.T) {
		q := NewQuestion(TypeMCQ)
		if !optimistic.IsTempID(q.ID) {
			t.Errorf("id %q is not temporary", q.ID)
		}
		if len(q.Options) != 4 {
			t.Fatalf("options = %d, want 4", len(q.Options))
		}
		if !q.Options[0].IsCorrect {
			t.Error("first option should start correct")
		}
		for _, o := range q.Options[1:] {
			if o.IsCorrect {
				t.Error("only the first option should start correct")
			}
		}
	})

	t.Run("MatchDefaults", func(t *testing.T) {
		q := NewQuestion(TypeMatch)
		if len(q.Prompts) != 4 || len(q.Responses) != 4 {
			t.Errorf("prompts/responses = %d/%d, want 4/4", len(q.Prompts), len(q.Responses))
		}
	})

	t.Run("FillStartsEmpty", func(t *testing.T) {
		q := NewQuestion(TypeFill)
		if q.Answer != "" || q.Hidden != nil || q.Options != nil {
			t.Errorf("fill draft not empty: %+v", q)
		}
	})
}

func TestPrepareForEdit(t *testing.T) {
	t.Run("RestoresSingleCorrect", func(t *testing.T) {
		q := Question{Type: TypeMCQ, Options: []Option{{Text: "a"}, {Text: "b"}}}
		got := PrepareForEdit(q)
		if !got.Options[0].IsCorrect {
			t.Error("first option should become correct when none is flagged")
		}
		if got.Options[0].ID == "" {
			t.Error("option ids should be backfilled")
		}
	})

	t.Run("KeepsExistingCorrect", func(t *testing.T) {
		q := Question{Type: TypeListening, Options: []Option{{}, {IsCorrect: true}}}
		got := PrepareForEdit(q)
		if got.Options[0].IsCorrect || !got.Options[1].IsCorrect {
			t.Errorf("correct flags changed: %+v", got.Options)
		}
	})

	t.Run("ResizesHiddenMask", func(t *testing.T) {
		q := Question{Type: TypeFill, Answer: "cat", Hidden: []bool{true}}
		got := PrepareForEdit(q)
		if !reflect.DeepEqual(got.Hidden, []bool{true, false, false}) {
			t.Errorf("hidden = %v", got.Hidden)
		}
	})
}

func TestToggleCorrect(t *testing.T) {
	q := Question{Type: TypeMCQ, Options: []Option{
		{ID: "a", IsCorrect: true},
		{ID: "b"},
		{ID: "c"},
	}}
	if err := ToggleCorrect(&q, 1); err != nil {
		t.Fatalf("ToggleCorrect failed: %v", err)
	}
	correct := 0
	for i, o := range q.Options {
		if o.IsCorrect {
			correct++
			if i != 1 {
				t.Errorf("option %d flagged correct, want only index 1", i)
			}
		}
	}
	if correct != 1 {
		t.Errorf("correct count = %d, want exactly 1", correct)
	}

	if err := ToggleCorrect(&q, 5); err == nil {
		t.Error("out-of-range index should fail")
	}
}

func TestCardinalityFloors(t *testing.T) {
	t.Run("OptionsKeepAtLeastTwo", func(t *testing.T) {
		q := Question{Options: []Option{{ID: "a"}, {ID: "b"}}}
		if err := DeleteOption(&q, 0); !errors.Is(err, ErrMinOptions) {
			t.Errorf("err = %v, want ErrMinOptions", err)
		}
		if len(q.Options) != 2 {
			t.Error("failed delete must not mutate")
		}
	})

	t.Run("PromptsKeepAtLeastOne", func(t *testing.T) {
		q := Question{Prompts: []MatchEntry{{ID: "p"}}}
		if err := DeletePrompt(&q, 0); !errors.Is(err, ErrMinPrompts) {
			t.Errorf("err = %v, want ErrMinPrompts", err)
		}
	})

	t.Run("ResponsesKeepAtLeastOne", func(t *testing.T) {
		q := Question{Responses: []MatchEntry{{ID: "r"}}}
		if err := DeleteResponse(&q, 0); !errors.Is(err, ErrMinResponses) {
			t.Errorf("err = %v, want ErrMinResponses", err)
		}
	})

	t.Run("DeleteAboveFloorWorks", func(t *testing.T) {
		q := Question{Options: []Option{{ID: "a"}, {ID: "b"}, {ID: "c"}}}
		if err := DeleteOption(&q, 1); err != nil {
			t.Fatalf("DeleteOption failed: %v", err)
		}
		if len(q.Options) != 2 || q.Options[1].ID != "c" {
			t.Errorf("options = %+v", q.Options)
		}
	})
}

func TestFillAnswerEditing(t *testing.T) {
	t.Run("GrowingAnswerPadsMask", func(t *testing.T) {
		q := Question{Type: TypeFill}
		SetAnswer(&q, "cat")
		if err := ToggleHidden(&q, 0); err != nil {
			t.Fatalf("ToggleHidden failed: %v", err)
		}
		SetAnswer(&q, "cats")
		if !reflect.DeepEqual(q.Hidden, []bool{true, false, false, false}) {
			t.Errorf("hidden = %v", q.Hidden)
		}
	})

	t.Run("ShrinkingAnswerTrimsMask", func(t *testing.T) {
		q := Question{Type: TypeFill, Answer: "cats", Hidden: []bool{false, false, false, true}}
		SetAnswer(&q, "ca")
		if !reflect.DeepEqual(q.Hidden, []bool{false, false}) {
			t.Errorf("hidden = %v", q.Hidden)
		}
	})

	t.Run("MaskedAnswer", func(t *testing.T) {
		q := Question{Type: TypeFill, Answer: "cat", Hidden: []bool{true, false, true}}
		if got := MaskedAnswer(q); got != "_a_" {
			t.Errorf("MaskedAnswer = %q, want _a_", got)
		}
	})

	t.Run("MultiByteAnswerMasksPerCharacter", func(t *testing.T) {
		q := Question{Type: TypeFill}
		SetAnswer(&q, "mèo")
		if len(q.Hidden) != 3 {
			t.Fatalf("hidden length = %d, want one flag per character", len(q.Hidden))
		}
		if err := ToggleHidden(&q, 0); err != nil {
			t.Fatalf("ToggleHidden failed: %v", err)
		}
		if err := ToggleHidden(&q, 2); err != nil {
			t.Fatalf("ToggleHidden failed: %v", err)
		}
		if got := MaskedAnswer(q); got != "_è_" {
			t.Errorf("MaskedAnswer = %q, want _è_", got)
		}
		if err := ToggleHidden(&q, 3); err == nil {
			t.Error("index past the last character must be rejected")
		}
	})
}

func TestEditorSave(t *testing.T) {
	ed := NewEditor(&Quiz{ID: "1", Questions: []Question{
		{ID: "1", Content: "old"},
		{ID: "2"},
	}})

	t.Run("ExistingIDReplacedInPlace", func(t *testing.T) {
		ed.SaveQuestion(Question{ID: "1", Content: "updated"})
		if len(ed.Quiz.Questions) != 2 || ed.Quiz.Questions[0].Content != "updated" {
			t.Errorf("questions = %+v", ed.Quiz.Questions)
		}
	})

	t.Run("NewIDAppended", func(t *testing.T) {
		ed.SaveQuestion(Question{ID: "new-123", Content: "draft"})
		if len(ed.Quiz.Questions) != 3 || ed.Quiz.Questions[2].ID != "new-123" {
			t.Errorf("questions = %+v", ed.Quiz.Questions)
		}
	})

	t.Run("RemoveQuestion", func(t *testing.T) {
		if !ed.RemoveQuestion("2") {
			t.Fatal("RemoveQuestion reported missing")
		}
		if ed.RemoveQuestion("2") {
			t.Error("second removal should report missing")
		}
	})
}

func TestEditorTopics(t *testing.T) {
	ed := NewEditor(&Quiz{ID: "1", Topics: []Topic{{ID: "1", Name: "Fruits"}}})

	if err := ed.AddTopic(Topic{ID: "2", Name: "Colors"}); err != nil {
		t.Fatalf("AddTopic failed: %v", err)
	}
	if ed.Quiz.Topics[0].Name != "Colors" {
		t.Errorf("new topic should be prepended, got %+v", ed.Quiz.Topics)
	}
	if ed.Quiz.Topics[0].Thumbnail != "colors" {
		t.Errorf("thumbnail = %q, want keyword match", ed.Quiz.Topics[0].Thumbnail)
	}
	if err := ed.AddTopic(Topic{Name: "Fruits"}); !errors.Is(err, ErrDuplicateTopic) {
		t.Errorf("err = %v, want ErrDuplicateTopic", err)
	}
}

func TestPersistedQuestionIDs(t *testing.T) {
	ed := NewEditor(&Quiz{ID: "2", Questions: []Question{
		{ID: "21"},
		{ID: "new-1700000000000"},
		{ID: "23"},
	}})
	if got := ed.PersistedQuestionIDs(); !reflect.DeepEqual(got, []int{21, 23}) {
		t.Errorf("ids = %v, want [21 23]", got)
	}
}
