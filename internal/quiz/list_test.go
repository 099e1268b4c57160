package quiz

import (
	"reflect"
	"testing"
)

func TestWithDisplayNames(t *testing.T) {
	rows := []Row{
		{ID: "1", Name: "alpha", Topics: []string{"Fruits"}},
		{ID: "2", Name: "beta", Topics: []string{"Fruits", "Colors"}},
		{ID: "3", Name: "gamma"},
		{ID: "4", Topics: []string{"Food", "Animals", "Colors"}},
		{ID: "5"},
	}
	got := WithDisplayNames(rows)

	want := []string{"Fruits", "Test 1", "gamma", "Test 2", "-"}
	for i, row := range got {
		if row.DisplayName != want[i] {
			t.Errorf("row %d display name = %q, want %q", i, row.DisplayName, want[i])
		}
	}
	if rows[1].DisplayName != "" {
		t.Error("input slice was mutated")
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{
		{ID: "10", Questions: 3, Topics: []string{"b"}, Avg: 70},
		{ID: "2", Questions: 8, Topics: []string{"a", "c"}, Avg: 90},
		{ID: "1", Questions: 5, Topics: []string{"a"}, Avg: 80},
	}

	t.Run("NumericStringIDs", func(t *testing.T) {
		got := SortRows(rows, SortByID, true)
		ids := []string{got[0].ID, got[1].ID, got[2].ID}
		if !reflect.DeepEqual(ids, []string{"1", "2", "10"}) {
			t.Errorf("ids = %v, want numeric order", ids)
		}
	})

	t.Run("Descending", func(t *testing.T) {
		got := SortRows(rows, SortByQuestions, false)
		if got[0].Questions != 8 || got[2].Questions != 3 {
			t.Errorf("questions order = %v", got)
		}
	})

	t.Run("TopicsByCountThenName", func(t *testing.T) {
		got := SortRows(rows, SortByTopics, true)
		if len(got[0].Topics) != 1 || got[0].Topics[0] != "a" {
			t.Errorf("first row topics = %v", got[0].Topics)
		}
		if len(got[2].Topics) != 2 {
			t.Errorf("last row topics = %v", got[2].Topics)
		}
	})

	t.Run("InputUntouched", func(t *testing.T) {
		SortRows(rows, SortByAvg, true)
		if rows[0].ID != "10" {
			t.Error("input slice was reordered")
		}
	})
}

func TestDeriveTypes(t *testing.T) {
	questions := []Question{
		{ID: "1", Type: TypeMCQ},
		{ID: "2", Type: TypeFill},
		{ID: "3", Type: TypeMCQ},
		{ID: "4", Type: TypeMatch},
	}
	got := DeriveTypes(questions)
	want := []QuestionType{TypeMCQ, TypeFill, TypeMatch}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("types = %v, want %v", got, want)
	}
}
