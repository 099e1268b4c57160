package quiz

import (
	"sort"
	"strconv"
	"strings"
)

// WithDisplayNames computes each row's display name: a single topic lends
// its name, multi-topic quizzes are numbered "Test 1", "Test 2" in order of
// appearance, and topicless quizzes keep their own name or show a dash.
func WithDisplayNames(rows []Row) []Row {
	out := append([]Row(nil), rows...)
	multi := 0
	for i := range out {
		switch {
		case len(out[i].Topics) == 1:
			out[i].DisplayName = out[i].Topics[0]
		case len(out[i].Topics) > 1:
			multi++
			out[i].DisplayName = "Test " + strconv.Itoa(multi)
		case out[i].Name != "":
			out[i].DisplayName = out[i].Name
		default:
			out[i].DisplayName = "-"
		}
	}
	return out
}

// SortKey names a sortable quiz table column.
type SortKey string

const (
	SortByID          SortKey = "id"
	SortByDisplayName SortKey = "displayName"
	SortByQuestions   SortKey = "questions"
	SortByTopics      SortKey = "topics"
	SortByTypes       SortKey = "types"
	SortByAvg         SortKey = "avg"
	SortByUsers       SortKey = "users"
)

// SortRows orders rows by the given column. Topic columns compare by count
// then first topic name; numeric strings (ids like "2" vs "10") compare
// numerically. The sort is stable and does not mutate its input.
func SortRows(rows []Row, key SortKey, ascending bool) []Row {
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		res := compareRows(out[i], out[j], key)
		if ascending {
			return res < 0
		}
		return res > 0
	})
	return out
}

func compareRows(a, b Row, key SortKey) int {
	switch key {
	case SortByTopics:
		if d := len(a.Topics) - len(b.Topics); d != 0 {
			return d
		}
		return strings.Compare(firstOf(a.Topics), firstOf(b.Topics))
	case SortByTypes:
		return len(a.Types) - len(b.Types)
	case SortByQuestions:
		return a.Questions - b.Questions
	case SortByUsers:
		return a.Users - b.Users
	case SortByAvg:
		return compareFloats(a.Avg, b.Avg)
	case SortByDisplayName:
		return compareMixed(a.DisplayName, b.DisplayName)
	default:
		return compareMixed(a.ID, b.ID)
	}
}

func firstOf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareMixed compares numerically when both values parse as numbers,
// lexically otherwise.
func compareMixed(a, b string) int {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return compareFloats(na, nb)
	}
	return strings.Compare(a, b)
}

// DeriveTypes collects the distinct question types of a quiz in order of
// first appearance. Used for rows whose list record carried no type info.
func DeriveTypes(questions []Question) []QuestionType {
	seen := make(map[QuestionType]bool)
	var types []QuestionType
	for _, q := range questions {
		if seen[q.Type] {
			continue
		}
		seen[q.Type] = true
		types = append(types, q.Type)
	}
	return types
}
