package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrUnrecognizedShape reports a backend record that none of the known field
// layouts match. Decoding fails loudly instead of guessing.
var ErrUnrecognizedShape = errors.New("unrecognized record shape")

// NormalizeQuestionType maps the backend's free-form question_type strings
// onto the canonical four types by case-insensitive keyword matching. Unknown
// values fall back to multiple choice.
func NormalizeQuestionType(raw string) QuestionType {
	s := strings.ToLower(raw)
	switch {
	case strings.Contains(s, "listen"):
		return TypeListening
	case strings.Contains(s, "fill"), strings.Contains(s, "gap"),
		strings.Contains(s, "cloze"), strings.Contains(s, "blank"),
		strings.Contains(s, "write"):
		return TypeFill
	case strings.Contains(s, "img") && strings.Contains(s, "choose"):
		return TypeMCQ
	case strings.Contains(s, "choose") && strings.Contains(s, "text"):
		return TypeMCQ
	case strings.Contains(s, "match"), strings.Contains(s, "pair"):
		return TypeMatch
	default:
		return TypeMCQ
	}
}

// TopicThumbnail picks a bundled thumbnail asset by keyword-matching the
// topic name. Used when the backend supplies no thumbnail of its own.
func TopicThumbnail(name string) string {
	key := strings.ToLower(name)
	switch {
	case strings.Contains(key, "fruit"):
		return "fruits"
	case strings.Contains(key, "education"), strings.Contains(key, "information"),
		strings.Contains(key, "technology"):
		return "education"
	case strings.Contains(key, "personalit"), strings.Contains(key, "person"):
		return "emotion"
	case strings.Contains(key, "food"):
		return "food"
	case strings.Contains(key, "color"), strings.Contains(key, "colour"):
		return "colors"
	default:
		return "animals"
	}
}

// NormalizeTopic decodes one element of a topic list. The backend sends
// either a bare string or an object with topic_id/id and topic_name/name/
// title fields. pos is the element's zero-based position, used to derive an
// id when the record carries none.
func NormalizeTopic(raw json.RawMessage, pos int) (Topic, error) {
	var name string
	if err := json.Unmarshal(raw, &name); err == nil {
		return Topic{
			ID:        strconv.Itoa(pos + 1),
			Name:      name,
			Thumbnail: TopicThumbnail(name),
		}, nil
	}

	obj, err := asObject(raw)
	if err != nil {
		return Topic{}, fmt.Errorf("topic at position %d: %w", pos, ErrUnrecognizedShape)
	}
	t := Topic{
		ID:         pickString(obj, "topic_id", "id"),
		Name:       pickString(obj, "topic_name", "name", "title"),
		Thumbnail:  pickString(obj, "thumbnail"),
		Difficulty: pickString(obj, "difficulty"),
	}
	if t.Name == "" {
		return Topic{}, fmt.Errorf("topic at position %d has no name: %w", pos, ErrUnrecognizedShape)
	}
	if t.ID == "" {
		t.ID = strconv.Itoa(pos + 1)
	}
	if t.Thumbnail == "" {
		t.Thumbnail = TopicThumbnail(t.Name)
	}
	return t, nil
}

// NormalizeTopics decodes a whole topic list.
func NormalizeTopics(raws []json.RawMessage) ([]Topic, error) {
	topics := make([]Topic, 0, len(raws))
	for i, raw := range raws {
		t, err := NormalizeTopic(raw, i)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, nil
}

// NormalizeQuestion decodes one backend question record into the canonical
// tagged union. The hidden-character mask is accepted as a boolean array
// (hiddenPositions, hidden) or an index array (hiddenIndices) and is resized
// to the answer's character count either way.
func NormalizeQuestion(raw json.RawMessage) (Question, error) {
	obj, err := asObject(raw)
	if err != nil {
		return Question{}, fmt.Errorf("question: %w", ErrUnrecognizedShape)
	}
	q := Question{
		ID:      pickString(obj, "id", "question_id"),
		Type:    NormalizeQuestionType(pickString(obj, "type", "question_type", "questionType", "kind")),
		Content: pickString(obj, "content", "prompt", "text"),
		Image:   pickString(obj, "image"),
		Audio:   pickString(obj, "audio"),
		Answer:  pickString(obj, "answer"),
	}
	if q.ID == "" {
		return Question{}, fmt.Errorf("question has no id: %w", ErrUnrecognizedShape)
	}

	if raw, ok := obj["options"]; ok {
		if err := json.Unmarshal(raw, &q.Options); err != nil {
			return Question{}, fmt.Errorf("question %s options: %w", q.ID, ErrUnrecognizedShape)
		}
	}
	if raw, ok := obj["prompts"]; ok {
		if err := json.Unmarshal(raw, &q.Prompts); err != nil {
			return Question{}, fmt.Errorf("question %s prompts: %w", q.ID, ErrUnrecognizedShape)
		}
	}
	if raw, ok := obj["responses"]; ok {
		if err := json.Unmarshal(raw, &q.Responses); err != nil {
			return Question{}, fmt.Errorf("question %s responses: %w", q.ID, ErrUnrecognizedShape)
		}
	}

	hidden, err := decodeHiddenMask(obj, utf8.RuneCountInString(q.Answer))
	if err != nil {
		return Question{}, fmt.Errorf("question %s: %w", q.ID, err)
	}
	q.Hidden = hidden
	return q, nil
}

func decodeHiddenMask(obj map[string]json.RawMessage, answerLen int) ([]bool, error) {
	for _, key := range []string{"hiddenPositions", "hidden"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var mask []bool
		if err := json.Unmarshal(raw, &mask); err != nil {
			return nil, fmt.Errorf("%s: %w", key, ErrUnrecognizedShape)
		}
		return resizeMask(mask, answerLen), nil
	}
	if raw, ok := obj["hiddenIndices"]; ok {
		var indices []int
		if err := json.Unmarshal(raw, &indices); err != nil {
			return nil, fmt.Errorf("hiddenIndices: %w", ErrUnrecognizedShape)
		}
		mask := make([]bool, answerLen)
		for _, i := range indices {
			if i >= 0 && i < answerLen {
				mask[i] = true
			}
		}
		return mask, nil
	}
	if answerLen == 0 {
		return nil, nil
	}
	return make([]bool, answerLen), nil
}

func resizeMask(mask []bool, n int) []bool {
	if n == 0 {
		return nil
	}
	out := make([]bool, n)
	copy(out, mask)
	return out
}

// NormalizeQuiz decodes a quiz detail response (id, title, topics and the
// full question list).
func NormalizeQuiz(raw json.RawMessage) (*Quiz, error) {
	obj, err := asObject(raw)
	if err != nil {
		return nil, fmt.Errorf("quiz: %w", ErrUnrecognizedShape)
	}
	qz := &Quiz{
		ID:    pickString(obj, "id", "quiz_id", "_id"),
		Title: pickString(obj, "title", "name"),
	}
	if qz.ID == "" {
		return nil, fmt.Errorf("quiz has no id: %w", ErrUnrecognizedShape)
	}

	topics, err := normalizeTopicsField(obj)
	if err != nil {
		return nil, fmt.Errorf("quiz %s: %w", qz.ID, err)
	}
	qz.Topics = topics

	if raw, ok := obj["questions"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("quiz %s questions: %w", qz.ID, ErrUnrecognizedShape)
		}
		for _, item := range items {
			q, err := NormalizeQuestion(item)
			if err != nil {
				return nil, fmt.Errorf("quiz %s: %w", qz.ID, err)
			}
			qz.Questions = append(qz.Questions, q)
		}
	}
	return qz, nil
}

// NormalizeRow decodes one quiz list record into the table row shape. The
// average score is accepted as a number or a percent string like "85%".
func NormalizeRow(raw json.RawMessage, pos int) (Row, error) {
	obj, err := asObject(raw)
	if err != nil {
		return Row{}, fmt.Errorf("quiz row at position %d: %w", pos, ErrUnrecognizedShape)
	}
	row := Row{
		ID:     pickString(obj, "id", "quiz_id", "_id"),
		Topics: []string{},
		Types:  []QuestionType{},
	}
	if row.ID == "" {
		return Row{}, fmt.Errorf("quiz row at position %d has no id: %w", pos, ErrUnrecognizedShape)
	}
	row.Name = pickString(obj, "name", "title")
	if row.Name == "" {
		row.Name = row.ID
	}

	topics, err := normalizeTopicsField(obj)
	if err != nil {
		return Row{}, fmt.Errorf("quiz row %s: %w", row.ID, err)
	}
	for _, t := range topics {
		row.Topics = append(row.Topics, t.Name)
	}

	row.Questions = int(pickNumber(obj, "questions", "questionCount", "question_count"))
	row.Users = int(pickNumber(obj, "users", "userJoined", "user_joined"))
	row.Avg = normalizeAvg(obj)

	for _, key := range []string{"types", "questionTypes", "QuestionTypes", "question_types", "Question_Types"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var values []string
		if err := json.Unmarshal(raw, &values); err != nil {
			return Row{}, fmt.Errorf("quiz row %s %s: %w", row.ID, key, ErrUnrecognizedShape)
		}
		for _, v := range values {
			if v == "" {
				continue
			}
			row.Types = append(row.Types, NormalizeQuestionType(v))
		}
		break
	}
	return row, nil
}

// NormalizeRows decodes a whole quiz list response.
func NormalizeRows(raws []json.RawMessage) ([]Row, error) {
	rows := make([]Row, 0, len(raws))
	for i, raw := range raws {
		row, err := NormalizeRow(raw, i)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// normalizeTopicsField resolves the three ways a quiz record carries topic
// information: a topics array, a singular topic field, or flat topic_name/
// topic_id fields. Absent all three, the result is empty.
func normalizeTopicsField(obj map[string]json.RawMessage) ([]Topic, error) {
	if raw, ok := obj["topics"]; ok {
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("topics: %w", ErrUnrecognizedShape)
		}
		if len(items) > 0 {
			return NormalizeTopics(items)
		}
	}
	if raw, ok := obj["topic"]; ok && string(raw) != "null" {
		t, err := NormalizeTopic(raw, 0)
		if err != nil {
			return nil, err
		}
		return []Topic{t}, nil
	}
	if name := pickString(obj, "topic_name"); name != "" {
		t := Topic{
			ID:        pickString(obj, "topic_id"),
			Name:      name,
			Thumbnail: TopicThumbnail(name),
		}
		if t.ID == "" {
			t.ID = "1"
		}
		return []Topic{t}, nil
	}
	return nil, nil
}

func normalizeAvg(obj map[string]json.RawMessage) float64 {
	if v, ok := number(obj, "avg"); ok {
		return v
	}
	raw, ok := obj["avgGrade"]
	if !ok {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(s), "%"), 64)
		if err == nil {
			return v
		}
	}
	return 0
}

func asObject(raw json.RawMessage) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// pickString returns the first present key as a string. Numeric values are
// rendered as their decimal text so ids arrive uniformly as strings.
func pickString(obj map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok || string(raw) == "null" {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if s != "" {
				return s
			}
			continue
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

func number(obj map[string]json.RawMessage, key string) (float64, bool) {
	raw, ok := obj[key]
	if !ok {
		return 0, false
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, false
	}
	return n, true
}

func pickNumber(obj map[string]json.RawMessage, keys ...string) float64 {
	for _, key := range keys {
		if v, ok := number(obj, key); ok {
			return v
		}
	}
	return 0
}
