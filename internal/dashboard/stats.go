package dashboard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// General carries the top stat cards. Nil fields mean the backend did not
// send that value; the widget keeps whatever it was showing.
type General struct {
	TotalUsers    *float64
	RatingAverage *float64
	RatingCount   *float64
	Version       *string
}

// MapGeneral resolves the field-name drift of the general stats endpoint.
// The rating arrives either as an object with average and count or as a
// bare number under one of several legacy names.
func MapGeneral(raw json.RawMessage) (General, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return General{}, fmt.Errorf("general stats payload is not an object: %w", err)
	}

	var g General
	g.TotalUsers = pickNumber(obj, "totalUsers", "total", "userCount", "total_user", "total_users", "count")

	if raw, ok := obj["rating"]; ok {
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(raw, &nested); err == nil {
			g.RatingAverage = pickNumber(nested, "average", "avg")
			g.RatingCount = pickNumber(nested, "count", "total")
		}
	}
	if g.RatingAverage == nil {
		g.RatingAverage = pickNumber(obj, "rating", "averageRating", "avgRating", "avg_rating", "average_rating")
	}

	for _, key := range []string{"version", "appVersion", "app_version", "appVersionString", "app_version_string"} {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			g.Version = &s
			break
		}
	}
	return g, nil
}

// FormatCount renders a user count with thousands separators ("12,345").
func FormatCount(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	intPart := s
	var frac string
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := strings.HasPrefix(intPart, "-")
	if neg {
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}

// TopQuizRow is one line of the top-quizzes leaderboard.
type TopQuizRow struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Passed int    `json:"passed"`
}

// MapTopQuizzes flattens leaderboard records: the display name prefers the
// username, then the email, then "Unknown".
func MapTopQuizzes(raws []json.RawMessage) ([]TopQuizRow, error) {
	rows := make([]TopQuizRow, 0, len(raws))
	for i, raw := range raws {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("top-quiz record %d is not an object: %w", i, err)
		}
		row := TopQuizRow{Name: "Unknown"}
		for _, key := range []string{"username", "email"} {
			raw, ok := obj[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				row.Name = s
				break
			}
		}
		if raw, ok := obj["avatarUrl"]; ok {
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				row.Avatar = s
			}
		}
		if n := pickNumber(obj, "passedCount"); n != nil {
			row.Passed = int(*n)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Completion is the pie-chart split, ordered not-started, in-progress,
// completed. Absent fields count as zero.
type Completion struct {
	Rates  [3]float64      `json:"rates"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

func MapCompletion(raw json.RawMessage) (Completion, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return Completion{}, fmt.Errorf("completion payload is not an object: %w", err)
	}
	var c Completion
	for i, key := range []string{"notStarted", "inProgress", "completed"} {
		if n := pickNumber(obj, key); n != nil {
			c.Rates[i] = *n
		}
	}
	if detail, ok := obj["detail"]; ok && string(detail) != "null" {
		c.Detail = detail
	}
	return c, nil
}

// MapTraffic places up to seven daily counts into Monday..Sunday slots in
// arrival order, padding missing days with zero. Counts are not aligned by
// calendar date.
func MapTraffic(raws []json.RawMessage) ([7]float64, error) {
	var values [7]float64
	for i := 0; i < len(raws) && i < 7; i++ {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raws[i], &obj); err != nil {
			return values, fmt.Errorf("traffic record %d is not an object: %w", i, err)
		}
		if n := pickNumber(obj, "count", "value", "_count"); n != nil {
			values[i] = *n
		}
	}
	return values, nil
}

func pickNumber(obj map[string]json.RawMessage, keys ...string) *float64 {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok || string(raw) == "null" {
			continue
		}
		var n float64
		if err := json.Unmarshal(raw, &n); err == nil {
			return &n
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if v, err := strconv.ParseFloat(s, 64); err == nil {
				return &v
			}
		}
	}
	return nil
}
