package util

import (
	"fmt"
	"strings"
	"time"
)

// OpinionTime is the timestamp format of user feedback entries: the backend
// splits it into a date ("10/29/2025") and a twelve-hour time ("11:30 am").
type OpinionTime struct {
	time.Time
}

const (
	dateLayout = "01/02/2006"
	timeLayout = "3:04 pm"
)

func (ot OpinionTime) DateString() string {
	if ot.IsZero() {
		return ""
	}
	return ot.Format(dateLayout)
}

func (ot OpinionTime) TimeString() string {
	if ot.IsZero() {
		return ""
	}
	return strings.ToLower(ot.Format(timeLayout))
}

// ParseOpinionTime combines the two backend fields back into one timestamp.
// An empty time is accepted and resolves to midnight.
func ParseOpinionTime(date, clock string) (OpinionTime, error) {
	if date == "" {
		return OpinionTime{}, fmt.Errorf("empty date")
	}
	layout := dateLayout
	value := date
	if clock != "" {
		layout = dateLayout + " " + timeLayout
		value = date + " " + strings.ToLower(strings.TrimSpace(clock))
	}
	t, err := time.Parse(layout, value)
	if err != nil {
		return OpinionTime{}, err
	}
	return OpinionTime{Time: t}, nil
}

func (ot OpinionTime) Equal(other OpinionTime) bool {
	return ot.Time.Equal(other.Time)
}
