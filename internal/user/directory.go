package user

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/config"
)

// ActivityGrade classifies a 24h metric for the stat cards.
type ActivityGrade string

const (
	GradeGood      ActivityGrade = "good"
	GradeNormal    ActivityGrade = "normal"
	GradeConcerned ActivityGrade = "concerned"
)

// ActivityMetric is one last-24-hours counter with its growth since the
// previous day.
type ActivityMetric struct {
	Name      string        `json:"name"`
	Value     float64       `json:"value"`
	GrowthPct float64       `json:"growth"`
	Grade     ActivityGrade `json:"grade"`
}

// GradeActivity rates a metric. Deleted-user growth is bad news: past ten
// percent it is flagged, any growth at all is worth watching. For the other
// counters growth is good and shrinkage is the warning sign.
func GradeActivity(name string, growthPct float64) ActivityGrade {
	if strings.Contains(strings.ToLower(name), "deleted") {
		switch {
		case growthPct >= 10:
			return GradeConcerned
		case growthPct > 0:
			return GradeNormal
		default:
			return GradeGood
		}
	}
	switch {
	case growthPct >= 5:
		return GradeGood
	case growthPct >= 0:
		return GradeNormal
	default:
		return GradeConcerned
	}
}

// Directory drives the user management screen: the searchable user list and
// the 24h activity cards next to it.
type Directory struct {
	client *api.Client
	users  []User
}

func NewDirectory(client *api.Client) *Directory {
	return &Directory{client: client}
}

func (d *Directory) Users() []User {
	return append([]User(nil), d.users...)
}

// Load fetches and normalizes the user listing.
func (d *Directory) Load(ctx context.Context) error {
	log := config.WithContext(ctx)

	raws, err := d.client.Users(ctx, nil)
	if err != nil {
		log.Errorf("Failed to fetch users: %v", err)
		return err
	}
	users := make([]User, 0, len(raws))
	for _, raw := range raws {
		u, err := Normalize(raw)
		if err != nil {
			log.Errorf("Failed to normalize user record: %v", err)
			return err
		}
		users = append(users, u)
	}
	d.users = users
	log.Infof("Loaded %d users", len(users))
	return nil
}

// Search filters the loaded users by a case-insensitive substring match
// against handle, name and job. An empty query returns everyone.
func (d *Directory) Search(query string) []User {
	if query == "" {
		return d.Users()
	}
	q := strings.ToLower(query)
	var out []User
	for _, u := range d.users {
		if strings.Contains(strings.ToLower(u.Handle), q) ||
			strings.Contains(strings.ToLower(u.Name), q) ||
			strings.Contains(strings.ToLower(u.Job), q) {
			out = append(out, u)
		}
	}
	return out
}

// Activity24h fetches the last-24-hours counters and grades each one.
func (d *Directory) Activity24h(ctx context.Context) ([]ActivityMetric, error) {
	raw, err := d.client.UserActivity24h(ctx, nil)
	if err != nil {
		return nil, err
	}
	var entries []struct {
		Name   string  `json:"name"`
		Value  float64 `json:"value"`
		Growth float64 `json:"growth"`
	}
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	metrics := make([]ActivityMetric, 0, len(entries))
	for _, e := range entries {
		metrics = append(metrics, ActivityMetric{
			Name:      e.Name,
			Value:     e.Value,
			GrowthPct: e.Growth,
			Grade:     GradeActivity(e.Name, e.Growth),
		})
	}
	return metrics, nil
}
