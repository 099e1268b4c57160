package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/config"
	"github.com/quizdeck/admin-core/internal/localstore"
)

const snapshotKey = "dashboard-snapshot"

// Snapshot is everything the dashboard renders, with the placeholder values
// the cards show before any backend answer arrives.
type Snapshot struct {
	TotalUsers  string       `json:"totalUsers"`
	Rating      float64      `json:"rating"`
	RatingCount int          `json:"ratingCount"`
	Version     string       `json:"version"`
	TopQuizzes  []TopQuizRow `json:"topQuizzes"`
	Completion  Completion   `json:"completion"`
	Traffic     [7]float64   `json:"traffic"`
}

func defaultSnapshot() Snapshot {
	return Snapshot{
		TotalUsers: "1,234",
		Rating:     4.5,
		Version:    "1.0.3",
	}
}

// Widgets drives the dashboard cards. Every read is best effort: a failed
// endpoint keeps the previously shown values, and the last good snapshot is
// cached locally so a restart starts from real data instead of placeholders.
type Widgets struct {
	client *api.Client
	store  localstore.Store

	mu      sync.Mutex
	current Snapshot
}

func NewWidgets(client *api.Client, store localstore.Store) *Widgets {
	w := &Widgets{
		client:  client,
		store:   store,
		current: defaultSnapshot(),
	}
	w.restore()
	return w
}

// Current returns the snapshot the dashboard should render right now.
func (w *Widgets) Current() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

func (w *Widgets) restore() {
	if w.store == nil {
		return
	}
	raw, err := w.store.Get(snapshotKey)
	if err != nil {
		if !errors.Is(err, localstore.ErrNotFound) {
			config.Logger().Warnf("Could not restore dashboard snapshot: %v", err)
		}
		return
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		config.Logger().Warnf("Stored dashboard snapshot is corrupt: %v", err)
		return
	}
	w.current = snap
}

func (w *Widgets) persist(snap Snapshot) {
	if w.store == nil {
		return
	}
	raw, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := w.store.Put(snapshotKey, string(raw)); err != nil {
		config.Logger().Warnf("Could not cache dashboard snapshot: %v", err)
	}
}

// Refresh polls all four stats endpoints. Each widget updates independently;
// failures are logged and leave that widget's previous values in place.
func (w *Widgets) Refresh(ctx context.Context) Snapshot {
	log := config.WithContext(ctx)

	w.mu.Lock()
	snap := w.current
	w.mu.Unlock()

	if raw, err := w.client.GeneralStats(ctx, nil); err != nil {
		log.Warnf("Failed to load general stats: %v", err)
	} else if g, err := MapGeneral(raw); err != nil {
		log.Warnf("Unusable general stats payload: %v", err)
	} else {
		if g.TotalUsers != nil {
			snap.TotalUsers = FormatCount(*g.TotalUsers)
		}
		if g.RatingAverage != nil {
			snap.Rating = *g.RatingAverage
		}
		if g.RatingCount != nil {
			snap.RatingCount = int(*g.RatingCount)
		}
		if g.Version != nil {
			snap.Version = *g.Version
		}
	}

	if raws, err := w.client.TopQuizzes(ctx, nil); err != nil {
		log.Warnf("Failed to load top quizzes: %v", err)
	} else if rows, err := MapTopQuizzes(raws); err != nil {
		log.Warnf("Unusable top-quizzes payload: %v", err)
	} else {
		snap.TopQuizzes = rows
	}

	if raw, err := w.client.CompletionRate(ctx, nil); err != nil {
		log.Warnf("Failed to load completion rate: %v", err)
	} else if c, err := MapCompletion(raw); err != nil {
		log.Warnf("Unusable completion payload: %v", err)
	} else {
		snap.Completion = c
	}

	if raws, err := w.client.Traffic(ctx, nil); err != nil {
		log.Warnf("Failed to load traffic: %v", err)
	} else if values, err := MapTraffic(raws); err != nil {
		log.Warnf("Unusable traffic payload: %v", err)
	} else {
		snap.Traffic = values
	}

	w.mu.Lock()
	w.current = snap
	w.mu.Unlock()
	w.persist(snap)
	return snap
}
