package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/config"
	"github.com/quizdeck/admin-core/internal/user"
)

func newProfile(t *testing.T, r http.Handler) *user.Profile {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return user.NewProfile(api.NewClient(srv.URL, "", nil))
}

func TestProfileGeneral(t *testing.T) {
	t.Run("MergesOverPlaceholders", func(t *testing.T) {
		r := chi.NewRouter()
		r.Get("/api/admin/user-general", func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Query().Get("username") != "ann" {
				t.Errorf("username query = %q", req.URL.Query().Get("username"))
			}
			config.JSON(w, http.StatusOK, map[string]string{
				"email":      "ann@example.com",
				"vocabulary": "Careers",
			})
		})
		p := newProfile(t, r)

		info, err := p.General(context.Background(), "ann")
		if err != nil {
			t.Fatalf("General failed: %v", err)
		}
		if info.Email != "ann@example.com" || info.Vocabulary != "Careers" {
			t.Errorf("fetched fields lost: %+v", info)
		}
		if info.PasswordMask != "************" || info.Quiz != "-" {
			t.Errorf("placeholders lost: %+v", info)
		}
	})

	t.Run("ErrorKeepsPlaceholders", func(t *testing.T) {
		r := chi.NewRouter()
		r.Get("/api/admin/user-general", func(w http.ResponseWriter, _ *http.Request) {
			config.JSON(w, http.StatusInternalServerError, map[string]string{"message": "down"})
		})
		p := newProfile(t, r)

		info, err := p.General(context.Background(), "ann")
		if err == nil {
			t.Fatal("expected an error")
		}
		if info.PasswordMask != "************" {
			t.Errorf("placeholders not returned on error: %+v", info)
		}
	})
}

func TestProfileOpinions(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/admin/user-opinions", func(w http.ResponseWriter, _ *http.Request) {
		config.JSON(w, http.StatusOK, []map[string]string{
			{"date": "10/29/2025", "time": "11:30 am", "feedback": "This app seems meh.", "type": "FEEDBACK"},
			{"date": "10/27/2025", "time": "8:26 pm", "feedback": "So many bugs.", "type": "BUG"},
			{"date": "10/26/2025", "time": "", "feedback": "No time given.", "type": "weird"},
		})
	})
	p := newProfile(t, r)

	opinions, err := p.Opinions(context.Background(), "ann")
	if err != nil {
		t.Fatalf("Opinions failed: %v", err)
	}
	if len(opinions) != 3 {
		t.Fatalf("len = %d, want 3", len(opinions))
	}
	if opinions[0].Kind != user.OpinionFeedback || opinions[1].Kind != user.OpinionBug {
		t.Errorf("kinds = %q, %q", opinions[0].Kind, opinions[1].Kind)
	}
	if opinions[2].Kind != user.OpinionFeedback {
		t.Errorf("unknown kind should collapse to FEEDBACK, got %q", opinions[2].Kind)
	}
	if opinions[1].Date != "10/27/2025" || opinions[1].Time != "8:26 pm" {
		t.Errorf("timestamp round trip = %q %q", opinions[1].Date, opinions[1].Time)
	}
	if opinions[0].At.IsZero() {
		t.Error("parsed timestamp missing")
	}
}
