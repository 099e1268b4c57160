package user

import (
	"encoding/json"
	"testing"
)

func TestNormalizeRole(t *testing.T) {
	cases := map[string]Role{
		"admin":     RoleAdmin,
		"ADMIN":     RoleAdmin,
		" Admin ":   RoleAdmin,
		"learner":   RoleLearner,
		"moderator": RoleLearner,
		"":          RoleLearner,
	}
	for raw, want := range cases {
		if got := NormalizeRole(raw); got != want {
			t.Errorf("NormalizeRole(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]Status{
		"Online":    StatusOnline,
		"online":    StatusOnline,
		"suspended": StatusSuspended,
		"banned":    StatusOffline,
		"":          StatusOffline,
	}
	for raw, want := range cases {
		if got := NormalizeStatus(raw); got != want {
			t.Errorf("NormalizeStatus(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestNormalizeUser(t *testing.T) {
	t.Run("FieldAliases", func(t *testing.T) {
		raw := json.RawMessage(`{"username": "kien", "full_name": "Kien Ng", "title": "Teacher", "role": "ADMIN"}`)
		u, err := Normalize(raw)
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if u.Handle != "kien" || u.Name != "Kien Ng" || u.Job != "Teacher" {
			t.Errorf("user = %+v", u)
		}
		if u.Role != RoleAdmin {
			t.Errorf("role = %q, want Admin", u.Role)
		}
		if u.Avatar != "avatars/kien.jpg" {
			t.Errorf("avatar = %q, want mapped file", u.Avatar)
		}
	})

	t.Run("NameFallsBackToHandle", func(t *testing.T) {
		u, err := Normalize(json.RawMessage(`{"handle": "ann"}`))
		if err != nil {
			t.Fatalf("Normalize failed: %v", err)
		}
		if u.Name != "ann" {
			t.Errorf("name = %q, want handle fallback", u.Name)
		}
		if u.Status != StatusOffline {
			t.Errorf("status = %q, want Offline default", u.Status)
		}
	})

	t.Run("MissingUsernameFails", func(t *testing.T) {
		if _, err := Normalize(json.RawMessage(`{"name": "nobody"}`)); err == nil {
			t.Error("expected an error")
		}
	})
}

func TestAvatarFor(t *testing.T) {
	t.Run("ExactMatchCaseInsensitive", func(t *testing.T) {
		if got := AvatarFor("KIEN"); got != "avatars/kien.jpg" {
			t.Errorf("AvatarFor(KIEN) = %q", got)
		}
	})

	t.Run("FallbackIsConsistent", func(t *testing.T) {
		a := AvatarFor("somebody-new")
		b := AvatarFor("somebody-new")
		if a != b {
			t.Errorf("fallback changed between calls: %q vs %q", a, b)
		}
	})

	t.Run("FallbackMatchesCharCodeSum", func(t *testing.T) {
		// "ab" = 97 + 98 = 195, 195 % 10 = 5 -> avatar6
		if got := AvatarFor("ab"); got != "avatars/avatar6.png" {
			t.Errorf("AvatarFor(ab) = %q, want avatars/avatar6.png", got)
		}
	})

	t.Run("EmptyUsername", func(t *testing.T) {
		if got := AvatarFor(""); got != "avatars/avatar1.png" {
			t.Errorf("AvatarFor(\"\") = %q", got)
		}
	})
}
