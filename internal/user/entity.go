package user

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleLearner Role = "Learner"
)

// NormalizeRole collapses whatever the backend sends to the two roles the
// dashboard knows. Anything that is not "admin" is a learner.
func NormalizeRole(raw string) Role {
	if strings.EqualFold(strings.TrimSpace(raw), "admin") {
		return RoleAdmin
	}
	return RoleLearner
}

type Status string

const (
	StatusOnline    Status = "Online"
	StatusOffline   Status = "Offline"
	StatusSuspended Status = "Suspended"
)

var AllStatuses = []Status{
	StatusOnline,
	StatusOffline,
	StatusSuspended,
}

func NormalizeStatus(raw string) Status {
	for _, s := range AllStatuses {
		if strings.EqualFold(raw, string(s)) {
			return s
		}
	}
	return StatusOffline
}

// User is one directory entry. Handle is the unique username; Name is the
// display name shown beneath it.
type User struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
	Job    string `json:"job,omitempty"`
	Email  string `json:"email,omitempty"`
	Role   Role   `json:"role"`
	Status Status `json:"status"`
	Avatar string `json:"avatar,omitempty"`
}

// Normalize decodes one backend user record, tolerating the field aliases
// the endpoints disagree on.
func Normalize(raw json.RawMessage) (User, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return User{}, fmt.Errorf("user record is not an object: %w", err)
	}
	u := User{
		Handle: pick(obj, "handle", "username", "user_name"),
		Name:   pick(obj, "name", "full_name", "fullName"),
		Job:    pick(obj, "job", "title"),
		Email:  pick(obj, "email"),
		Avatar: pick(obj, "avatar"),
	}
	if u.Handle == "" {
		return User{}, fmt.Errorf("user record has no username")
	}
	if u.Name == "" {
		u.Name = u.Handle
	}
	u.Role = NormalizeRole(pick(obj, "role"))
	u.Status = NormalizeStatus(pick(obj, "status"))
	if u.Avatar == "" {
		u.Avatar = AvatarFor(u.Handle)
	}
	return u, nil
}

func pick(obj map[string]json.RawMessage, keys ...string) string {
	for _, key := range keys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
