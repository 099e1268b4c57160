package user

import (
	"context"
	"encoding/json"

	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/config"
	util "github.com/quizdeck/admin-core/internal/utils"
)

// GeneralInfo is the profile detail card. Every field the backend omits
// keeps its placeholder so the card never renders half empty.
type GeneralInfo struct {
	Email        string `json:"email"`
	DateCreated  string `json:"dateCreated"`
	PasswordMask string `json:"passwordMask"`
	Vocabulary   string `json:"vocabulary"`
	Flashcard    string `json:"flashcard"`
	Quiz         string `json:"quiz"`
}

func defaultGeneralInfo() GeneralInfo {
	return GeneralInfo{
		Email:        "-",
		DateCreated:  "-",
		PasswordMask: "************",
		Vocabulary:   "-",
		Flashcard:    "-",
		Quiz:         "-",
	}
}

type OpinionKind string

const (
	OpinionBug      OpinionKind = "BUG"
	OpinionFeedback OpinionKind = "FEEDBACK"
)

// Opinion is one feedback entry on a user's profile.
type Opinion struct {
	At       util.OpinionTime `json:"-"`
	Date     string           `json:"date"`
	Time     string           `json:"time"`
	Feedback string           `json:"feedback"`
	Kind     OpinionKind      `json:"type"`
}

// Profile loads per-user detail for the profile screen.
type Profile struct {
	client *api.Client
}

func NewProfile(client *api.Client) *Profile {
	return &Profile{client: client}
}

// General fetches the general-information card, merging the response over
// the placeholders field by field.
func (p *Profile) General(ctx context.Context, username string) (GeneralInfo, error) {
	info := defaultGeneralInfo()
	raw, err := p.client.UserGeneral(ctx, username, nil)
	if err != nil {
		return info, err
	}
	var fetched GeneralInfo
	if err := json.Unmarshal(raw, &fetched); err != nil {
		return info, err
	}
	if fetched.Email != "" {
		info.Email = fetched.Email
	}
	if fetched.DateCreated != "" {
		info.DateCreated = fetched.DateCreated
	}
	if fetched.PasswordMask != "" {
		info.PasswordMask = fetched.PasswordMask
	}
	if fetched.Vocabulary != "" {
		info.Vocabulary = fetched.Vocabulary
	}
	if fetched.Flashcard != "" {
		info.Flashcard = fetched.Flashcard
	}
	if fetched.Quiz != "" {
		info.Quiz = fetched.Quiz
	}
	return info, nil
}

// Opinions fetches a user's feedback entries. Entries whose timestamp does
// not parse are kept with the raw date/time strings.
func (p *Profile) Opinions(ctx context.Context, username string) ([]Opinion, error) {
	log := config.WithContext(ctx)

	raws, err := p.client.UserOpinions(ctx, username, nil)
	if err != nil {
		return nil, err
	}
	opinions := make([]Opinion, 0, len(raws))
	for _, raw := range raws {
		var o Opinion
		if err := json.Unmarshal(raw, &o); err != nil {
			return nil, err
		}
		if o.Kind != OpinionBug {
			o.Kind = OpinionFeedback
		}
		at, err := util.ParseOpinionTime(o.Date, o.Time)
		if err != nil {
			log.Warnf("Opinion for %s has unparseable timestamp %q %q", username, o.Date, o.Time)
		} else {
			o.At = at
			o.Date = at.DateString()
			o.Time = at.TimeString()
		}
		opinions = append(opinions, o)
	}
	return opinions, nil
}
