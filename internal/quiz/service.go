package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/config"
	"github.com/quizdeck/admin-core/internal/optimistic"
)

func rowID(r Row) string           { return r.ID }
func questionID(q Question) string { return q.ID }

// QuestionSet is the mutable question list of one quiz under edit.
type QuestionSet struct {
	QuizID string
	col    *optimistic.Collection[Question]
}

func NewQuestionSet(qz *Quiz) *QuestionSet {
	col := optimistic.NewCollection(questionID)
	col.Replace(qz.Questions)
	return &QuestionSet{QuizID: qz.ID, col: col}
}

func (qs *QuestionSet) Questions() []Question {
	return qs.col.Items()
}

func (qs *QuestionSet) persistedIDs() []int {
	var ids []int
	for _, q := range qs.col.Items() {
		if optimistic.IsTempID(q.ID) {
			continue
		}
		if n, err := strconv.Atoi(q.ID); err == nil {
			ids = append(ids, n)
		}
	}
	return ids
}

// CreateForm carries the create-quiz dialog fields.
type CreateForm struct {
	Name            string
	TopicID         string
	TopicName       string
	PassingScore    int
	DurationMinutes int
}

// Service drives the quiz list and editor flows: loading and normalizing
// backend records, and the optimistic create/delete mutations.
type Service struct {
	client *api.Client
	rows   *optimistic.Collection[Row]
}

func NewService(client *api.Client) *Service {
	return &Service{
		client: client,
		rows:   optimistic.NewCollection(rowID),
	}
}

// Rows returns the current quiz list with display names applied.
func (s *Service) Rows() []Row {
	return WithDisplayNames(s.rows.Items())
}

// Load fetches and normalizes the quiz list, replacing local state.
func (s *Service) Load(ctx context.Context) error {
	log := config.WithContext(ctx)

	raws, err := s.client.FetchQuizzes(ctx, nil)
	if err != nil {
		log.Errorf("Failed to fetch quizzes: %v", err)
		return err
	}
	rows, err := NormalizeRows(raws)
	if err != nil {
		log.Errorf("Failed to normalize quiz list: %v", err)
		return err
	}
	s.rows.Replace(rows)
	log.Infof("Loaded %d quizzes", len(rows))
	return nil
}

// FillMissingTypes fetches details for rows whose list record carried no
// question-type info and derives the types from their questions. Best
// effort: per-row failures are logged and skipped.
func (s *Service) FillMissingTypes(ctx context.Context) {
	log := config.WithContext(ctx)

	for _, row := range s.rows.Items() {
		if len(row.Types) > 0 || row.ID == "" {
			continue
		}
		raw, err := s.client.FetchQuiz(ctx, row.ID, nil)
		if err != nil {
			log.Warnf("Could not fetch quiz %s for type derivation: %v", row.ID, err)
			continue
		}
		detailed, err := NormalizeQuiz(raw)
		if err != nil {
			log.Warnf("Could not normalize quiz %s: %v", row.ID, err)
			continue
		}
		if len(detailed.Questions) == 0 {
			continue
		}
		row.Types = DeriveTypes(detailed.Questions)
		if row.Questions == 0 {
			row.Questions = len(detailed.Questions)
		}
		s.rows.Update(row.ID, row)
	}
}

// LoadQuiz fetches one quiz with its questions and opens an editor on it.
func (s *Service) LoadQuiz(ctx context.Context, id string) (*Editor, error) {
	raw, err := s.client.FetchQuiz(ctx, id, nil)
	if err != nil {
		return nil, err
	}
	qz, err := NormalizeQuiz(raw)
	if err != nil {
		return nil, err
	}
	return NewEditor(qz), nil
}

// Topics fetches and normalizes the topic catalog.
func (s *Service) Topics(ctx context.Context) ([]Topic, error) {
	raws, err := s.client.FetchTopics(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NormalizeTopics(raws)
}

// nextQuizID proposes the next list-level quiz id: one past the highest
// numeric id currently shown.
func (s *Service) nextQuizID() int {
	highest := 0
	for _, row := range s.rows.Items() {
		if n, err := strconv.Atoi(row.ID); err == nil && n > highest {
			highest = n
		}
	}
	return highest + 1
}

// CreateQuiz inserts the new quiz at the top of the list immediately, then
// issues the create request. On success the provisional row is replaced by
// the server's copy; on failure it is removed and the error returned.
func (s *Service) CreateQuiz(ctx context.Context, form CreateForm) (Row, error) {
	log := config.WithContext(ctx)

	nextID := s.nextQuizID()
	title := form.Name
	if title == "" {
		if form.TopicName != "" {
			title = "Quiz: " + form.TopicName
		} else {
			title = "Quiz: " + strconv.Itoa(nextID)
		}
	}

	payload := api.CreateQuizRequest{
		QuizID:          nextID,
		Title:           title,
		TopicID:         form.TopicID,
		PassingScore:    form.PassingScore,
		DurationMinutes: form.DurationMinutes,
	}

	tempID := optimistic.TempID()
	provisional := Row{ID: tempID, Name: title, Topics: []string{}, Types: []QuestionType{}}
	if form.TopicName != "" {
		provisional.Topics = []string{form.TopicName}
	}

	cmd := optimistic.NewCreate(s.rows, provisional, tempID, true)
	cmd.Apply()

	created, err := s.client.CreateQuiz(ctx, payload, nil)
	if err != nil {
		cmd.Rollback()
		log.Errorf("Failed to create quiz: %v", err)
		return Row{}, err
	}

	row, err := NormalizeRow(created, 0)
	if err != nil {
		// Backend acknowledged without a usable body; keep the proposed id.
		row = provisional
		row.ID = strconv.Itoa(nextID)
	}
	if len(row.Topics) == 0 && form.TopicName != "" {
		row.Topics = []string{form.TopicName}
	}
	cmd.Commit(row)
	log.Infof("Created quiz %s", row.ID)
	return row, nil
}

// DeleteQuiz removes the quiz locally right away. Temporary rows that were
// never persisted are dropped without any network call; for persisted rows
// a failed delete request restores the full previous list.
func (s *Service) DeleteQuiz(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	cmd := optimistic.NewDelete(s.rows, id)
	cmd.Apply()
	if optimistic.IsTempID(id) {
		cmd.Commit()
		return nil
	}

	if err := s.client.DeleteQuiz(ctx, id, nil); err != nil {
		cmd.Rollback()
		log.Errorf("Failed to delete quiz %s: %v", id, err)
		return err
	}
	cmd.Commit()
	log.Infof("Deleted quiz %s", id)
	return nil
}

// SaveQuestion saves a draft into the quiz's question set. Drafts that were
// already persisted are updated locally in place. New drafts get an id from
// the quiz's reserved block, appear immediately, and are reconciled with
// the server's copy when the create request succeeds.
func (s *Service) SaveQuestion(ctx context.Context, qs *QuestionSet, draft Question) (Question, error) {
	log := config.WithContext(ctx)

	if !optimistic.IsTempID(draft.ID) {
		if !qs.col.Update(draft.ID, draft) {
			return Question{}, fmt.Errorf("question %s not found", draft.ID)
		}
		return draft, nil
	}

	quizID, err := strconv.Atoi(qs.QuizID)
	if err != nil {
		return Question{}, fmt.Errorf("%w: %q", ErrInvalidQuizID, qs.QuizID)
	}
	nextID, err := ComputeNextID(quizID, qs.persistedIDs(), config.QuestionBlockSize(), nil)
	if err != nil {
		return Question{}, err
	}

	cmd := optimistic.NewCreate(qs.col, draft, draft.ID, false)
	cmd.Apply()

	created, err := s.client.CreateQuestion(ctx, qs.QuizID, questionPayload(nextID, draft), nil)
	if err != nil {
		cmd.Rollback()
		log.Errorf("Failed to create question in quiz %s: %v", qs.QuizID, err)
		return Question{}, err
	}

	saved, err := NormalizeQuestion(created)
	if err != nil {
		saved = draft
		saved.ID = strconv.Itoa(nextID)
	}
	cmd.Commit(saved)
	log.Infof("Created question %s in quiz %s", saved.ID, qs.QuizID)
	return saved, nil
}

// DeleteQuestion removes a question locally right away. A never-persisted
// draft is dropped with zero network calls; otherwise a failed delete
// request restores the question at its original position.
func (s *Service) DeleteQuestion(ctx context.Context, qs *QuestionSet, id string) error {
	log := config.WithContext(ctx)

	cmd := optimistic.NewDelete(qs.col, id)
	cmd.Apply()
	if optimistic.IsTempID(id) {
		cmd.Commit()
		return nil
	}

	if err := s.client.DeleteQuestion(ctx, id, nil); err != nil {
		cmd.Rollback()
		log.Errorf("Failed to delete question %s: %v", id, err)
		return err
	}
	cmd.Commit()
	log.Infof("Deleted question %s", id)
	return nil
}

func questionPayload(id int, q Question) api.CreateQuestionRequest {
	payload := api.CreateQuestionRequest{
		ID:              strconv.Itoa(id),
		Type:            string(q.Type),
		Content:         q.Content,
		Image:           q.Image,
		Audio:           q.Audio,
		Answer:          q.Answer,
		HiddenPositions: q.Hidden,
	}
	for _, o := range q.Options {
		payload.Options = append(payload.Options, mustRaw(o))
	}
	for _, p := range q.Prompts {
		payload.Prompts = append(payload.Prompts, mustRaw(p))
	}
	for _, r := range q.Responses {
		payload.Responses = append(payload.Responses, mustRaw(r))
	}
	return payload
}

func mustRaw(v interface{}) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
