package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// CreateQuizRequest is the create payload the backend expects. QuizID is
// client-proposed (next-integer fallback); the server may assign its own.
type CreateQuizRequest struct {
	QuizID          int    `json:"quiz_id"`
	Title           string `json:"title"`
	TopicID         string `json:"topic_id,omitempty"`
	PassingScore    int    `json:"passing_score"`
	DurationMinutes int    `json:"duration_minutes"`
}

// CreateQuestionRequest carries one question of any type; type-specific
// fields are simply absent for the other types.
type CreateQuestionRequest struct {
	ID              string            `json:"id,omitempty"`
	Type            string            `json:"question_type"`
	Content         string            `json:"content"`
	Image           string            `json:"image,omitempty"`
	Audio           string            `json:"audio,omitempty"`
	Options         []json.RawMessage `json:"options,omitempty"`
	Answer          string            `json:"answer,omitempty"`
	HiddenPositions []bool            `json:"hidden_positions,omitempty"`
	Prompts         []json.RawMessage `json:"prompts,omitempty"`
	Responses       []json.RawMessage `json:"responses,omitempty"`
}

// FetchQuizzes lists quizzes in whatever shape the backend uses; the quiz
// package normalizes the raw records.
func (c *Client) FetchQuizzes(ctx context.Context, opts *RequestOptions) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/quizzes", nil, opts)
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}

// FetchQuiz fetches one quiz with its questions.
func (c *Client) FetchQuiz(ctx context.Context, id string, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/api/quizzes/"+url.PathEscape(id), nil, opts)
}

func (c *Client) CreateQuiz(ctx context.Context, payload CreateQuizRequest, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/quizzes", payload, opts)
}

func (c *Client) DeleteQuiz(ctx context.Context, id string, opts *RequestOptions) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/quizzes/"+url.PathEscape(id), nil, opts)
	return err
}

func (c *Client) CreateQuestion(ctx context.Context, quizID string, payload CreateQuestionRequest, opts *RequestOptions) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/api/quizzes/"+url.PathEscape(quizID)+"/questions", payload, opts)
}

func (c *Client) DeleteQuestion(ctx context.Context, questionID string, opts *RequestOptions) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/quizzes/questions/"+url.PathEscape(questionID), nil, opts)
	return err
}

// FetchTopics returns the topic catalog; entries may be bare strings or
// objects depending on the backend version.
func (c *Client) FetchTopics(ctx context.Context, opts *RequestOptions) ([]json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/topics", nil, opts)
	if err != nil {
		return nil, err
	}
	return unwrapList(body), nil
}
