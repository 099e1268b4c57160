package quiz

import "github.com/quizdeck/admin-core/internal/api"

type QuizContainer struct {
	Service *Service
}

func NewQuizContainer(client *api.Client) *QuizContainer {
	return &QuizContainer{
		Service: NewService(client),
	}
}
