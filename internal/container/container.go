package container

import (
	"log"

	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/auth"
	"github.com/quizdeck/admin-core/internal/config"
	"github.com/quizdeck/admin-core/internal/dashboard"
	"github.com/quizdeck/admin-core/internal/localstore"
	"github.com/quizdeck/admin-core/internal/quiz"
	"github.com/quizdeck/admin-core/internal/user"
	"github.com/quizdeck/admin-core/internal/vocab"
)

type Container struct {
	Store   localstore.Store
	Session *auth.Session
	Client  *api.Client

	QuizContainer      *quiz.QuizContainer
	UserContainer      *user.UserContainer
	DashboardContainer *dashboard.DashboardContainer
	VocabContainer     *vocab.VocabContainer
}

func New() *Container {
	config.Init()
	config.InitCrypto()

	db, err := localstore.OpenDB(config.StorePath())
	if err != nil {
		log.Fatalf("failed to open local store: %v", err)
	}
	store, err := localstore.New(db)
	if err != nil {
		log.Fatalf("failed to migrate local store: %v", err)
	}

	session := auth.NewSession(store)
	client := api.NewClient(config.APIBaseURL(), config.APIFallbackURL(), session)

	vocabContainer, err := vocab.NewVocabContainer(db)
	if err != nil {
		log.Fatalf("failed to set up vocabulary tables: %v", err)
	}

	return &Container{
		Store:              store,
		Session:            session,
		Client:             client,
		QuizContainer:      quiz.NewQuizContainer(client),
		UserContainer:      user.NewUserContainer(client),
		DashboardContainer: dashboard.NewDashboardContainer(client, store),
		VocabContainer:     vocabContainer,
	}
}
