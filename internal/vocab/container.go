package vocab

import "gorm.io/gorm"

type VocabContainer struct {
	Service *Service
}

func NewVocabContainer(db *gorm.DB) (*VocabContainer, error) {
	repo, err := NewRepository(db)
	if err != nil {
		return nil, err
	}
	return &VocabContainer{
		Service: NewService(repo),
	}, nil
}
