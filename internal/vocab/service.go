package vocab

import (
	"context"
	"errors"
	"fmt"

	"github.com/quizdeck/admin-core/internal/config"
)

var (
	ErrTagNotEditable = errors.New("no editor for this table yet")
	ErrInvalidWordID  = errors.New("word ids must be positive")
	ErrSelfPair       = errors.New("a word cannot be its own antonym")
)

// Service drives the reference-data screen. Edits are accepted for the
// antonym table only; selecting any other tag is view-only.
type Service struct {
	repo AntonymRepository
}

func NewService(repo AntonymRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Tags() []Tag {
	return append([]Tag(nil), AllTags...)
}

func (s *Service) ListPairs(ctx context.Context) ([]AntonymPair, error) {
	return s.repo.List()
}

func validatePair(word1, word2 int) error {
	if word1 <= 0 || word2 <= 0 {
		return fmt.Errorf("%w: got %d and %d", ErrInvalidWordID, word1, word2)
	}
	if word1 == word2 {
		return fmt.Errorf("%w: %d", ErrSelfPair, word1)
	}
	return nil
}

func editableTag(tag Tag) error {
	if !tag.IsValid() {
		return fmt.Errorf("unknown table %q", tag)
	}
	if tag != TagAntonyms {
		return fmt.Errorf("%w: %s", ErrTagNotEditable, tag)
	}
	return nil
}

func (s *Service) CreatePair(ctx context.Context, tag Tag, word1, word2 int) (*AntonymPair, error) {
	log := config.WithContext(ctx)

	if err := editableTag(tag); err != nil {
		return nil, err
	}
	if err := validatePair(word1, word2); err != nil {
		return nil, err
	}
	pair := &AntonymPair{Word1ID: word1, Word2ID: word2}
	if err := s.repo.Create(pair); err != nil {
		log.Errorf("Failed to create antonym pair: %v", err)
		return nil, err
	}
	log.Infof("Created antonym pair %d (%d, %d)", pair.ID, word1, word2)
	return pair, nil
}

func (s *Service) UpdatePair(ctx context.Context, tag Tag, id uint, word1, word2 int) error {
	log := config.WithContext(ctx)

	if err := editableTag(tag); err != nil {
		return err
	}
	if err := validatePair(word1, word2); err != nil {
		return err
	}
	if err := s.repo.Update(&AntonymPair{ID: id, Word1ID: word1, Word2ID: word2}); err != nil {
		log.Errorf("Failed to update antonym pair %d: %v", id, err)
		return err
	}
	return nil
}

func (s *Service) DeletePair(ctx context.Context, tag Tag, id uint) error {
	log := config.WithContext(ctx)

	if err := editableTag(tag); err != nil {
		return err
	}
	if err := s.repo.Delete(id); err != nil {
		log.Errorf("Failed to delete antonym pair %d: %v", id, err)
		return err
	}
	return nil
}
