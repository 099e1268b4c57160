package vocab

import (
	"errors"

	"gorm.io/gorm"
)

var ErrPairNotFound = errors.New("antonym pair not found")

type AntonymRepository interface {
	Create(p *AntonymPair) error
	List() ([]AntonymPair, error)
	GetByID(id uint) (*AntonymPair, error)
	Update(p *AntonymPair) error
	Delete(id uint) error
}

type antonymRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) (AntonymRepository, error) {
	if err := db.AutoMigrate(&AntonymPair{}); err != nil {
		return nil, err
	}
	return &antonymRepository{db: db}, nil
}

func (r *antonymRepository) Create(p *AntonymPair) error {
	return r.db.Create(p).Error
}

func (r *antonymRepository) List() ([]AntonymPair, error) {
	var pairs []AntonymPair
	if err := r.db.Order("id").Find(&pairs).Error; err != nil {
		return nil, err
	}
	return pairs, nil
}

func (r *antonymRepository) GetByID(id uint) (*AntonymPair, error) {
	var pair AntonymPair
	if err := r.db.First(&pair, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPairNotFound
		}
		return nil, err
	}
	return &pair, nil
}

func (r *antonymRepository) Update(p *AntonymPair) error {
	res := r.db.Model(&AntonymPair{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"word1_id": p.Word1ID,
		"word2_id": p.Word2ID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPairNotFound
	}
	return nil
}

func (r *antonymRepository) Delete(id uint) error {
	res := r.db.Delete(&AntonymPair{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPairNotFound
	}
	return nil
}
