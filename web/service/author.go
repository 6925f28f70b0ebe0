package service

import (
	"quote-ui/database"
	"quote-ui/database/model"
	"quote-ui/web/entity"

	"gorm.io/gorm"
)

type AuthorService struct{}

func (s *AuthorService) Create(name string, description string, imageUrl string) (*model.Author, error) {
	db := database.GetDB()

	author := &model.Author{
		Name:        name,
		Description: description,
		ImageUrl:    imageUrl,
	}
	if err := db.Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) Get(id int) (*model.Author, error) {
	db := database.GetDB()

	author := &model.Author{}
	err := db.Preload("Quotes").First(author, id).Error
	if err != nil {
		return nil, err
	}
	return author, nil
}

func (s *AuthorService) All() ([]entity.AuthorView, error) {
	db := database.GetDB()

	var authors []model.Author
	if err := db.Preload("Quotes").Find(&authors).Error; err != nil {
		return nil, err
	}
	views := make([]entity.AuthorView, 0, len(authors))
	for i := range authors {
		views = append(views, entity.NewAuthorView(&authors[i]))
	}
	return views, nil
}

func (s *AuthorService) Update(id int, name string, description string, imageUrl string) (*model.Author, error) {
	db := database.GetDB()

	author := &model.Author{}
	if err := db.First(author, id).Error; err != nil {
		return nil, err
	}
	author.Name = name
	author.Description = description
	author.ImageUrl = imageUrl
	if err := db.Save(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes an author and cascades to its quotes in one transaction.
func (s *AuthorService) Delete(id int) error {
	db := database.GetDB()

	return db.Transaction(func(tx *gorm.DB) error {
		author := &model.Author{}
		if err := tx.First(author, id).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&model.Quote{}).Error; err != nil {
			return err
		}
		return tx.Delete(author).Error
	})
}

func (s *AuthorService) Count() (int64, error) {
	var count int64
	err := database.GetDB().Model(model.Author{}).Count(&count).Error
	return count, err
}
