package service

import (
	"quote-ui/database"
	"quote-ui/database/model"
	"quote-ui/util/common"
	"quote-ui/web/entity"
)

// ErrAuthorMissing is returned when a quote references a nonexistent author.
var ErrAuthorMissing = common.NewError("author not found")

type QuoteService struct{}

func (s *QuoteService) checkAuthor(authorId int) error {
	var count int64
	err := database.GetDB().Model(model.Author{}).
		Where("id = ?", authorId).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrAuthorMissing
	}
	return nil
}

func (s *QuoteService) Create(text string, authorId int) (*model.Quote, error) {
	if err := s.checkAuthor(authorId); err != nil {
		return nil, err
	}

	quote := &model.Quote{
		Text:     text,
		AuthorId: authorId,
	}
	if err := database.GetDB().Create(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) Get(id int) (*model.Quote, error) {
	db := database.GetDB()

	quote := &model.Quote{}
	err := db.Preload("Author").First(quote, id).Error
	if err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) All() ([]entity.QuoteView, error) {
	db := database.GetDB()

	var quotes []model.Quote
	if err := db.Preload("Author").Find(&quotes).Error; err != nil {
		return nil, err
	}
	views := make([]entity.QuoteView, 0, len(quotes))
	for i := range quotes {
		views = append(views, entity.NewQuoteView(&quotes[i]))
	}
	return views, nil
}

func (s *QuoteService) Update(id int, text string, authorId int) (*model.Quote, error) {
	db := database.GetDB()

	quote := &model.Quote{}
	if err := db.First(quote, id).Error; err != nil {
		return nil, err
	}
	if err := s.checkAuthor(authorId); err != nil {
		return nil, err
	}
	quote.Text = text
	quote.AuthorId = authorId
	if err := db.Save(quote).Error; err != nil {
		return nil, err
	}
	return quote, nil
}

func (s *QuoteService) Delete(id int) error {
	db := database.GetDB()

	quote := &model.Quote{}
	if err := db.First(quote, id).Error; err != nil {
		return err
	}
	return db.Delete(quote).Error
}

func (s *QuoteService) Count() (int64, error) {
	var count int64
	err := database.GetDB().Model(model.Quote{}).Count(&count).Error
	return count, err
}
