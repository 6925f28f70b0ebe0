package service

import (
	"quote-ui/database"
	"quote-ui/database/model"
	"quote-ui/logger"
	"quote-ui/util/common"
	"quote-ui/web/entity"

	"gorm.io/gorm"
)

// ErrEmailTaken is returned by Register when the email is already in use.
var ErrEmailTaken = common.NewError("email already registered")

type UserService struct{}

func (s *UserService) GetByEmail(email string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates a user with the default "user" role. The unique index on
// email backs up the explicit existence check.
func (s *UserService) Register(name string, email string, password string) (*model.User, error) {
	db := database.GetDB()

	var count int64
	err := db.Model(model.User{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     model.RoleUser,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser resolves email+password to a user, nil on unknown email or
// password mismatch. Passwords are compared as stored, without hashing.
func (s *UserService) CheckUser(email string, password string) *model.User {
	user, err := s.GetByEmail(email)
	if err == gorm.ErrRecordNotFound {
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}
	if user.Password != password {
		return nil
	}
	return user
}

func (s *UserService) AllUsers() ([]entity.UserView, error) {
	db := database.GetDB()

	var users []model.User
	if err := db.Find(&users).Error; err != nil {
		return nil, err
	}
	views := make([]entity.UserView, 0, len(users))
	for i := range users {
		views = append(views, entity.NewUserView(&users[i]))
	}
	return views, nil
}

func (s *UserService) Count() (int64, error) {
	var count int64
	err := database.GetDB().Model(model.User{}).Count(&count).Error
	return count, err
}
