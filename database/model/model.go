// Package model defines the persisted entities of the quote-ui panel.
package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	Id       int    `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name     string `json:"name" form:"name" gorm:"not null"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" form:"password" gorm:"not null"`
	Role     string `json:"role" gorm:"not null;default:user"`
}

type Author struct {
	Id          int     `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Name        string  `json:"name" form:"name" gorm:"not null"`
	Description string  `json:"description" form:"description" gorm:"not null"`
	ImageUrl    string  `json:"image_url" form:"image" gorm:"not null"`
	Quotes      []Quote `json:"quotes" gorm:"foreignKey:AuthorId;constraint:OnDelete:CASCADE"`
}

type Quote struct {
	Id       int     `json:"id" form:"id" gorm:"primaryKey;autoIncrement"`
	Text     string  `json:"text" form:"text" gorm:"not null"`
	AuthorId int     `json:"author_id" form:"author_id" gorm:"not null;index"`
	Author   *Author `json:"author" gorm:"foreignKey:AuthorId"`
}
