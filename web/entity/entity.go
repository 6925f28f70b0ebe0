// Package entity defines the serialized shapes handed to templates.
// Passwords and roles never leave the service layer.
package entity

import "quote-ui/database/model"

type UserView struct {
	Id    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type AuthorView struct {
	Id          int         `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	ImageUrl    string      `json:"image_url"`
	Quotes      []QuoteView `json:"quotes"`
}

type QuoteView struct {
	Id     int         `json:"id"`
	Text   string      `json:"text"`
	Author *AuthorView `json:"author"`
}

func NewUserView(u *model.User) UserView {
	return UserView{
		Id:    u.Id,
		Name:  u.Name,
		Email: u.Email,
	}
}

// NewAuthorView serializes an author together with its loaded quotes.
// The nested quotes carry no back-reference to avoid a cycle.
func NewAuthorView(a *model.Author) AuthorView {
	view := AuthorView{
		Id:          a.Id,
		Name:        a.Name,
		Description: a.Description,
		ImageUrl:    a.ImageUrl,
		Quotes:      make([]QuoteView, 0, len(a.Quotes)),
	}
	for i := range a.Quotes {
		q := &a.Quotes[i]
		view.Quotes = append(view.Quotes, QuoteView{Id: q.Id, Text: q.Text})
	}
	return view
}

// NewQuoteView serializes a quote with its author, nil when the author
// relation was not loaded.
func NewQuoteView(q *model.Quote) QuoteView {
	view := QuoteView{
		Id:   q.Id,
		Text: q.Text,
	}
	if q.Author != nil {
		author := NewAuthorView(q.Author)
		view.Author = &author
	}
	return view
}
