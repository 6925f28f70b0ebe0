package service

import (
	"testing"

	"quote-ui/database"
	"quote-ui/web/entity"
)

func TestQuoteRequiresExistingAuthor(t *testing.T) {
	s := QuoteService{}

	if _, err := s.Create("orphan", 99999); err != ErrAuthorMissing {
		t.Errorf("Create() with missing author err = %v, expected ErrAuthorMissing", err)
	}
}

func TestQuoteSerializationCarriesAuthor(t *testing.T) {
	authors := AuthorService{}
	quotes := QuoteService{}

	author, err := authors.Create("Marcus Aurelius", "Emperor", "https://img.example/marcus.jpg")
	if err != nil {
		t.Fatalf("Create author err = %v", err)
	}
	created, err := quotes.Create("The obstacle is the way.", author.Id)
	if err != nil {
		t.Fatalf("Create quote err = %v", err)
	}

	got, err := quotes.Get(created.Id)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	view := entity.NewQuoteView(got)
	if view.Author == nil {
		t.Fatal("quote view has no author")
	}
	if view.Author.Id != author.Id {
		t.Errorf("quote view author id = %d, expected %d", view.Author.Id, author.Id)
	}
}

func TestQuoteUpdateValidatesAuthor(t *testing.T) {
	authors := AuthorService{}
	quotes := QuoteService{}

	author, err := authors.Create("Cato", "Stoic", "https://img.example/cato.jpg")
	if err != nil {
		t.Fatalf("Create author err = %v", err)
	}
	quote, err := quotes.Create("I begin to speak only when certain.", author.Id)
	if err != nil {
		t.Fatalf("Create quote err = %v", err)
	}

	if _, err := quotes.Update(quote.Id, "changed", 99999); err != ErrAuthorMissing {
		t.Errorf("Update() to missing author err = %v, expected ErrAuthorMissing", err)
	}

	other, err := authors.Create("Zeno", "Founder", "https://img.example/zeno.jpg")
	if err != nil {
		t.Fatalf("Create author err = %v", err)
	}
	if _, err := quotes.Update(quote.Id, "changed", other.Id); err != nil {
		t.Fatalf("Update() err = %v", err)
	}

	got, err := quotes.Get(quote.Id)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if got.Text != "changed" || got.AuthorId != other.Id {
		t.Errorf("Update() not persisted: %+v", got)
	}
}

func TestQuoteDeleteNotFound(t *testing.T) {
	s := QuoteService{}

	if err := s.Delete(99999); !database.IsNotFound(err) {
		t.Errorf("Delete(99999) err = %v, expected not found", err)
	}
}
