package service

import (
	"testing"

	"quote-ui/database"
)

func TestAuthorCRUD(t *testing.T) {
	s := AuthorService{}

	author, err := s.Create("Seneca", "Stoic philosopher", "https://img.example/seneca.jpg")
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}
	if author.Id == 0 {
		t.Fatal("Create() did not assign an id")
	}

	got, err := s.Get(author.Id)
	if err != nil {
		t.Fatalf("Get() err = %v", err)
	}
	if got.Name != "Seneca" {
		t.Errorf("Get() name = %q, expected %q", got.Name, "Seneca")
	}

	if _, err := s.Update(author.Id, "Seneca the Younger", "Stoic", "https://img.example/seneca2.jpg"); err != nil {
		t.Fatalf("Update() err = %v", err)
	}
	got, err = s.Get(author.Id)
	if err != nil {
		t.Fatalf("Get() after update err = %v", err)
	}
	if got.Name != "Seneca the Younger" || got.ImageUrl != "https://img.example/seneca2.jpg" {
		t.Errorf("Update() not persisted: %+v", got)
	}

	if err := s.Delete(author.Id); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}
	if _, err := s.Get(author.Id); !database.IsNotFound(err) {
		t.Errorf("Get() after delete err = %v, expected not found", err)
	}
}

func TestAuthorNotFound(t *testing.T) {
	s := AuthorService{}

	if _, err := s.Get(99999); !database.IsNotFound(err) {
		t.Errorf("Get(99999) err = %v, expected not found", err)
	}
	if _, err := s.Update(99999, "x", "y", "z"); !database.IsNotFound(err) {
		t.Errorf("Update(99999) err = %v, expected not found", err)
	}
	if err := s.Delete(99999); !database.IsNotFound(err) {
		t.Errorf("Delete(99999) err = %v, expected not found", err)
	}
}

func TestAuthorDeleteCascadesQuotes(t *testing.T) {
	authors := AuthorService{}
	quotes := QuoteService{}

	author, err := authors.Create("Epictetus", "Stoic", "https://img.example/epictetus.jpg")
	if err != nil {
		t.Fatalf("Create() err = %v", err)
	}
	q1, err := quotes.Create("It's not what happens to you, but how you react.", author.Id)
	if err != nil {
		t.Fatalf("Create quote err = %v", err)
	}
	q2, err := quotes.Create("No man is free who is not master of himself.", author.Id)
	if err != nil {
		t.Fatalf("Create quote err = %v", err)
	}

	if err := authors.Delete(author.Id); err != nil {
		t.Fatalf("Delete() err = %v", err)
	}

	for _, id := range []int{q1.Id, q2.Id} {
		if _, err := quotes.Get(id); !database.IsNotFound(err) {
			t.Errorf("quote %d survived author deletion, err = %v", id, err)
		}
	}
}
