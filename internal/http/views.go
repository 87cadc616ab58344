package http

import (
	"github.com/samber/lo"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// View types shape entities for JSON responses: books always carry their
// related author and genre names, authors and genres carry their book titles.

type AuthorView struct {
	ID     uint     `json:"id"`
	Author string   `json:"author"`
	Books  []string `json:"books"`
}

type GenreView struct {
	ID    uint     `json:"id"`
	Genre string   `json:"genre"`
	Books []string `json:"books"`
}

type BookView struct {
	ID     uint   `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

func bookTitles(books []entities.Book) []string {
	return lo.Map(books, func(b entities.Book, _ int) string {
		return b.Title
	})
}

func authorView(a *entities.Author) AuthorView {
	return AuthorView{ID: a.ID, Author: a.Author, Books: bookTitles(a.Books)}
}

func authorViews(authors []entities.Author) []AuthorView {
	return lo.Map(authors, func(a entities.Author, _ int) AuthorView {
		return authorView(&a)
	})
}

func genreView(g *entities.Genre) GenreView {
	return GenreView{ID: g.ID, Genre: g.Genre, Books: bookTitles(g.Books)}
}

func genreViews(genres []entities.Genre) []GenreView {
	return lo.Map(genres, func(g entities.Genre, _ int) GenreView {
		return genreView(&g)
	})
}

func bookView(b *entities.Book) BookView {
	return BookView{ID: b.ID, Title: b.Title, Author: b.Author.Author, Genre: b.Genre.Genre}
}

func bookViews(books []entities.Book) []BookView {
	return lo.Map(books, func(b entities.Book, _ int) BookView {
		return bookView(&b)
	})
}
