// Package books provides database operations for book management.
//
// This package implements the BookStore interface defined in
// internal/http/books.go.
package books

import (
	"gorm.io/gorm"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// Filter is the allow-list of filterable book fields. Author and Genre
// match the related row's name, not the foreign key.
type Filter struct {
	Title  string
	Author string
	Genre  string
}

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateBook inserts a single book and returns it with relations resolved.
func (r *Repository) CreateBook(title string, authorID, genreID uint) (*entities.Book, error) {
	book := &entities.Book{Title: title, AuthorID: authorID, GenreID: genreID}
	if err := r.db.Create(book).Error; err != nil {
		return nil, database.Translate(err)
	}
	return r.GetBookByID(book.ID)
}

// CreateBooks inserts several books in one statement, all-or-nothing, and
// returns them with relations resolved.
func (r *Repository) CreateBooks(books []entities.Book) ([]entities.Book, error) {
	if err := r.db.Create(&books).Error; err != nil {
		return nil, database.Translate(err)
	}
	var created []entities.Book
	ids := make([]uint, 0, len(books))
	for _, b := range books {
		ids = append(ids, b.ID)
	}
	err := r.db.Preload("Author").Preload("Genre").Find(&created, ids).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return created, nil
}

// GetBookByTitle retrieves a book by its title with relations resolved.
func (r *Repository) GetBookByTitle(title string) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genre").
		Where("title = ?", title).First(&book).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &book, nil
}

// GetBookByID retrieves a book by its internal id with relations resolved.
func (r *Repository) GetBookByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").Preload("Genre").First(&book, id).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &book, nil
}

// ListBooks retrieves all books matching the filter with relations resolved.
func (r *Repository) ListBooks(f Filter) ([]entities.Book, error) {
	var books []entities.Book
	query := r.db.Preload("Author").Preload("Genre").
		Joins("JOIN authors ON authors.id = books.author_id").
		Joins("JOIN genres ON genres.id = books.genre_id")
	if f.Title != "" {
		query = query.Where("books.title = ?", f.Title)
	}
	if f.Author != "" {
		query = query.Where("authors.author = ?", f.Author)
	}
	if f.Genre != "" {
		query = query.Where("genres.genre = ?", f.Genre)
	}
	if err := query.Find(&books).Error; err != nil {
		return nil, database.Translate(err)
	}
	return books, nil
}

// ListTitles retrieves every distinct book title.
func (r *Repository) ListTitles() ([]string, error) {
	var titles []string
	err := r.db.Model(&entities.Book{}).
		Distinct("title").Order("title ASC").Pluck("title", &titles).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return titles, nil
}

// UpdateBook replaces a book's mutable fields.
func (r *Repository) UpdateBook(id uint, title string, authorID, genreID uint) error {
	result := r.db.Model(&entities.Book{}).Where("id = ?", id).
		Updates(map[string]any{
			"title":     title,
			"author_id": authorID,
			"genre_id":  genreID,
		})
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteBook removes a single book.
func (r *Repository) DeleteBook(id uint) error {
	return database.Translate(r.db.Delete(&entities.Book{}, id).Error)
}

// DeleteAllBooks removes every book and returns the number removed.
func (r *Repository) DeleteAllBooks() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&entities.Book{})
	return result.RowsAffected, database.Translate(result.Error)
}

// DeleteBooksByAuthor removes every book whose author has the given name.
func (r *Repository) DeleteBooksByAuthor(author string) (int64, error) {
	result := r.db.
		Where("author_id IN (?)",
			r.db.Model(&entities.Author{}).Select("id").Where("author = ?", author)).
		Delete(&entities.Book{})
	return result.RowsAffected, database.Translate(result.Error)
}

// DeleteBooksByGenre removes every book whose genre has the given name.
func (r *Repository) DeleteBooksByGenre(genre string) (int64, error) {
	result := r.db.
		Where("genre_id IN (?)",
			r.db.Model(&entities.Genre{}).Select("id").Where("genre = ?", genre)).
		Delete(&entities.Book{})
	return result.RowsAffected, database.Translate(result.Error)
}
