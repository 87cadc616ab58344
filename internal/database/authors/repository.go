// Package authors provides database operations for author management.
//
// This package implements the AuthorStore interface defined in
// internal/http/authors.go.
package authors

import (
	"gorm.io/gorm"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// Filter is the allow-list of filterable author columns. Query parameters
// outside this set are ignored rather than forwarded to the database.
type Filter struct {
	Author string
}

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateAuthor inserts a single author.
func (r *Repository) CreateAuthor(name string) (*entities.Author, error) {
	author := &entities.Author{Author: name}
	if err := r.db.Create(author).Error; err != nil {
		return nil, database.Translate(err)
	}
	return author, nil
}

// CreateAuthors inserts several authors in one statement, all-or-nothing.
func (r *Repository) CreateAuthors(names []string) ([]entities.Author, error) {
	authors := make([]entities.Author, 0, len(names))
	for _, name := range names {
		authors = append(authors, entities.Author{Author: name})
	}
	if err := r.db.Create(&authors).Error; err != nil {
		return nil, database.Translate(err)
	}
	return authors, nil
}

// GetAuthorByName retrieves an author by name, with books preloaded.
func (r *Repository) GetAuthorByName(name string) (*entities.Author, error) {
	var author entities.Author
	err := r.db.Preload("Books").Where("author = ?", name).First(&author).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &author, nil
}

// ListAuthors retrieves all authors matching the filter, with books
// preloaded. An empty filter matches everything.
func (r *Repository) ListAuthors(f Filter) ([]entities.Author, error) {
	var authors []entities.Author
	query := r.db.Preload("Books")
	if f.Author != "" {
		query = query.Where("author = ?", f.Author)
	}
	if err := query.Find(&authors).Error; err != nil {
		return nil, database.Translate(err)
	}
	return authors, nil
}

// RenameAuthor changes an author's name. Every book that belongs to the
// author follows the rename through the foreign key, so this is the bulk
// "rename author across books" operation.
func (r *Repository) RenameAuthor(oldName, newName string) error {
	result := r.db.Model(&entities.Author{}).
		Where("author = ?", oldName).
		Update("author", newName)
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteAuthor removes an author and, through the cascade, its books.
func (r *Repository) DeleteAuthor(id uint) error {
	return database.Translate(r.db.Delete(&entities.Author{}, id).Error)
}

// DeleteAllAuthors removes every author and returns the number removed.
func (r *Repository) DeleteAllAuthors() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&entities.Author{})
	return result.RowsAffected, database.Translate(result.Error)
}
