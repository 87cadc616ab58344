// Package genres provides database operations for genre management.
//
// This package implements the GenreStore interface defined in
// internal/http/genres.go.
package genres

import (
	"gorm.io/gorm"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// Filter is the allow-list of filterable genre columns.
type Filter struct {
	Genre string
}

// Repository handles all genre database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new genres repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateGenre inserts a single genre.
func (r *Repository) CreateGenre(name string) (*entities.Genre, error) {
	genre := &entities.Genre{Genre: name}
	if err := r.db.Create(genre).Error; err != nil {
		return nil, database.Translate(err)
	}
	return genre, nil
}

// CreateGenres inserts several genres in one statement, all-or-nothing.
func (r *Repository) CreateGenres(names []string) ([]entities.Genre, error) {
	genres := make([]entities.Genre, 0, len(names))
	for _, name := range names {
		genres = append(genres, entities.Genre{Genre: name})
	}
	if err := r.db.Create(&genres).Error; err != nil {
		return nil, database.Translate(err)
	}
	return genres, nil
}

// GetGenreByName retrieves a genre by name, with books preloaded.
func (r *Repository) GetGenreByName(name string) (*entities.Genre, error) {
	var genre entities.Genre
	err := r.db.Preload("Books").Where("genre = ?", name).First(&genre).Error
	if err != nil {
		return nil, database.Translate(err)
	}
	return &genre, nil
}

// ListGenres retrieves all genres matching the filter, with books preloaded.
func (r *Repository) ListGenres(f Filter) ([]entities.Genre, error) {
	var genres []entities.Genre
	query := r.db.Preload("Books")
	if f.Genre != "" {
		query = query.Where("genre = ?", f.Genre)
	}
	if err := query.Find(&genres).Error; err != nil {
		return nil, database.Translate(err)
	}
	return genres, nil
}

// RenameGenre changes a genre's name; books follow through the foreign key.
func (r *Repository) RenameGenre(oldName, newName string) error {
	result := r.db.Model(&entities.Genre{}).
		Where("genre = ?", oldName).
		Update("genre", newName)
	if result.Error != nil {
		return database.Translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.ErrNotFound
	}
	return nil
}

// DeleteGenre removes a genre and, through the cascade, its books.
func (r *Repository) DeleteGenre(id uint) error {
	return database.Translate(r.db.Delete(&entities.Genre{}, id).Error)
}

// DeleteAllGenres removes every genre and returns the number removed.
func (r *Repository) DeleteAllGenres() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&entities.Genre{})
	return result.RowsAffected, database.Translate(result.Error)
}
