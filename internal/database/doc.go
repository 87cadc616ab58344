// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup and migrations
//	├── errors.go        # Driver-agnostic error sentinels
//	├── authors/         # Author CRUD and renames
//	├── genres/          # Genre CRUD and renames
//	└── books/           # Book CRUD, filters, bulk deletes
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific operations:
//
//	// Initialize database connection
//	db, err := database.NewDatabase("./library.db")
//
//	// Create domain-specific repositories
//	authorsRepo := authors.NewRepository(db.DB)
//	booksRepo := books.NewRepository(db.DB)
//
//	// Use repositories
//	author, err := authorsRepo.GetAuthorByName("Tolkien")
//	found, err := booksRepo.ListBooks(books.Filter{Author: "Tolkien"})
//
// # Interface Implementations
//
// Each sub-package implements the store interface its controller consumes:
//
//   - authors.Repository: implements http.AuthorStore
//   - genres.Repository: implements http.GenreStore
//   - books.Repository: implements http.BookStore
//
// Repositories return the sentinels from errors.go (ErrNotFound,
// ErrDuplicate) instead of gorm's, so callers never import gorm.
package database
