package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
)

// RouterConfig receives all controller dependencies, keeping the router
// free of construction logic and easy to assemble in tests.
type RouterConfig struct {
	Database    *database.Database
	AuthorStore AuthorStore
	GenreStore  GenreStore
	BookStore   BookStore
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(RequestIDMiddleware())

	health := NewHealthController(cfg.Database, cfg.Version)
	authorsController := NewAuthorsController(cfg.AuthorStore)
	genresController := NewGenresController(cfg.GenreStore)
	booksController := NewBooksController(cfg.BookStore, cfg.AuthorStore, cfg.GenreStore)

	// Health endpoint
	router.GET("/health", health.Status)

	// Author endpoints
	router.POST("/authors", authorsController.AddAuthors)
	router.GET("/authors", authorsController.GetAllOrQueryAuthors)
	router.DELETE("/authors", authorsController.DeleteAllAuthors)
	router.GET("/authors/:author", authorsController.GetAuthor)
	router.PUT("/authors/:author", authorsController.UpdateAuthor)
	router.DELETE("/authors/:author", authorsController.DeleteAuthor)

	// Genre endpoints
	router.POST("/genres", genresController.AddGenres)
	router.GET("/genres", genresController.GetAllOrQueryGenres)
	router.DELETE("/genres", genresController.DeleteAllGenres)
	router.GET("/genres/:genre", genresController.GetGenre)
	router.PUT("/genres/:genre", genresController.UpdateGenre)
	router.DELETE("/genres/:genre", genresController.DeleteGenre)

	// Book endpoints
	router.POST("/books", booksController.AddBooks)
	router.GET("/books", booksController.GetAllOrQueryBooks)
	router.DELETE("/books", booksController.DeleteAllBooks)
	router.GET("/books/titles", booksController.GetAllTitles)
	router.GET("/books/:title", booksController.GetBookByTitle)
	router.PUT("/books/:title", booksController.UpdateBookByTitle)
	router.DELETE("/books/:title", booksController.DeleteBookByTitle)
	router.GET("/books/id/:id", booksController.GetBookByID)
	router.PUT("/books/id/:id", booksController.UpdateBookByID)
	router.DELETE("/books/id/:id", booksController.DeleteBookByID)
	router.GET("/books/author/:author", booksController.GetBooksByAuthor)
	router.DELETE("/books/author/:author", booksController.DeleteBooksByAuthor)
	router.GET("/books/genre/:genre", booksController.GetBooksByGenre)
	router.DELETE("/books/genre/:genre", booksController.DeleteBooksByGenre)

	return router
}
