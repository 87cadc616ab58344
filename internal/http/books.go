package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/books"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// BookStore defines database operations for book management.
type BookStore interface {
	CreateBook(title string, authorID, genreID uint) (*entities.Book, error)
	CreateBooks(books []entities.Book) ([]entities.Book, error)
	GetBookByTitle(title string) (*entities.Book, error)
	GetBookByID(id uint) (*entities.Book, error)
	ListBooks(f books.Filter) ([]entities.Book, error)
	ListTitles() ([]string, error)
	UpdateBook(id uint, title string, authorID, genreID uint) error
	DeleteBook(id uint) error
	DeleteAllBooks() (int64, error)
	DeleteBooksByAuthor(author string) (int64, error)
	DeleteBooksByGenre(genre string) (int64, error)
}

type BooksController struct {
	store       BookStore
	authorStore AuthorStore
	genreStore  GenreStore
}

func NewBooksController(store BookStore, authorStore AuthorStore, genreStore GenreStore) *BooksController {
	return &BooksController{store: store, authorStore: authorStore, genreStore: genreStore}
}

type bookRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

// validate checks the required fields and reports the first missing one.
func (r bookRequest) validate() error {
	switch {
	case r.Title == "":
		return errors.New("Title is required")
	case r.Author == "":
		return errors.New("Author is required")
	case r.Genre == "":
		return errors.New("Genre is required")
	}
	return nil
}

// resolveRelations maps author and genre names to their rows. A missing
// name is a 404: books never auto-create their author or genre.
func (bc *BooksController) resolveRelations(c *gin.Context, authorName, genreName string) (authorID, genreID uint, ok bool) {
	author, err := bc.authorStore.GetAuthorByName(authorName)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, fmt.Sprintf("Author %s does not exist", authorName))
			return 0, 0, false
		}
		respondInternalError(c, err, "resolving author")
		return 0, 0, false
	}

	genre, err := bc.genreStore.GetGenreByName(genreName)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, fmt.Sprintf("Genre %s does not exist", genreName))
			return 0, 0, false
		}
		respondInternalError(c, err, "resolving genre")
		return 0, 0, false
	}

	return author.ID, genre.ID, true
}

// AddBooks creates one book, or several when the body is an array. Every
// row is validated and its relations resolved before anything is inserted,
// so a bad row fails the whole batch.
// POST /books
func (bc *BooksController) AddBooks(c *gin.Context) {
	reqs, bulk, err := decodeOneOrMany[bookRequest](c)
	if err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if len(reqs) == 0 {
		respondBadRequest(c, "Title is required")
		return
	}

	rows := make([]entities.Book, 0, len(reqs))
	for _, req := range reqs {
		if err := req.validate(); err != nil {
			respondBadRequest(c, err.Error())
			return
		}

		if _, err := bc.store.GetBookByTitle(req.Title); err == nil {
			respondBadRequest(c, fmt.Sprintf("Book %s already exists", req.Title))
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			respondInternalError(c, err, "adding books")
			return
		}

		authorID, genreID, ok := bc.resolveRelations(c, req.Author, req.Genre)
		if !ok {
			return
		}
		rows = append(rows, entities.Book{Title: req.Title, AuthorID: authorID, GenreID: genreID})
	}

	if !bulk {
		book, err := bc.store.CreateBook(rows[0].Title, rows[0].AuthorID, rows[0].GenreID)
		if err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				respondBadRequest(c, fmt.Sprintf("Book %s already exists", rows[0].Title))
				return
			}
			respondInternalError(c, err, "adding book")
			return
		}
		respondCreated(c, fmt.Sprintf("Book added: %s", book.Title), bookView(book))
		return
	}

	created, err := bc.store.CreateBooks(rows)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondBadRequest(c, "book already exists")
			return
		}
		respondInternalError(c, err, "adding books")
		return
	}

	titles := make([]string, 0, len(created))
	for _, b := range created {
		titles = append(titles, b.Title)
	}
	respondCreated(c, fmt.Sprintf("Books added: %s", strings.Join(titles, ", ")), bookViews(created))
}

// GetAllOrQueryBooks lists books, optionally filtered by exact title,
// author name, or genre name query parameters.
// GET /books
func (bc *BooksController) GetAllOrQueryBooks(c *gin.Context) {
	filter := books.Filter{
		Title:  c.Query("title"),
		Author: c.Query("author"),
		Genre:  c.Query("genre"),
	}

	all, err := bc.store.ListBooks(filter)
	if err != nil {
		respondInternalError(c, err, "fetching books")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No books found")
		return
	}

	query := gin.H{}
	if filter.Title != "" {
		query["title"] = filter.Title
	}
	if filter.Author != "" {
		query["author"] = filter.Author
	}
	if filter.Genre != "" {
		query["genre"] = filter.Genre
	}

	message := "All books"
	if len(query) > 0 {
		message = "Filtered books"
	}
	respondOK(c, message, gin.H{
		"query": query,
		"books": bookViews(all),
	})
}

// GetAllTitles lists every distinct book title.
// GET /books/titles
func (bc *BooksController) GetAllTitles(c *gin.Context) {
	titles, err := bc.store.ListTitles()
	if err != nil {
		respondInternalError(c, err, "fetching titles")
		return
	}
	if len(titles) == 0 {
		respondNotFound(c, "No titles found")
		return
	}
	respondOK(c, "Titles fetched successfully", titles)
}

// GetBookByTitle fetches a single book by its title.
// GET /books/:title
func (bc *BooksController) GetBookByTitle(c *gin.Context) {
	book, err := bc.store.GetBookByTitle(c.Param("title"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Book not found")
			return
		}
		respondInternalError(c, err, "fetching book")
		return
	}
	respondOK(c, "Book retrieved successfully", bookView(book))
}

// GetBookByID fetches a single book by its internal id.
// GET /books/id/:id
func (bc *BooksController) GetBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "No book found with this id")
			return
		}
		respondInternalError(c, err, "fetching book")
		return
	}
	respondOK(c, "Book found", bookView(book))
}

// updateBook applies the diff-before-commit update to an already fetched
// book: conflict-check a title change, resolve relations, write, refetch,
// and compare the tracked fields of both snapshots.
func (bc *BooksController) updateBook(c *gin.Context, current *entities.Book) {
	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if req.Title != current.Title {
		if _, err := bc.store.GetBookByTitle(req.Title); err == nil {
			respondBadRequest(c, fmt.Sprintf("Book %s already exists", req.Title))
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			respondInternalError(c, err, "updating book")
			return
		}
	}

	authorID, genreID, ok := bc.resolveRelations(c, req.Author, req.Genre)
	if !ok {
		return
	}

	if err := bc.store.UpdateBook(current.ID, req.Title, authorID, genreID); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondBadRequest(c, fmt.Sprintf("Book %s already exists", req.Title))
			return
		}
		respondInternalError(c, err, "updating book")
		return
	}

	updated, err := bc.store.GetBookByID(current.ID)
	if err != nil {
		respondInternalError(c, err, "updating book")
		return
	}

	before, after := bookView(current), bookView(updated)
	if before.Title == after.Title && before.Author == after.Author && before.Genre == after.Genre {
		respondNotModified(c)
		return
	}

	respondOK(c, "Book updated successfully", gin.H{
		"beforeUpdate": before,
		"afterUpdate":  after,
	})
}

// UpdateBookByTitle replaces a book's fields, keyed by its current title.
// PUT /books/:title
func (bc *BooksController) UpdateBookByTitle(c *gin.Context) {
	current, err := bc.store.GetBookByTitle(c.Param("title"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Book not found")
			return
		}
		respondInternalError(c, err, "updating book")
		return
	}
	bc.updateBook(c, current)
}

// UpdateBookByID replaces a book's fields, keyed by its internal id.
// PUT /books/id/:id
func (bc *BooksController) UpdateBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	current, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Book not found")
			return
		}
		respondInternalError(c, err, "updating book")
		return
	}
	bc.updateBook(c, current)
}

// DeleteBookByTitle removes one book by title.
// DELETE /books/:title
func (bc *BooksController) DeleteBookByTitle(c *gin.Context) {
	book, err := bc.store.GetBookByTitle(c.Param("title"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Book not found")
			return
		}
		respondInternalError(c, err, "deleting book")
		return
	}

	if err := bc.store.DeleteBook(book.ID); err != nil {
		respondInternalError(c, err, "deleting book")
		return
	}
	respondOK(c, "Book successfully deleted", bookView(book))
}

// DeleteBookByID removes one book by its internal id.
// DELETE /books/id/:id
func (bc *BooksController) DeleteBookByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := bc.store.GetBookByID(id)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "No book found with this id")
			return
		}
		respondInternalError(c, err, "deleting book")
		return
	}

	if err := bc.store.DeleteBook(book.ID); err != nil {
		respondInternalError(c, err, "deleting book")
		return
	}
	respondOK(c, "Book deleted", bookView(book))
}

// DeleteAllBooks empties the books collection, 204 when already empty.
// DELETE /books
func (bc *BooksController) DeleteAllBooks(c *gin.Context) {
	all, err := bc.store.ListBooks(books.Filter{})
	if err != nil {
		respondInternalError(c, err, "deleting books")
		return
	}
	if len(all) == 0 {
		respondNoContent(c)
		return
	}

	count, err := bc.store.DeleteAllBooks()
	if err != nil {
		respondInternalError(c, err, "deleting books")
		return
	}
	respondOK(c, fmt.Sprintf("%d books deleted. The database is now empty.", count), gin.H{
		"deletedCount": count,
		"deletedBooks": bookViews(all),
	})
}

// GetBooksByAuthor lists every book belonging to the named author.
// GET /books/author/:author
func (bc *BooksController) GetBooksByAuthor(c *gin.Context) {
	all, err := bc.store.ListBooks(books.Filter{Author: c.Param("author")})
	if err != nil {
		respondInternalError(c, err, "fetching books")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No books found from this author")
		return
	}
	respondOK(c, "Books retrieved successfully", bookViews(all))
}

// DeleteBooksByAuthor removes every book belonging to the named author.
// The author row itself is untouched.
// DELETE /books/author/:author
func (bc *BooksController) DeleteBooksByAuthor(c *gin.Context) {
	author := c.Param("author")
	all, err := bc.store.ListBooks(books.Filter{Author: author})
	if err != nil {
		respondInternalError(c, err, "deleting books")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No books found from this author")
		return
	}

	count, err := bc.store.DeleteBooksByAuthor(author)
	if err != nil {
		respondInternalError(c, err, "deleting books")
		return
	}
	respondOK(c, fmt.Sprintf("%d books deleted", count), bookViews(all))
}

// GetBooksByGenre lists every book in the named genre.
// GET /books/genre/:genre
func (bc *BooksController) GetBooksByGenre(c *gin.Context) {
	all, err := bc.store.ListBooks(books.Filter{Genre: c.Param("genre")})
	if err != nil {
		respondInternalError(c, err, "fetching books")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No books found for this genre")
		return
	}
	respondOK(c, "Books retrieved successfully", bookViews(all))
}

// DeleteBooksByGenre removes every book in the named genre. The genre row
// itself is untouched.
// DELETE /books/genre/:genre
func (bc *BooksController) DeleteBooksByGenre(c *gin.Context) {
	genre := c.Param("genre")
	all, err := bc.store.ListBooks(books.Filter{Genre: genre})
	if err != nil {
		respondInternalError(c, err, "deleting books")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No books found for this genre")
		return
	}

	count, err := bc.store.DeleteBooksByGenre(genre)
	if err != nil {
		respondInternalError(c, err, "deleting books")
		return
	}
	respondOK(c, fmt.Sprintf("%d books deleted", count), bookViews(all))
}
