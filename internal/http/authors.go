package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/authors"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// AuthorStore defines database operations for author management.
type AuthorStore interface {
	CreateAuthor(name string) (*entities.Author, error)
	CreateAuthors(names []string) ([]entities.Author, error)
	GetAuthorByName(name string) (*entities.Author, error)
	ListAuthors(f authors.Filter) ([]entities.Author, error)
	RenameAuthor(oldName, newName string) error
	DeleteAuthor(id uint) error
	DeleteAllAuthors() (int64, error)
}

type AuthorsController struct {
	store AuthorStore
}

func NewAuthorsController(store AuthorStore) *AuthorsController {
	return &AuthorsController{store: store}
}

type authorRequest struct {
	Author string `json:"author"`
}

// AddAuthors creates one author, or several when the body is an array.
// Bulk inserts are all-or-nothing.
// POST /authors
func (ac *AuthorsController) AddAuthors(c *gin.Context) {
	reqs, bulk, err := decodeOneOrMany[authorRequest](c)
	if err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if len(reqs) == 0 {
		respondBadRequest(c, "Author is required")
		return
	}

	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if req.Author == "" {
			respondBadRequest(c, "Author is required")
			return
		}
		names = append(names, req.Author)
	}

	for _, name := range names {
		if _, err := ac.store.GetAuthorByName(name); err == nil {
			respondBadRequest(c, fmt.Sprintf("Author %s already exists", name))
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			respondInternalError(c, err, "adding author")
			return
		}
	}

	if !bulk {
		author, err := ac.store.CreateAuthor(names[0])
		if err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				respondBadRequest(c, fmt.Sprintf("Author %s already exists", names[0]))
				return
			}
			respondInternalError(c, err, "adding author")
			return
		}
		respondCreated(c, fmt.Sprintf("%s was added", author.Author), gin.H{
			"id":     author.ID,
			"author": author.Author,
		})
		return
	}

	created, err := ac.store.CreateAuthors(names)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondBadRequest(c, "author already exists")
			return
		}
		respondInternalError(c, err, "adding authors")
		return
	}
	respondCreated(c, fmt.Sprintf("Authors added: %s", strings.Join(names, ", ")), authorViews(created))
}

// GetAllOrQueryAuthors lists authors, optionally filtered by an exact name
// via the "author" query parameter. An empty result is a 404, not an empty
// list.
// GET /authors
func (ac *AuthorsController) GetAllOrQueryAuthors(c *gin.Context) {
	filter := authors.Filter{Author: c.Query("author")}

	all, err := ac.store.ListAuthors(filter)
	if err != nil {
		respondInternalError(c, err, "fetching authors")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No authors found")
		return
	}

	message := "All authors"
	if filter.Author != "" {
		message = "Filtered authors"
	}
	respondOK(c, message, authorViews(all))
}

// GetAuthor fetches a single author by name.
// GET /authors/:author
func (ac *AuthorsController) GetAuthor(c *gin.Context) {
	author, err := ac.store.GetAuthorByName(c.Param("author"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Author not found")
			return
		}
		respondInternalError(c, err, "fetching author")
		return
	}
	respondOK(c, "Author retrieved successfully", authorView(author))
}

// UpdateAuthor renames an author using the diff-before-commit pattern:
// fetch, rename, refetch, and compare the snapshots to tell a real change
// from a no-op. Renaming propagates to the author's books through the
// foreign key.
// PUT /authors/:author
func (ac *AuthorsController) UpdateAuthor(c *gin.Context) {
	var req authorRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Author == "" {
		respondBadRequest(c, "Author is required")
		return
	}

	oldName := c.Param("author")
	current, err := ac.store.GetAuthorByName(oldName)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Author not found")
			return
		}
		respondInternalError(c, err, "updating author")
		return
	}

	if req.Author != current.Author {
		if _, err := ac.store.GetAuthorByName(req.Author); err == nil {
			respondBadRequest(c, fmt.Sprintf("Author %s already exists", req.Author))
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			respondInternalError(c, err, "updating author")
			return
		}
	}

	if err := ac.store.RenameAuthor(oldName, req.Author); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondBadRequest(c, fmt.Sprintf("Author %s already exists", req.Author))
			return
		}
		respondInternalError(c, err, "updating author")
		return
	}

	updated, err := ac.store.GetAuthorByName(req.Author)
	if err != nil {
		respondInternalError(c, err, "updating author")
		return
	}

	if current.Author == updated.Author {
		respondNotModified(c)
		return
	}

	respondOK(c, "Author updated successfully", gin.H{
		"oldAuthorName": oldName,
		"newAuthorName": updated.Author,
		"booksUpdated":  bookTitles(updated.Books),
		"beforeUpdate":  authorView(current),
		"afterUpdate":   authorView(updated),
	})
}

// DeleteAuthor removes one author by name, along with the author's books.
// The deleted rows are fetched first so the response can report them.
// DELETE /authors/:author
func (ac *AuthorsController) DeleteAuthor(c *gin.Context) {
	author, err := ac.store.GetAuthorByName(c.Param("author"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Author not found")
			return
		}
		respondInternalError(c, err, "deleting author")
		return
	}

	if err := ac.store.DeleteAuthor(author.ID); err != nil {
		respondInternalError(c, err, "deleting author")
		return
	}
	respondOK(c, "Author successfully deleted", authorView(author))
}

// DeleteAllAuthors empties the authors collection. An already empty
// collection is a 204 no-op, not an error.
// DELETE /authors
func (ac *AuthorsController) DeleteAllAuthors(c *gin.Context) {
	all, err := ac.store.ListAuthors(authors.Filter{})
	if err != nil {
		respondInternalError(c, err, "deleting authors")
		return
	}
	if len(all) == 0 {
		respondNoContent(c)
		return
	}

	count, err := ac.store.DeleteAllAuthors()
	if err != nil {
		respondInternalError(c, err, "deleting authors")
		return
	}
	respondOK(c, fmt.Sprintf("%d authors deleted. The database is now empty.", count), gin.H{
		"deletedCount":   count,
		"deletedAuthors": authorViews(all),
	})
}
