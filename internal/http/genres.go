package http

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/genres"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entities"
)

// GenreStore defines database operations for genre management.
type GenreStore interface {
	CreateGenre(name string) (*entities.Genre, error)
	CreateGenres(names []string) ([]entities.Genre, error)
	GetGenreByName(name string) (*entities.Genre, error)
	ListGenres(f genres.Filter) ([]entities.Genre, error)
	RenameGenre(oldName, newName string) error
	DeleteGenre(id uint) error
	DeleteAllGenres() (int64, error)
}

type GenresController struct {
	store GenreStore
}

func NewGenresController(store GenreStore) *GenresController {
	return &GenresController{store: store}
}

type genreRequest struct {
	Genre string `json:"genre"`
}

// AddGenres creates one genre, or several when the body is an array.
// POST /genres
func (gc *GenresController) AddGenres(c *gin.Context) {
	reqs, bulk, err := decodeOneOrMany[genreRequest](c)
	if err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}
	if len(reqs) == 0 {
		respondBadRequest(c, "Genre is required")
		return
	}

	names := make([]string, 0, len(reqs))
	for _, req := range reqs {
		if req.Genre == "" {
			respondBadRequest(c, "Genre is required")
			return
		}
		names = append(names, req.Genre)
	}

	for _, name := range names {
		if _, err := gc.store.GetGenreByName(name); err == nil {
			respondBadRequest(c, fmt.Sprintf("Genre %s already exists", name))
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			respondInternalError(c, err, "adding genre")
			return
		}
	}

	if !bulk {
		genre, err := gc.store.CreateGenre(names[0])
		if err != nil {
			if errors.Is(err, database.ErrDuplicate) {
				respondBadRequest(c, fmt.Sprintf("Genre %s already exists", names[0]))
				return
			}
			respondInternalError(c, err, "adding genre")
			return
		}
		respondCreated(c, fmt.Sprintf("%s was added", genre.Genre), gin.H{
			"id":    genre.ID,
			"genre": genre.Genre,
		})
		return
	}

	created, err := gc.store.CreateGenres(names)
	if err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondBadRequest(c, "genre already exists")
			return
		}
		respondInternalError(c, err, "adding genres")
		return
	}
	respondCreated(c, fmt.Sprintf("Genres added: %s", strings.Join(names, ", ")), genreViews(created))
}

// GetAllOrQueryGenres lists genres, optionally filtered by an exact name
// via the "genre" query parameter.
// GET /genres
func (gc *GenresController) GetAllOrQueryGenres(c *gin.Context) {
	filter := genres.Filter{Genre: c.Query("genre")}

	all, err := gc.store.ListGenres(filter)
	if err != nil {
		respondInternalError(c, err, "fetching genres")
		return
	}
	if len(all) == 0 {
		respondNotFound(c, "No genres found")
		return
	}

	message := "All genres"
	if filter.Genre != "" {
		message = "Filtered genres"
	}
	respondOK(c, message, genreViews(all))
}

// GetGenre fetches a single genre by name.
// GET /genres/:genre
func (gc *GenresController) GetGenre(c *gin.Context) {
	genre, err := gc.store.GetGenreByName(c.Param("genre"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Genre not found")
			return
		}
		respondInternalError(c, err, "fetching genre")
		return
	}
	respondOK(c, "Genre retrieved successfully", genreView(genre))
}

// UpdateGenre renames a genre using the diff-before-commit pattern.
// PUT /genres/:genre
func (gc *GenresController) UpdateGenre(c *gin.Context) {
	var req genreRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Genre == "" {
		respondBadRequest(c, "Genre is required")
		return
	}

	oldName := c.Param("genre")
	current, err := gc.store.GetGenreByName(oldName)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Genre not found")
			return
		}
		respondInternalError(c, err, "updating genre")
		return
	}

	if req.Genre != current.Genre {
		if _, err := gc.store.GetGenreByName(req.Genre); err == nil {
			respondBadRequest(c, fmt.Sprintf("Genre %s already exists", req.Genre))
			return
		} else if !errors.Is(err, database.ErrNotFound) {
			respondInternalError(c, err, "updating genre")
			return
		}
	}

	if err := gc.store.RenameGenre(oldName, req.Genre); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			respondBadRequest(c, fmt.Sprintf("Genre %s already exists", req.Genre))
			return
		}
		respondInternalError(c, err, "updating genre")
		return
	}

	updated, err := gc.store.GetGenreByName(req.Genre)
	if err != nil {
		respondInternalError(c, err, "updating genre")
		return
	}

	if current.Genre == updated.Genre {
		respondNotModified(c)
		return
	}

	respondOK(c, "Genre updated successfully", gin.H{
		"oldGenreName": oldName,
		"newGenreName": updated.Genre,
		"booksUpdated": bookTitles(updated.Books),
		"beforeUpdate": genreView(current),
		"afterUpdate":  genreView(updated),
	})
}

// DeleteGenre removes one genre by name, along with the genre's books.
// DELETE /genres/:genre
func (gc *GenresController) DeleteGenre(c *gin.Context) {
	genre, err := gc.store.GetGenreByName(c.Param("genre"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			respondNotFound(c, "Genre not found")
			return
		}
		respondInternalError(c, err, "deleting genre")
		return
	}

	if err := gc.store.DeleteGenre(genre.ID); err != nil {
		respondInternalError(c, err, "deleting genre")
		return
	}
	respondOK(c, "Genre successfully deleted", genreView(genre))
}

// DeleteAllGenres empties the genres collection, 204 when already empty.
// DELETE /genres
func (gc *GenresController) DeleteAllGenres(c *gin.Context) {
	all, err := gc.store.ListGenres(genres.Filter{})
	if err != nil {
		respondInternalError(c, err, "deleting genres")
		return
	}
	if len(all) == 0 {
		respondNoContent(c)
		return
	}

	count, err := gc.store.DeleteAllGenres()
	if err != nil {
		respondInternalError(c, err, "deleting genres")
		return
	}
	respondOK(c, fmt.Sprintf("%d genres deleted. The database is now empty.", count), gin.H{
		"deletedCount":  count,
		"deletedGenres": genreViews(all),
	})
}
