package http

import (
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/authors"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/books"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/genres"
)

func setupGenresTestDB(t *testing.T) (*database.Database, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_genres_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return db, cleanup
}

func newGenresRouter(db *database.Database) *gin.Engine {
	router := gin.New()
	controller := NewGenresController(genres.NewRepository(db.DB))
	router.POST("/genres", controller.AddGenres)
	router.GET("/genres", controller.GetAllOrQueryGenres)
	router.DELETE("/genres", controller.DeleteAllGenres)
	router.GET("/genres/:genre", controller.GetGenre)
	router.PUT("/genres/:genre", controller.UpdateGenre)
	router.DELETE("/genres/:genre", controller.DeleteGenre)
	return router
}

func TestGenresController_AddGenres(t *testing.T) {
	t.Run("creates a new genre", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "POST", "/genres", `{"genre": "Fantasy"}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp, data := parseEnvelope(t, w)
		assert.True(t, resp.Success)
		assert.Equal(t, "Fantasy was added", resp.Message)
		assert.Equal(t, "Fantasy", data["genre"])
	})

	t.Run("rejects a missing genre name", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "POST", "/genres", `{}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp, _ := parseEnvelope(t, w)
		assert.Equal(t, "Genre is required", resp.Message)
	})

	t.Run("rejects a duplicate genre", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "POST", "/genres", `{"genre": "Fantasy"}`)
		require.Equal(t, http.StatusCreated, w.Code)

		w = doJSON(t, router, "POST", "/genres", `{"genre": "Fantasy"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp, _ := parseEnvelope(t, w)
		assert.Contains(t, resp.Message, "Fantasy")
	})

	t.Run("creates several genres from an array body", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "POST", "/genres", `[{"genre": "Fantasy"}, {"genre": "Sci-Fi"}]`)

		assert.Equal(t, http.StatusCreated, w.Code)

		all, err := genres.NewRepository(db.DB).ListGenres(genres.Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestGenresController_GetAllOrQueryGenres(t *testing.T) {
	t.Run("empty collection is a 404", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "GET", "/genres", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp, _ := parseEnvelope(t, w)
		assert.Equal(t, "No genres found", resp.Message)
	})

	t.Run("filters by exact name", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		_, err := genres.NewRepository(db.DB).CreateGenres([]string{"Fantasy", "Sci-Fi"})
		require.NoError(t, err)

		router := newGenresRouter(db)
		w := doJSON(t, router, "GET", "/genres?genre=Sci-Fi", "")

		assert.Equal(t, http.StatusOK, w.Code)
		resp, _ := parseEnvelope(t, w)
		assert.Equal(t, "Filtered genres", resp.Message)

		views, ok := resp.Data.([]any)
		require.True(t, ok)
		require.Len(t, views, 1)
		assert.Equal(t, "Sci-Fi", views[0].(map[string]any)["genre"])
	})
}

func TestGenresController_UpdateGenre(t *testing.T) {
	t.Run("identical payload is a 304", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		_, err := genres.NewRepository(db.DB).CreateGenre("Fantasy")
		require.NoError(t, err)

		router := newGenresRouter(db)
		w := doJSON(t, router, "PUT", "/genres/Fantasy", `{"genre": "Fantasy"}`)

		assert.Equal(t, http.StatusNotModified, w.Code)
	})

	t.Run("rename follows through to the genre's books", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		author, err := authors.NewRepository(db.DB).CreateAuthor("Tolkien")
		require.NoError(t, err)
		genre, err := genres.NewRepository(db.DB).CreateGenre("Fantasy")
		require.NoError(t, err)
		bookRepo := books.NewRepository(db.DB)
		_, err = bookRepo.CreateBook("The Hobbit", author.ID, genre.ID)
		require.NoError(t, err)

		router := newGenresRouter(db)
		w := doJSON(t, router, "PUT", "/genres/Fantasy", `{"genre": "High Fantasy"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		_, data := parseEnvelope(t, w)
		assert.Equal(t, "Fantasy", data["oldGenreName"])
		assert.Equal(t, "High Fantasy", data["newGenreName"])

		book, err := bookRepo.GetBookByTitle("The Hobbit")
		require.NoError(t, err)
		assert.Equal(t, "High Fantasy", book.Genre.Genre)
	})

	t.Run("renaming onto another genre is a conflict", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		_, err := genres.NewRepository(db.DB).CreateGenres([]string{"Fantasy", "Sci-Fi"})
		require.NoError(t, err)

		router := newGenresRouter(db)
		w := doJSON(t, router, "PUT", "/genres/Fantasy", `{"genre": "Sci-Fi"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGenresController_DeleteGenre(t *testing.T) {
	t.Run("deletes the genre and its books", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		author, err := authors.NewRepository(db.DB).CreateAuthor("Tolkien")
		require.NoError(t, err)
		genre, err := genres.NewRepository(db.DB).CreateGenre("Fantasy")
		require.NoError(t, err)
		bookRepo := books.NewRepository(db.DB)
		_, err = bookRepo.CreateBook("The Hobbit", author.ID, genre.ID)
		require.NoError(t, err)

		router := newGenresRouter(db)
		w := doJSON(t, router, "DELETE", "/genres/Fantasy", "")

		assert.Equal(t, http.StatusOK, w.Code)

		_, err = bookRepo.GetBookByTitle("The Hobbit")
		assert.ErrorIs(t, err, database.ErrNotFound)
	})

	t.Run("deleting a missing genre is a 404", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "DELETE", "/genres/Nowhere", "")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGenresController_DeleteAllGenres(t *testing.T) {
	t.Run("empty collection is a 204 no-op", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		router := newGenresRouter(db)

		w := doJSON(t, router, "DELETE", "/genres", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("reports the removed rows", func(t *testing.T) {
		db, cleanup := setupGenresTestDB(t)
		defer cleanup()
		repo := genres.NewRepository(db.DB)
		_, err := repo.CreateGenres([]string{"Fantasy", "Sci-Fi", "Horror"})
		require.NoError(t, err)

		router := newGenresRouter(db)
		w := doJSON(t, router, "DELETE", "/genres", "")

		assert.Equal(t, http.StatusOK, w.Code)
		_, data := parseEnvelope(t, w)
		assert.Equal(t, float64(3), data["deletedCount"])

		all, err := repo.ListGenres(genres.Filter{})
		require.NoError(t, err)
		assert.Empty(t, all)
	})
}
