package http

import (
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/authors"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/books"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/database/genres"
)

// Compile-time checks that the repository packages satisfy the store
// interfaces their controllers depend on.
var (
	_ AuthorStore = (*authors.Repository)(nil)
	_ GenreStore  = (*genres.Repository)(nil)
	_ BookStore   = (*books.Repository)(nil)
)
