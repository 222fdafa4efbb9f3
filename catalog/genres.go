package catalog

import (
	"context"
	"fmt"
	"strings"

	"mlmusic/model"
)

// CreateGenre creates a genre with a slug derived from its name. A name
// that normalizes to an existing slug fails with ErrDuplicateSlug.
func (e *Engine) CreateGenre(ctx context.Context, name string) (*model.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: genre name is required", model.ErrValidation)
	}

	genre := &model.Genre{
		Name: name,
		Slug: Slugify(name),
	}
	if err := e.genres.Create(ctx, genre); err != nil {
		return nil, err
	}

	e.invalidateFeed(ctx)
	return genre, nil
}

// RenameGenre renames a genre and recomputes its slug to match the new
// name.
func (e *Engine) RenameGenre(ctx context.Context, id int64, name string) (*model.Genre, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: genre name is required", model.ErrValidation)
	}

	genre, err := e.genres.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genre.Name = name
	genre.Slug = Slugify(name)
	if err := e.genres.Update(ctx, genre); err != nil {
		return nil, err
	}

	e.invalidateFeed(ctx)
	return genre, nil
}

// DeleteGenre removes a genre. The delete is refused by the store while
// artists, tracks or albums still reference it.
func (e *Engine) DeleteGenre(ctx context.Context, id int64) error {
	if err := e.genres.Delete(ctx, id); err != nil {
		return err
	}
	e.invalidateFeed(ctx)
	return nil
}

// Genres lists every genre.
func (e *Engine) Genres(ctx context.Context) ([]model.Genre, error) {
	return e.genres.List(ctx)
}

// GenreBySlug looks a genre up by slug.
func (e *Engine) GenreBySlug(ctx context.Context, slug string) (*model.Genre, error) {
	return e.genres.GetBySlug(ctx, slug)
}
