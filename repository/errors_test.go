package repository

import (
	"errors"
	"fmt"
	"testing"

	"mlmusic/model"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"nil passes through",
			nil,
			nil,
		},
		{
			"record not found",
			gorm.ErrRecordNotFound,
			model.ErrNotFound,
		},
		{
			"wrapped record not found",
			fmt.Errorf("loading row: %w", gorm.ErrRecordNotFound),
			model.ErrNotFound,
		},
		{
			"duplicate slug index",
			&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'rock' for key 'genres.idx_genres_slug'"},
			model.ErrDuplicateSlug,
		},
		{
			"duplicate non-slug index",
			&mysql.MySQLError{Number: 1062, Message: "Duplicate entry '1-Road Trip' for key 'playlists.uq_playlists_owner_name'"},
			model.ErrValidation,
		},
		{
			"row is referenced",
			&mysql.MySQLError{Number: 1451, Message: "Cannot delete or update a parent row"},
			model.ErrReferentialIntegrity,
		},
		{
			"referenced row missing",
			&mysql.MySQLError{Number: 1452, Message: "Cannot add or update a child row"},
			model.ErrReferentialIntegrity,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := translate(c.err)
			if c.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, c.want)
		})
	}
}

func TestTranslateUnknownErrorPassesThrough(t *testing.T) {
	unknown := errors.New("connection reset")
	assert.Same(t, unknown, translate(unknown))
}
