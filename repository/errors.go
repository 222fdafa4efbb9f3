package repository

import (
	"errors"
	"fmt"
	"strings"

	"mlmusic/model"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// MySQL error numbers this layer cares about.
const (
	mysqlErrDuplicateEntry  = 1062
	mysqlErrRowIsReferenced = 1451
	mysqlErrNoReferencedRow = 1452
)

// translate maps storage errors onto the domain sentinels in model. Errors
// it does not recognize pass through unchanged.
func translate(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", model.ErrNotFound, err)
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlErrDuplicateEntry:
			// Slug indexes carry "slug" in their name; any other unique
			// violation (owner+name, username, email) is a validation issue.
			if strings.Contains(mysqlErr.Message, "slug") {
				return fmt.Errorf("%w: %v", model.ErrDuplicateSlug, err)
			}
			return fmt.Errorf("%w: %v", model.ErrValidation, err)
		case mysqlErrRowIsReferenced, mysqlErrNoReferencedRow:
			return fmt.Errorf("%w: %v", model.ErrReferentialIntegrity, err)
		}
	}

	return err
}
