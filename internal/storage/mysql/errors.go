package mysql

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/go-sql-driver/mysql"

	"game_reviews/internal/domain"
)

// Server error numbers we translate. See
// https://dev.mysql.com/doc/mysql-errors/8.0/en/server-error-reference.html
const (
	erNoReferencedRow       = 1216
	erWarnDataOutOfRange    = 1264
	erTruncatedWrongValue   = 1292
	erTruncatedWrongValueIn = 1366
	erNoReferencedRow2      = 1452
	erDataOutOfRange        = 1690
)

var fkColumnRE = regexp.MustCompile("FOREIGN KEY \\(`([^`]+)`\\)")

// translate maps driver errors onto the domain vocabulary. values holds the
// bound arguments of a write keyed by column, so a foreign key failure can
// report the offending value.
func translate(err error, values map[string]any) error {
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case erTruncatedWrongValue, erTruncatedWrongValueIn, erWarnDataOutOfRange, erDataOutOfRange:
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	case erNoReferencedRow, erNoReferencedRow2:
		ref := &domain.ReferenceError{Err: err}
		if m := fkColumnRE.FindStringSubmatch(me.Message); m != nil {
			ref.Field = m[1]
			ref.Value = values[m[1]]
		}
		return ref
	}
	return err
}
