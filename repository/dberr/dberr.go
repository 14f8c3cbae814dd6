// Package dberr maps MySQL driver errors onto sentinel errors the application layer can branch on.
package dberr

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
)

const (
	mysqlDuplicateEntry  = 1062
	mysqlNoReferencedRow = 1452
)

var (
	ErrDuplicate  = errors.New("duplicate entry")
	ErrForeignKey = errors.New("referenced row does not exist")
)

// Translate wraps unique and foreign key violations in ErrDuplicate and ErrForeignKey.
// Any other error is returned untouched.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}

	switch me.Number {
	case mysqlDuplicateEntry:
		return fmt.Errorf("%w: %s", ErrDuplicate, me.Message)
	case mysqlNoReferencedRow:
		return fmt.Errorf("%w: %s", ErrForeignKey, me.Message)
	}
	return err
}
