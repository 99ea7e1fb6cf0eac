package mysql

import (
	"errors"

	"canteen-service/internal/repository"

	"github.com/go-sql-driver/mysql"
)

// mapErr converts the MySQL constraint violations the write paths care
// about into repository sentinels. Everything else passes through.
func mapErr(err error) error {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062:
			return repository.ErrDuplicateEntry
		case 1452:
			return repository.ErrInvalidReference
		}
	}
	return err
}
