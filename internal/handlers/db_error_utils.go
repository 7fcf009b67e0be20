package handlers

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

// isDuplicateEntryError checks if the error corresponds to a MySQL/MariaDB
// unique constraint violation. This lets handlers report a duplicate item
// name as a validation problem instead of a generic 500 error.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
