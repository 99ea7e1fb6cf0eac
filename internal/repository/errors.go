package repository

import "errors"

// Sentinels for the two MySQL constraint failures the order and user
// paths special-case (duplicate key 1062, foreign key 1452).
var (
	ErrDuplicateEntry   = errors.New("duplicate entry")
	ErrInvalidReference = errors.New("referenced row does not exist")
)
