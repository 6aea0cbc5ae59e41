package models

import "errors"

// ErrNotFound возвращается репозиториями, когда записи с указанным id нет
var ErrNotFound = errors.New("not found")
