package order

import "errors"

var ErrInvalidQuery = errors.New("invalid order list query")
