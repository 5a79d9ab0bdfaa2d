package order_sync

import "errors"

var ErrInvalidStatus = errors.New("invalid status")
