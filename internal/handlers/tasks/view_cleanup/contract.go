//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=view_cleanup_test
package view_cleanup

import (
	"time"

	"dashboard/pkg/logger"
)

type Registry interface {
	EvictIdle(ttl time.Duration) int
	Len() int
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
