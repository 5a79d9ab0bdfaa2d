package backend

import (
	"errors"
	"fmt"
)

// ErrBackendUnavailable - единственный вид ошибки бэкенда, который различает дашборд:
// любой ответ не 2xx или недоступность бэкенда.
var ErrBackendUnavailable = errors.New("backend unavailable")

type Error struct {
	Method string
	Route  string
	// StatusCode равен 0, если ответа не было.
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("backend %s %s: %v", e.Method, e.Route, e.Err)
	}
	return fmt.Sprintf("backend %s %s: status %d: %v", e.Method, e.Route, e.StatusCode, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrBackendUnavailable, e.Err}
}
