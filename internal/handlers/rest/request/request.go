// Package request разбирает путь, query и тело запросов дашборда.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

var ErrBadRequest = errors.New("bad request")

// PathID читает положительный идентификатор из переменной маршрута.
func PathID(r *http.Request, name string) (int64, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok {
		return 0, fmt.Errorf("%w: path variable %q is missing", ErrBadRequest, name)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrBadRequest, name, raw)
	}
	return id, nil
}

// Flag читает булев параметр query. Отсутствующий параметр - false.
func Flag(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: invalid %s %q", ErrBadRequest, name, raw)
	}
	return value, nil
}

// DecodeJSON читает тело запроса в dst, неизвестные поля запрещены.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: decode body: %w", ErrBadRequest, err)
	}
	return nil
}
