package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон маршрута mux (например /orders/{id}),
// чтобы метки метрик не зависели от идентификаторов в пути.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return "unmatched"
}
