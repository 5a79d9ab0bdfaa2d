// Package order_list формирует видимый список заказов: фильтр по статусу,
// сортировка по дате и ограничение "мои заказы".
package order_list

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"dashboard/internal/entities"
)

var (
	ErrInvalidStatusFilter  = errors.New("invalid status filter")
	ErrInvalidSortDirection = errors.New("invalid sort direction")
)

// StatusFilter пустой или StatusAll пропускает все заказы.
type StatusFilter string

const StatusAll StatusFilter = "all"

func (f StatusFilter) all() bool {
	return f == "" || f == StatusAll
}

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

type Params struct {
	// CurrentUserID != nil включает режим "мои заказы".
	CurrentUserID *int64
	Status        StatusFilter
	Sort          SortDirection
}

// Filter не изменяет вход и всегда возвращает не-nil срез.
// Повторный вызов на собственном результате с теми же параметрами дает тот же результат.
func Filter(orders []entities.Order, params Params) []entities.Order {
	visible := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		if params.Status.all() || o.Status == entities.OrderStatusType(params.Status) {
			visible = append(visible, o)
		}
	}

	slices.SortStableFunc(visible, func(a, b entities.Order) int {
		if params.Sort == SortDesc {
			return b.OrderDate.Compare(a.OrderDate)
		}
		return a.OrderDate.Compare(b.OrderDate)
	})

	if params.CurrentUserID == nil {
		return visible
	}

	userID := *params.CurrentUserID
	return slices.DeleteFunc(visible, func(o entities.Order) bool {
		return o.Cargo.Client.ID != userID && o.Cargo.Recipient.ID != userID
	})
}

// ParseStatusFilter принимает пустую строку, "all" или статус заказа.
func ParseStatusFilter(raw string) (StatusFilter, error) {
	value := strings.TrimSpace(raw)
	if value == "" || strings.EqualFold(value, string(StatusAll)) {
		return StatusAll, nil
	}

	status := entities.OrderStatusType(strings.ToUpper(value))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatusFilter, raw)
	}
	return StatusFilter(status), nil
}

// ParseSortDirection: пустое значение - по возрастанию.
func ParseSortDirection(raw string) (SortDirection, error) {
	switch SortDirection(strings.ToLower(strings.TrimSpace(raw))) {
	case "", SortAsc:
		return SortAsc, nil
	case SortDesc:
		return SortDesc, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortDirection, raw)
	}
}
