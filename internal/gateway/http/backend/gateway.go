package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxErrorBody = 4 << 10

// Gateway - клиент REST бэкенда. Токен передается явно в каждый вызов,
// пустой токен означает публичный запрос. Повторов нет: ошибка возвращается сразу.
type Gateway struct {
	baseURL string
	client  httpDoer
}

func New(baseURL string, client httpDoer) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// request описывает один вызов. route - шаблон пути для метрик и ошибок.
type request struct {
	method string
	route  string
	path   string
	token  string
	body   any
	// rawBody отправляется как есть, без JSON кодирования.
	rawBody *string
}

func (g *Gateway) execute(ctx context.Context, req request, out any) error {
	start := time.Now()

	statusCode, err := g.roundTrip(ctx, req, out)

	BackendRequestDuration.
		WithLabelValues(req.method, req.route, statusLabel(statusCode)).
		Observe(time.Since(start).Seconds())

	if err != nil {
		return &Error{
			Method:     req.method,
			Route:      req.route,
			StatusCode: statusCode,
			Err:        err,
		}
	}
	return nil
}

func (g *Gateway) roundTrip(ctx context.Context, req request, out any) (int, error) {
	body, err := encodeBody(req)
	if err != nil {
		return 0, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, g.baseURL+req.path, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, fmt.Errorf("unexpected status %s: %s", resp.Status, bytes.TrimSpace(msg))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}
	if len(bytes.TrimSpace(payload)) == 0 {
		return resp.StatusCode, nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func encodeBody(req request) (io.Reader, error) {
	switch {
	case req.rawBody != nil:
		return strings.NewReader(*req.rawBody), nil
	case req.body != nil:
		payload, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		return bytes.NewReader(payload), nil
	default:
		return nil, nil
	}
}

func statusLabel(statusCode int) string {
	if statusCode == 0 {
		return "transport_error"
	}
	return strconv.Itoa(statusCode)
}

// Ping проверяет, что бэкенд отвечает. Любой HTTP ответ считается успехом.
func (g *Gateway) Ping(ctx context.Context) error {
	err := g.execute(ctx, request{method: http.MethodGet, route: "/", path: "/"}, nil)

	var backendErr *Error
	if errors.As(err, &backendErr) && backendErr.StatusCode != 0 {
		return nil
	}
	return err
}

func idPath(format string, id int64) string {
	return fmt.Sprintf(format, id)
}
