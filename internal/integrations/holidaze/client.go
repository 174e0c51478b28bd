package holidaze

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UpstreamRecorder интерфейс для записи метрик upstream-запросов
type UpstreamRecorder interface {
	ObserveUpstream(operation string, status int, duration time.Duration)
}

// Client клиент для работы с Holidaze API (Noroff v2)
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        Logger
	metrics    UpstreamRecorder
}

// NewClient создает новый экземпляр клиента Holidaze API
func NewClient(baseURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// WithMetrics подключает запись метрик upstream-запросов
func (c *Client) WithMetrics(rec UpstreamRecorder) *Client {
	c.metrics = rec
	return c
}

// call описывает один запрос к upstream API
type call struct {
	operation string // имя операции для логов и метрик
	method    string
	path      string // путь относительно baseURL, включая query
	token     string // Bearer-токен, пустой для публичных запросов
	body      interface{}
	// notFoundErr ошибка, возвращаемая при 404 (зависит от ресурса)
	notFoundErr error
}

// do выполняет запрос и декодирует data-конверт ответа в T
func do[T any](ctx context.Context, c *Client, req call) (T, error) {
	var zero T

	var bodyReader io.Reader
	if req.body != nil {
		raw, err := json.Marshal(req.body)
		if err != nil {
			return zero, fmt.Errorf("%w: %s - failed to marshal body: %v", ErrInternal, req.operation, err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, bodyReader)
	if err != nil {
		return zero, fmt.Errorf("%w: %s - failed to create request: %v", ErrInternal, req.operation, err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Noroff-API-Key", c.apiKey)
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if c.metrics != nil {
			c.metrics.ObserveUpstream(req.operation, 0, time.Since(start))
		}
		return zero, fmt.Errorf("%w: %s - failed to execute request: %v", ErrInternal, req.operation, err)
	}
	defer resp.Body.Close()

	if c.metrics != nil {
		c.metrics.ObserveUpstream(req.operation, resp.StatusCode, time.Since(start))
	}

	if err := c.checkStatus(resp, req); err != nil {
		return zero, err
	}

	if resp.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	var env envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return zero, fmt.Errorf("%w: %s - failed to decode response: %v", ErrInvalidResponse, req.operation, err)
	}

	return env.Data, nil
}

// checkStatus маппит статус-коды upstream в sentinel-ошибки клиента
func (c *Client) checkStatus(resp *http.Response, req call) error {
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusNoContent:
		return nil

	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s: %s", ErrValidation, req.operation, c.readErrorMessage(resp))

	case http.StatusUnauthorized:
		if req.operation == opLogin || req.operation == opRegister {
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, c.readErrorMessage(resp))
		}
		return ErrUnauthorized

	case http.StatusForbidden:
		return ErrForbidden

	case http.StatusNotFound:
		if req.notFoundErr != nil {
			return req.notFoundErr
		}
		return fmt.Errorf("%w: %s - unexpected 404", ErrInvalidResponse, req.operation)

	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, c.readErrorMessage(resp))

	default:
		return fmt.Errorf("%w: %s - unexpected status code %d: %s",
			ErrInvalidResponse, req.operation, resp.StatusCode, c.readErrorMessage(resp))
	}
}

// readErrorMessage достает первое сообщение из тела ошибки Noroff
func (c *Client) readErrorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ""
	}

	var errResp errorResponse
	if err := json.Unmarshal(raw, &errResp); err != nil {
		return string(raw)
	}
	return errResp.message()
}
