// Package postgrest содержит минимальный клиент к строчному REST-API
// Supabase: select с фильтрами и сортировкой, insert/update с возвратом
// строки, delete по id и загрузка файлов в storage.
package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient создаёт клиент к строчному API
func NewClient(baseURL, apiKey string, logger *zap.Logger) *Client {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// APIError ошибка строчного API с HTTP-статусом и сообщением бэкенда
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("backend error: status %d", e.Status)
}

type filter struct {
	column string
	op     string
	value  string
}

// Query строит один запрос к таблице. Методы-модификаторы возвращают
// тот же Query, терминальные методы выполняют HTTP-вызов.
type Query struct {
	client  *Client
	table   string
	filters []filter
	order   []string
}

// From начинает запрос к таблице
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table}
}

func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, filter{column, "eq", value})
	return q
}

func (q *Query) Gte(column, value string) *Query {
	q.filters = append(q.filters, filter{column, "gte", value})
	return q
}

func (q *Query) Lte(column, value string) *Query {
	q.filters = append(q.filters, filter{column, "lte", value})
	return q
}

// Order добавляет сортировку; порядок вызовов задаёт приоритет колонок
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.order = append(q.order, column+"."+dir)
	return q
}

func (q *Query) url() string {
	params := url.Values{}
	params.Set("select", "*")
	for _, f := range q.filters {
		// одна колонка может иметь несколько ограничений (например gte и lte),
		// каждое уходит отдельным параметром
		params.Add(f.column, f.op+"."+f.value)
	}
	if len(q.order) > 0 {
		params.Set("order", strings.Join(q.order, ","))
	}
	return fmt.Sprintf("%s/rest/v1/%s?%s", q.client.baseURL, q.table, params.Encode())
}

// Select выполняет чтение и декодирует массив строк в dest
func (q *Query) Select(ctx context.Context, dest any) error {
	body, err := q.client.do(ctx, http.MethodGet, q.url(), nil, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return fmt.Errorf("failed to decode %s rows: %w", q.table, err)
	}
	return nil
}

// Insert вставляет строку и декодирует вставленную запись в dest
func (q *Query) Insert(ctx context.Context, payload any, dest any) error {
	body, err := q.client.do(ctx, http.MethodPost, q.url(), payload, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	return decodeSingle(q.table, body, dest)
}

// Update обновляет строки по текущим фильтрам и декодирует результат в dest
func (q *Query) Update(ctx context.Context, payload any, dest any) error {
	body, err := q.client.do(ctx, http.MethodPatch, q.url(), payload, map[string]string{
		"Prefer": "return=representation",
	})
	if err != nil {
		return err
	}
	return decodeSingle(q.table, body, dest)
}

// Delete удаляет строки по текущим фильтрам
func (q *Query) Delete(ctx context.Context) error {
	_, err := q.client.do(ctx, http.MethodDelete, q.url(), nil, nil)
	return err
}

// ответ insert/update приходит массивом; берём первую строку
func decodeSingle(table string, body []byte, dest any) error {
	if dest == nil {
		return nil
	}
	raw := []json.RawMessage{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", table, err)
	}
	if len(raw) == 0 {
		return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf("%s: no rows returned", table)}
	}
	if err := json.Unmarshal(raw[0], dest); err != nil {
		return fmt.Errorf("failed to decode %s row: %w", table, err)
	}
	return nil
}

// UploadObject загружает файл в storage-бакет и возвращает публичный URL
func (c *Client) UploadObject(ctx context.Context, bucket, path string, data []byte, contentType string) (string, error) {
	path = strings.TrimPrefix(path, "/")
	uploadURL := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.baseURL, bucket, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuth(req)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Cache-Control", "3600")
	req.Header.Set("x-upsert", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", c.apiError(resp)
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.baseURL, bucket, path), nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload any, headers map[string]string) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setAuth(req)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("row api call",
		zap.String("method", method),
		zap.String("url", rawURL),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, parseAPIError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

func (c *Client) setAuth(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}

func (c *Client) apiError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return parseAPIError(resp.StatusCode, body)
}

func parseAPIError(status int, body []byte) error {
	var e struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	_ = json.Unmarshal(body, &e)
	msg := e.Message
	if msg == "" {
		msg = e.Error
	}
	if msg == "" && len(body) > 0 {
		msg = string(body)
	}
	return &APIError{Status: status, Message: msg}
}
