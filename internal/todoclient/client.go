package todoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"cartlab/internal/domain/model"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// baseURLは ".../api/todos" まで含める
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// 2xx以外のレスポンス
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("todo api: status %d", e.Status)
	}
	return fmt.Sprintf("todo api: status %d: %s", e.Status, e.Message)
}

type todoRequest struct {
	Title string `json:"title"`
}

func (c *Client) List(ctx context.Context) ([]model.Todo, error) {
	var out []model.Todo
	if err := c.do(ctx, http.MethodGet, c.BaseURL, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Create(ctx context.Context, title string) (model.Todo, error) {
	var out model.Todo
	if err := c.do(ctx, http.MethodPost, c.BaseURL, todoRequest{Title: title}, &out); err != nil {
		return model.Todo{}, err
	}
	return out, nil
}

func (c *Client) Update(ctx context.Context, id int64, title string) (model.Todo, error) {
	var out model.Todo
	if err := c.do(ctx, http.MethodPut, c.itemURL(id), todoRequest{Title: title}, &out); err != nil {
		return model.Todo{}, err
	}
	return out, nil
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.itemURL(id), nil, nil)
}

// 一覧を取り直して描画する
func (c *Client) Refresh(ctx context.Context, w io.Writer) error {
	todos, err := c.List(ctx)
	if err != nil {
		return err
	}
	return Render(w, todos)
}

func Render(w io.Writer, todos []model.Todo) error {
	if len(todos) == 0 {
		_, err := fmt.Fprintln(w, "(no todos)")
		return err
	}
	for _, t := range todos {
		if _, err := fmt.Fprintf(w, "- [%d] %s\n", t.ID, t.Title); err != nil {
			return err
		}
	}
	return nil
}

func (c *Client) itemURL(id int64) string {
	return c.BaseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, body interface{}, out interface{}) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var er struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(raw, &er)
		return &APIError{Status: res.StatusCode, Message: er.Error}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
