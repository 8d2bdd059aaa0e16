// Package monoclient is the HTTP client of the registry API. It implements
// the submit.Gateway collaborator contract and the degree-program fetch the
// form's selector feeds from.
package monoclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/thesisdesk/backend/draft"
	"github.com/thesisdesk/backend/proglist"
	"github.com/thesisdesk/backend/submit"
)

type Client struct {
	base  string
	httpc *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		base:  strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{Timeout: 60 * time.Second},
	}
}

// ApiError is a non-success envelope returned by the registry API.
type ApiError struct {
	HttpStatus int
	Code       string
	Message    string
}

func (e *ApiError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.HttpStatus)
}

// envelope mirrors the httpjson response shape.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data,omitempty"`
	ErrCode string          `json:"code,omitempty"`
	ErrMsg  string          `json:"message,omitempty"`
}

// CreateMonograph implements submit.Gateway.
func (c *Client) CreateMonograph(ctx context.Context, v draft.Validated) (submit.Record, error) {
	body := struct {
		Title           string `json:"title"`
		PublicationDate string `json:"publicationDate"`
		AuthorID        string `json:"authorId"`
		DegreeProgramID string `json:"degreeProgramId"`
	}{
		Title:           v.Title,
		PublicationDate: v.PublicationDate.Format("2006-01-02"),
		AuthorID:        v.AuthorID,
		DegreeProgramID: v.DegreeProgramID,
	}

	var data struct {
		ID    string `json:"id"`
		Title string `json:"title"`
	}
	err := c.call(ctx, http.MethodPost, "/monographs", body, &data)
	if err != nil {
		return submit.Record{}, err
	}

	return submit.Record{ID: data.ID, Title: data.Title}, nil
}

// RequestUploadTarget implements submit.Gateway.
func (c *Client) RequestUploadTarget(ctx context.Context, title string, recordID string) (submit.UploadTarget, error) {
	body := struct {
		Title string `json:"title"`
	}{Title: title}

	var data struct {
		URL       string    `json:"url"`
		Method    string    `json:"method"`
		Key       string    `json:"key"`
		ExpiresAt time.Time `json:"expiresAt"`
	}
	path := fmt.Sprintf("/monographs/%s/upload-url", recordID)
	err := c.call(ctx, http.MethodPost, path, body, &data)
	if err != nil {
		return submit.UploadTarget{}, err
	}

	return submit.UploadTarget{
		URL:       data.URL,
		Method:    data.Method,
		Key:       data.Key,
		ExpiresAt: data.ExpiresAt,
	}, nil
}

// TransferFile implements submit.Gateway. The write goes directly to the
// opaque target, not through the registry API.
func (c *Client) TransferFile(ctx context.Context, target submit.UploadTarget, content []byte) error {
	method := target.Method
	if method == "" {
		method = http.MethodPut
	}

	req, err := http.NewRequestWithContext(ctx, method, target.URL, bytes.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/pdf")
	req.ContentLength = int64(len(content))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload target rejected the file with status %d", resp.StatusCode)
	}
	return nil
}

// ListDegreePrograms fetches the selectable degree programs.
func (c *Client) ListDegreePrograms(ctx context.Context) ([]proglist.DegreeProgram, error) {
	var data []struct {
		Code string `json:"code"`
		Name string `json:"name"`
	}
	err := c.call(ctx, http.MethodGet, "/degree-programs", nil, &data)
	if err != nil {
		return nil, err
	}

	programs := make([]proglist.DegreeProgram, len(data))
	for i, p := range data {
		programs[i] = proglist.DegreeProgram{Code: p.Code, Name: p.Name}
	}
	return programs, nil
}

// call does one JSON round trip against the registry API and unwraps the
// response envelope into out.
func (c *Client) call(ctx context.Context, method string, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		// A proxy or load balancer answering for the API sends whatever it
		// likes; on a failed status the status code is the signal.
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return &ApiError{
				HttpStatus: resp.StatusCode,
				Message:    http.StatusText(resp.StatusCode),
			}
		}
		return fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if env.Status != "success" {
		return &ApiError{
			HttpStatus: resp.StatusCode,
			Code:       env.ErrCode,
			Message:    env.ErrMsg,
		}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return nil
}
