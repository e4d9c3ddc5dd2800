// Package imghost uploads images to the external hosting API and returns the
// public URL. Uploads are not atomic with catalog writes: an image can land
// on the host while the product write later fails, and nothing rolls it back.
package imghost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
}

func NewClient(endpoint, apiKey string) *Client {
	return &Client{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type uploadResponse struct {
	Data struct {
		URL        string `json:"url"`
		DisplayURL string `json:"display_url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload sends one image and returns its hosted URL.
func (c *Client) Upload(ctx context.Context, filename string, image io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("image", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := io.Copy(part, image); err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("close upload form: %w", err)
	}

	url := c.endpoint + "?key=" + c.apiKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("image host rejected upload: %s", resp.Status)
	}

	var out uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode upload response: %w", err)
	}
	if !out.Success || out.Data.URL == "" {
		return "", fmt.Errorf("image host returned no url")
	}
	return out.Data.URL, nil
}
