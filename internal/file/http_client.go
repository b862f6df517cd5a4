package file

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/INFIxChatnify/mercur/internal/port"
)

// HTTPClient resolves file handles against an external file storage service
// over HTTP. The service answers GET {base}/files/{fileID} with {"url": ...}.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("baseURL is empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("url.Parse: %w", err)
	}

	// no client-level timeout, requests are bounded by their context
	httpClient := &http.Client{
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
		},
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}, nil
}

func (c *HTTPClient) RetrieveFile(ctx context.Context, fileID string) (port.FileInfo, error) {
	var info port.FileInfo

	if fileID == "" {
		return info, fmt.Errorf("fileID is empty")
	}

	endpoint := fmt.Sprintf("%s/files/%s", c.baseURL, url.PathEscape(fileID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return info, fmt.Errorf("http.NewRequestWithContext: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return info, fmt.Errorf("httpClient.Do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return info, fmt.Errorf("file service returned status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return info, fmt.Errorf("json.Decode: %w", err)
	}

	return info, nil
}

var _ port.FileService = (*HTTPClient)(nil)
