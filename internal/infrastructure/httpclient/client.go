package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "petstore/internal/errors"
)

// Client is a thin JSON client for the directory-service collaborators. It
// translates transport outcomes into the error taxonomy the decision layer
// expects: not-found is distinct from failure to respond or to parse.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// GetJSON issues a GET against path with the given query parameters and
// decodes the body into out. A 404 maps to NotFoundError, any other non-2xx
// status or network failure to TransportError, and an undecodable body to
// MalformedResponseError.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return apperrors.NewTransportError(fmt.Sprintf("building request for %s", path), err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.NewTransportError(fmt.Sprintf("calling %s", path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body)
		return apperrors.NewNotFoundError(fmt.Sprintf("%s returned not found", path))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		io.Copy(io.Discard, resp.Body)
		return apperrors.NewTransportError(fmt.Sprintf("%s returned status %d", path, resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewMalformedResponseError(fmt.Sprintf("decoding response from %s", path), err)
	}

	return nil
}
