package adapters

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"obs-pkgver/internal/ports"
	"obs-pkgver/internal/shared"
	"obs-pkgver/internal/types"
)

const DefaultOBSEndpoint = "https://api.opensuse.org"

const defaultOBSTimeout = 30 * time.Second
const maxOBSResponseBytes = 8 << 20
const obsSearchPath = "/search/published/binary/id"

// OBSSearchAdapter queries the build service published binary search.
// It performs exactly one request per call.
type OBSSearchAdapter struct {
	Endpoint string
	Username string
	Password string
	Timeout  time.Duration
	Client   *http.Client
}

func NewOBSSearchAdapter(endpoint string, username string, password string, timeoutSec int) OBSSearchAdapter {
	endpoint = strings.TrimRight(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		endpoint = DefaultOBSEndpoint
	}
	timeout := time.Duration(timeoutSec) * time.Second
	if timeout <= 0 {
		timeout = defaultOBSTimeout
	}
	return OBSSearchAdapter{
		Endpoint: endpoint,
		Username: username,
		Password: password,
		Timeout:  timeout,
	}
}

// SearchURL returns the request URL for query.
func (a OBSSearchAdapter) SearchURL(query types.SearchQuery) string {
	values := url.Values{}
	values.Set("match", query.Match)
	return strings.TrimRight(a.Endpoint, "/") + obsSearchPath + "?" + values.Encode()
}

func (a OBSSearchAdapter) Search(ctx context.Context, query types.SearchQuery) (string, error) {
	if strings.TrimSpace(query.Match) == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("search query is empty")
	}
	searchURL := a.SearchURL(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create obs search request").
			WithCause(err)
	}
	req.Header.Set("Accept", "application/xml")
	a.applyBasicAuth(req)

	resp, err := a.httpClient().Do(req)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("obs search failed").
			WithCause(err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxOBSResponseBytes))
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read obs search response").
			WithCause(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code := errbuilder.CodeInternal
		switch resp.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			code = errbuilder.CodePermissionDenied
		case http.StatusNotFound:
			code = errbuilder.CodeNotFound
		}
		return "", errbuilder.New().
			WithCode(code).
			WithMsg("obs search failed").
			WithCause(shared.HTTPStatusErrorWithBody(resp.StatusCode, searchURL, strings.TrimSpace(string(body))))
	}
	return string(body), nil
}

func (a OBSSearchAdapter) httpClient() *http.Client {
	if a.Client != nil {
		return a.Client
	}
	return &http.Client{Timeout: a.Timeout}
}

func (a OBSSearchAdapter) applyBasicAuth(req *http.Request) {
	if strings.TrimSpace(a.Username) == "" {
		return
	}
	req.SetBasicAuth(strings.TrimSpace(a.Username), a.Password)
}

var _ ports.BinarySearchPort = OBSSearchAdapter{}
