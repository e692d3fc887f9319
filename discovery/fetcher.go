// Copyright 2026 The RoamRelic Authors
// SPDX-License-Identifier: Apache-2.0

package discovery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"golang.org/x/net/publicsuffix"

	"github.com/mothupally/RoamRelic/spatial"
)

// maxBodySize bounds how much of a proxy response is read. Nearby
// search payloads are well under this.
const maxBodySize = 4 << 20

// proxyPath describes one access path to the places provider: how to
// wrap the target URL and how to unwrap the response envelope.
type proxyPath struct {
	name     string
	buildURL func(target string) string
	unwrap   func(body []byte) (*nearbySearchResponse, error)
}

// unwrapDirect parses a body that is the provider payload itself.
func unwrapDirect(body []byte) (*nearbySearchResponse, error) {
	var resp nearbySearchResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, &DiscoveryError{
			Type:    ErrorTypeDecode,
			Message: "decoding provider payload",
			Err:     err,
		}
	}

	return &resp, nil
}

// unwrapAllOrigins parses the allorigins-style wrapper: the provider
// payload is carried as a string in "contents", and the wrapper's own
// "status.http_code" reports the upstream status.
func unwrapAllOrigins(body []byte) (*nearbySearchResponse, error) {
	var wrapper struct {
		Status struct {
			HTTPCode int `json:"http_code"`
		} `json:"status"`
		Contents string `json:"contents"`
	}

	if err := json.Unmarshal(body, &wrapper); err != nil {
		return nil, &DiscoveryError{
			Type:    ErrorTypeDecode,
			Message: "decoding wrapper envelope",
			Err:     err,
		}
	}

	if wrapper.Status.HTTPCode != http.StatusOK {
		return nil, &DiscoveryError{
			Type:    ErrorTypeEnvelopeMismatch,
			Message: fmt.Sprintf("wrapper reports upstream HTTP %d", wrapper.Status.HTTPCode),
		}
	}

	if wrapper.Contents == "" {
		return nil, &DiscoveryError{
			Type:    ErrorTypeEnvelopeMismatch,
			Message: "wrapper has no contents",
		}
	}

	return unwrapDirect([]byte(wrapper.Contents))
}

// defaultProxyPaths is the fixed, ordered chain of relays used to reach
// the provider. Order matters: the first usable response wins.
func defaultProxyPaths() []proxyPath {
	return []proxyPath{
		{
			name: "allorigins",
			buildURL: func(target string) string {
				return "https://api.allorigins.win/get?url=" + url.QueryEscape(target)
			},
			unwrap: unwrapAllOrigins,
		},
		{
			name: "corsproxy",
			buildURL: func(target string) string {
				return "https://corsproxy.io/?" + url.QueryEscape(target)
			},
			unwrap: unwrapDirect,
		},
		{
			name: "thingproxy",
			buildURL: func(target string) string {
				return "https://thingproxy.freeboard.io/fetch/" + target
			},
			unwrap: unwrapDirect,
		},
	}
}

// Fetcher walks the proxy chain sequentially until one path yields a
// usable provider payload.
type Fetcher struct {
	paths  []proxyPath
	client *http.Client
	config Config
}

// NewFetcher creates a fetcher with the default proxy chain.
func NewFetcher(config Config) *Fetcher {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		log.Fatalf("Failed to create cookie jar: %v", err)
	}

	return &Fetcher{
		paths: defaultProxyPaths(),
		client: &http.Client{
			Timeout: config.AttemptTimeout,
			Jar:     jar,
		},
		config: config,
	}
}

// targetURL builds the provider nearby-search request URL.
func (f *Fetcher) targetURL(coord spatial.Point) string {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", coord.Lat, coord.Lng))
	params.Set("radius", fmt.Sprintf("%d", f.config.RadiusMeters))
	params.Set("type", "tourist_attraction")
	params.Set("keyword", f.config.Keyword)
	params.Set("key", f.config.APIKey)

	return f.config.PlacesEndpoint + "?" + params.Encode()
}

// redactKey strips the API key from a URL before it is logged.
func redactKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<unparseable url>"
	}

	q := u.Query()
	if q.Has("key") {
		q.Set("key", "REDACTED")
		u.RawQuery = q.Encode()
	}

	// The target URL may itself be carried percent-encoded in a "url"
	// query parameter.
	if inner := q.Get("url"); inner != "" {
		q.Set("url", redactKey(inner))
		u.RawQuery = q.Encode()
	}

	return u.String()
}

// FetchRaw attempts each access path in order and returns the first
// usable candidate list. Attempts are strictly sequential, with no
// retries within a path; a typed exhaustion error is returned when
// every path fails.
func (f *Fetcher) FetchRaw(ctx context.Context, coord spatial.Point) ([]Candidate, error) {
	target := f.targetURL(coord)

	for _, path := range f.paths {
		resp, err := f.attempt(ctx, path, target)
		if err != nil {
			log.Printf("Proxy path %q failed: %v", path.name, err)

			continue
		}

		candidates := make([]Candidate, 0, len(resp.Results))
		for i := range resp.Results {
			candidates = append(candidates, resp.Results[i].toCandidate())
		}

		log.Printf("Proxy path %q returned %d candidates", path.name, len(candidates))

		return candidates, nil
	}

	return nil, &DiscoveryError{
		Type:    ErrorTypeExhausted,
		Message: fmt.Sprintf("all %d proxy paths exhausted for %s", len(f.paths), redactKey(target)),
	}
}

func (f *Fetcher) attempt(ctx context.Context, path proxyPath, target string) (*nearbySearchResponse, error) {
	reqURL := path.buildURL(target)

	attemptCtx := ctx

	if f.config.AttemptTimeout > 0 {
		var cancel context.CancelFunc

		attemptCtx, cancel = context.WithTimeout(ctx, f.config.AttemptTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &DiscoveryError{
			Type:    ErrorTypeTransport,
			Message: "building request",
			Err:     err,
		}
	}

	httpResp, err := f.client.Do(req)
	if err != nil {
		// url.Error carries the full request URL, key included; rebuild
		// it redacted before it can reach the logs.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = fmt.Errorf("%s %s: %w", urlErr.Op, redactKey(urlErr.URL), urlErr.Err)
		}

		return nil, &DiscoveryError{
			Type:    ErrorTypeTransport,
			Message: "performing request",
			Err:     err,
		}
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode < 200 || httpResp.StatusCode > 299 {
		return nil, ClassifyHTTPError(httpResp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodySize))
	if err != nil {
		return nil, &DiscoveryError{
			Type:    ErrorTypeTransport,
			Message: "reading response body",
			Err:     err,
		}
	}

	resp, err := path.unwrap(body)
	if err != nil {
		return nil, err
	}

	if resp.Status != "OK" {
		return nil, &DiscoveryError{
			Type:    ErrorTypeUpstreamRejection,
			Message: fmt.Sprintf("provider status %q: %s", resp.Status, resp.ErrorMessage),
		}
	}

	return resp, nil
}
