package ageprobe

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"emailrep/pkg/serrors"
)

// DefaultRDAPBaseURL is the public RDAP bootstrap redirector.
const DefaultRDAPBaseURL = "https://rdap.org/domain/"

// RDAPSource reads creation dates from the registration event of an RDAP
// domain object. It is safe for concurrent use.
type RDAPSource struct {
	httpClient *http.Client // httpClient performs the RDAP requests
	baseURL    string       // baseURL is prefixed to the domain name
}

// NewRDAPSource constructs an RDAPSource. An empty baseURL selects
// DefaultRDAPBaseURL.
func NewRDAPSource(httpClient *http.Client, baseURL string) *RDAPSource {
	if baseURL == "" {
		baseURL = DefaultRDAPBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	return &RDAPSource{httpClient: httpClient, baseURL: baseURL}
}

func (r *RDAPSource) Name() string { return "rdap" }

// CreatedAt fetches the RDAP domain object and returns the date of its first
// registration event.
func (r *RDAPSource) CreatedAt(ctx context.Context, domainName string) (time.Time, error) {
	// https://www.rfc-editor.org/rfc/rfc9083#section-4.5
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+domainName, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return time.Time{}, serrors.Wrap(serrors.ErrTimeout, err, "rdap %s", domainName)
		}

		return time.Time{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return time.Time{}, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return time.Time{}, serrors.With(serrors.ErrNotFound, "rdap has no record of %s", domainName)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return time.Time{}, serrors.With(serrors.ErrRateLimited, "rate limited: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return time.Time{}, serrors.With(serrors.ErrUnavailable, "rdap lookup failed: %d", resp.StatusCode)
	}

	var obj struct {
		Events []struct {
			Action string `json:"eventAction"`
			Date   string `json:"eventDate"`
		} `json:"events"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return time.Time{}, fmt.Errorf("could not decode response: %w", err)
	}
	for _, ev := range obj.Events {
		if strings.EqualFold(ev.Action, "registration") {
			return ParseDate(ev.Date)
		}
	}

	return time.Time{}, serrors.With(serrors.ErrNotFound, "rdap has no registration event")
}

var (
	_ Source = (*RDAPSource)(nil)
	_ Source = (*WhoisSource)(nil)
)
