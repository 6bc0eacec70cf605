package triplestore

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/oorlinsky/conceptual-server-graph/infrastructure/config"
	apperrors "github.com/oorlinsky/conceptual-server-graph/pkg/errors"
	"github.com/oorlinsky/conceptual-server-graph/pkg/observability"
	"github.com/oorlinsky/conceptual-server-graph/pkg/sparql"

	"go.uber.org/zap"
)

const (
	updateContentType = "application/sparql-update"
	queryContentType  = "application/x-www-form-urlencoded"
	resultsAccept     = "application/sparql-results+json"

	// maxErrorBodySize limits how much of a store error payload is read.
	maxErrorBodySize = 4096
)

// Client speaks the SPARQL 1.1 protocol against an RDF4J-style store:
// updates go to {endpoint}/repositories/{repo}/statements, queries to
// {endpoint}/repositories/{repo}. The client holds no state beyond its
// configuration and is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	queryURL   string
	updateURL  string
	logger     *zap.Logger
	metrics    *observability.Collector
}

// NewClient creates a store client from the process configuration.
func NewClient(cfg *config.Config, logger *zap.Logger, metrics *observability.Collector) *Client {
	queryURL := strings.TrimRight(cfg.StoreEndpoint, "/") + "/repositories/" + cfg.StoreRepository
	return &Client{
		httpClient: &http.Client{Timeout: cfg.StoreTimeout},
		queryURL:   queryURL,
		updateURL:  queryURL + "/statements",
		logger:     logger,
		metrics:    metrics,
	}
}

// Update submits a SPARQL update document as the raw request body. The
// store acknowledges an applied update with 204 No Content; any other
// status is surfaced as an upstream error carrying the store's status
// and payload.
func (c *Client) Update(ctx context.Context, update string) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.updateURL, strings.NewReader(update))
	if err != nil {
		return apperrors.NewInternalError("failed to build store update request").WithCause(err)
	}
	req.Header.Set("Content-Type", updateContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("update", "transport_error", start)
		c.logger.Error("graph store update unreachable", zap.Error(err))
		return apperrors.NewTransportError("graph store unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		c.observe("update", "unexpected_status", start)
		payload := readErrorPayload(resp.Body)
		c.logger.Warn("unexpected status from store update",
			zap.Int("status", resp.StatusCode),
			zap.String("payload", payload),
		)
		return apperrors.NewUpstreamError(resp.StatusCode, payload)
	}

	c.observe("update", "ok", start)
	return nil
}

// Select runs a SPARQL query, sent form-encoded under the query
// parameter, and decodes the tabular JSON result. Only a 200 response
// counts as success.
func (c *Client) Select(ctx context.Context, query string) (*sparql.ResultSet, error) {
	start := time.Now()

	form := url.Values{"query": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.queryURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build store query request").WithCause(err)
	}
	req.Header.Set("Content-Type", queryContentType)
	req.Header.Set("Accept", resultsAccept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.observe("select", "transport_error", start)
		c.logger.Error("graph store query unreachable", zap.Error(err))
		return nil, apperrors.NewTransportError("graph store unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.observe("select", "unexpected_status", start)
		payload := readErrorPayload(resp.Body)
		c.logger.Warn("unexpected status from store query",
			zap.Int("status", resp.StatusCode),
			zap.String("payload", payload),
		)
		return nil, apperrors.NewUpstreamError(resp.StatusCode, payload)
	}

	var rs sparql.ResultSet
	if err := json.NewDecoder(resp.Body).Decode(&rs); err != nil {
		c.observe("select", "decode_error", start)
		return nil, apperrors.NewTransportError("malformed result document from graph store", err)
	}

	c.observe("select", "ok", start)
	return &rs, nil
}

func (c *Client) observe(operation, outcome string, start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.StoreRequests.WithLabelValues(operation, outcome).Inc()
	c.metrics.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func readErrorPayload(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	return string(body)
}
