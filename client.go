package docaroo

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultBaseURL is the production Care Navigation API gateway.
	DefaultBaseURL = "https://care-navigation-gateway-ccg16t89.wl.gateway.dev"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	// defaultUserAgent identifies this library on outbound requests.
	defaultUserAgent = "docaroo-go/1.0"

	// tracerName is the instrumentation scope for spans emitted by the client.
	tracerName = "github.com/docaroo/docaroo-go"
)

// Client is the Care Navigation API client. It is safe for concurrent use;
// every call is an independent request on the shared HTTP client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	userAgent  string
	tracer     trace.Tracer
}

// ClientOption allows configuration of the Client.
type ClientOption func(*Client)

// NewClient creates a new Care Navigation API client with optional
// configuration.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	client := &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	if client.tracer == nil {
		client.tracer = otel.Tracer(tracerName)
	}

	return client
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL sets a custom base URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider used for request
// spans. By default the global provider is used.
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(c *Client) {
		c.tracer = tp.Tracer(tracerName)
	}
}

// BaseURL returns the base URL the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Pricing returns the accessor for in-network rate operations.
func (c *Client) Pricing() *PricingClient {
	return &PricingClient{client: c}
}

// Procedures returns the accessor for procedure likelihood operations.
func (c *Client) Procedures() *ProceduresClient {
	return &ProceduresClient{client: c}
}

// buildURL joins an endpoint path onto the base URL and appends the API key.
// The gateway authenticates via the key query parameter.
func (c *Client) buildURL(endpoint string) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", invalidRequestf("invalid base URL %q: %v", c.baseURL, err)
	}

	u := base.JoinPath(endpoint)
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// post performs one authenticated POST and decodes the response into result.
// Exactly one outbound request is made; retries are the caller's decision.
func (c *Client) post(ctx context.Context, spanName, endpoint string, body, result any, attrs ...attribute.KeyValue) error {
	ctx, span := c.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attrs...),
	)
	defer span.End()

	err := c.doPost(ctx, span, endpoint, body, result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// doPost is the single-shot request path: serialize, send, classify or decode.
func (c *Client) doPost(ctx context.Context, span trace.Span, endpoint string, body, result any) error {
	apiURL, err := c.buildURL(endpoint)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return invalidRequestf("failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(payload))
	if err != nil {
		return invalidRequestf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkError(err)
	}

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return classifyResponse(resp.StatusCode, resp.Header, respBody)
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return deserializationError(err)
	}

	return nil
}
