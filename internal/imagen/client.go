// Package imagen is a thin client for the Vertex AI Imagen predict
// endpoint. Every call is a single attempt: failures are reported to the
// caller as typed errors, never retried.
package imagen

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultLocation = "us-central1"
	defaultModel    = "imagen-4.0-ultra-generate-001"

	generateTimeout = 120 * time.Second
	editTimeout     = 180 * time.Second
)

var (
	// ErrNoCredentials is returned when the client was constructed
	// without a usable token provider. Callers may detect it and fall
	// back to a placeholder result.
	ErrNoCredentials = errors.New("imagen: no credentials available")

	// ErrNoPredictions is returned on an HTTP 200 response whose
	// predictions list is empty.
	ErrNoPredictions = errors.New("imagen: no predictions returned")
)

// RequestError reports a non-200 vendor response verbatim.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("imagen: request failed: %d - %s", e.StatusCode, e.Body)
}

// TransportError wraps a network or timeout fault raised during the call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "imagen: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// TokenProvider yields a bearer token for each request. Implementations
// refresh expired tokens before returning them.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

type Options struct {
	ProjectID  string
	Location   string
	Model      string
	BaseURL    string // overrides the regional endpoint, for tests
	Tokens     TokenProvider
	HTTPClient *http.Client
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	tokens     TokenProvider
}

// NewClient builds a client for one model in one project/location. A nil
// token provider is allowed; calls then fail with ErrNoCredentials.
func NewClient(opts Options) *Client {
	location := opts.Location
	if location == "" {
		location = defaultLocation
	}
	model := opts.Model
	if model == "" {
		model = defaultModel
	}
	base := strings.TrimRight(opts.BaseURL, "/")
	if base == "" {
		base = fmt.Sprintf("https://%s-aiplatform.googleapis.com/v1", location)
	}
	endpoint := fmt.Sprintf("%s/projects/%s/locations/%s/publishers/google/models/%s:predict",
		base, opts.ProjectID, location, model)

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{httpClient: httpClient, endpoint: endpoint, tokens: opts.Tokens}
}

type encodedImage struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
}

type predictInstance struct {
	Prompt string        `json:"prompt"`
	Image  *encodedImage `json:"image,omitempty"`
	Mask   *encodedImage `json:"mask,omitempty"`
}

type outputOptions struct {
	MIMEType           string `json:"mimeType"`
	CompressionQuality string `json:"compressionQuality"`
}

type editConfig struct {
	EditMode      string `json:"editMode"`
	GuidanceScale int    `json:"guidanceScale"`
}

type predictParameters struct {
	SampleCount       int            `json:"sampleCount"`
	AspectRatio       string         `json:"aspectRatio,omitempty"`
	SafetyFilterLevel string         `json:"safetyFilterLevel,omitempty"`
	PersonGeneration  string         `json:"personGeneration,omitempty"`
	OutputOptions     *outputOptions `json:"outputOptions,omitempty"`
	EditConfig        *editConfig    `json:"editConfig,omitempty"`
}

type predictRequest struct {
	Instances  []predictInstance  `json:"instances"`
	Parameters *predictParameters `json:"parameters,omitempty"`
}

type prediction struct {
	BytesBase64Encoded string         `json:"bytesBase64Encoded"`
	Metadata           map[string]any `json:"metadata"`
}

type predictResponse struct {
	Predictions []prediction `json:"predictions"`
}

// Result carries the first prediction of a successful call.
type Result struct {
	ImageBase64 string
	Metadata    map[string]any
}

// Generate sends one synchronous predict request. A non-nil baseImage
// switches the request into edit mode with the longer timeout; mask is
// only meaningful alongside a base image.
func (c *Client) Generate(ctx context.Context, prompt string, baseImage, mask []byte) (*Result, error) {
	if c == nil || c.tokens == nil {
		return nil, ErrNoCredentials
	}

	inst := predictInstance{Prompt: prompt}
	params := &predictParameters{
		SampleCount:       1,
		AspectRatio:       "1:1",
		SafetyFilterLevel: "block_some",
		PersonGeneration:  "allow_adult",
		OutputOptions:     &outputOptions{MIMEType: "image/png", CompressionQuality: "lossless"},
	}
	timeout := generateTimeout
	if len(baseImage) > 0 {
		inst.Image = &encodedImage{BytesBase64Encoded: base64.StdEncoding.EncodeToString(baseImage)}
		params.EditConfig = &editConfig{EditMode: "inpainting-replace", GuidanceScale: 120}
		timeout = editTimeout
	}
	if len(mask) > 0 {
		inst.Mask = &encodedImage{BytesBase64Encoded: base64.StdEncoding.EncodeToString(mask)}
	}

	resp, err := c.predict(ctx, predictRequest{Instances: []predictInstance{inst}, Parameters: params}, timeout)
	if err != nil {
		return nil, err
	}
	if len(resp.Predictions) == 0 {
		return nil, ErrNoPredictions
	}
	first := resp.Predictions[0]
	return &Result{ImageBase64: first.BytesBase64Encoded, Metadata: first.Metadata}, nil
}

// ValidateConnection fires a minimal request and reports whether the
// endpoint answered 200. Used only as a health probe.
func (c *Client) ValidateConnection(ctx context.Context) bool {
	if c == nil || c.tokens == nil {
		return false
	}
	req := predictRequest{
		Instances:  []predictInstance{{Prompt: "A simple test image"}},
		Parameters: &predictParameters{SampleCount: 1, AspectRatio: "1:1"},
	}
	_, err := c.predict(ctx, req, 30*time.Second)
	return err == nil || errors.Is(err, ErrNoPredictions)
}

func (c *Client) predict(ctx context.Context, payload predictRequest, timeout time.Duration) (*predictResponse, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	var out predictResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, &TransportError{Err: err}
	}
	return &out, nil
}
