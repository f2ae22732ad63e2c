package downstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"netanyaRelay/internal/domain"
	"netanyaRelay/internal/formdata"
	"netanyaRelay/pkg/e"
)

const (
	DefaultEndpoint = "https://www.netanya.muni.il/_layouts/15/NetanyaMuni/incidents.ashx?method=CreateNewIncident"
	DefaultTimeout  = 30 * time.Second

	maxResponseBytes = 1 << 20
)

type Config struct {
	Endpoint string
	Timeout  time.Duration
	Proxy    ProxyConfig
}

// Client posts incidents to the ticketing endpoint. Exactly one request is
// made per Send; it never retries.
type Client struct {
	logger   *slog.Logger
	endpoint string
	http     *resty.Client
}

func New(cfg Config, logger *slog.Logger) (*Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("downstream endpoint: %w", e.ErrInvalidConfig)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	proxy, err := proxyFunc(cfg.Proxy)
	if err != nil {
		return nil, e.Wrap("downstream proxy", err)
	}
	transport.Proxy = proxy

	rc := resty.New().
		SetTransport(transport).
		SetTimeout(cfg.Timeout).
		SetRetryCount(0).
		SetResponseBodyLimit(maxResponseBytes).
		SetLogger(slogAdapter{logger.With(slog.String("component", "resty"))})

	return &Client{
		logger:   logger,
		endpoint: cfg.Endpoint,
		http:     rc,
	}, nil
}

type wireResponse struct {
	ResultCode       *int   `json:"ResultCode"`
	ErrorDescription string `json:"ErrorDescription"`
	ResultStatus     string `json:"ResultStatus"`
	Data             string `json:"data"`
}

// Send posts the prepared form. Cancelling ctx aborts the in-flight call; the
// outcome on the municipality side is then unknown.
func (c *Client) Send(ctx context.Context, req *formdata.Request) (*domain.DownstreamResponse, error) {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeaderMultiValues(req.Header).
		SetBody(req.Body).
		Post(c.endpoint)
	latency := time.Since(start)

	if err != nil {
		if errors.Is(err, resty.ErrResponseBodyTooLarge) {
			return nil, &Error{Kind: KindProtocol, StatusCode: statusOf(resp), Detail: "response body too large", Cause: err}
		}
		c.logger.Warn("downstream call failed",
			slog.Duration("latency", latency),
			slog.String("error", err.Error()),
		)
		return nil, &Error{
			Kind:   KindUnavailable,
			Detail: err.Error(),
			Cause:  e.WrapError(ctx, "downstream.Send", err),
		}
	}

	c.logger.Info("downstream responded",
		slog.Int("status", resp.StatusCode()),
		slog.Int("bytes", len(resp.Body())),
		slog.Duration("latency", latency),
	)

	return parseResponse(resp.StatusCode(), resp.Body())
}

func parseResponse(status int, body []byte) (*domain.DownstreamResponse, error) {
	if status < 200 || status > 299 {
		return nil, &Error{
			Kind:       KindRejected,
			StatusCode: status,
			Body:       truncate(body),
			Detail:     http.StatusText(status),
		}
	}

	var wire wireResponse
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, &Error{Kind: KindProtocol, StatusCode: status, Body: truncate(body), Detail: "invalid json", Cause: err}
	}
	if wire.ResultCode == nil {
		return nil, &Error{Kind: KindProtocol, StatusCode: status, Body: truncate(body), Detail: "ResultCode missing"}
	}

	out := &domain.DownstreamResponse{
		ResultCode:       *wire.ResultCode,
		ErrorDescription: wire.ErrorDescription,
		ResultStatus:     wire.ResultStatus,
		Data:             wire.Data,
	}

	if out.ResultCode != domain.ResultCodeOK || strings.Contains(strings.ToUpper(out.ResultStatus), "ERROR") {
		return nil, &Error{
			Kind:       KindRejected,
			StatusCode: status,
			ResultCode: out.ResultCode,
			Body:       truncate(body),
			Detail:     fmt.Sprintf("result %d %s: %s", out.ResultCode, out.ResultStatus, out.ErrorDescription),
		}
	}
	if strings.TrimSpace(out.Data) == "" {
		return nil, &Error{Kind: KindProtocol, StatusCode: status, ResultCode: out.ResultCode, Body: truncate(body), Detail: "ticket id missing"}
	}
	return out, nil
}

// Probe sends a HEAD to the endpoint and reports the HTTP status. It is used
// by the health worker and never creates a ticket.
func (c *Client) Probe(ctx context.Context) (int, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", formdata.UserAgent).
		Head(c.endpoint)
	if err != nil {
		return 0, e.WrapError(ctx, "downstream.Probe", err)
	}
	return resp.StatusCode(), nil
}

func statusOf(resp *resty.Response) int {
	if resp == nil || resp.RawResponse == nil {
		return 0
	}
	return resp.StatusCode()
}

type slogAdapter struct {
	l *slog.Logger
}

func (a slogAdapter) Errorf(format string, v ...interface{}) {
	a.l.Error(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (a slogAdapter) Warnf(format string, v ...interface{}) {
	a.l.Warn(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (a slogAdapter) Debugf(format string, v ...interface{}) {
	a.l.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
