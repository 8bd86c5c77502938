package payeer

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const formContentType = "application/x-www-form-urlencoded"

// Request performs a raw API call. The credentials go first, then the action,
// then params; a param with the same key replaces an earlier value.
// The response is returned as received unless its "errors" field is set, in
// which case an *APIError is returned.
func (p *Client) Request(ctx context.Context, action string, params url.Values) (*Response, error) {
	form := p.authForm()
	form.Set("action", action)
	for key, values := range params {
		form[key] = values
	}

	requestId := uuid.NewString()
	slog.Debug("[PayeerClient] Sending request", "id", requestId, "action", action)

	fastResp, err := p.httpClient.
		POST(apiPath).
		Context().Set(ctx).
		Header().Add("Content-Type", formContentType).
		Body().AsString(form.Encode()).
		Send()
	if err != nil {
		slog.Error("[PayeerClient] Request failed", "id", requestId, "action", action, "error", err)
		return nil, errors.Wrapf(err, "payeer: %s", action)
	}
	text, err := fastResp.Body().AsString()
	if err != nil {
		return nil, errors.Wrapf(err, "payeer: %s: read body", action)
	}
	if fastResp.Status().IsError() {
		slog.Error("[PayeerClient] HTTP error", "id", requestId, "action", action, "status", fastResp.Status().Code())
		return nil, &HTTPError{StatusCode: fastResp.Status().Code(), Body: text}
	}

	resp, err := parseResponse([]byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, "payeer: %s", action)
	}
	if apiErr := resp.apiError(); apiErr != nil {
		slog.Debug("[PayeerClient] API error", "id", requestId, "action", action, "errors", apiErr.Messages)
		return nil, apiErr
	}
	slog.Debug("[PayeerClient] Received response", "id", requestId, "action", action, "bytes", len(text))
	return resp, nil
}

func (p *Client) authForm() url.Values {
	form := url.Values{}
	form.Set("account", p.config.Account)
	form.Set("apiId", p.config.ApiId)
	form.Set("apiPass", p.config.ApiPass)
	return form
}

// requestField calls action and returns the named top-level field of the response.
func (p *Client) requestField(ctx context.Context, action string, params url.Values, key string) (*Response, error) {
	resp, err := p.Request(ctx, action, params)
	if err != nil {
		return nil, err
	}
	return resp.Field(key)
}
