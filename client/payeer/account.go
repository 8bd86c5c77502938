package payeer

import (
	"context"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Balance returns the wallet balance per currency.
func (p *Client) Balance(ctx context.Context) (map[string]Balance, error) {
	resp, err := p.Request(ctx, actionBalance, nil)
	if err != nil {
		return nil, err
	}
	data := map[string]Balance{}
	if err := resp.decodeCollection("balance", &data); err != nil {
		return nil, errors.Wrapf(err, "payeer: %s", actionBalance)
	}
	return data, nil
}

// CheckUser reports whether user (format P1000000) exists. Any error reported
// by the API counts as "does not exist"; transport errors are returned.
func (p *Client) CheckUser(ctx context.Context, user string) (bool, error) {
	_, err := p.Request(ctx, actionCheckUser, url.Values{"user": {user}})
	if IsAPIError(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ExchangeRate returns the automatic conversion rates keyed by "FROM/TO".
// An empty direction means deposit rates.
func (p *Client) ExchangeRate(ctx context.Context, direction RateDirection) (map[string]decimal.Decimal, error) {
	if direction == "" {
		direction = RATE_DEPOSIT
	}
	resp, err := p.Request(ctx, actionGetExchangeRate, url.Values{"output": {string(direction)}})
	if err != nil {
		return nil, err
	}
	rates := map[string]decimal.Decimal{}
	if err := resp.decodeCollection("rate", &rates); err != nil {
		return nil, errors.Wrapf(err, "payeer: %s", actionGetExchangeRate)
	}
	return rates, nil
}

// PaySystems returns the payment systems available for payouts, keyed by ID.
func (p *Client) PaySystems(ctx context.Context) (map[string]PaySystem, error) {
	resp, err := p.Request(ctx, actionGetPaySystems, nil)
	if err != nil {
		return nil, err
	}
	list := map[string]PaySystem{}
	if err := resp.decodeCollection("list", &list); err != nil {
		return nil, errors.Wrapf(err, "payeer: %s", actionGetPaySystems)
	}
	return list, nil
}

// HistoryInfo returns the "info" document of a single transaction.
func (p *Client) HistoryInfo(ctx context.Context, historyId string) (*Response, error) {
	return p.requestField(ctx, actionHistoryInfo, url.Values{"historyId": {historyId}}, "info")
}

// ShopOrderInfo returns information on a store transaction. shopId is the
// merchant ID (m_shop), orderId the transaction ID in the merchant's
// accounting system (m_orderid).
func (p *Client) ShopOrderInfo(ctx context.Context, shopId string, orderId string) (*Response, error) {
	return p.Request(ctx, actionShopOrderInfo, url.Values{
		"shopId":  {shopId},
		"orderId": {orderId},
	})
}

type HistoryRequest struct {
	Sort SortOrder
	// Up to HistoryMaxCount records; zero leaves it to the API. Larger
	// values are rejected with ErrCountTooLarge before anything is sent.
	Count int
	From  time.Time
	To    time.Time
	Type  HistoryType
	// ID of the previous transaction, for paging
	Append string
}

func (r *HistoryRequest) form() (url.Values, error) {
	form := url.Values{}
	if r == nil {
		return form, nil
	}
	if r.Count > HistoryMaxCount {
		return nil, errors.Wrapf(ErrCountTooLarge, "count %d", r.Count)
	}
	setIfNotEmpty(form, "sort", string(r.Sort))
	setIfPositive(form, "count", r.Count)
	if !r.From.IsZero() {
		form.Set("from", r.From.Format(historyDateLayout))
	}
	if !r.To.IsZero() {
		form.Set("to", r.To.Format(historyDateLayout))
	}
	setIfNotEmpty(form, "type", string(r.Type))
	setIfNotEmpty(form, "append", r.Append)
	return form, nil
}

// History returns the "history" document of the account's transactions.
func (p *Client) History(ctx context.Context, req *HistoryRequest) (*Response, error) {
	form, err := req.form()
	if err != nil {
		return nil, err
	}
	return p.requestField(ctx, actionHistory, form, "history")
}
