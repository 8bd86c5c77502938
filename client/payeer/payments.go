package payeer

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/shopspring/decimal"
)

type TransferRequest struct {
	// Amount withdrawn; the amount deposited is calculated by Payeer with all fees
	Sum decimal.Decimal
	// Recipient's Payeer account number or email
	To string
	// Withdrawal currency, USD when empty
	CurIn Currency
	// Deposit currency, USD when empty
	CurOut  Currency
	Comment string
	// Enables transaction protection
	Protect bool
	// Protection period, 1-30 days
	ProtectPeriod int
	ProtectCode   string
}

func (r *TransferRequest) form() url.Values {
	form := url.Values{
		"sum":    {r.Sum.String()},
		"to":     {r.To},
		"curIn":  {r.CurIn.orDefault().String()},
		"curOut": {r.CurOut.orDefault().String()},
	}
	setIfNotEmpty(form, "comment", r.Comment)
	if r.Protect {
		form.Set("protect", "Y")
		setIfPositive(form, "protectPeriod", r.ProtectPeriod)
		setIfNotEmpty(form, "protectCode", r.ProtectCode)
	}
	return form
}

// Transfer moves funds to another Payeer account. The recipient is validated
// before anything is sent; a nil req fails with ErrNilRequest.
func (p *Client) Transfer(ctx context.Context, req *TransferRequest) (*Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	if err := ValidateAccount(req.To); err != nil {
		return nil, err
	}
	resp, err := p.Request(ctx, actionTransfer, req.form())
	if err != nil {
		slog.Error("[PayeerClient] Transfer failed", "to", req.To, "sum", req.Sum.String(), "error", err)
		return nil, err
	}
	slog.Info("[PayeerClient] Transfer sent", "to", req.To, "sum", req.Sum.String(), "curIn", req.CurIn.orDefault())
	return resp, nil
}

type OutputRequest struct {
	// ID of the selected payment system
	Ps string
	// Recipient's account number in the selected payment system
	Account string
	SumIn   decimal.Decimal
	CurIn   Currency
	CurOut  Currency
}

func (r *OutputRequest) form() url.Values {
	return url.Values{
		"ps":                   {r.Ps},
		"param_ACCOUNT_NUMBER": {r.Account},
		"sumIn":                {r.SumIn.String()},
		"curIn":                {r.CurIn.orDefault().String()},
		"curOut":               {r.CurOut.orDefault().String()},
	}
}

// CheckOutput checks that a payout is possible without creating it. Errors
// reported by the API yield false; transport errors are returned.
func (p *Client) CheckOutput(ctx context.Context, req *OutputRequest) (bool, error) {
	if req == nil {
		return false, ErrNilRequest
	}
	_, err := p.Request(ctx, actionInitOutput, req.form())
	if IsAPIError(err) {
		slog.Debug("[PayeerClient] Payout is not possible", "ps", req.Ps, "error", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Output creates a payout to an external payment system.
func (p *Client) Output(ctx context.Context, req *OutputRequest) (*Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}
	resp, err := p.Request(ctx, actionOutput, req.form())
	if err != nil {
		slog.Error("[PayeerClient] Payout failed", "ps", req.Ps, "sumIn", req.SumIn.String(), "error", err)
		return nil, err
	}
	slog.Info("[PayeerClient] Payout created", "ps", req.Ps, "sumIn", req.SumIn.String(), "curIn", req.CurIn.orDefault())
	return resp, nil
}
