package merchant

import (
	"net/url"

	"payeer-go/client/payeer"

	"github.com/shopspring/decimal"
)

const StatusSuccess = "success"

// Notification is the form Payeer posts to the shop's status URL.
type Notification struct {
	OperationId      string
	OperationPs      string
	OperationDate    string
	OperationPayDate string
	ShopId           string
	OrderId          string
	// Amount is kept as sent, it is part of the signature
	Amount      string
	Currency    payeer.Currency
	Description string
	Status      string
	Params      string
	Sign        string
}

func ParseNotification(form url.Values) *Notification {
	return &Notification{
		OperationId:      form.Get("m_operation_id"),
		OperationPs:      form.Get("m_operation_ps"),
		OperationDate:    form.Get("m_operation_date"),
		OperationPayDate: form.Get("m_operation_pay_date"),
		ShopId:           form.Get("m_shop"),
		OrderId:          form.Get("m_orderid"),
		Amount:           form.Get("m_amount"),
		Currency:         payeer.Currency(form.Get("m_curr")),
		Description:      form.Get("m_desc"),
		Status:           form.Get("m_status"),
		Params:           form.Get("m_params"),
		Sign:             form.Get("m_sign"),
	}
}

func (n *Notification) AmountDecimal() (decimal.Decimal, error) {
	return decimal.NewFromString(n.Amount)
}

// m_params takes part in the signature only when it was sent.
func (n *Notification) signParts() []string {
	parts := []string{
		n.OperationId,
		n.OperationPs,
		n.OperationDate,
		n.OperationPayDate,
		n.ShopId,
		n.OrderId,
		n.Amount,
		string(n.Currency),
		n.Description,
		n.Status,
	}
	if n.Params != "" {
		parts = append(parts, n.Params)
	}
	return parts
}
