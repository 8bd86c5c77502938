package merchant

import (
	"crypto/subtle"
	"encoding/base64"
	"net/url"

	"payeer-go/client/payeer"
	"payeer-go/signer"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

const merchantUrl = "https://payeer.com/merchant/"

var (
	ErrInvalidSign = errors.New("payeer merchant: invalid signature")
	ErrWrongShop   = errors.New("payeer merchant: notification for another shop")
	ErrNotPaid     = errors.New("payeer merchant: payment is not successful")
)

type Config struct {
	// Merchant ID (m_shop)
	ShopId string
	// Secret key from the merchant settings
	Key string
}

type Merchant struct {
	config *Config
}

func New(config *Config) *Merchant {
	return &Merchant{config: config}
}

type PaymentForm struct {
	// Order ID in the shop's accounting system (m_orderid)
	OrderId     string
	Amount      decimal.Decimal
	Currency    payeer.Currency
	Description string
}

func (f *PaymentForm) amount() string {
	return f.Amount.StringFixed(2)
}

func (f *PaymentForm) description() string {
	return base64.StdEncoding.EncodeToString([]byte(f.Description))
}

// Sign returns m_sign for the payment form.
func (m *Merchant) Sign(form *PaymentForm) string {
	return signer.Sign(m.config.Key,
		m.config.ShopId,
		form.OrderId,
		form.amount(),
		string(form.Currency),
		form.description(),
	)
}

// PaymentUrl returns the link that sends the buyer to the Payeer payment page.
func (m *Merchant) PaymentUrl(form *PaymentForm) string {
	query := url.Values{
		"m_shop":    {m.config.ShopId},
		"m_orderid": {form.OrderId},
		"m_amount":  {form.amount()},
		"m_curr":    {string(form.Currency)},
		"m_desc":    {form.description()},
		"m_sign":    {m.Sign(form)},
	}
	return merchantUrl + "?" + query.Encode()
}

// Verify checks the signature of a status notification and that it reports a
// completed payment to this shop.
func (m *Merchant) Verify(n *Notification) error {
	expected := signer.Sign(m.config.Key, n.signParts()...)
	if subtle.ConstantTimeCompare([]byte(expected), []byte(n.Sign)) != 1 {
		return ErrInvalidSign
	}
	if n.ShopId != m.config.ShopId {
		return ErrWrongShop
	}
	if n.Status != StatusSuccess {
		return ErrNotPaid
	}
	return nil
}
