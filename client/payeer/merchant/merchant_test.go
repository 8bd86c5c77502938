package merchant

import (
	"encoding/base64"
	"net/url"
	"strings"
	"testing"

	"payeer-go/client/payeer"
	"payeer-go/signer"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testMerchant() *Merchant {
	return New(&Config{ShopId: "12345", Key: "secret"})
}

func TestPaymentUrl(t *testing.T) {
	m := testMerchant()
	form := &PaymentForm{
		OrderId:     "order-1",
		Amount:      decimal.RequireFromString("10.5"),
		Currency:    payeer.CURRENCY_USD,
		Description: "Order #1",
	}

	link := m.PaymentUrl(form)
	require.True(t, strings.HasPrefix(link, merchantUrl+"?"))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	query := parsed.Query()
	desc := base64.StdEncoding.EncodeToString([]byte("Order #1"))
	require.Equal(t, "12345", query.Get("m_shop"))
	require.Equal(t, "order-1", query.Get("m_orderid"))
	require.Equal(t, "10.50", query.Get("m_amount"))
	require.Equal(t, "USD", query.Get("m_curr"))
	require.Equal(t, desc, query.Get("m_desc"))
	require.Equal(t, signer.Sign("secret", "12345", "order-1", "10.50", "USD", desc), query.Get("m_sign"))
	require.Equal(t, m.Sign(form), query.Get("m_sign"))
}

func signedNotification(key string, status string, params string) url.Values {
	form := url.Values{
		"m_operation_id":       {"1001"},
		"m_operation_ps":       {"2609"},
		"m_operation_date":     {"21.12.2023 10:00:00"},
		"m_operation_pay_date": {"21.12.2023 10:00:05"},
		"m_shop":               {"12345"},
		"m_orderid":            {"order-1"},
		"m_amount":             {"10.50"},
		"m_curr":               {"USD"},
		"m_desc":               {"T3JkZXIgIzE="},
		"m_status":             {status},
	}
	parts := []string{"1001", "2609", "21.12.2023 10:00:00", "21.12.2023 10:00:05", "12345", "order-1", "10.50", "USD", "T3JkZXIgIzE=", status}
	if params != "" {
		form.Set("m_params", params)
		parts = append(parts, params)
	}
	form.Set("m_sign", signer.Sign(key, parts...))
	return form
}

func TestVerify(t *testing.T) {
	m := testMerchant()

	t.Run("success", func(t *testing.T) {
		n := ParseNotification(signedNotification("secret", StatusSuccess, ""))
		require.NoError(t, m.Verify(n))

		amount, err := n.AmountDecimal()
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("10.5").Equal(amount))
	})

	t.Run("with params", func(t *testing.T) {
		n := ParseNotification(signedNotification("secret", StatusSuccess, "encrypted-params"))
		require.NoError(t, m.Verify(n))
	})

	t.Run("wrong key", func(t *testing.T) {
		n := ParseNotification(signedNotification("other", StatusSuccess, ""))
		require.ErrorIs(t, m.Verify(n), ErrInvalidSign)
	})

	t.Run("tampered amount", func(t *testing.T) {
		form := signedNotification("secret", StatusSuccess, "")
		form.Set("m_amount", "1000.00")
		require.ErrorIs(t, m.Verify(ParseNotification(form)), ErrInvalidSign)
	})

	t.Run("failed payment", func(t *testing.T) {
		n := ParseNotification(signedNotification("secret", "fail", ""))
		require.ErrorIs(t, m.Verify(n), ErrNotPaid)
	})

	t.Run("another shop", func(t *testing.T) {
		other := New(&Config{ShopId: "99999", Key: "secret"})
		n := ParseNotification(signedNotification("secret", StatusSuccess, ""))
		require.ErrorIs(t, other.Verify(n), ErrWrongShop)
	})
}
