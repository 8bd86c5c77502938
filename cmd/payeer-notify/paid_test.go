package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"payeer-go/client/payeer"
	"payeer-go/client/payeer/merchant"
	"payeer-go/config"

	"github.com/stretchr/testify/require"
)

func newOrderApi(t *testing.T, body string) (*payeer.Client, chan url.Values) {
	t.Helper()
	forms := make(chan url.Values, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(raw))
		forms <- form
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	client := payeer.NewClient(&payeer.Config{
		Account: "P1000000",
		ApiId:   "12345",
		ApiPass: "secret",
		BaseUrl: srv.URL,
	})
	return client, forms
}

func paidNotification() *merchant.Notification {
	return &merchant.Notification{ShopId: "12345", OrderId: "order-1", Amount: "10.00", Currency: payeer.CURRENCY_USD, Status: merchant.StatusSuccess}
}

func TestConfirmOrder(t *testing.T) {
	t.Run("executed", func(t *testing.T) {
		client, forms := newOrderApi(t, `{"auth_error":"0","errors":[],"info":{"status":"execute"}}`)

		err := confirmOrder(client)(context.Background(), paidNotification())
		require.NoError(t, err)
		form := <-forms
		require.Equal(t, "shopOrderInfo", form.Get("action"))
		require.Equal(t, "12345", form.Get("shopId"))
		require.Equal(t, "order-1", form.Get("orderId"))
	})

	t.Run("not executed", func(t *testing.T) {
		client, _ := newOrderApi(t, `{"auth_error":"0","errors":[],"info":{"status":"new"}}`)

		err := confirmOrder(client)(context.Background(), paidNotification())
		require.ErrorIs(t, err, merchant.ErrNotPaid)
	})

	t.Run("unknown order", func(t *testing.T) {
		client, _ := newOrderApi(t, `{"auth_error":"0","errors":["Order not found"]}`)

		err := confirmOrder(client)(context.Background(), paidNotification())
		require.True(t, payeer.IsAPIError(err))
	})
}

func TestNewPaidFuncWithoutCredentials(t *testing.T) {
	paid := newPaidFunc(&config.Config{})
	require.NoError(t, paid(context.Background(), paidNotification()))
}
