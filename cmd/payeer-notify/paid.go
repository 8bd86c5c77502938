package main

import (
	"context"
	"log/slog"

	"payeer-go/client/payeer"
	"payeer-go/client/payeer/merchant"
	"payeer-go/config"

	"github.com/pkg/errors"
)

// orderExecuted is the shopOrderInfo status of a completed payment.
const orderExecuted = "execute"

// newPaidFunc confirms notifications with the account API when credentials
// are configured, otherwise it only logs.
func newPaidFunc(conf *config.Config) merchant.PaidFunc {
	if conf.CheckCredentials() != nil {
		return func(ctx context.Context, n *merchant.Notification) error {
			slog.Info("[PayeerNotify] Order paid", "order", n.OrderId, "amount", n.Amount, "currency", n.Currency)
			return nil
		}
	}
	return confirmOrder(payeer.NewClient(&payeer.Config{
		Account: conf.Account,
		ApiId:   conf.ApiId,
		ApiPass: conf.ApiPass,
		BaseUrl: conf.ApiUrl,
		Timeout: conf.Timeout,
	}))
}

// confirmOrder accepts a notification only if shopOrderInfo succeeds for its
// order and the reported order status, when present, is "execute".
func confirmOrder(client *payeer.Client) merchant.PaidFunc {
	return func(ctx context.Context, n *merchant.Notification) error {
		info, err := client.ShopOrderInfo(ctx, n.ShopId, n.OrderId)
		if err != nil {
			return err
		}
		if status := info.Get("info.status"); status.Exists() && status.String() != orderExecuted {
			return errors.Wrapf(merchant.ErrNotPaid, "order %s is %q", n.OrderId, status.String())
		}
		slog.Info("[PayeerNotify] Order paid", "order", n.OrderId, "amount", n.Amount, "currency", n.Currency, "info", info.String())
		return nil
	}
}
