package main

import (
	"fmt"
	"time"

	"payeer-go/client/payeer"
	"payeer-go/client/payeer/merchant"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var transferCmd = &cobra.Command{
	Use:   "transfer [to] [sum]",
	Short: "Transfer funds to another Payeer account",
	Long: `Transfer funds to another Payeer account or email.

The sum is the amount withdrawn; the amount deposited is calculated by Payeer
with all fees.

Examples:
  payeer transfer P1000001 10
  payeer transfer user@example.com 5.25 --cur-in EUR --cur-out USD
  payeer transfer P1000001 100 --protect --protect-period 7 --protect-code 1234`,
	Args: cobra.ExactArgs(2),
	RunE: runTransfer,
}

func runTransfer(cmd *cobra.Command, args []string) error {
	client, err := newPayeerClient()
	if err != nil {
		return err
	}
	sum, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid sum %q: %w", args[1], err)
	}
	req := &payeer.TransferRequest{
		Sum:    sum,
		To:     args[0],
		CurIn:  currencyFlag(cmd, "cur-in"),
		CurOut: currencyFlag(cmd, "cur-out"),
	}
	req.Comment, _ = cmd.Flags().GetString("comment")
	req.Protect, _ = cmd.Flags().GetBool("protect")
	req.ProtectPeriod, _ = cmd.Flags().GetInt("protect-period")
	req.ProtectCode, _ = cmd.Flags().GetString("protect-code")

	resp, err := client.Transfer(cmd.Context(), req)
	if err != nil {
		return err
	}
	okColor.Println("Transfer completed")
	printResponse(resp)
	return nil
}

var checkOutputCmd = &cobra.Command{
	Use:   "check-output [ps] [account] [sum]",
	Short: "Check that a payout is possible without creating it",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		req, err := outputRequest(cmd, args)
		if err != nil {
			return err
		}
		ok, err := client.CheckOutput(cmd.Context(), req)
		if err != nil {
			return err
		}
		printResult(ok, "Payout is possible", "Payout is not possible")
		return nil
	},
}

var outputCmd = &cobra.Command{
	Use:   "output [ps] [account] [sum]",
	Short: "Pay out to an external payment system",
	Long: `Pay out to an external payment system.

ps is the payment system ID (see "payeer paysystems"), account the recipient's
account number in that system.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		req, err := outputRequest(cmd, args)
		if err != nil {
			return err
		}
		resp, err := client.Output(cmd.Context(), req)
		if err != nil {
			return err
		}
		okColor.Println("Payout created")
		printResponse(resp)
		return nil
	},
}

var payUrlCmd = &cobra.Command{
	Use:   "pay-url [order id] [amount]",
	Short: "Build a merchant payment link",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newMerchant()
		if err != nil {
			return err
		}
		amount, err := decimal.NewFromString(args[1])
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", args[1], err)
		}
		description, _ := cmd.Flags().GetString("desc")
		fmt.Println(m.PaymentUrl(&merchant.PaymentForm{
			OrderId:     args[0],
			Amount:      amount,
			Currency:    currencyFlag(cmd, "currency"),
			Description: description,
		}))
		return nil
	},
}

func outputRequest(cmd *cobra.Command, args []string) (*payeer.OutputRequest, error) {
	sum, err := decimal.NewFromString(args[2])
	if err != nil {
		return nil, fmt.Errorf("invalid sum %q: %w", args[2], err)
	}
	return &payeer.OutputRequest{
		Ps:      args[0],
		Account: args[1],
		SumIn:   sum,
		CurIn:   currencyFlag(cmd, "cur-in"),
		CurOut:  currencyFlag(cmd, "cur-out"),
	}, nil
}

func currencyFlag(cmd *cobra.Command, name string) payeer.Currency {
	value, _ := cmd.Flags().GetString(name)
	return payeer.Currency(value)
}

func parseTimeFlag(cmd *cobra.Command, name string) (time.Time, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(time.DateTime, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return t, nil
}

func init() {
	for _, cmd := range []*cobra.Command{transferCmd, checkOutputCmd, outputCmd} {
		cmd.Flags().String("cur-in", "USD", "withdrawal currency")
		cmd.Flags().String("cur-out", "USD", "deposit currency")
	}
	transferCmd.Flags().String("comment", "", "comment on the transfer")
	transferCmd.Flags().Bool("protect", false, "enable transaction protection")
	transferCmd.Flags().Int("protect-period", 0, "protection period, 1-30 days")
	transferCmd.Flags().String("protect-code", "", "protection code")
	payUrlCmd.Flags().String("currency", "USD", "payment currency")
	payUrlCmd.Flags().String("desc", "", "payment description")
}
