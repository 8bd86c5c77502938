package main

import (
	"strings"

	"payeer-go/client/payeer"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the wallet balance",
	Args:  cobra.NoArgs,
	RunE:  runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	client, err := newPayeerClient()
	if err != nil {
		return err
	}
	balances, err := client.Balance(cmd.Context())
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")
	printHeader("Balance of %s", client.Account())
	for _, cur := range sortedKeys(balances) {
		balance := balances[cur]
		if !all && balance.Total.IsZero() {
			continue
		}
		printRow(cur, "%s (available %s)", balance.Total.String(), balance.Available.String())
	}
	return nil
}

var checkUserCmd = &cobra.Command{
	Use:   "check-user [account]",
	Short: "Check that a Payeer account exists",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		exists, err := client.CheckUser(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printResult(exists, args[0]+" exists", args[0]+" does not exist")
		return nil
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates",
	Short: "Show automatic conversion rates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		direction := payeer.RATE_DEPOSIT
		if withdrawal, _ := cmd.Flags().GetBool("withdrawal"); withdrawal {
			direction = payeer.RATE_WITHDRAWAL
		}
		rates, err := client.ExchangeRate(cmd.Context(), direction)
		if err != nil {
			return err
		}
		printHeader("Conversion rates")
		for _, pair := range sortedKeys(rates) {
			printRow(pair, "%s", rates[pair].String())
		}
		return nil
	},
}

var paySystemsCmd = &cobra.Command{
	Use:   "paysystems",
	Short: "List payment systems available for payouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		list, err := client.PaySystems(cmd.Context())
		if err != nil {
			return err
		}
		printHeader("Payment systems")
		for _, id := range sortedKeys(list) {
			ps := list[id]
			currencies := make([]string, len(ps.Currencies))
			for i, cur := range ps.Currencies {
				currencies[i] = cur.String()
			}
			printRow(id, "%s [%s]", ps.Name, strings.Join(currencies, ", "))
		}
		return nil
	},
}

var historyInfoCmd = &cobra.Command{
	Use:   "history-info [id]",
	Short: "Show a single transaction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		info, err := client.HistoryInfo(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printResponse(info)
		return nil
	},
}

var shopOrderCmd = &cobra.Command{
	Use:   "shop-order [shop id] [order id]",
	Short: "Show a store transaction",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newPayeerClient()
		if err != nil {
			return err
		}
		resp, err := client.ShopOrderInfo(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printResponse(resp)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List account transactions",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	client, err := newPayeerClient()
	if err != nil {
		return err
	}
	req := &payeer.HistoryRequest{}
	sort, _ := cmd.Flags().GetString("sort")
	req.Sort = payeer.SortOrder(sort)
	req.Count, _ = cmd.Flags().GetInt("count")
	kind, _ := cmd.Flags().GetString("type")
	req.Type = payeer.HistoryType(kind)
	req.Append, _ = cmd.Flags().GetString("append")
	if req.From, err = parseTimeFlag(cmd, "from"); err != nil {
		return err
	}
	if req.To, err = parseTimeFlag(cmd, "to"); err != nil {
		return err
	}
	history, err := client.History(cmd.Context(), req)
	if err != nil {
		return err
	}
	printResponse(history)
	return nil
}

func init() {
	balanceCmd.Flags().Bool("all", false, "include zero balances")
	ratesCmd.Flags().Bool("withdrawal", false, "show withdrawal rates instead of deposit rates")
	historyCmd.Flags().String("sort", "", "sorting by date: asc or desc")
	historyCmd.Flags().Int("count", 0, "number of records, up to 1000")
	historyCmd.Flags().String("from", "", "period start, YYYY-MM-DD HH:MM:SS")
	historyCmd.Flags().String("to", "", "period end, YYYY-MM-DD HH:MM:SS")
	historyCmd.Flags().String("type", "", "incoming or outgoing")
	historyCmd.Flags().String("append", "", "ID of the previous transaction")
}
