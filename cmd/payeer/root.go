package main

import (
	"log/slog"

	"payeer-go/client/payeer"
	"payeer-go/client/payeer/merchant"
	"payeer-go/config"

	"github.com/spf13/cobra"
)

var (
	envFile string
	verbose bool

	conf *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "payeer",
	Short: "Command-line client for the Payeer account API",
	Long: `Calls the Payeer account API with the credentials taken from the
environment (PAYEER_ACCOUNT, PAYEER_API_ID, PAYEER_API_PASS) or a .env file.

Examples:
  payeer balance
  payeer rates --withdrawal
  payeer transfer P1000001 10.50 --cur-in USD --comment "invoice 42"
  payeer history --count 20 --type incoming`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file to load")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(checkUserCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(paySystemsCmd)
	rootCmd.AddCommand(historyInfoCmd)
	rootCmd.AddCommand(shopOrderCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(transferCmd)
	rootCmd.AddCommand(checkOutputCmd)
	rootCmd.AddCommand(outputCmd)
	rootCmd.AddCommand(payUrlCmd)
}

func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	conf, err = config.Read(envFile)
	if err != nil {
		return err
	}
	level := conf.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
	return nil
}

func newPayeerClient() (*payeer.Client, error) {
	if err := conf.CheckCredentials(); err != nil {
		return nil, err
	}
	return payeer.NewClient(&payeer.Config{
		Account: conf.Account,
		ApiId:   conf.ApiId,
		ApiPass: conf.ApiPass,
		BaseUrl: conf.ApiUrl,
		Timeout: conf.Timeout,
	}), nil
}

func newMerchant() (*merchant.Merchant, error) {
	if err := conf.CheckShop(); err != nil {
		return nil, err
	}
	return merchant.New(&merchant.Config{
		ShopId: conf.ShopId,
		Key:    conf.ShopKey,
	}), nil
}
