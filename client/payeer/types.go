package payeer

import "time"

// API actions
const (
	actionBalance         = "balance"
	actionCheckUser       = "checkUser"
	actionGetExchangeRate = "getExchangeRate"
	actionGetPaySystems   = "getPaySystems"
	actionHistoryInfo     = "historyInfo"
	actionShopOrderInfo   = "shopOrderInfo"
	actionTransfer        = "transfer"
	actionInitOutput      = "initOutput"
	actionOutput          = "output"
	actionHistory         = "history"
)

// Currencies
type Currency string

const (
	CURRENCY_USD  Currency = "USD"
	CURRENCY_EUR  Currency = "EUR"
	CURRENCY_RUB  Currency = "RUB"
	CURRENCY_BTC  Currency = "BTC"
	CURRENCY_ETH  Currency = "ETH"
	CURRENCY_BCH  Currency = "BCH"
	CURRENCY_LTC  Currency = "LTC"
	CURRENCY_DASH Currency = "DASH"
	CURRENCY_XRP  Currency = "XRP"
	CURRENCY_USDT Currency = "USDT"
	CURRENCY_TRX  Currency = "TRX"
	CURRENCY_DOGE Currency = "DOGE"
)

func (c Currency) String() string {
	return string(c)
}

func (c Currency) orDefault() Currency {
	if c == "" {
		return CURRENCY_USD
	}
	return c
}

// Which side of the conversion rates to fetch
type RateDirection string

const (
	RATE_DEPOSIT    RateDirection = "N"
	RATE_WITHDRAWAL RateDirection = "Y"
)

// History sorting by date
type SortOrder string

const (
	SORT_ASC  SortOrder = "asc"
	SORT_DESC SortOrder = "desc"
)

// History transaction types
type HistoryType string

const (
	HISTORY_INCOMING HistoryType = "incoming"
	HISTORY_OUTGOING HistoryType = "outgoing"
)

const (
	historyDateLayout = time.DateTime
	HistoryMaxCount   = 1000
)
