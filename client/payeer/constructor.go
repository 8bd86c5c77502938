package payeer

import (
	"time"

	fastshot "github.com/opus-domini/fast-shot"
	"github.com/opus-domini/fast-shot/constant/mime"
)

const (
	baseUrl        = "https://payeer.com"
	apiPath        = "/ajax/api/api.php"
	defaultTimeout = 30 * time.Second
)

type Config struct {
	// Account number in the format P1000000
	Account string
	// API user ID, given out when adding the API
	ApiId string
	// API user's secret key
	ApiPass string
	// Scheme and host of the API, https://payeer.com when empty
	BaseUrl string
	Timeout time.Duration
}

type Client struct {
	config     *Config
	httpClient fastshot.ClientHttpMethods
}

func NewClient(config *Config) *Client {
	httpClient := setupHttpClient(config)
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

func (p *Client) Account() string {
	return p.config.Account
}

func setupHttpClient(config *Config) fastshot.ClientHttpMethods {
	url := config.BaseUrl
	if url == "" {
		url = baseUrl
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return fastshot.NewClient(url).
		Config().SetTimeout(timeout).
		Header().AddAccept(mime.JSON).
		Build()
}
