package client

import (
	"net/http"
	"net/url"
	"time"

	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/config"
	"github.com/qa-demo/casegen/common/logger"
)

// HTTPClient is shared by outbound provider calls.
var HTTPClient = &http.Client{}

// Init rebuilds HTTPClient from RELAY_PROXY and RELAY_TIMEOUT.
func Init() {
	HTTPClient = New(config.RelayProxy, time.Duration(config.RelayTimeout)*time.Second)
}

// New builds a client that routes through proxy when set. A zero timeout
// leaves requests unbounded.
func New(proxy string, timeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if proxy != "" {
		proxyURL, err := url.Parse(proxy)
		if err != nil {
			logger.Logger.Fatal("invalid relay proxy", zap.String("proxy", proxy), zap.Error(err))
		}
		logger.Logger.Info("using relay proxy", zap.String("proxy", proxyURL.Redacted()))
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
