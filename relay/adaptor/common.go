package adaptor

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"

	"github.com/qa-demo/casegen/common/logger"
)

// NewJSONRequest marshals body and builds a POST request with JSON headers.
func NewJSONRequest(ctx context.Context, url string, body any) (*http.Request, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "marshal request body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "new request failed")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// DoRequest executes req and logs upstream transport failures.
func DoRequest(client *http.Client, channelName string, req *http.Request) (*http.Response, error) {
	logger.Logger.Debug("sending request to upstream channel",
		zap.String("url", req.URL.String()),
		zap.String("channelName", channelName))

	resp, err := client.Do(req)
	if err != nil {
		logger.Logger.Error("upstream request failed",
			zap.Error(err),
			zap.String("url", req.URL.String()),
			zap.String("channelName", channelName))
		return nil, errors.Wrap(err, "do request failed")
	}
	if resp == nil {
		return nil, errors.New("resp is nil")
	}

	return resp, nil
}
