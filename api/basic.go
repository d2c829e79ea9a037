package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/duke-git/lancet/v2/netutil"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"github.com/vybenetwork/vybebot/config"
	"github.com/vybenetwork/vybebot/logger"
	"github.com/vybenetwork/vybebot/store"
)

var (
	// ErrNotFound covers 400/403/404 upstream answers. The address was
	// syntactically fine but Vybe has nothing to say about it.
	ErrNotFound = errors.New("not found or inaccessible")

	ErrUnauthorized = errors.New("api key rejected")
)

func BuildBasicUrl() string {
	return config.YmlConfig.Vybe.ApiEndpoint
}

func makeHeader() http.Header {
	header := http.Header{}
	header.Add("Accept", "application/json")
	header.Add("X-API-KEY", config.YmlConfig.Vybe.ApiKey)
	return header
}

// doGet fetches one Vybe endpoint with retry and a short response cache,
// so repeated menu taps don't hammer the upstream.
func doGet(path string, query url.Values) ([]byte, error) {
	rawURL := BuildBasicUrl() + path
	encoded := query.Encode()
	if encoded != "" {
		rawURL += "?" + encoded
	}

	if body, ok := store.GetResponse(rawURL); ok {
		return body, nil
	}

	operation := func() ([]byte, error) {
		req := &netutil.HttpRequest{
			RawURL:  rawURL,
			Method:  "GET",
			Headers: makeHeader(),
		}

		client := netutil.NewHttpClient()
		resp, err := client.SendRequest(req)
		if err != nil {
			log.Debug().Err(err).Func(logger.WithCategory(logger.CategoryApi)).
				Str("path", path).Msg("vybe request failed")
			return nil, err
		}

		defer resp.Body.Close()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}

		switch resp.StatusCode {
		case http.StatusOK:
		case http.StatusBadRequest, http.StatusForbidden, http.StatusNotFound:
			return nil, backoff.Permanent(ErrNotFound)
		case http.StatusUnauthorized:
			return nil, backoff.Permanent(ErrUnauthorized)
		default:
			return nil, fmt.Errorf("vybe status %d: %s", resp.StatusCode, gjson.GetBytes(data, "message").String())
		}

		return data, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	data, err := backoff.Retry(
		ctx,
		operation,
		backoff.WithMaxTries(3),
		backoff.WithBackOff(backoff.NewConstantBackOff(500*time.Millisecond)),
	)
	if err != nil {
		log.Error().Err(err).Func(logger.WithCategory(logger.CategoryApi)).
			Str("path", path).Msg("vybe request gave up")
		return nil, err
	}

	logger.NewStdLog(path, encoded, data)

	ttl := time.Duration(config.YmlConfig.Vybe.CacheTtlSec) * time.Second
	if ttl > 0 {
		store.SetResponse(rawURL, data, ttl)
	}

	return data, nil
}

// rangeQuery is the startTime/endTime pair most series endpoints take.
func rangeQuery(startTs, endTs int64) url.Values {
	query := url.Values{}
	query.Set("startTime", fmt.Sprintf("%d", startTs))
	query.Set("endTime", fmt.Sprintf("%d", endTs))
	return query
}
