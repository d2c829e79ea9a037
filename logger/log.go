package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

const CategoryField = "category"

// one category per concern so console output can be filtered
const (
	CategoryApi   = "api"
	CategoryChart = "chart"
	CategoryFlow  = "flow"
	CategoryPush  = "push"
)

func WithCategory(category string) func(e *zerolog.Event) {
	return func(e *zerolog.Event) {
		e.Str(CategoryField, category)
	}
}

var consoleLogger = func() zerolog.Logger {
	out := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.DateTime,
		FormatFieldName: func(i interface{}) string {
			return fmt.Sprintf("%s: ", i)
		},
		FieldsOrder: []string{"endpoint", "params", "result"},
	}
	return zerolog.New(out).With().Timestamp().Logger()
}()

func StdLogger() *zerolog.Logger {
	return &consoleLogger
}

// NewStdLog records one upstream API call on the console logger.
func NewStdLog(endpoint string, query string, result []byte) {
	consoleLogger.Info().Str("endpoint", endpoint).Str("params", query).RawJSON("result", result).Send()
}
