package api

import (
	"errors"
	"net/url"
	"regexp"

	"go.uber.org/zap"
)

const redacted = "REDACTED"

var keyParamPattern = regexp.MustCompile(`\b` + apiKeyParam + `=[^&\s"]*`)

// leveledLogger feeds retryablehttp's logs into zap with the api key removed
// from any logged URL.
type leveledLogger struct {
	logger *zap.SugaredLogger
}

func newLeveledLogger(logger *zap.Logger) leveledLogger {
	return leveledLogger{logger: logger.Sugar()}
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, redactKeyValues(keysAndValues)...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Infow(msg, redactKeyValues(keysAndValues)...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, redactKeyValues(keysAndValues)...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warnw(msg, redactKeyValues(keysAndValues)...)
}

func redactKeyValues(keysAndValues []interface{}) []interface{} {
	out := make([]interface{}, len(keysAndValues))
	for i, value := range keysAndValues {
		switch v := value.(type) {
		case *url.URL:
			out[i] = RedactURL(v.String())
		case string:
			out[i] = RedactURL(v)
		case error:
			out[i] = errors.New(redactText(v.Error()))
		default:
			out[i] = value
		}
	}
	return out
}

// RedactURL masks the api key parameter of a request URL. Strings that are
// not URLs, or carry no key, come back unchanged.
func RedactURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.RawQuery == "" {
		return raw
	}

	values := parsed.Query()
	if !values.Has(apiKeyParam) {
		return raw
	}

	values.Set(apiKeyParam, redacted)
	parsed.RawQuery = values.Encode()
	return parsed.String()
}

// redactText masks every key=... parameter inside free text such as an
// error message quoting a request URL.
func redactText(text string) string {
	return keyParamPattern.ReplaceAllString(text, apiKeyParam+"="+redacted)
}

// redactURLError masks the api key in the URL carried by a *url.Error, which
// http.Client returns for every failed request.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = RedactURL(urlErr.URL)
	}
	return err
}
