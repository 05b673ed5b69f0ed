package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Kind classifies a provider failure.
type Kind int

const (
	// KindUnavailable covers network failures and 5xx responses, and any
	// vendor error that carries no better signal.
	KindUnavailable Kind = iota + 1
	// KindRateLimited is a 429.
	KindRateLimited
	// KindInvalid means the answer was empty, not JSON, or off-schema.
	KindInvalid
	// KindTruncated means generation hit MaxTokens.
	KindTruncated
	// KindRefused means the vendor's safety filter withheld the answer.
	KindRefused
)

// String is the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate_limit"
	case KindInvalid:
		return "invalid_response"
	case KindTruncated:
		return "truncated"
	case KindRefused:
		return "refused"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the failure type of every Provider in this package.
type Error struct {
	Kind     Kind
	Provider string

	// StatusCode is the vendor's HTTP status, when there was one.
	StatusCode int

	// RetryAfter is the server's requested backoff on a rate limit.
	RetryAfter time.Duration

	// Content is the rejected answer for KindInvalid, KindTruncated and
	// KindRefused.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Provider != "" {
		b.WriteString(e.Provider)
		b.WriteString(": ")
	}
	switch e.Kind {
	case KindRateLimited:
		b.WriteString("rate limited")
		if e.RetryAfter > 0 {
			b.WriteString(" (retry after " + e.RetryAfter.String() + ")")
		}
	case KindInvalid:
		b.WriteString("invalid response")
	case KindTruncated:
		b.WriteString("response truncated at max tokens")
	case KindRefused:
		b.WriteString("response refused")
	default:
		b.WriteString("provider unavailable")
	}
	if e.StatusCode != 0 {
		b.WriteString(" [" + strconv.Itoa(e.StatusCode) + "]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// statusError maps a vendor HTTP status onto a Kind. Client errors other
// than 429 count as unavailable: a bad key or model name will not fix
// itself between attempts, but the caller falls back either way.
func statusError(provider string, status int, err error) *Error {
	kind := KindUnavailable
	if status == http.StatusTooManyRequests {
		kind = KindRateLimited
	}
	return &Error{Kind: kind, Provider: provider, StatusCode: status, Err: err}
}

// retryAfter parses a Retry-After header given in seconds. HTTP dates are
// ignored.
func retryAfter(h http.Header) time.Duration {
	v := strings.TrimSpace(h.Get("Retry-After"))
	if v == "" {
		return 0
	}
	secs, err := strconv.ParseFloat(v, 64)
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
