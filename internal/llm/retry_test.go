package llm

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2,
	}
}

func unavailable() Reply {
	return Reply{Err: &Error{Kind: KindUnavailable, Err: errors.New("503")}}
}

func TestRetry_Attempts(t *testing.T) {
	tests := []struct {
		name      string
		attempts  int
		script    []Reply
		wantErr   bool
		wantCalls int
	}{
		{"first try", 3, []Reply{{Content: verdictJSON}}, false, 1},
		{"transient then success", 3, []Reply{unavailable(), {Content: verdictJSON}}, false, 2},
		{"all attempts fail", 3, []Reply{unavailable(), unavailable(), unavailable(), {Content: verdictJSON}}, true, 3},
		{"single attempt", 1, []Reply{unavailable(), {Content: verdictJSON}}, true, 1},
		{"zero attempts means one", 0, []Reply{{Content: verdictJSON}}, false, 1},
		{"plain error is transient", 2, []Reply{{Err: errors.New("connection reset")}, {Content: verdictJSON}}, false, 2},
		{"truncation is final", 3, []Reply{{Content: `{"sea`, Stop: StopMaxTokens}, {Content: verdictJSON}}, true, 1},
		{"refusal is final", 3, []Reply{{Stop: StopRefused}, {Content: verdictJSON}}, true, 1},
		{"invalid retried once", 3, []Reply{{Content: `nope`}, {Content: `still nope`}, {Content: verdictJSON}}, true, 2},
		{"invalid then valid", 3, []Reply{{Content: `nope`}, {Content: verdictJSON}}, false, 2},
		{"deadline is final", 3, []Reply{{Err: context.DeadlineExceeded}, {Content: verdictJSON}}, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := NewScriptedProvider(tt.script...)
			p := WithRetry(inner, fastRetry(tt.attempts))

			resp, err := p.Generate(context.Background(), Request{Schema: verdictSchema()})
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && string(resp.Content) != verdictJSON {
				t.Fatalf("content = %s", resp.Content)
			}
			if inner.Calls() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", inner.Calls(), tt.wantCalls)
			}
		})
	}
}

func TestRetry_CanceledWhileWaiting(t *testing.T) {
	inner := NewScriptedProvider(unavailable(), Reply{Content: verdictJSON})
	cfg := fastRetry(3)
	cfg.InitialWait = time.Hour
	cfg.MaxWait = time.Hour
	p := WithRetry(inner, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := p.Generate(ctx, Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if inner.Calls() != 1 {
		t.Fatalf("calls = %d, want 1", inner.Calls())
	}
}

func TestRetry_HonoursRetryAfter(t *testing.T) {
	r := &RetryProvider{cfg: fastRetry(3)}
	err := &Error{Kind: KindRateLimited, RetryAfter: 7 * time.Second}
	if got := r.delay(1, err); got != 7*time.Second {
		t.Fatalf("delay = %s, want 7s", got)
	}
}

func TestRetry_DelayGrowsAndCaps(t *testing.T) {
	r := &RetryProvider{cfg: RetryConfig{
		InitialWait: 100 * time.Millisecond,
		MaxWait:     300 * time.Millisecond,
		Multiplier:  2,
	}}
	bounds := []struct {
		attempt  int
		min, max time.Duration
	}{
		{1, 80 * time.Millisecond, 120 * time.Millisecond},
		{2, 160 * time.Millisecond, 240 * time.Millisecond},
		{3, 240 * time.Millisecond, 360 * time.Millisecond},
		{6, 240 * time.Millisecond, 360 * time.Millisecond},
	}
	for _, b := range bounds {
		for range 20 {
			got := r.delay(b.attempt, errors.New("x"))
			if got < b.min || got > b.max {
				t.Fatalf("delay(%d) = %s, want within [%s, %s]", b.attempt, got, b.min, b.max)
			}
		}
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	if got := WithRetry(NewScriptedProvider(), fastRetry(1)).ModelID(); got != "scripted" {
		t.Fatalf("model = %q, want scripted", got)
	}
}
