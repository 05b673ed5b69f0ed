package llm

import (
	"context"
	"errors"
	"sync"
)

const scriptedName = "scripted"

var errScriptExhausted = errors.New("no scripted replies left")

// Reply is one scripted answer.
type Reply struct {
	Content string
	Usage   Usage

	// Stop defaults to StopEnd.
	Stop StopReason

	// Err, when set, is returned as is and the other fields are ignored.
	Err error
}

// ScriptedProvider answers from a fixed script, in order, and runs the
// same truncation and schema checks as the hosted providers. It is the
// offline stand-in for tests and demos.
type ScriptedProvider struct {
	mu       sync.Mutex
	script   []Reply
	requests []Request
}

// NewScriptedProvider returns a provider that plays replies in order. Once
// the script runs out every call fails with KindUnavailable.
func NewScriptedProvider(replies ...Reply) *ScriptedProvider {
	return &ScriptedProvider{script: replies}
}

// Then appends a reply to the script.
func (p *ScriptedProvider) Then(r Reply) *ScriptedProvider {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.script = append(p.script, r)
	return p
}

func (p *ScriptedProvider) Generate(_ context.Context, req Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.requests = append(p.requests, req)
	if len(p.script) == 0 {
		return nil, &Error{Kind: KindUnavailable, Provider: scriptedName, Err: errScriptExhausted}
	}
	next := p.script[0]
	p.script = p.script[1:]

	if next.Err != nil {
		return nil, next.Err
	}
	stop := next.Stop
	if stop == "" {
		stop = StopEnd
	}
	return reply{
		text:  next.Content,
		stop:  stop,
		usage: next.Usage,
		model: scriptedName,
	}.finish(scriptedName, req.Schema)
}

func (p *ScriptedProvider) ModelID() string { return scriptedName }

// Requests returns a copy of every request received so far.
func (p *ScriptedProvider) Requests() []Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Request(nil), p.requests...)
}

// Calls is the number of Generate calls so far.
func (p *ScriptedProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.requests)
}
