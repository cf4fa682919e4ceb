package transportfake

import (
	"context"
	"encoding/json"
	"sync"

	"ces/pkg/transport"
)

// Transport 记录请求并按URL返回预置响应体的假传输层
type Transport struct {
	mu        sync.Mutex
	calls     []transport.Request
	responses map[string]string
	errors    map[string]error
}

func NewTransport() *Transport {
	return &Transport{
		responses: make(map[string]string),
		errors:    make(map[string]error),
	}
}

// Respond 为指定URL预置JSON响应体
func (f *Transport) Respond(url, body string) *Transport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[url] = body
	return f
}

// Fail 让指定URL的请求返回 err
func (f *Transport) Fail(url string, err error) *Transport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[url] = err
	return f
}

func (f *Transport) Do(_ context.Context, req transport.Request, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, req)
	if err := f.errors[req.URL]; err != nil {
		return err
	}
	body, ok := f.responses[req.URL]
	if !ok || out == nil {
		return nil
	}
	return json.Unmarshal([]byte(body), out)
}

// Calls 返回已记录的请求
func (f *Transport) Calls() []transport.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]transport.Request(nil), f.calls...)
}
