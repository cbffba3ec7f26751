package services

import (
	"context"
	"encoding/json"
	"errors"
)

type call struct {
	method string
	path   string
	body   any
}

// fakeRequester records every call and decodes resp into out.
type fakeRequester struct {
	calls []call
	resp  string
	err   error
}

func (f *fakeRequester) do(method, path string, body, out any) error {
	f.calls = append(f.calls, call{method: method, path: path, body: body})
	if f.err != nil {
		return f.err
	}
	if out != nil && f.resp != "" {
		return json.Unmarshal([]byte(f.resp), out)
	}
	return nil
}

func (f *fakeRequester) last() call {
	if len(f.calls) == 0 {
		return call{}
	}
	return f.calls[len(f.calls)-1]
}

func (f *fakeRequester) Get(_ context.Context, path string, out any) error {
	return f.do("GET", path, nil, out)
}

func (f *fakeRequester) Post(_ context.Context, path string, body, out any) error {
	return f.do("POST", path, body, out)
}

func (f *fakeRequester) Put(_ context.Context, path string, body, out any) error {
	return f.do("PUT", path, body, out)
}

func (f *fakeRequester) Delete(_ context.Context, path string, out any) error {
	return f.do("DELETE", path, nil, out)
}

// brokenStore accepts reads but fails every write.
type brokenStore struct{}

var errStoreDown = errors.New("store down")

func (brokenStore) Get(context.Context) (string, bool) { return "", false }
func (brokenStore) Set(context.Context, string) error { return errStoreDown }
func (brokenStore) Clear(context.Context) error { return errStoreDown }
func (brokenStore) IsPresent(context.Context) bool { return false }

func bodyJSON(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}
