package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/linguohua/pinner/errorcode"
)

func TestExecute(t *testing.T) {
	var gotPath, gotMethod, gotAuth string
	var gotQuery url.Values

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"Keys":{}}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL, WithToken("secret"))
	if err != nil {
		t.Errorf("new client error:%s", err.Error())
		return
	}

	query := url.Values{}
	query.Set("type", "all")

	body, err := client.Execute(context.Background(), "pin/ls", "", query)
	if err != nil {
		t.Errorf("execute error:%s", err.Error())
		return
	}

	if string(body) != `{"Keys":{}}` {
		t.Errorf("unexpected body:%s", string(body))
	}
	if gotPath != "/api/v0/pin/ls" {
		t.Errorf("path = %s, want /api/v0/pin/ls", gotPath)
	}
	if gotMethod != http.MethodPost {
		t.Errorf("method = %s, want POST", gotMethod)
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("auth header = %s, want Bearer secret", gotAuth)
	}
	if gotQuery.Get("type") != "all" {
		t.Errorf("type = %s, want all", gotQuery.Get("type"))
	}
}

func TestExecuteArg(t *testing.T) {
	var gotArg string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotArg = r.URL.Query().Get("arg")
		_, _ = w.Write([]byte(`{"Pins":[]}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Errorf("new client error:%s", err.Error())
		return
	}

	if _, err := client.Execute(context.Background(), "pin/add", "/ipfs/Qm1", nil); err != nil {
		t.Errorf("execute error:%s", err.Error())
		return
	}
	if gotArg != "/ipfs/Qm1" {
		t.Errorf("arg = %s, want /ipfs/Qm1", gotArg)
	}
}

func TestExecuteErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"Message":"invalid path","Code":1}`))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Errorf("new client error:%s", err.Error())
		return
	}

	_, err = client.Execute(context.Background(), "pin/add", "bogus", nil)
	if err == nil {
		t.Errorf("expect error for daemon failure")
		return
	}

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Errorf("expect *Error, got:%s", err.Error())
		return
	}
	if cmdErr.Message != "invalid path" {
		t.Errorf("message = %s, want invalid path", cmdErr.Message)
	}
	if cmdErr.Code != errorcode.Client {
		t.Errorf("code = %d, want %d", cmdErr.Code, errorcode.Client)
	}
	if cmdErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", cmdErr.StatusCode)
	}
	if cmdErr.Command != "pin/add" {
		t.Errorf("command = %s, want pin/add", cmdErr.Command)
	}
}

func TestExecuteNonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("404 page not found"))
	}))
	defer srv.Close()

	client, err := New(srv.URL)
	if err != nil {
		t.Errorf("new client error:%s", err.Error())
		return
	}

	_, err = client.Execute(context.Background(), "pin/ls", "", nil)

	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		t.Errorf("expect *Error, got:%v", err)
		return
	}
	if cmdErr.Message != "404 page not found" {
		t.Errorf("unexpected message:%s", cmdErr.Message)
	}
}

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := New("ftp://127.0.0.1:5001"); err == nil {
		t.Errorf("expect error for unsupported scheme")
	}
	if _, err := New("://bogus"); err == nil {
		t.Errorf("expect error for unparsable url")
	}
}
