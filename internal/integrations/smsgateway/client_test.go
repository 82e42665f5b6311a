package smsgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestClient_Send_Success(t *testing.T) {
	var got SendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"id":"m-1","status":"queued"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "BARBER", time.Second, nopLogger{})
	err := client.Send(context.Background(), "9998887777", "hello")

	require.NoError(t, err)
	assert.Equal(t, SendRequest{To: "9998887777", Body: "hello", Sender: "BARBER"}, got)
}

func TestClient_Send_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "", time.Second, nopLogger{})
	assert.NoError(t, client.Send(context.Background(), "1", "x"))
}

func TestClient_Send_Errors(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, body: `{"error":"bad number"}`, wantErr: ErrRejected},
		{name: "server error", status: http.StatusBadGateway, body: "", wantErr: ErrInvalidResponse},
		{name: "rejected in body", status: http.StatusOK, body: `{"status":"rejected","error":"blocked"}`, wantErr: ErrRejected},
		{name: "garbage", status: http.StatusOK, body: `not json`, wantErr: ErrInvalidResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewClient(srv.URL, "", "", time.Second, nopLogger{})
			err := client.Send(context.Background(), "1", "x")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestClient_Send_EmptyRecipient(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", "", "", time.Second, nopLogger{})
	assert.ErrorIs(t, client.Send(context.Background(), " ", "x"), ErrEmptyRecipient)
}

func TestClient_Send_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(url, "", "", time.Second, nopLogger{})
	assert.ErrorIs(t, client.Send(context.Background(), "1", "x"), ErrInternal)
}
