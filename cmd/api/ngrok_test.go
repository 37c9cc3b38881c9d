package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectNgrokURL(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "prefers https",
			body: `{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"},{"public_url":"https://a.ngrok.io","proto":"https"}]}`,
			want: "https://a.ngrok.io",
		},
		{
			name: "any tunnel",
			body: `{"tunnels":[{"public_url":"http://a.ngrok.io","proto":"http"}]}`,
			want: "http://a.ngrok.io",
		},
		{
			name:    "no tunnels",
			body:    `{"tunnels":[]}`,
			wantErr: true,
		},
		{
			name:    "bad json",
			body:    `{`,
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/tunnels" {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			got, err := detectNgrokURL(context.Background(), srv.URL, 2, time.Millisecond)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("url = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDetectNgrokURL_RetriesUntilTunnel(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.Write([]byte(`{"tunnels":[]}`))
			return
		}
		w.Write([]byte(`{"tunnels":[{"public_url":"https://late.ngrok.io","proto":"https"}]}`))
	}))
	defer srv.Close()

	got, err := detectNgrokURL(context.Background(), srv.URL, 5, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if got != "https://late.ngrok.io" || calls.Load() != 3 {
		t.Errorf("url = %q after %d calls", got, calls.Load())
	}
}

func TestDetectNgrokURL_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := detectNgrokURL(ctx, "http://127.0.0.1:1", 3, time.Second); err == nil {
		t.Error("expected an error for a cancelled context")
	}
}
