package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestQuoteCmd(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/quotes/AAPL" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"symbol":"AAPL","price":"150.25"}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	cmd := quoteCmd()
	cmd.SetArgs([]string{"AAPL"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, "AAPL") || !strings.Contains(out, "150.25") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestBuyCmd(t *testing.T) {
	var received []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/trades/buy" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		received, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"entry_id":"entry-1","side":"buy"}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	cmd := buyCmd()
	cmd.SetArgs([]string{"acc-1", "AAPL", "10"})

	captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	body := string(received)
	if !strings.Contains(body, "acc-1") || !strings.Contains(body, "AAPL") || !strings.Contains(body, "10") {
		t.Fatalf("unexpected request body: %s", body)
	}
}

func TestBuyCmd_RejectsNonIntegerQuantity(t *testing.T) {
	cmd := buyCmd()
	cmd.SetArgs([]string{"acc-1", "AAPL", "ten"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error for non-integer quantity")
	}
}

func TestTradeCmd_SurfacesAPIErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"trade rejected","message":"insufficient funds"}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	cmd := sellCmd()
	cmd.SetArgs([]string{"acc-1", "AAPL", "5"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var err error
	captureOutput(t, func() {
		err = cmd.Execute()
	})

	if err == nil {
		t.Fatal("expected error for rejected trade")
	}
}
