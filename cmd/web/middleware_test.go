package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jmorales/ciclofit/internal/testhelpers"
)

func TestRecoverPanic(t *testing.T) {
	t.Parallel()
	app := &application{logger: testhelpers.NewLogger(testhelpers.NewWriter(t))}

	handler := app.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestStatusResponseWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusResponseWriter(rec)
	sw.WriteHeader(http.StatusTeapot)
	sw.WriteHeader(http.StatusOK)

	if sw.statusCode != http.StatusTeapot {
		t.Errorf("captured status = %d, want the first write %d", sw.statusCode, http.StatusTeapot)
	}
}

func TestStatusResponseWriterDefaultsTo200(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sw := newStatusResponseWriter(rec)
	if _, err := sw.Write([]byte("ok")); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if sw.statusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", sw.statusCode)
	}
}
