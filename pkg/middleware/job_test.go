package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func TestRequireJobID(t *testing.T) {
	e := echo.New()
	e.GET("/status/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RequireJobID("id"))

	tests := []struct {
		name string
		id   string
		want int
	}{
		{name: "uuid", id: uuid.NewString(), want: http.StatusOK},
		{name: "not a uuid", id: "abc", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/status/"+tt.id, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d (%s)", tt.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestZapLogger_PassesThroughErrors(t *testing.T) {
	e := echo.New()
	e.Use(ZapLogger(nil))
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}
