package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func rbacContext(userType string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userType != "" {
		c.Set("user_type", userType)
	}
	return c, rec
}

func TestRequireUserType_Allowed(t *testing.T) {
	c, rec := rbacContext("driver")

	called := false
	handler := RequireUserType("driver")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("next not called for allowed user type")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireUserType_MultipleAllowed(t *testing.T) {
	c, _ := rbacContext("supplier")

	called := false
	handler := RequireUserType("client", "supplier")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("supplier must pass a client|supplier gate")
	}
}

func TestRequireUserType_Denied(t *testing.T) {
	c, rec := rbacContext("client")

	handler := RequireUserType("driver")(func(c echo.Context) error {
		t.Fatal("next must not be called")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireUserType_MissingClaim(t *testing.T) {
	c, rec := rbacContext("")

	handler := RequireUserType("client")(func(c echo.Context) error {
		t.Fatal("next must not be called")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
