package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestResolveLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		query  string
		header string
		want   string
	}{
		{name: "default", want: LocaleFR},
		{name: "query wins", query: "en", header: "fr-FR", want: LocaleEN},
		{name: "accept language", header: "de-DE,en;q=0.8", want: LocaleEN},
		{name: "unsupported", header: "ar-DZ", want: LocaleFR},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			target := "/menu"
			if tc.query != "" {
				target += "?lang=" + tc.query
			}
			c.Request = httptest.NewRequest(http.MethodGet, target, nil)
			if tc.header != "" {
				c.Request.Header.Set("Accept-Language", tc.header)
			}
			if got := ResolveLocale(c); got != tc.want {
				t.Fatalf("want %s got %s", tc.want, got)
			}
		})
	}
}

func TestTranslateFallbacks(t *testing.T) {
	if got := T(LocaleEN, "error.cart_empty"); got == "error.cart_empty" {
		t.Fatalf("english message should exist")
	}
	if got := T("xx-XX", "error.cart_empty"); got != T(LocaleFR, "error.cart_empty") {
		t.Fatalf("unknown locale should fall back to default, got %s", got)
	}
	if got := T(LocaleFR, "error.unknown_key"); got != "error.unknown_key" {
		t.Fatalf("missing key should return key, got %s", got)
	}
	if got := Sprintf(LocaleEN, "error.rate_limited", 30); got != "Too many requests, retry in 30 seconds" {
		t.Fatalf("unexpected formatted message %s", got)
	}
}

func TestLocalesShareKeys(t *testing.T) {
	for key := range messages[LocaleFR] {
		if _, ok := messages[LocaleEN][key]; !ok {
			t.Fatalf("en-US missing key %s", key)
		}
	}
	for key := range messages[LocaleEN] {
		if _, ok := messages[LocaleFR][key]; !ok {
			t.Fatalf("fr-FR missing key %s", key)
		}
	}
}
