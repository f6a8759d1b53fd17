package handlers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastlook/site/internal/content"
	"github.com/lastlook/site/internal/handlers"
	"github.com/lastlook/site/internal/rendering"
	"github.com/lastlook/site/web/src/templates/partials"
)

const testSessionSecret = "a-very-secret-key-for-testing-!!"

func setupSite() *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.NewUniversalRenderer()
	e.Validator = handlers.NewValidator()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte(testSessionSecret))))

	home := handlers.NewHomeHandler(content.Default(), "https://lastlook.example")
	contact := handlers.NewContactHandler()
	e.GET("/", home.HomeGet)
	e.POST("/theme", home.ThemePost)
	e.POST("/contact", contact.ContactPost)
	e.GET("/robots.txt", home.RobotsGet)
	e.GET("/missing", home.NotFound)
	return e
}

func postForm(e *echo.Echo, path string, form url.Values, htmx bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if htmx {
		req.Header.Set("HX-Request", "true")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func withCookies(method, path string, body io.Reader, cookies []*http.Cookie) *http.Request {
	req := httptest.NewRequest(method, path, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func TestHomeGet(t *testing.T) {
	e := setupSite()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<!doctype html>"))
	assert.Contains(t, body, "<title>Post-Wedding Cleanup &amp; Décor Care | Last Look Events</title>")
	assert.Contains(t, body, `<div id="app" class="">`)
	assert.Contains(t, body, `application/ld+json`)
	assert.Contains(t, body, `href="https://lastlook.example/"`)
	assert.NotContains(t, body, partials.DemoNotice)
}

func TestThemePost(t *testing.T) {
	tests := []struct {
		name      string
		current   string
		wantClass string
		wantIcon  string
	}{
		{"light to dark", "false", `<div id="app" class="dark">`, "☾"},
		{"dark to light", "true", `<div id="app" class="">`, "☀︎"},
		{"missing value counts as light", "", `<div id="app" class="dark">`, "☾"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := setupSite()
			rec := postForm(e, "/theme", url.Values{"dark": {tt.current}}, true)

			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.True(t, strings.HasPrefix(body, tt.wantClass), "fragment should start with the root wrapper")
			assert.Contains(t, body, tt.wantIcon)
			assert.NotContains(t, body, "<html")
		})
	}

	t.Run("toggling twice restores the original root", func(t *testing.T) {
		e := setupSite()
		first := postForm(e, "/theme", url.Values{"dark": {"false"}}, true)
		require.Equal(t, http.StatusOK, first.Code)
		second := postForm(e, "/theme", url.Values{"dark": {"true"}}, true)
		require.Equal(t, http.StatusOK, second.Code)

		assert.True(t, strings.HasPrefix(second.Body.String(), `<div id="app" class="">`))
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		e := setupSite()
		rec := postForm(e, "/theme", url.Values{"dark": {"sepia"}}, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("leaves pending flashes for the next page load", func(t *testing.T) {
		e := setupSite()
		contact := postForm(e, "/contact", url.Values{}, false)
		require.Equal(t, http.StatusSeeOther, contact.Code)
		cookies := contact.Result().Cookies()
		require.NotEmpty(t, cookies)

		toggle := withCookies(http.MethodPost, "/theme", strings.NewReader(url.Values{"dark": {"false"}}.Encode()), cookies)
		toggle.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		toggle.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, toggle)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), partials.DemoNotice)
		assert.Empty(t, rec.Result().Cookies(), "the session is left untouched")

		page := httptest.NewRecorder()
		e.ServeHTTP(page, withCookies(http.MethodGet, "/", nil, cookies))
		assert.Contains(t, page.Body.String(), partials.DemoNotice)
	})

	t.Run("redirects without htmx", func(t *testing.T) {
		e := setupSite()
		rec := postForm(e, "/theme", url.Values{"dark": {"false"}}, false)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestContactPost(t *testing.T) {
	t.Run("htmx gets the notice fragment", func(t *testing.T) {
		e := setupSite()
		rec := postForm(e, "/contact", url.Values{}, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), partials.DemoNotice)
		assert.Contains(t, rec.Body.String(), `role="status"`)
		assert.Empty(t, rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("field values are ignored", func(t *testing.T) {
		e := setupSite()
		rec := postForm(e, "/contact", url.Values{"name": {"Sam"}, "email": {"not-an-email"}}, true)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "Sam")
	})

	t.Run("plain post flashes the notice on the next page", func(t *testing.T) {
		e := setupSite()
		rec := postForm(e, "/contact", url.Values{}, false)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/#contact", rec.Header().Get(echo.HeaderLocation))
		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies, "flash should be stored in the session cookie")

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		page := httptest.NewRecorder()
		e.ServeHTTP(page, req)

		require.Equal(t, http.StatusOK, page.Code)
		assert.Contains(t, page.Body.String(), partials.DemoNotice)
	})

	t.Run("never fails without a session", func(t *testing.T) {
		e := echo.New()
		e.Renderer = rendering.NewUniversalRenderer()
		e.POST("/contact", handlers.NewContactHandler().ContactPost)

		rec := postForm(e, "/contact", url.Values{}, false)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestRobotsGet(t *testing.T) {
	e := setupSite()
	req := httptest.NewRequest(http.MethodGet, "/robots.txt", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "User-agent: *\nAllow: /\n", rec.Body.String())
}

func TestNotFound(t *testing.T) {
	e := setupSite()
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "This page has already been cleaned up.")
	assert.Contains(t, rec.Body.String(), "<title>Page not found | Last Look Events</title>")
}
