package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoBulma/GoBulma/internal/config"
	fiberlogger "github.com/GoBulma/GoBulma/internal/logger/adapter/fiber"
)

const testDropdown = `kind: dropdown
title: Account menu
dropdown:
  buttonLabel: Account
items:
  - label: Profile
    url: /profile
  - divider: true
  - label: Logout
    url: /logout
`

func newTestService(t *testing.T) *Service {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "account.yaml"), []byte(testDropdown), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("kind: tabs\n"), 0o600))

	cfg := &config.Config{
		Title: "Widgets",
		Webserver: config.Webserver{
			Port: 8080,
			URL:  "http://localhost:8080",
		},
		Preview: config.Preview{Documents: dir},
	}

	s, err := New(cfg)
	require.NoError(t, err)

	return s
}

func get(t *testing.T, s *Service, target string) (*http.Response, string) {
	t.Helper()

	resp, err := s.App.Test(httptest.NewRequest(http.MethodGet, target, http.NoBody), -1)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return resp, string(body)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestCheckAlive(t *testing.T) {
	s := newTestService(t)
	assert.True(t, s.Alive())

	resp, body := get(t, s, CheckAlivePath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "OK", body)

	s.alive.Store(false)

	resp, _ = get(t, s, CheckAlivePath)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestIndex(t *testing.T) {
	s := newTestService(t)

	resp, body := get(t, s, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(fiberlogger.HeaderRequestID))

	assert.Contains(t, body, `<nav id="w0-navbar" class="navbar" aria-label="main navigation" role="navigation">`)
	assert.Contains(t, body, `<a href="/preview/account">Account menu</a>`)
	assert.Contains(t, body, `<a href="/preview/broken">broken</a>`)
	assert.Contains(t, body, `<span class="tag is-danger">invalid</span>`)
	// the list is the home page, no breadcrumb
	assert.NotContains(t, body, `class="breadcrumb"`)
}

func TestShow(t *testing.T) {
	s := newTestService(t)

	resp, body := get(t, s, "/preview/account")
	require.Equal(t, http.StatusOK, resp.StatusCode, body)

	// the site menu marks the page and its section active
	assert.Contains(t, body, `<a class="navbar-item is-active" href="/preview/account">Account menu</a>`)
	assert.Contains(t, body, `<a id="w1-dropdown-trigger" class="navbar-link is-active" href="#" aria-haspopup="true" aria-controls="w1-dropdown">dropdown</a>`)

	// navbar and site menu take w0 and w1
	assert.Contains(t, body, `<button id="w2-dropdown-trigger" class="button" aria-haspopup="true" aria-controls="w2-dropdown">`)
	assert.Contains(t, body, `<a class="dropdown-item" href="/profile">Profile</a>`)
	assert.Contains(t, body, `<li class="is-active"><a href="/preview/account" aria-current="page">Account menu</a></li>`)

	// the document tabs mark the shown document
	assert.Contains(t, body, `<li class="is-active"><a href="/preview/account">Account menu</a></li>`)
	assert.Contains(t, body, `<li><a href="/preview/broken">broken</a></li>`)

	// every request starts over
	_, again := get(t, s, "/preview/account")
	assert.Equal(t, body, again)
}

func TestShow_Invalid(t *testing.T) {
	s := newTestService(t)

	resp, body := get(t, s, "/preview/broken")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Invalid widget document")
	assert.Contains(t, body, "message is-danger")
}

func TestShow_NotFound(t *testing.T) {
	s := newTestService(t)

	for _, target := range []string{"/preview/missing", "/preview/.hidden", "/preview/a.b"} {
		resp, _ := get(t, s, target)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, target)
	}
}

func TestMetrics(t *testing.T) {
	s := newTestService(t)

	get(t, s, "/preview/account")
	get(t, s, "/preview/broken")

	resp, body := get(t, s, MetricsPath)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `gobulma_widgets_rendered_total{kind="dropdown",result="ok"} 1`)
}
