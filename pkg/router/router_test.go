package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactRoute(t *testing.T) {
	r := New()
	r.GET("/api/v1/report/overview", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/report/overview")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestWildcardRoute(t *testing.T) {
	r := New()
	r.GET("/swagger/*", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	for _, path := range []string{"/swagger/index.html", "/swagger/doc.json", "/swagger/a/b"} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := New()
	r.GET("/api/v1/report/overview", func(w http.ResponseWriter, req *http.Request) {})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/api/v1/report/overview", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestNotFound(t *testing.T) {
	r := New()

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRouteRegistration(t *testing.T) {
	r := New()
	r.GET("/a", func(w http.ResponseWriter, req *http.Request) {})
	r.POST("/a", func(w http.ResponseWriter, req *http.Request) {})

	assert.Len(t, r.Routes(), 2)
	assert.True(t, r.Paths()["/a"])
}
