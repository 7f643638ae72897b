package netx

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostForm(t *testing.T) {
	t.Run("success 200 OK", func(t *testing.T) {
		var gotMethod, gotCT, gotUA string
		var gotForm url.Values

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotMethod = r.Method
			gotCT = r.Header.Get("Content-Type")
			gotUA = r.Header.Get("User-Agent")
			require.NoError(t, r.ParseForm())
			gotForm = r.PostForm
			_, _ = io.WriteString(w, `{"ok":true}`)
		}))
		defer ts.Close()

		h := http.Header{}
		h.Set("User-Agent", "Mozilla/5.0")
		body, err := PostForm(context.Background(), ts.Client(), ts.URL, url.Values{"sessionId": {"abc"}, "icao": {"EDDF"}}, h)
		require.NoError(t, err)

		assert.Equal(t, `{"ok":true}`, string(body))
		assert.Equal(t, http.MethodPost, gotMethod)
		assert.Equal(t, "application/x-www-form-urlencoded", gotCT)
		assert.Equal(t, "Mozilla/5.0", gotUA)
		assert.Equal(t, "abc", gotForm.Get("sessionId"))
		assert.Equal(t, "EDDF", gotForm.Get("icao"))
	})

	t.Run("nil form posts empty body", func(t *testing.T) {
		var gotLen int64 = -1
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotLen = r.ContentLength
			_, _ = w.Write([]byte("%PDF"))
		}))
		defer ts.Close()

		body, err := PostForm(context.Background(), ts.Client(), ts.URL, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, "%PDF", string(body))
		assert.Equal(t, int64(0), gotLen)
	})

	t.Run("non-200 -> StatusError", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = io.WriteString(w, strings.Repeat("x", 2048))
		}))
		defer ts.Close()

		_, err := PostForm(context.Background(), ts.Client(), ts.URL, url.Values{}, nil)
		require.Error(t, err)

		var se *StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusForbidden, se.StatusCode)
		assert.Len(t, se.Body, maxErrorBody)
		assert.Contains(t, err.Error(), "403")
	})

	t.Run("bad URL", func(t *testing.T) {
		_, err := PostForm(context.Background(), http.DefaultClient, "://bad", nil, nil)
		require.Error(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		addr := ts.URL
		ts.Close()

		_, err := PostForm(context.Background(), http.DefaultClient, addr, nil, nil)
		require.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := PostForm(ctx, ts.Client(), ts.URL, nil, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
}
