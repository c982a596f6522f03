package recognize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Options{
		BaseURL: server.URL,
		Token:   "test-token",
		UserKey: "test-user",
	})
}

func TestClient_Configured(t *testing.T) {
	assert.True(t, NewClient(Options{BaseURL: "http://x", Token: "t", UserKey: "u"}).Configured())
	assert.False(t, NewClient(Options{BaseURL: "http://x", Token: "t"}).Configured())
	assert.False(t, NewClient(Options{}).Configured())
}

func TestClient_Recognize(t *testing.T) {
	photo := makePhoto(t, 320, 240)

	t.Run("inline calories skip the detail lookup", func(t *testing.T) {
		detailCalls := 0
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/recognition/dish":
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

				require.NoError(t, r.ParseMultipartForm(2<<20))
				assert.Equal(t, "test-user", r.FormValue("user_key"))
				file, header, err := r.FormFile("image")
				require.NoError(t, err)
				file.Close()
				assert.Equal(t, "photo.jpg", header.Filename)

				w.Write([]byte(`{"recognition_results":[
					{"id":731,"name":"Ramen","nutritional_info":{"calories":450.4}},
					{"id":9,"name":"Soup"}
				]}`))
			default:
				detailCalls++
				w.WriteHeader(http.StatusInternalServerError)
			}
		}))

		entry, err := client.Recognize(context.Background(), photo)
		require.NoError(t, err)
		assert.Equal(t, "Ramen", entry.Food)
		assert.Equal(t, 450, entry.Calories)
		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, 0, detailCalls)
	})

	t.Run("missing inline calories fall back to the detail endpoint", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/recognition/dish":
				w.Write([]byte(`{"recognition_results":[{"id":731,"name":"Ramen"}]}`))
			case "/dish/731/info":
				assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
				w.Write([]byte(`{"nutritional_info":{"calories":380}}`))
			default:
				t.Errorf("unexpected request: %s", r.URL.Path)
			}
		}))

		entry, err := client.Recognize(context.Background(), photo)
		require.NoError(t, err)
		assert.Equal(t, "Ramen", entry.Food)
		assert.Equal(t, 380, entry.Calories)
	})

	t.Run("failed detail lookup defaults to zero calories", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/recognition/dish" {
				w.Write([]byte(`{"recognition_results":[{"id":731,"name":"Ramen"}]}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		}))

		entry, err := client.Recognize(context.Background(), photo)
		require.NoError(t, err, "detail failures never fail the pipeline")
		assert.Equal(t, "Ramen", entry.Food)
		assert.Equal(t, 0, entry.Calories)
	})

	t.Run("detail response without calories defaults to zero", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/recognition/dish" {
				w.Write([]byte(`{"recognition_results":[{"id":731,"name":"Ramen"}]}`))
				return
			}
			w.Write([]byte(`{"nutritional_info":{}}`))
		}))

		entry, err := client.Recognize(context.Background(), photo)
		require.NoError(t, err)
		assert.Equal(t, 0, entry.Calories)
	})

	t.Run("no candidates", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"recognition_results":[]}`))
		}))

		_, err := client.Recognize(context.Background(), photo)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("candidate without a name", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"recognition_results":[{"id":731}]}`))
		}))

		_, err := client.Recognize(context.Background(), photo)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("candidate without an id", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"recognition_results":[{"name":"Ramen"}]}`))
		}))

		_, err := client.Recognize(context.Background(), photo)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("malformed response body", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"recognition_results": oops`))
		}))

		_, err := client.Recognize(context.Background(), photo)
		var parseErr *ParseError
		assert.ErrorAs(t, err, &parseErr)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "quota exceeded", http.StatusForbidden)
		}))

		_, err := client.Recognize(context.Background(), photo)
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Contains(t, transportErr.Error(), "403")
	})

	t.Run("unreachable service", func(t *testing.T) {
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()

		client := NewClient(Options{BaseURL: url, Token: "t", UserKey: "u"})
		_, err := client.Recognize(context.Background(), photo)
		var transportErr *TransportError
		assert.ErrorAs(t, err, &transportErr)
	})

	t.Run("unreadable photo makes no network call", func(t *testing.T) {
		calls := 0
		client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
		}))

		_, err := client.Recognize(context.Background(), []byte("not an image"))
		assert.ErrorIs(t, err, ErrUnreadableImage)
		assert.Equal(t, 0, calls)
	})
}
