package geoclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Locate(t *testing.T) {
	var paths []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/postcodes/CH54HS":
			w.Write([]byte(`{"status":200,"result":{"latitude":53.210058,"longitude":-3.053622}}`))
		case "/postcodes/CH79ZZ":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":404,"error":"Postcode not found"}`))
		case "/outcodes/CH7":
			w.Write([]byte(`{"status":200,"result":{"latitude":53.166,"longitude":-3.132}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"status":404,"error":"not found"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())

	t.Run("full postcode hit strips whitespace", func(t *testing.T) {
		coords, err := c.Locate(context.Background(), "ch5 4hs")
		require.NoError(t, err)
		assert.InDelta(t, 53.210058, coords.Latitude, 1e-9)
		assert.InDelta(t, -3.053622, coords.Longitude, 1e-9)
		assert.Equal(t, []string{"/postcodes/CH54HS"}, paths)
	})

	t.Run("unknown postcode falls back to outcode", func(t *testing.T) {
		coords, err := c.Locate(context.Background(), "CH7 9ZZ")
		require.NoError(t, err)
		assert.InDelta(t, 53.166, coords.Latitude, 1e-9)
	})

	t.Run("unknown everywhere", func(t *testing.T) {
		_, err := c.Locate(context.Background(), "ZZ9 9ZZ")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("empty query", func(t *testing.T) {
		_, err := c.Locate(context.Background(), "  ")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestClient_LocateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL, srv.Client())
	_, err := c.Locate(context.Background(), "CH5 4HS")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
