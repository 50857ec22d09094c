package wasteapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"binday-scheduler/internal/common/errors"
	"binday-scheduler/internal/common/logger"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := NewClient(server.URL, nil, logger.NewTestLogger(t))
	return server, client
}

func TestLookupAddress(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/address/search", r.URL.Path)
		assert.Equal(t, "CB1 1AA", r.URL.Query().Get("postCode"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": "addr-1", "houseNumber": "10"},
			{"id": "addr-2", "houseNumber": "12"}
		]`))
	})

	id, err := client.LookupAddress(context.Background(), "CB1 1AA", "12")
	require.NoError(t, err)
	assert.Equal(t, "addr-2", id)
}

func TestLookupAddress_NoMatch(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id": "addr-1", "houseNumber": "10"}]`))
	})

	_, err := client.LookupAddress(context.Background(), "CB1 1AA", "99")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFetchFailed))
	assert.Contains(t, err.Error(), "house number 99")
}

func TestLookupAddress_EmptyResponse(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.LookupAddress(context.Background(), "CB1 1AA", "12")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFetchFailed))
}

func TestLookupAddress_ServerError(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.LookupAddress(context.Background(), "CB1 1AA", "12")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFetchFailed))
}

func TestFetchCollections(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/collection/search/addr-1", r.URL.Path)
		assert.Equal(t, "3", r.URL.Query().Get("numberOfCollections"))
		_, _ = w.Write([]byte(`{"collections": [
			{"date": "2024-03-05T00:00:00Z", "roundTypes": ["DOMESTIC", "RECYCLE"]},
			{"date": "2024-03-12", "roundTypes": ["ORGANIC"]}
		]}`))
	})

	events, err := client.FetchCollections(context.Background(), "addr-1", 3)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Black", events[0].BinCategory())
	assert.Equal(t, "Blue", events[1].BinCategory())
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), events[0].OccursAtUTC())
	assert.Equal(t, "Green", events[2].BinCategory())
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), events[2].OccursAtUTC())
}

func TestFetchCollections_DefaultCount(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("numberOfCollections"))
		_, _ = w.Write([]byte(`{"collections": [{"date": "2024-03-05", "roundTypes": ["DOMESTIC"]}]}`))
	})

	_, err := client.FetchCollections(context.Background(), "addr-1", 0)
	require.NoError(t, err)
}

func TestFetchCollections_Empty(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"collections": []}`))
	})

	_, err := client.FetchCollections(context.Background(), "addr-1", 2)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFetchFailed))
	assert.Contains(t, err.Error(), "no collections found")
}

func TestFetchCollections_BadDate(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"collections": [{"date": "05/03/2024", "roundTypes": ["DOMESTIC"]}]}`))
	})

	_, err := client.FetchCollections(context.Background(), "addr-1", 2)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFetchFailed))
}

func TestParseCollectionDate(t *testing.T) {
	tests := []struct {
		value string
		want  time.Time
	}{
		{"2024-03-05T07:00:00Z", time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)},
		{"2024-03-05T07:00:00", time.Date(2024, 3, 5, 7, 0, 0, 0, time.UTC)},
		{"2024-03-05", time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.value, func(t *testing.T) {
			got, err := parseCollectionDate(tc.value)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want))
		})
	}

	_, err := parseCollectionDate("next tuesday")
	require.Error(t, err)
}
