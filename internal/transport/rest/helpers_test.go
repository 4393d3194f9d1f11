package rest

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/transport/dataloader"
	"github.com/heartmarshall/exhibit-backend/pkg/ctxutil"
)

//go:generate moq -out search_service_mock_test.go -pkg rest . searchService
//go:generate moq -out browse_service_mock_test.go -pkg rest . browseService

const testImageBase = "/images/exhibit/"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleItem(lib, id int64) domain.Item {
	return domain.Item{
		LibraryID:  domain.LibraryID(lib),
		ID:         domain.ItemID(id),
		RollID:     7,
		RollName:   "Summer",
		GUID:       "GUID" + string(rune('A'+id%26)),
		Caption:    "caption",
		Rating:     3,
		MediaKind:  domain.MediaKindImage,
		CapturedAt: time.Date(2008, 7, 1, 12, 0, 0, 0, time.UTC),
		ThumbPath:  "/thumbs/x.jpg",
		FullPath:   "/full/x.JPG",
		Permission: domain.Permission{Public: true},
	}
}

// stubKeywords serves keyword lists to the request dataloader.
type stubKeywords struct {
	mu      sync.Mutex
	byItem  map[domain.ItemKey][]string
	err     error
	batches int
}

func (s *stubKeywords) KeywordsByItems(_ context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error) {
	s.mu.Lock()
	s.batches++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	var rows []domain.ItemKeyword
	for _, k := range keys {
		for _, label := range s.byItem[k] {
			rows = append(rows, domain.ItemKeyword{Key: k, Label: label})
		}
	}
	return rows, nil
}

// newRequest builds a GET request carrying loaders and, when identity is
// not empty, an authenticated identity.
func newRequest(target, identity string, keywords *stubKeywords) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	ctx := dataloader.WithLoaders(req.Context(), dataloader.NewLoaders(keywords, 0))
	if identity != "" {
		ctx = ctxutil.WithIdentity(ctx, identity)
	}
	return req.WithContext(ctx)
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), "body: %s", rec.Body.String())
	return v
}
