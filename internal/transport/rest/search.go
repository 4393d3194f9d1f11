package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/service/search"
	"github.com/heartmarshall/exhibit-backend/internal/transport/dataloader"
	"github.com/heartmarshall/exhibit-backend/pkg/ctxutil"
)

type searchService interface {
	Search(ctx context.Context, input search.SearchInput) (*search.SearchResult, error)
}

// SearchHandler serves keyword search.
type SearchHandler struct {
	svc  searchService
	urls imageURLs
	log  *slog.Logger
}

// NewSearchHandler creates a SearchHandler. imageBaseURL prefixes every
// thumbnail and full-size URL in the response.
func NewSearchHandler(svc searchService, imageBaseURL string, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		svc:  svc,
		urls: newImageURLs(imageBaseURL),
		log:  logger.With("handler", "search"),
	}
}

// Search handles GET /api/search?key1=&key2=&key3=&restriction=ANY|ALL.
// Repeated keyword= parameters are accepted as well and follow key1..key3.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := ctxutil.IdentityFromCtx(ctx)

	result, err := h.svc.Search(ctx, search.SearchInput{
		Keywords: keywordParams(r),
		Mode:     r.URL.Query().Get("restriction"),
		Identity: identity,
	})
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	items := make([]domain.Item, len(result.Matches))
	for i, m := range result.Matches {
		items[i] = m.Item
	}
	keywords, err := loadKeywords(ctx, items)
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	resp := searchResponse{
		Keywords:    result.Keywords,
		Restriction: result.Mode.String(),
		Count:       len(result.Matches),
		Items:       make([]itemResponse, len(result.Matches)),
	}
	for i, m := range result.Matches {
		resp.Items[i] = h.urls.item(m.Item, keywords[i])
		resp.Items[i].MatchedKeywords = m.Keywords
	}

	writeJSON(w, http.StatusOK, resp)
}

// keywordParams collects key1..key3 followed by any keyword= values. Blank
// values are dropped; the search service validates the rest.
func keywordParams(r *http.Request) []string {
	q := r.URL.Query()
	params := make([]string, 0, search.MaxKeywords)
	for _, name := range []string{"key1", "key2", "key3"} {
		if v := q.Get(name); strings.TrimSpace(v) != "" {
			params = append(params, v)
		}
	}
	for _, v := range q["keyword"] {
		if strings.TrimSpace(v) != "" {
			params = append(params, v)
		}
	}
	return params
}

// loadKeywords fetches the keyword list of every item through the request's
// dataloader, in item order.
func loadKeywords(ctx context.Context, items []domain.Item) ([][]string, error) {
	keys := make([]domain.ItemKey, len(items))
	for i, item := range items {
		keys[i] = item.Key()
	}
	return dataloader.FromContext(ctx).LoadKeywords(ctx, keys)
}
