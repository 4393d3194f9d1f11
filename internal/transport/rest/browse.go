package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/service/browse"
	"github.com/heartmarshall/exhibit-backend/pkg/ctxutil"
)

type browseService interface {
	ListRolls(ctx context.Context, identity string) ([]domain.Roll, error)
	ListRollItems(ctx context.Context, lib domain.LibraryID, id domain.RollID, identity string) (*browse.RollContents, error)
	GetItem(ctx context.Context, key domain.ItemKey, identity string) (*browse.ItemDetail, error)
	ListKeywords(ctx context.Context) ([]string, error)
}

// BrowseHandler serves roll and item pages and the keyword vocabulary.
type BrowseHandler struct {
	svc  browseService
	urls imageURLs
	log  *slog.Logger
}

// NewBrowseHandler creates a BrowseHandler.
func NewBrowseHandler(svc browseService, imageBaseURL string, logger *slog.Logger) *BrowseHandler {
	return &BrowseHandler{
		svc:  svc,
		urls: newImageURLs(imageBaseURL),
		log:  logger.With("handler", "browse"),
	}
}

// ListRolls handles GET /api/rolls.
func (h *BrowseHandler) ListRolls(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := ctxutil.IdentityFromCtx(ctx)

	rolls, err := h.svc.ListRolls(ctx, identity)
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	resp := make([]rollResponse, len(rolls))
	for i, roll := range rolls {
		resp[i] = h.urls.roll(roll)
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetRoll handles GET /api/libraries/{library}/rolls/{roll}.
func (h *BrowseHandler) GetRoll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := ctxutil.IdentityFromCtx(ctx)

	lib, err := pathID(r, "library")
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}
	rollID, err := pathID(r, "roll")
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	contents, err := h.svc.ListRollItems(ctx, domain.LibraryID(lib), domain.RollID(rollID), identity)
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	keywords, err := loadKeywords(ctx, contents.Items)
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	resp := rollContentsResponse{
		Roll:      h.urls.roll(contents.Roll),
		Items:     make([]itemResponse, len(contents.Items)),
		Truncated: contents.Truncated,
	}
	for i, item := range contents.Items {
		resp.Items[i] = h.urls.item(item, keywords[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetItem handles GET /api/libraries/{library}/items/{item}.
func (h *BrowseHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	identity, _ := ctxutil.IdentityFromCtx(ctx)

	lib, err := pathID(r, "library")
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}
	itemID, err := pathID(r, "item")
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	key := domain.ItemKey{Library: domain.LibraryID(lib), Item: domain.ItemID(itemID)}
	detail, err := h.svc.GetItem(ctx, key, identity)
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.urls.item(detail.Item, detail.Keywords))
}

// ListKeywords handles GET /api/keywords.
func (h *BrowseHandler) ListKeywords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	keywords, err := h.svc.ListKeywords(ctx)
	if err != nil {
		handleError(ctx, h.log, w, err)
		return
	}
	writeJSON(w, http.StatusOK, keywordsResponse{Keywords: keywords})
}

func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(name, "must be a positive integer")
	}
	return id, nil
}
