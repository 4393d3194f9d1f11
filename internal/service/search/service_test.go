package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
	"github.com/heartmarshall/exhibit-backend/internal/service/access"
)

//go:generate moq -out caller_resolver_mock_test.go -pkg search . callerResolver

// newScenarioService wires the real engine and resolver over an in-memory
// catalog where "alice" belongs to group 5.
func newScenarioService(t *testing.T, c *fakeCatalog, limit int) *Service {
	t.Helper()
	log := slog.Default()
	resolver := access.NewResolver(log, fakeMemberships{"alice": {5}}, "Anonymous")
	return NewService(log, resolver, NewEngine(log, c), limit)
}

func matchKeys(r *SearchResult) []domain.ItemKey {
	keys := []domain.ItemKey{}
	for _, m := range r.Matches {
		keys = append(keys, m.Item.Key())
	}
	return keys
}

// ---------------------------------------------------------------------------
// Scenarios
// ---------------------------------------------------------------------------

func TestSearch_AnyAnonymous(t *testing.T) {
	t.Parallel()

	c, a, _, cc := scenarioCatalog()
	svc := newScenarioService(t, c, 0)

	res, err := svc.Search(context.Background(), SearchInput{
		Keywords: []string{"dog", "park"},
		Mode:     "ANY",
		Identity: "Anonymous",
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.ItemKey{a.Key(), cc.Key()}, matchKeys(res))
	assert.Equal(t, domain.RestrictionAny, res.Mode)
	assert.Equal(t, []string{"dog", "park"}, res.Keywords)
}

func TestSearch_AllAnonymous(t *testing.T) {
	t.Parallel()

	c, a, _, _ := scenarioCatalog()
	svc := newScenarioService(t, c, 0)

	res, err := svc.Search(context.Background(), SearchInput{
		Keywords: []string{"dog", "park"},
		Mode:     "all",
		Identity: "Anonymous",
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.ItemKey{a.Key()}, matchKeys(res))
	assert.Equal(t, []string{"dog", "park"}, res.Matches[0].Keywords)
}

func TestSearch_GroupMemberSeesGroupItems(t *testing.T) {
	t.Parallel()

	c, a, b, _ := scenarioCatalog()
	svc := newScenarioService(t, c, 0)

	res, err := svc.Search(context.Background(), SearchInput{
		Keywords: []string{"dog"},
		Identity: "alice",
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.ItemKey{a.Key(), b.Key()}, matchKeys(res))
}

// ---------------------------------------------------------------------------
// Properties
// ---------------------------------------------------------------------------

func TestSearch_AnonymousSeesOnlyPublic(t *testing.T) {
	t.Parallel()

	c := newFakeCatalog()
	for id := int64(1); id <= 30; id++ {
		perm := domain.Permission{Public: id%3 == 0, GroupID: domain.GroupID(id % 4)}
		c.add(1, id, perm, "tree")
	}
	svc := newScenarioService(t, c, 0)

	for _, identity := range []string{"Anonymous", ""} {
		res, err := svc.Search(context.Background(), SearchInput{Keywords: []string{"tree"}, Identity: identity})
		require.NoError(t, err)
		require.Len(t, res.Matches, 10)
		for _, m := range res.Matches {
			assert.True(t, m.Item.Permission.Public)
		}
	}
}

func TestSearch_EmptyKeywordsReturnAllVisibleUpToCap(t *testing.T) {
	t.Parallel()

	c := newFakeCatalog()
	for id := int64(1); id <= 12; id++ {
		c.add(1, id, domain.Permission{Public: id <= 8})
	}

	res, err := newScenarioService(t, c, 5).Search(context.Background(), SearchInput{Identity: "Anonymous"})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 5)
	assert.Empty(t, res.Keywords)

	res, err = newScenarioService(t, c, 100).Search(context.Background(), SearchInput{Keywords: []string{" ", ""}, Identity: "Anonymous"})
	require.NoError(t, err)
	assert.Len(t, res.Matches, 8)
}

func TestSearch_CapReturnsExactlyLimit(t *testing.T) {
	t.Parallel()

	c := newFakeCatalog()
	for id := int64(1); id <= 50; id++ {
		c.add(1, id, domain.Permission{Public: true}, "sky")
	}

	res, err := newScenarioService(t, c, 7).Search(context.Background(), SearchInput{Keywords: []string{"sky"}})

	require.NoError(t, err)
	require.Len(t, res.Matches, 7)
	assert.Equal(t, domain.ItemID(1), res.Matches[0].Item.ID)
	assert.Equal(t, domain.ItemID(7), res.Matches[6].Item.ID)
}

func TestSearch_Idempotent(t *testing.T) {
	t.Parallel()

	c, _, _, _ := scenarioCatalog()
	svc := newScenarioService(t, c, 0)
	input := SearchInput{Keywords: []string{"park", "dog"}, Mode: "ANY", Identity: "alice"}

	first, err := svc.Search(context.Background(), input)
	require.NoError(t, err)
	second, err := svc.Search(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSearch_SingleKeywordAnyEqualsAll(t *testing.T) {
	t.Parallel()

	c, _, _, _ := scenarioCatalog()
	svc := newScenarioService(t, c, 0)

	anyRes, err := svc.Search(context.Background(), SearchInput{Keywords: []string{"park"}, Mode: "ANY", Identity: "alice"})
	require.NoError(t, err)
	allRes, err := svc.Search(context.Background(), SearchInput{Keywords: []string{"park"}, Mode: "ALL", Identity: "alice"})
	require.NoError(t, err)

	assert.Equal(t, anyRes.Matches, allRes.Matches)
}

// ---------------------------------------------------------------------------
// Validation and errors
// ---------------------------------------------------------------------------

func TestSearch_InvalidInputRejectedBeforeLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input SearchInput
		field string
	}{
		{"four keywords", SearchInput{Keywords: []string{"a", "b", "c", "d"}}, "keywords"},
		{"unknown mode", SearchInput{Keywords: []string{"a"}, Mode: "SOME"}, "restriction"},
		{"oversized keyword", SearchInput{Keywords: []string{strings.Repeat("x", MaxKeywordLength+1)}}, "keywords"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			resolver := &callerResolverMock{}
			idx := &keywordIndexMock{}
			svc := NewService(slog.Default(), resolver, NewEngine(slog.Default(), idx), 0)

			_, err := svc.Search(context.Background(), tt.input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrValidation))
			var vErr *domain.ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Errors[0].Field)
			assert.Empty(t, resolver.ResolveCalls())
			assert.Empty(t, idx.LookupKeywordCalls())
			assert.Empty(t, idx.LookupAllCalls())
		})
	}
}

func TestSearch_BlankKeywordsDoNotCountTowardsLimit(t *testing.T) {
	t.Parallel()

	c, _, _, _ := scenarioCatalog()
	svc := newScenarioService(t, c, 0)

	res, err := svc.Search(context.Background(), SearchInput{Keywords: []string{"dog", "", "park", " "}})

	require.NoError(t, err)
	assert.Equal(t, []string{"dog", "park"}, res.Keywords)
}

func TestSearch_ResolverErrorPropagates(t *testing.T) {
	t.Parallel()

	resolver := &callerResolverMock{
		ResolveFunc: func(ctx context.Context, identity string) (domain.Caller, error) {
			return domain.Caller{}, domain.ErrStoreUnavailable
		},
	}
	idx := &keywordIndexMock{}
	svc := NewService(slog.Default(), resolver, NewEngine(slog.Default(), idx), 0)

	_, err := svc.Search(context.Background(), SearchInput{Keywords: []string{"dog"}, Identity: "alice"})

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Empty(t, idx.LookupKeywordCalls())
}

func TestSearch_StoreErrorIsNotEmptyResult(t *testing.T) {
	t.Parallel()

	resolver := &callerResolverMock{
		ResolveFunc: func(ctx context.Context, identity string) (domain.Caller, error) {
			return domain.AnonymousCaller("Anonymous"), nil
		},
	}
	idx := &keywordIndexMock{
		LookupKeywordFunc: func(ctx context.Context, label string) ([]domain.KeywordHit, error) {
			return nil, domain.ErrStoreUnavailable
		},
	}
	svc := NewService(slog.Default(), resolver, NewEngine(slog.Default(), idx), 0)

	res, err := svc.Search(context.Background(), SearchInput{Keywords: []string{"dog"}})

	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestIsVisible(t *testing.T) {
	t.Parallel()

	c, a, b, _ := scenarioCatalog()
	svc := newScenarioService(t, c, 0)
	ctx := context.Background()

	ok, err := svc.IsVisible(ctx, b, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsVisible(ctx, b, "Anonymous")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.IsVisible(ctx, a, "Anonymous")
	require.NoError(t, err)
	assert.True(t, ok)
}
