// Package catalog implements read access to the photo catalog: keyword
// lookups, roll browsing and item detail, each row joined with its roll's
// permission.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/exhibit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// Repo provides catalog reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new catalog repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Query builders
// ---------------------------------------------------------------------------

// itemColumns must stay in sync with scanItem.
var itemColumns = []string{
	"i.library_id",
	"i.id",
	"i.roll_id",
	"r.name",
	"i.guid",
	"i.caption",
	"i.comment",
	"i.rating",
	"i.media_type",
	"i.original_date",
	"i.thumb_path",
	"i.image_path",
	"COALESCE(p.public, false)",
	"COALESCE(p.group_id, 0)",
}

// rollColumns must stay in sync with scanRoll.
var rollColumns = []string{
	"r.library_id",
	"r.id",
	"r.name",
	"r.roll_date",
	"r.photo_count",
	"r.key_photo_id",
	"COALESCE(p.public, false)",
	"COALESCE(p.group_id, 0)",
	"kp.id IS NOT NULL",
	"COALESCE(kp.guid, '')",
	"COALESCE(kp.caption, '')",
	"COALESCE(kp.media_type, 'Image')",
	"COALESCE(kp.original_date, r.roll_date)",
	"COALESCE(kp.thumb_path, '')",
	"COALESCE(kp.image_path, '')",
}

func selectItems() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(itemColumns...).
		From("images i").
		Join("rolls r ON r.library_id = i.library_id AND r.id = i.roll_id").
		LeftJoin("permissions p ON p.library_id = r.library_id AND p.roll_id = r.id")
}

func selectRolls() squirrel.SelectBuilder {
	return postgres.Builder().
		Select(rollColumns...).
		From("rolls r").
		LeftJoin("permissions p ON p.library_id = r.library_id AND p.roll_id = r.id").
		LeftJoin("images kp ON kp.library_id = r.library_id AND kp.id = r.key_photo_id")
}

// ---------------------------------------------------------------------------
// Keyword lookups
// ---------------------------------------------------------------------------

// LookupKeyword returns every item tagged with label, compared
// case-insensitively, once per item, ordered by (library, item).
// Returns an empty slice (not nil) when the keyword is unknown.
func (r *Repo) LookupKeyword(ctx context.Context, label string) ([]domain.KeywordHit, error) {
	query, args, err := selectItems().
		Options("DISTINCT ON (i.library_id, i.id)").
		Columns("k.id", "k.keyword").
		Join("image_keywords ik ON ik.library_id = i.library_id AND ik.image_id = i.id").
		Join("keywords k ON k.library_id = ik.library_id AND k.id = ik.keyword_id").
		Where(squirrel.Expr("lower(k.keyword) = lower(?)", label)).
		OrderBy("i.library_id", "i.id", "k.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build keyword lookup: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "keyword", label)
	}
	defer rows.Close()

	hits := []domain.KeywordHit{}
	for rows.Next() {
		var (
			hit       domain.KeywordHit
			keywordID int64
		)
		item, err := scanItem(rows, &keywordID, &hit.Label)
		if err != nil {
			return nil, fmt.Errorf("scan keyword %q row: %w", label, err)
		}
		hit.Item = item
		hit.KeywordID = domain.KeywordID(keywordID)
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "keyword", label)
	}

	return hits, nil
}

// LookupAll returns every catalog item once, ordered by (library, item).
// The scan is unbounded: visibility is only known per caller at assembly,
// so a row limit here could cut off items the caller may see.
func (r *Repo) LookupAll(ctx context.Context) ([]domain.Item, error) {
	query, args, err := selectItems().
		OrderBy("i.library_id", "i.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build catalog scan: %w", err)
	}

	return r.queryItems(ctx, "catalog", "all", query, args)
}

// ---------------------------------------------------------------------------
// Browsing
// ---------------------------------------------------------------------------

// ListRolls returns all rolls, newest roll date first.
func (r *Repo) ListRolls(ctx context.Context) ([]domain.Roll, error) {
	query, args, err := selectRolls().
		OrderBy("r.roll_date DESC", "r.library_id", "r.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roll list: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "rolls", "all")
	}
	defer rows.Close()

	rolls := []domain.Roll{}
	for rows.Next() {
		roll, err := scanRoll(rows)
		if err != nil {
			return nil, fmt.Errorf("scan roll row: %w", err)
		}
		rolls = append(rolls, roll)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "rolls", "all")
	}

	return rolls, nil
}

// GetRoll returns a single roll.
// Returns domain.ErrNotFound if the roll does not exist.
func (r *Repo) GetRoll(ctx context.Context, lib domain.LibraryID, id domain.RollID) (*domain.Roll, error) {
	query, args, err := selectRolls().
		Where(squirrel.Eq{"r.library_id": int64(lib), "r.id": int64(id)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roll get: %w", err)
	}

	roll, err := scanRoll(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "roll", fmt.Sprintf("%d/%d", lib, id))
	}
	return &roll, nil
}

// ListRollItems returns at most limit items of one roll in capture order;
// limit <= 0 returns them all. Returns an empty slice (not nil) for an empty
// or unknown roll.
func (r *Repo) ListRollItems(ctx context.Context, lib domain.LibraryID, id domain.RollID, limit int) ([]domain.Item, error) {
	q := selectItems().
		Where(squirrel.Eq{"i.library_id": int64(lib), "i.roll_id": int64(id)}).
		OrderBy("i.original_date ASC", "i.id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build roll items: %w", err)
	}

	return r.queryItems(ctx, "roll", fmt.Sprintf("%d/%d", lib, id), query, args)
}

// GetItem returns a single item.
// Returns domain.ErrNotFound if the item does not exist.
func (r *Repo) GetItem(ctx context.Context, key domain.ItemKey) (*domain.Item, error) {
	query, args, err := selectItems().
		Where(squirrel.Eq{"i.library_id": int64(key.Library), "i.id": int64(key.Item)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build item get: %w", err)
	}

	item, err := scanItem(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "item", key)
	}
	return &item, nil
}

// ---------------------------------------------------------------------------
// Keywords
// ---------------------------------------------------------------------------

// KeywordsByItems returns the keyword labels of several items (batch for
// DataLoader), ordered by item then label.
func (r *Repo) KeywordsByItems(ctx context.Context, keys []domain.ItemKey) ([]domain.ItemKeyword, error) {
	if len(keys) == 0 {
		return []domain.ItemKeyword{}, nil
	}

	libs := make([]int64, len(keys))
	items := make([]int64, len(keys))
	for i, k := range keys {
		libs[i] = int64(k.Library)
		items[i] = int64(k.Item)
	}

	query, args, err := postgres.Builder().
		Select("ik.library_id", "ik.image_id", "k.keyword").
		From("image_keywords ik").
		Join("keywords k ON k.library_id = ik.library_id AND k.id = ik.keyword_id").
		Where(squirrel.Expr(
			"(ik.library_id, ik.image_id) IN (SELECT * FROM unnest(?::bigint[], ?::bigint[]))",
			libs, items,
		)).
		OrderBy("ik.library_id", "ik.image_id", "k.keyword").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build keywords by items: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "item keywords", len(keys))
	}
	defer rows.Close()

	result := []domain.ItemKeyword{}
	for rows.Next() {
		var (
			lib, item int64
			label     string
		)
		if err := rows.Scan(&lib, &item, &label); err != nil {
			return nil, fmt.Errorf("scan item keyword row: %w", err)
		}
		result = append(result, domain.ItemKeyword{
			Key:   domain.ItemKey{Library: domain.LibraryID(lib), Item: domain.ItemID(item)},
			Label: label,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "item keywords", len(keys))
	}

	return result, nil
}

// ListKeywords returns the distinct keyword vocabulary in ascending order.
// Labels differing only in case are reported once.
func (r *Repo) ListKeywords(ctx context.Context) ([]string, error) {
	query, args, err := postgres.Builder().
		Select("min(keyword)").
		From("keywords").
		GroupBy("lower(keyword)").
		OrderBy("lower(keyword) ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build keyword list: %w", err)
	}

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "keywords", "all")
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("scan keyword row: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "keywords", "all")
	}

	return labels, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func (r *Repo) queryItems(ctx context.Context, entity string, key any, query string, args []any) ([]domain.Item, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entity, key)
	}
	defer rows.Close()

	items := []domain.Item{}
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s item row: %w", entity, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entity, key)
	}

	return items, nil
}

// scanItem reads itemColumns followed by any extra destinations.
func scanItem(row pgx.Row, extra ...any) (domain.Item, error) {
	var (
		lib, id, roll int64
		rating        int16
		mediaType     string
		public        bool
		group         int64
		item          domain.Item
	)

	dest := []any{
		&lib, &id, &roll, &item.RollName, &item.GUID, &item.Caption, &item.Comment,
		&rating, &mediaType, &item.CapturedAt, &item.ThumbPath, &item.FullPath,
		&public, &group,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return domain.Item{}, err
	}

	item.LibraryID = domain.LibraryID(lib)
	item.ID = domain.ItemID(id)
	item.RollID = domain.RollID(roll)
	item.Rating = int(rating)
	item.MediaKind = domain.MediaKind(mediaType)
	item.Permission = domain.Permission{Public: public, GroupID: domain.GroupID(group)}
	return item, nil
}

func scanRoll(row pgx.Row) (domain.Roll, error) {
	var (
		lib, id, keyPhotoID int64
		photoCount          int32
		public              bool
		group               int64
		hasKeyPhoto         bool
		roll                domain.Roll
		kp                  domain.Item
		kpMediaType         string
		kpCapturedAt        time.Time
	)

	err := row.Scan(
		&lib, &id, &roll.Name, &roll.Date, &photoCount, &keyPhotoID, &public, &group,
		&hasKeyPhoto, &kp.GUID, &kp.Caption, &kpMediaType, &kpCapturedAt, &kp.ThumbPath, &kp.FullPath,
	)
	if err != nil {
		return domain.Roll{}, err
	}

	roll.LibraryID = domain.LibraryID(lib)
	roll.ID = domain.RollID(id)
	roll.PhotoCount = int(photoCount)
	roll.KeyPhotoID = domain.ItemID(keyPhotoID)
	roll.Permission = domain.Permission{Public: public, GroupID: domain.GroupID(group)}

	if hasKeyPhoto {
		kp.LibraryID = roll.LibraryID
		kp.ID = roll.KeyPhotoID
		kp.RollID = roll.ID
		kp.RollName = roll.Name
		kp.MediaKind = domain.MediaKind(kpMediaType)
		kp.CapturedAt = kpCapturedAt
		kp.Permission = roll.Permission
		roll.KeyPhoto = &kp
	}

	return roll, nil
}
