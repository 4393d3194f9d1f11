package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// seq hands out catalog IDs. Catalog IDs come from the importer, not from
// sequences, so tests pick them; starting from the clock keeps separate test
// binaries sharing a container from colliding.
var seq atomic.Int64

func init() {
	seq.Store(time.Now().UnixMilli() % 1_000_000_000 * 1000)
}

func nextID() int64 {
	return seq.Add(1)
}

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// UniqueLabel returns a keyword label unique to the calling test, so lookups
// never see rows seeded by parallel tests.
func UniqueLabel(prefix string) string {
	return prefix + "-" + uniqueSuffix()
}

// SeedLibrary inserts an empty library.
func SeedLibrary(t *testing.T, pool *pgxpool.Pool) domain.LibraryID {
	t.Helper()

	id := domain.LibraryID(nextID())
	_, err := pool.Exec(context.Background(),
		`INSERT INTO libraries (id, name) VALUES ($1, $2)`,
		int64(id), "Library "+uniqueSuffix(),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLibrary: %v", err)
	}
	return id
}

// SeedRoll inserts a roll with the given permission. A zero Permission
// stores no permission row, leaving the roll private.
func SeedRoll(t *testing.T, pool *pgxpool.Pool, lib domain.LibraryID, date time.Time, perm domain.Permission) domain.Roll {
	t.Helper()
	ctx := context.Background()

	roll := domain.Roll{
		LibraryID:  lib,
		ID:         domain.RollID(nextID()),
		Name:       "Roll " + uniqueSuffix(),
		Date:       date.UTC().Truncate(time.Microsecond),
		Permission: perm,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO rolls (library_id, id, name, roll_date) VALUES ($1, $2, $3, $4)`,
		int64(roll.LibraryID), int64(roll.ID), roll.Name, roll.Date,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoll insert roll: %v", err)
	}

	if perm == (domain.Permission{}) {
		return roll
	}

	var group *int64
	if perm.GroupID != domain.NoGroup {
		g := int64(perm.GroupID)
		group = &g
	}
	_, err = pool.Exec(ctx,
		`INSERT INTO permissions (library_id, roll_id, public, group_id) VALUES ($1, $2, $3, $4)`,
		int64(roll.LibraryID), int64(roll.ID), perm.Public, group,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRoll insert permission: %v", err)
	}

	return roll
}

// SeedItem inserts an image into a roll and bumps the roll's photo count.
// The first item seeded into a roll becomes its key photo.
func SeedItem(t *testing.T, pool *pgxpool.Pool, roll domain.Roll, capturedAt time.Time) domain.Item {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	item := domain.Item{
		LibraryID:  roll.LibraryID,
		ID:         domain.ItemID(nextID()),
		RollID:     roll.ID,
		RollName:   roll.Name,
		GUID:       "guid-" + suffix,
		Caption:    "Caption " + suffix,
		MediaKind:  domain.MediaKindImage,
		CapturedAt: capturedAt.UTC().Truncate(time.Microsecond),
		ThumbPath:  "Thumbs/" + suffix + ".jpg",
		FullPath:   "Originals/" + suffix + ".jpg",
		Permission: roll.Permission,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO images (library_id, id, roll_id, guid, caption, comment, rating, media_type, original_date, thumb_path, image_path)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		int64(item.LibraryID), int64(item.ID), int64(item.RollID), item.GUID, item.Caption, item.Comment,
		item.Rating, string(item.MediaKind), item.CapturedAt, item.ThumbPath, item.FullPath,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem insert image: %v", err)
	}

	_, err = pool.Exec(ctx,
		`UPDATE rolls
		 SET photo_count = photo_count + 1,
		     key_photo_id = CASE WHEN key_photo_id = 0 THEN $3 ELSE key_photo_id END
		 WHERE library_id = $1 AND id = $2`,
		int64(item.LibraryID), int64(item.RollID), int64(item.ID),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem update roll: %v", err)
	}

	return item
}

// SeedKeyword inserts a keyword into a library.
func SeedKeyword(t *testing.T, pool *pgxpool.Pool, lib domain.LibraryID, label string) domain.Keyword {
	t.Helper()

	kw := domain.Keyword{LibraryID: lib, ID: domain.KeywordID(nextID()), Label: label}
	_, err := pool.Exec(context.Background(),
		`INSERT INTO keywords (library_id, id, keyword) VALUES ($1, $2, $3)`,
		int64(kw.LibraryID), int64(kw.ID), kw.Label,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedKeyword: %v", err)
	}
	return kw
}

// TagItem links an item to keywords of its library.
func TagItem(t *testing.T, pool *pgxpool.Pool, item domain.Item, keywords ...domain.Keyword) {
	t.Helper()

	for _, kw := range keywords {
		_, err := pool.Exec(context.Background(),
			`INSERT INTO image_keywords (library_id, image_id, keyword_id) VALUES ($1, $2, $3)`,
			int64(item.LibraryID), int64(item.ID), int64(kw.ID),
		)
		if err != nil {
			t.Fatalf("testhelper: TagItem %s with %q: %v", item.Key(), kw.Label, err)
		}
	}
}

// SeedGroup inserts an access-control group.
func SeedGroup(t *testing.T, pool *pgxpool.Pool) domain.Group {
	t.Helper()

	g := domain.Group{Name: "group-" + uniqueSuffix(), Description: "test group"}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO groups (name, description) VALUES ($1, $2) RETURNING id`,
		g.Name, g.Description,
	).Scan((*int64)(&g.ID))
	if err != nil {
		t.Fatalf("testhelper: SeedGroup: %v", err)
	}
	return g
}

// SeedUser inserts a user belonging to the given groups and returns the
// username.
func SeedUser(t *testing.T, pool *pgxpool.Pool, groups ...domain.GroupID) string {
	t.Helper()
	ctx := context.Background()

	username := "user-" + uniqueSuffix()
	var userID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO users (username) VALUES ($1) RETURNING id`, username,
	).Scan(&userID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	for _, g := range groups {
		_, err := pool.Exec(ctx,
			`INSERT INTO user_groups (user_id, group_id) VALUES ($1, $2)`, userID, int64(g),
		)
		if err != nil {
			t.Fatalf("testhelper: SeedUser insert membership: %v", err)
		}
	}

	return username
}
