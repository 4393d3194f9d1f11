// Package membership resolves group memberships of catalog users.
package membership

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/exhibit-backend/internal/adapter/postgres"
	"github.com/heartmarshall/exhibit-backend/internal/domain"
)

// Repo provides membership lookups backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new membership repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

const groupIDsByUsernameSQL = `
SELECT ug.group_id
FROM users u
JOIN user_groups ug ON ug.user_id = u.id
WHERE u.username = $1
ORDER BY ug.group_id`

// GroupIDsByUsername returns the groups a user belongs to.
// Unknown users and users without groups yield an empty slice (not nil).
func (r *Repo) GroupIDsByUsername(ctx context.Context, username string) ([]domain.GroupID, error) {
	rows, err := r.q.Query(ctx, groupIDsByUsernameSQL, username)
	if err != nil {
		return nil, postgres.MapError(err, "memberships", username)
	}
	defer rows.Close()

	ids := []domain.GroupID{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan membership row: %w", err)
		}
		ids = append(ids, domain.GroupID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "memberships", username)
	}

	return ids, nil
}
