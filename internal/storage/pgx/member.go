package pgx

import (
	"context"

	"prassign/internal/domain"
)

// Load returns the registry in insertion order.
func (s *Storage) Load(ctx context.Context) ([]domain.Member, error) {
	const query = `
		SELECT id, name
		  FROM members
		 ORDER BY position;
	`

	rows, err := s.getExecutor(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]domain.Member, 0)
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Save rewrites the whole registry in one transaction.
func (s *Storage) Save(ctx context.Context, members []domain.Member) error {
	return s.WithTx(ctx, func(ctx context.Context) error {
		const deleteQuery = `DELETE FROM members;`

		if _, err := s.getExecutor(ctx).Exec(ctx, deleteQuery); err != nil {
			return err
		}

		const insertQuery = `
			INSERT INTO members (id, name, position)
			VALUES ($1, $2, $3);
		`

		for i, m := range members {
			if _, err := s.getExecutor(ctx).Exec(ctx, insertQuery, m.ID, m.Name, i); err != nil {
				return err
			}
		}

		return nil
	})
}
