package pgx

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"prassign/internal/roster"
)

var ErrNoTeamGroups = errors.New("no task groups configured in database")

// LoadTeamConfig reads the channel and the ordered task groups in one snapshot.
// It returns ErrNoTeamGroups when the task_groups table is empty.
func (s *Storage) LoadTeamConfig(ctx context.Context) (roster.Config, error) {
	var cfg roster.Config
	err := s.WithTx(ctx, func(ctx context.Context) error {
		var err error
		cfg, err = s.loadTeamConfig(ctx)
		return err
	})
	return cfg, err
}

func (s *Storage) loadTeamConfig(ctx context.Context) (roster.Config, error) {
	const queryChannel = `select channel_id from team_settings limit 1;`

	var cfg roster.Config
	err := s.getExecutor(ctx).QueryRow(ctx, queryChannel).Scan(&cfg.ChannelID)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return roster.Config{}, err
	}

	const queryGroups = `
		SELECT g.name, m.member_name
		  FROM task_groups g
		  LEFT JOIN task_group_members m
		         ON m.group_name = g.name
		 ORDER BY g.position, g.name, m.position;
	`

	rows, err := s.getExecutor(ctx).Query(ctx, queryGroups)
	if err != nil {
		return roster.Config{}, err
	}
	defer rows.Close()

	var collected []groupRow
	for rows.Next() {
		var r groupRow
		if err := rows.Scan(&r.group, &r.member); err != nil {
			return roster.Config{}, err
		}
		collected = append(collected, r)
	}
	if err := rows.Err(); err != nil {
		return roster.Config{}, err
	}

	cfg.Groups = foldGroups(collected)
	if len(cfg.Groups) == 0 {
		return roster.Config{}, ErrNoTeamGroups
	}
	return cfg, nil
}

// groupRow is one line of the groups LEFT JOIN; member is nil for an empty group.
type groupRow struct {
	group  string
	member *string
}

// foldGroups collects rows into groups in order of first appearance. Rows of
// one group need not be adjacent.
func foldGroups(rows []groupRow) roster.Groups {
	groups := make(roster.Groups, 0)
	index := make(map[string]int)

	for _, r := range rows {
		i, ok := index[r.group]
		if !ok {
			i = len(groups)
			index[r.group] = i
			groups = append(groups, roster.Group{Name: r.group, Members: []string{}})
		}
		if r.member != nil {
			groups[i].Members = append(groups[i].Members, *r.member)
		}
	}

	return groups
}
