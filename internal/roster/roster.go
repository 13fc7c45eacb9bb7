// Package roster holds the team's task groups and the name matching used to
// turn free-text reviewer names into roster names.
package roster

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// GeneralGroup is the group choice that always means "pick from everyone",
// unless the config defines a group with that name.
const GeneralGroup = "General"

var ErrDuplicateGroup = errors.New("duplicate group name")

// Roster is read-only after New and safe for concurrent use.
type Roster struct {
	channelID string
	groups    []Group
	index     map[string]int
	pool      []string
}

func New(cfg Config) (*Roster, error) {
	r := &Roster{
		channelID: cfg.ChannelID,
		groups:    make([]Group, 0, len(cfg.Groups)),
		index:     make(map[string]int, len(cfg.Groups)),
	}

	seen := make(map[string]struct{})
	for _, g := range cfg.Groups {
		name := strings.TrimSpace(g.Name)
		if name == "" {
			return nil, errors.New("group name is empty")
		}
		key := strings.ToLower(name)
		if _, ok := r.index[key]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateGroup, g.Name)
		}

		members := uniqueNames(g.Members)
		r.index[key] = len(r.groups)
		r.groups = append(r.groups, Group{Name: name, Members: members})

		for _, m := range members {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			r.pool = append(r.pool, m)
		}
	}

	return r, nil
}

func (r *Roster) ChannelID() string {
	return r.channelID
}

// ResolveGroup looks a group up by name, ignoring case. It does not fuzzy match.
func (r *Roster) ResolveGroup(name string) (string, bool) {
	i, ok := r.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", false
	}
	return r.groups[i].Name, true
}

// GroupMembers returns the members of the group key. An unknown or empty
// group yields the general pool.
func (r *Roster) GroupMembers(key string) []string {
	members, ok := r.Members(key)
	if !ok || len(members) == 0 {
		return r.GeneralPool()
	}
	return members
}

// Members returns the configured members of one group, without fallback.
func (r *Roster) Members(key string) ([]string, bool) {
	i, ok := r.index[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return nil, false
	}
	return slices.Clone(r.groups[i].Members), true
}

// GeneralPool is the deduplicated union of all group members in first-seen order.
func (r *Roster) GeneralPool() []string {
	return slices.Clone(r.pool)
}

func (r *Roster) PoolSize() int {
	return len(r.pool)
}

func (r *Roster) Groups() []Group {
	out := make([]Group, len(r.groups))
	for i, g := range r.groups {
		out[i] = Group{Name: g.Name, Members: slices.Clone(g.Members)}
	}
	return out
}

func uniqueNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" || slices.Contains(out, n) {
			continue
		}
		out = append(out, n)
	}
	return out
}
