// Package file keeps the team config and the member registry in JSON files.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"prassign/internal/domain"
	"prassign/internal/roster"
)

const filePerms = 0o644

func LoadTeamConfig(path string) (roster.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return roster.Config{}, fmt.Errorf("open team config: %w", err)
	}
	defer f.Close()

	return roster.ParseConfig(f)
}

// MemberStore reads and rewrites a JSON array of {"id", "name"} objects.
type MemberStore struct {
	path string
}

func NewMemberStore(path string) *MemberStore {
	return &MemberStore{path: path}
}

// Load returns an empty list when the file does not exist yet.
func (s *MemberStore) Load(_ context.Context) ([]domain.Member, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []domain.Member{}, nil
	}
	if err != nil {
		return nil, err
	}

	members := make([]domain.Member, 0)
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return members, nil
}

// Save writes the list to a temporary file and renames it over the old one.
func (s *MemberStore) Save(ctx context.Context, members []domain.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if members == nil {
		members = []domain.Member{}
	}

	data, err := json.MarshalIndent(members, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Chmod(filePerms); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}
