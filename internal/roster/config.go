package roster

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

type Group struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// Groups keeps task groups in the order they appear in the config document.
type Groups []Group

// Config is the team configuration document:
//
//	{"channel_id": "...", "groups": {"Backend": ["Jane Doe", ...], ...}}
type Config struct {
	ChannelID string `json:"channel_id"`
	Groups    Groups `json:"groups"`
}

func (g *Groups) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*g = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("groups: expected a JSON object")
	}

	out := make(Groups, 0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, _ := tok.(string)

		var members []string
		if err := dec.Decode(&members); err != nil {
			return fmt.Errorf("group %q: %w", name, err)
		}
		out = append(out, Group{Name: name, Members: members})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*g = out
	return nil
}

func (g Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, group := range g {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(group.Name)
		if err != nil {
			return nil, err
		}
		members := group.Members
		if members == nil {
			members = []string{}
		}
		list, err := json.Marshal(members)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(list)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ParseConfig decodes a team configuration document.
func ParseConfig(r io.Reader) (Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode team config: %w", err)
	}
	return cfg, nil
}
