package pgx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"prassign/internal/roster"
)

func ptr(s string) *string { return &s }

func Test_foldGroups(t *testing.T) {
	tests := []struct {
		name string
		rows []groupRow
		want roster.Groups
	}{
		{
			name: "no rows",
			rows: nil,
			want: roster.Groups{},
		},
		{
			name: "adjacent rows",
			rows: []groupRow{
				{group: "Backend", member: ptr("Alice")},
				{group: "Backend", member: ptr("Bob")},
				{group: "Frontend", member: ptr("Carol")},
			},
			want: roster.Groups{
				{Name: "Backend", Members: []string{"Alice", "Bob"}},
				{Name: "Frontend", Members: []string{"Carol"}},
			},
		},
		{
			name: "interleaved rows stay in one group each",
			rows: []groupRow{
				{group: "Backend", member: ptr("Alice")},
				{group: "Frontend", member: ptr("Carol")},
				{group: "Backend", member: ptr("Bob")},
				{group: "Frontend", member: ptr("Dave")},
			},
			want: roster.Groups{
				{Name: "Backend", Members: []string{"Alice", "Bob"}},
				{Name: "Frontend", Members: []string{"Carol", "Dave"}},
			},
		},
		{
			name: "group without members",
			rows: []groupRow{
				{group: "QA"},
				{group: "Backend", member: ptr("Alice")},
			},
			want: roster.Groups{
				{Name: "QA", Members: []string{}},
				{Name: "Backend", Members: []string{"Alice"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := foldGroups(tt.rows)
			assert.Equal(t, tt.want, got)

			_, err := roster.New(roster.Config{Groups: got})
			assert.NoError(t, err)
		})
	}
}

func TestStorageClose_NoPool(t *testing.T) {
	assert.NotPanics(t, func() { (&Storage{}).Close() })
}
