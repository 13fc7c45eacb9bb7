package service

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prassign/internal/domain"
	"prassign/internal/roster"
)

func seeded(seed uint64) *Engine {
	return NewEngine(rand.NewPCG(seed, seed+1))
}

func validate(t *testing.T, r *roster.Roster, sub domain.Submission) domain.NormalizedSubmission {
	t.Helper()

	ns, err := NewValidator(r).Validate(sub)
	require.NoError(t, err)
	return ns
}

func TestEngine_Assign_GroupNotExhausted(t *testing.T) {
	ns := validate(t, smallRoster(t), domain.Submission{
		Reviewee:       domain.Member{ID: "u1", Name: "Alice"},
		TaskGroup:      "A",
		RequestedCount: 1,
	})

	for seed := uint64(0); seed < 20; seed++ {
		assert.Equal(t, []string{"Bob"}, seeded(seed).Assign(ns))
	}
}

func TestEngine_Assign_GroupOverflowsIntoPool(t *testing.T) {
	ns := validate(t, smallRoster(t), domain.Submission{
		Reviewee:       domain.Member{ID: "u2", Name: "Bob"},
		TaskGroup:      "A",
		RequestedCount: 2,
	})

	for seed := uint64(0); seed < 20; seed++ {
		assert.Equal(t, []string{"Alice", "Carol"}, seeded(seed).Assign(ns))
	}
}

func TestEngine_Assign_ZeroCountReturnsExplicit(t *testing.T) {
	ns := validate(t, smallRoster(t), domain.Submission{
		Reviewee:      domain.Member{Name: "Alice"},
		ReviewersText: "carol, bob",
		TaskGroup:     "A",
	})

	assert.Equal(t, []string{"Carol", "Bob"}, seeded(1).Assign(ns))
}

func TestEngine_Assign_ExplicitFirstThenGroup(t *testing.T) {
	r := newTestRoster(t, roster.Groups{
		{Name: "A", Members: []string{"Alice", "Bob", "Carol"}},
		{Name: "B", Members: []string{"Dave", "Erin"}},
	})
	ns := validate(t, r, domain.Submission{
		Reviewee:       domain.Member{Name: "Alice"},
		ReviewersText:  "erin, bob",
		TaskGroup:      "a",
		RequestedCount: 1,
	})

	assert.Equal(t, []string{"Erin", "Bob", "Carol"}, seeded(7).Assign(ns))
}

func TestEngine_Assign_SameSeedSameResult(t *testing.T) {
	r := newTestRoster(t, roster.Groups{
		{Name: "A", Members: []string{"m1", "m2", "m3", "m4", "m5", "m6"}},
		{Name: "B", Members: []string{"m7", "m8", "m9"}},
	})
	ns := validate(t, r, domain.Submission{
		Reviewee:       domain.Member{Name: "m1"},
		TaskGroup:      "A",
		RequestedCount: 3,
	})

	assert.Equal(t, seeded(42).Assign(ns), seeded(42).Assign(ns))
}

func TestEngine_Assign_NeverPicksRevieweeOrDuplicates(t *testing.T) {
	groups := roster.Groups{
		{Name: "A", Members: []string{"m1", "m2", "m3"}},
		{Name: "B", Members: []string{"m3", "m4", "m5", "m6"}},
		{Name: "C", Members: []string{"m6", "m7", "m1"}},
		{Name: "Empty"},
	}
	r := newTestRoster(t, groups)
	pool := r.GeneralPool()

	for seed := uint64(0); seed < 50; seed++ {
		rnd := rand.New(rand.NewPCG(seed, 99))
		reviewee := pool[rnd.IntN(len(pool))]
		group := []string{"A", "B", "C", "Empty", "missing", ""}[rnd.IntN(6)]
		count := rnd.IntN(len(pool) - 1)

		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			ns := validate(t, r, domain.Submission{
				Reviewee:       domain.Member{Name: reviewee},
				TaskGroup:      group,
				RequestedCount: count,
			})

			got := seeded(seed).Assign(ns)

			require.Len(t, got, count)
			assert.NotContains(t, got, reviewee)
			seen := make(map[string]struct{}, len(got))
			for _, name := range got {
				_, dup := seen[name]
				assert.False(t, dup, "duplicate %q", name)
				seen[name] = struct{}{}
				assert.Contains(t, pool, name)
			}

			// group members come first while the group lasts
			candidates := filterExclude(ns.Candidates, []string{reviewee})
			prefix := min(count, len(candidates))
			for _, name := range got[:prefix] {
				assert.True(t, slices.Contains(candidates, name), "%q drawn before group was exhausted", name)
			}
		})
	}
}

func TestEngine_Assign_RevieweeOutsideRoster(t *testing.T) {
	ns := validate(t, smallRoster(t), domain.Submission{
		Reviewee:       domain.Member{Name: "Visitor"},
		TaskGroup:      "B",
		RequestedCount: 2,
	})

	got := seeded(3).Assign(ns)
	require.Len(t, got, 2)
	assert.Equal(t, "Carol", got[0])
	assert.Contains(t, []string{"Alice", "Bob"}, got[1])
}

func Test_chooseReviewers(t *testing.T) {
	type args struct {
		candidates []string
		quantity   int
	}

	tests := []struct {
		name        string
		args        args
		wantLen     int
		wantSubsets []string
	}{
		{
			name:        "no candidates",
			args:        args{candidates: nil, quantity: 2},
			wantLen:     0,
			wantSubsets: nil,
		},
		{
			name:        "quantity_zero",
			args:        args{candidates: []string{"u1", "u2"}, quantity: 0},
			wantLen:     0,
			wantSubsets: []string{"u1", "u2"},
		},
		{
			name:        "quantity_more_than_candidates_returns_all",
			args:        args{candidates: []string{"u1", "u2"}, quantity: 5},
			wantLen:     2,
			wantSubsets: []string{"u1", "u2"},
		},
		{
			name:        "quantity_less_than_candidates_returns_quantity_random_subset",
			args:        args{candidates: []string{"u1", "u2", "u3"}, quantity: 2},
			wantLen:     2,
			wantSubsets: []string{"u1", "u2", "u3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := chooseReviewers(rand.New(rand.NewPCG(1, 2)), tt.args.candidates, tt.args.quantity)

			require.Equal(t, tt.wantLen, len(got), "unexpected len")

			if tt.wantSubsets == nil {
				assert.Empty(t, got)
				return
			}

			seen := make(map[string]struct{}, len(got))
			for _, name := range got {
				assert.Contains(t, tt.wantSubsets, name)

				_, dup := seen[name]
				assert.False(t, dup, "duplicate name %q", name)
				seen[name] = struct{}{}
			}
		})
	}
}

func Test_chooseReviewers_Uniform(t *testing.T) {
	rnd := rand.New(rand.NewPCG(5, 6))
	candidates := []string{"a", "b", "c", "d"}
	hits := make(map[string]int)

	const rounds = 4000
	for range rounds {
		for _, name := range chooseReviewers(rnd, candidates, 1) {
			hits[name]++
		}
	}

	for _, name := range candidates {
		assert.InDelta(t, rounds/len(candidates), hits[name], 150, "skewed draw for %q", name)
	}
}

func Test_filterExclude(t *testing.T) {
	names := []string{"u1", "u2", "u3"}

	tests := []struct {
		name    string
		exclude []string
		want    []string
	}{
		{name: "no_excludes_returns_all", exclude: nil, want: []string{"u1", "u2", "u3"}},
		{name: "exclude_one", exclude: []string{"u2"}, want: []string{"u1", "u3"}},
		{name: "exclude_all", exclude: []string{"u1", "u2", "u3"}, want: []string{}},
		{name: "exclude_unknown", exclude: []string{"u42"}, want: []string{"u1", "u2", "u3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ElementsMatch(t, tt.want, filterExclude(names, tt.exclude))
		})
	}
}
