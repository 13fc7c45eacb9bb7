package service

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"prassign/internal/domain"
)

// Engine turns a validated submission into a concrete reviewer list.
type Engine struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewEngine creates an Engine drawing from src. A nil src uses a randomly
// seeded PCG source.
func NewEngine(src rand.Source) *Engine {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Engine{rnd: rand.New(src)}
}

// Assign returns explicit reviewers first, then reviewers drawn from the
// submission's group, then, if the group runs out, from the general pool.
// The reviewee and already chosen names are never drawn.
func (e *Engine) Assign(ns domain.NormalizedSubmission) []string {
	reviewers := slices.Clone(ns.Explicit)
	if ns.Count <= 0 {
		return reviewers
	}

	excluded := append(slices.Clone(ns.Explicit), ns.RevieweeName, strings.TrimSpace(ns.Reviewee.Name))

	candidates := filterExclude(ns.Candidates, excluded)
	if ns.Count <= len(candidates) {
		return append(reviewers, e.choose(candidates, ns.Count)...)
	}

	reviewers = append(reviewers, candidates...)
	excluded = append(excluded, candidates...)

	rest := filterExclude(ns.Pool, excluded)
	return append(reviewers, e.choose(rest, ns.Count-len(candidates))...)
}

func (e *Engine) choose(candidates []string, quantity int) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return chooseReviewers(e.rnd, candidates, quantity)
}

// chooseReviewers draws quantity names uniformly without replacement.
func chooseReviewers(rnd *rand.Rand, candidates []string, quantity int) []string {
	if len(candidates) == 0 || quantity <= 0 {
		return nil
	}

	if quantity >= len(candidates) {
		return slices.Clone(candidates)
	}

	perm := rnd.Perm(len(candidates))

	out := make([]string, 0, quantity)
	for _, randIndex := range perm {
		if len(out) == quantity {
			break
		}
		out = append(out, candidates[randIndex])
	}

	return out
}

func filterExclude(names []string, exclude []string) []string {
	if len(exclude) == 0 {
		return slices.Clone(names)
	}
	excludeSet := make(map[string]struct{}, len(exclude))
	for _, name := range exclude {
		excludeSet[name] = struct{}{}
	}

	out := make([]string, 0, len(names))
	for _, name := range names {
		if _, ok := excludeSet[name]; ok {
			continue
		}
		out = append(out, name)
	}
	return out
}
