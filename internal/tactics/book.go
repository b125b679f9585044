package tactics

import (
	"errors"
	"fmt"
	"sort"

	"tacticsim/internal/match"
)

var ErrUnknownTactic = errors.New("unknown tactic")

// Params tune the tactics a Book builds.
type Params struct {
	// Grid is the territorial sampling density of the voronoi tactics.
	Grid int
}

type builder func(Params) match.Strategy

// catalogue order is the order Names reports.
var catalogue = []struct {
	name  string
	build builder
}{
	{ActivePressingName, func(Params) match.Strategy { return ActivePressing{} }},
	{BallControlName, func(Params) match.Strategy { return BallControl{} }},
	{ShortPassName, func(Params) match.Strategy { return ShortPass{} }},
	{LongPassName, func(Params) match.Strategy { return LongPass{} }},
	{RandomPassName, func(Params) match.Strategy { return RandomPass{} }},
	{RandomCarryingName, func(Params) match.Strategy { return RandomCarrying{} }},
	{ShortCarryingName, func(Params) match.Strategy { return ShortCarrying{} }},
	{MiddleCarryingName, func(Params) match.Strategy { return MiddleCarrying{} }},
	{LongCarryingName, func(Params) match.Strategy { return LongCarrying{} }},
	{VoronoiName, func(p Params) match.Strategy { return Voronoi{Grid: p.Grid} }},
	{VoronoiCarryingName, func(Params) match.Strategy { return VoronoiCarrying{} }},
}

// Book instantiates tactics by name.
type Book struct {
	params Params
	byName map[string]builder
}

func NewBook(p Params) *Book {
	if p.Grid <= 0 {
		p.Grid = match.DefaultGrid
	}
	b := &Book{params: p, byName: make(map[string]builder, len(catalogue))}
	for _, e := range catalogue {
		b.byName[e.name] = e.build
	}
	return b
}

// New returns a fresh tactic. Tactics are stateless, so one value may be
// shared between teams and goroutines.
func (b *Book) New(name string) (match.Strategy, error) {
	build, ok := b.byName[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownTactic)
	}
	return build(b.params), nil
}

// Resolve looks up every name, failing on the first unknown one.
func (b *Book) Resolve(names []string) ([]match.Strategy, error) {
	out := make([]match.Strategy, len(names))
	for i, n := range names {
		s, err := b.New(n)
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}

// Names lists the catalogue in its fixed order.
func Names() []string {
	out := make([]string, len(catalogue))
	for i, e := range catalogue {
		out[i] = e.name
	}
	return out
}

// Sorted is Names in lexical order.
func Sorted() []string {
	out := Names()
	sort.Strings(out)
	return out
}
