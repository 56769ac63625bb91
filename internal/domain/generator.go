package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	m "cigroup.dev/pkg/cigroup/internal/model"
)

// ErrInvalidGenerateArgs is returned when workload parameters are inconsistent.
var ErrInvalidGenerateArgs = errors.New("invalid generate arguments")

// GenerateArgs describes a random workload.
type GenerateArgs struct {
	Scripts  int
	Paths    int
	MinPaths int
	MaxPaths int
	Seed     int64
}

// Validate checks that a workload can be drawn from the arguments.
func (a GenerateArgs) Validate() error {
	switch {
	case a.Scripts < 0:
		return fmt.Errorf("%w: scripts must not be negative, got %d", ErrInvalidGenerateArgs, a.Scripts)
	case a.Paths <= 0:
		return fmt.Errorf("%w: paths must be positive, got %d", ErrInvalidGenerateArgs, a.Paths)
	case a.MinPaths < 1:
		return fmt.Errorf("%w: min paths must be at least 1, got %d", ErrInvalidGenerateArgs, a.MinPaths)
	case a.MinPaths > a.MaxPaths:
		return fmt.Errorf("%w: min paths %d exceeds max paths %d", ErrInvalidGenerateArgs, a.MinPaths, a.MaxPaths)
	case a.MaxPaths > a.Paths:
		return fmt.Errorf("%w: max paths %d exceeds path pool of %d", ErrInvalidGenerateArgs, a.MaxPaths, a.Paths)
	}

	return nil
}

// Settings converts the arguments to their persisted form.
func (a GenerateArgs) Settings() m.GenerateSettings {
	return m.GenerateSettings{
		Scripts:  a.Scripts,
		Paths:    a.Paths,
		MinPaths: a.MinPaths,
		MaxPaths: a.MaxPaths,
		Seed:     a.Seed,
	}
}

// Workload is a generated set of build scripts and the universe they span.
type Workload struct {
	Items    []m.WorkItem
	Universe *m.Universe
}

// Generator produces workloads.
type Generator interface {
	Generate(args GenerateArgs) (Workload, error)
}

type seededGenerator struct{}

// NewGenerator returns a Generator that seeds a fresh source from args.Seed on
// every call, so equal arguments give equal workloads.
func NewGenerator() Generator {
	return seededGenerator{}
}

func (seededGenerator) Generate(args GenerateArgs) (Workload, error) {
	return GenerateWorkload(NewRand(args.Seed), args)
}

// NewRand returns a deterministic random source for seed.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// GenerateWorkload draws args.Scripts build scripts. Each script gets between
// MinPaths and MaxPaths distinct paths sampled from the pool Path_0 ..
// Path_{Paths-1}. The universe only holds paths that some script uses.
func GenerateWorkload(rng *rand.Rand, args GenerateArgs) (Workload, error) {
	if err := args.Validate(); err != nil {
		return Workload{}, err
	}

	pool := make([]m.Path, args.Paths)
	for i := range pool {
		pool[i] = m.Path(fmt.Sprintf("Path_%d", i))
	}

	items := make([]m.WorkItem, 0, args.Scripts)

	for i := range args.Scripts {
		k := args.MinPaths + rng.IntN(args.MaxPaths-args.MinPaths+1)

		paths := make([]m.Path, 0, k)
		for _, idx := range rng.Perm(len(pool))[:k] {
			paths = append(paths, pool[idx])
		}

		items = append(items, m.NewWorkItem(fmt.Sprintf("script-%03d", i), paths...))
	}

	universe := m.CollectUniverse(items)

	slog.Debug("generated workload", "scripts", len(items), "universe", universe.Len(), "seed", args.Seed)

	return Workload{Items: items, Universe: universe}, nil
}
