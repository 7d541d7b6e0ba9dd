package searcher

import (
	"errors"
	"sync"
	"time"

	"gamesearch/experiments/metrics"
	"gamesearch/game"
	"gamesearch/meta"

	"golang.org/x/exp/rand"
)

var ErrTerminalState = errors.New("no moves from a terminal state")

// Strategy picks the next state among the successors of a game state.
type Strategy[S game.Game[S]] interface {
	Name() string
	// Search returns the chosen successor of state, or ErrTerminalState when
	// state has none.
	Search(state S) (S, metrics.SearchMetric, error)
}

type Option func(c *config)

type config struct {
	goroutines   int
	rollouts     int
	source       rand.Source
	newCollector func() metrics.Collector
}

func WithRollouts(rollouts int) Option {
	return func(c *config) {
		if rollouts > 0 {
			c.rollouts = rollouts
		}
	}
}

// WithSeed makes every random choice reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.source = rand.NewSource(seed)
	}
}

// WithSource injects the random source. The source is only read under a lock.
func WithSource(source rand.Source) Option {
	return func(c *config) {
		if source != nil {
			c.source = source
		}
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.newCollector = metrics.NewCollector
	}
}

func newConfig(goroutines int, options []Option) config {
	c := config{ // Default values
		goroutines:   goroutines,
		rollouts:     meta.Rollouts,
		newCollector: metrics.NewDummyCollector,
	}
	if c.goroutines <= 0 {
		c.goroutines = meta.Goroutines
	}
	for _, option := range options {
		option(&c)
	}
	if c.source == nil {
		c.source = rand.NewSource(uint64(time.Now().UnixNano()))
	}
	return c
}

// iterate runs task for every index in [0, n) on at most goroutines workers.
func iterate(goroutines, n int, task func(i int)) {
	tasks := make(chan int, n)
	for i := 0; i < n; i++ {
		tasks <- i
	}
	close(tasks)

	var wg sync.WaitGroup
	for i := 0; i < min(goroutines, n); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range tasks {
				task(i)
			}
		}()
	}

	wg.Wait()
}

// best returns the index of the greatest score. Ties keep the first index, so
// the successor generation order decides between equal moves.
func best(scores []int) int {
	if len(scores) == 0 {
		panic("no scores to choose from")
	}

	bestIndex := 0
	for i, score := range scores[1:] {
		if score > scores[bestIndex] {
			bestIndex = i + 1
		}
	}
	return bestIndex
}

// lockedRand serializes access to a random source shared by concurrent searches.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func newLockedRand(source rand.Source) *lockedRand {
	return &lockedRand{rng: rand.New(source)}
}

func (r *lockedRand) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Intn(n)
}

// seeds draws n seeds for independent per-task generators.
func (r *lockedRand) seeds(n int) []uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	seeds := make([]uint64, n)
	for i := range seeds {
		seeds[i] = r.rng.Uint64()
	}
	return seeds
}
