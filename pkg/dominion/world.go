package dominion

// World is the host-facing handle for a single simulation: a graph of
// countries, the shared kernel tables, and a running tick counter. The core
// itself never consumes randomness — Seed is carried only so a host can tag
// a run for reproducibility in its own logs.
type World struct {
	Seed    int64
	Tick    int
	graph   *Graph
	kernels *Kernels
}

// NewWorld constructs an empty world whose countries use the default
// decision log retention. seed is opaque to the core; it is returned
// unchanged by GetWorldSnapshot for host bookkeeping.
func NewWorld(seed int64) *World {
	return NewWorldWithRetention(seed, defaultLogRetention)
}

// NewWorldWithRetention constructs an empty world whose countries' decision
// log ring buffers hold logRetention entries (host-configurable per
// spec.md §3; logRetention <= 0 falls back to the default of 1024).
func NewWorldWithRetention(seed int64, logRetention int) *World {
	return &World{
		Seed:    seed,
		graph:   NewGraphWithRetention(logRetention),
		kernels: StandardKernels(),
	}
}

// AddCountry registers a new country. Legal only between ticks.
func (w *World) AddCountry(id int) error {
	return w.graph.AddCountry(id)
}

// AddEdge inserts a directed edge between two existing countries. Legal only
// between ticks.
func (w *World) AddEdge(from, to int, distance int, hostility float64) error {
	return w.graph.AddEdge(from, to, distance, hostility)
}

// Graph exposes the underlying graph for the setter methods that shape edges
// and border tiles before the first tick.
func (w *World) Graph() *Graph {
	return w.graph
}

// StepTick advances the simulation by one tick, running the fixed
// per-country sequence for every country in ascending id order, and returns
// any commits the host's apply hook rejected.
func (w *World) StepTick(apply ApplyFunc) []CommitRejectedEvent {
	w.Tick++
	return Tick(w.graph, w.kernels, w.Tick, apply)
}

// GetLogs returns a country's decision log, oldest-first, bounded by the
// ring buffer's retention window.
func (w *World) GetLogs(countryID int) []DecisionLogEntry {
	c := w.graph.CountryByID(countryID)
	if c == nil {
		return nil
	}
	return c.logs.Entries()
}

// CountrySnapshot is the public, read-only view of one country's state.
type CountrySnapshot struct {
	ID        int
	MEff      float64
	GDP       float64
	Growth    float64
	Prestige  float64
	Morale    float64
	TechLevel float64
	Resources float64
	Weights   Weights
	TI        float64
}

// WorldSnapshot is the full host-facing read model for a tick: every
// country's public state in ascending id order.
type WorldSnapshot struct {
	Seed      int64
	Tick      int
	Countries []CountrySnapshot
}

// GetWorldSnapshot renders the current world state for the host API.
func (w *World) GetWorldSnapshot() WorldSnapshot {
	countries := w.graph.Countries()
	snap := WorldSnapshot{Seed: w.Seed, Tick: w.Tick, Countries: make([]CountrySnapshot, len(countries))}
	for i, c := range countries {
		snap.Countries[i] = CountrySnapshot{
			ID:        c.ID,
			MEff:      c.MEff,
			GDP:       c.GDP,
			Growth:    c.Growth,
			Prestige:  c.Prestige,
			Morale:    c.Morale,
			TechLevel: c.TechLevel,
			Resources: c.Resources,
			Weights:   c.W,
			TI:        c.TI,
		}
	}
	return snap
}
