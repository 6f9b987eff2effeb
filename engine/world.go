package engine

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/templer/components"
	"github.com/lixenwraith/templer/constants"
	"github.com/lixenwraith/templer/physics"
)

// State is the simulation lifecycle state
type State uint8

const (
	StateRunning State = iota
	StateGameOver
)

// String returns the state name
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// World owns the player, every active enemy and all per-run counters
// It is single-threaded: only the tick driver mutates it
type World struct {
	Config Config
	Rand   *rand.Rand

	Player *components.Entity
	Forces components.ForceSet
	Timers Timers

	// Elapsed counts whole seconds survived, advanced by the score timer
	Elapsed int

	area    physics.Area
	enemies arena
	systems []System
	state   State

	// wall is the arena handle of the singleton spiked wall, valid when hasWall
	wall    EntityID
	hasWall bool

	// playerHit latches any player collision within the current tick
	playerHit bool

	runID   uuid.UUID
	baseLog zerolog.Logger
	log     zerolog.Logger
}

// NewWorld creates a world sized to the default canvas and resets it
func NewWorld(cfg Config) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	w := &World{
		Config:  cfg,
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Player:  components.NewPlayer(cfg.Player.Radius),
		area:    physics.Area{Width: constants.DefaultCanvasWidth, Height: constants.DefaultCanvasHeight},
		enemies: newArena(),
		baseLog: zerolog.Nop(),
	}
	w.Reset()
	return w
}

// SetLogger attaches a logger, the run ID is added to every event
func (w *World) SetLogger(l zerolog.Logger) {
	w.baseLog = l
	w.log = l.With().Str("run", w.runID.String()).Logger()
}

// Logger returns the run-scoped logger
func (w *World) Logger() *zerolog.Logger {
	return &w.log
}

// RunID identifies the current run, regenerated on reset
func (w *World) RunID() uuid.UUID {
	return w.runID
}

// AddSystem registers a system keeping the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs one tick through every system, a no-op once the game is over
func (w *World) Update(dt time.Duration) {
	if w.state == StateGameOver {
		return
	}

	w.playerHit = false
	for _, system := range w.systems {
		system.Update(w, dt)
	}
}

// Reset restores the starting state: player, score, lives, timers, forces,
// an empty arena and the running state
func (w *World) Reset() {
	cfg := w.Config.Player

	p := w.Player
	p.SetRadius(cfg.Radius)
	p.X = w.area.Width * cfg.StartX
	p.Y = w.area.Height * cfg.StartY
	p.VX, p.VY = 0, 0
	p.SetVelocityBoundX(-cfg.MaxSpeed, cfg.MaxSpeed)
	p.SetVelocityBoundY(-cfg.MaxSpeed, cfg.MaxSpeed)
	p.SetHP(cfg.StartHP)
	p.ResetScore()
	p.SetColor(components.ColorPlayer)

	w.enemies.clear()
	w.Forces.Clear()
	w.wall, w.hasWall = 0, false
	w.Timers = newTimers(w.Config)
	w.Elapsed = 0
	w.playerHit = false
	w.state = StateRunning

	w.runID = uuid.New()
	w.SetLogger(w.baseLog)
	w.log.Info().
		Float64("width", w.area.Width).
		Float64("height", w.area.Height).
		Msg("world reset")
}

// Area returns the current canvas bounds
func (w *World) Area() physics.Area {
	return w.area
}

// Resize updates the canvas bounds, non-positive sizes are ignored
func (w *World) Resize(width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	w.area = physics.Area{Width: width, Height: height}
	return true
}

// ApplyForce marks a direction as held
func (w *World) ApplyForce(d components.Direction) {
	w.Forces.Add(d)
}

// RemoveForce releases a held direction
func (w *World) RemoveForce(d components.Direction) {
	w.Forces.Remove(d)
}

// State returns the lifecycle state
func (w *World) State() State {
	return w.state
}

// IsGameOver reports whether the run has ended
func (w *World) IsGameOver() bool {
	return w.state == StateGameOver
}

// EndGame transitions to the terminal state, only Reset leaves it
func (w *World) EndGame() {
	if w.state == StateGameOver {
		return
	}
	w.state = StateGameOver
	w.log.Info().
		Int("score", w.Player.Score()).
		Int("elapsed", w.Elapsed).
		Msg("game over")
}

// MarkPlayerHit records a player collision for the current tick
func (w *World) MarkPlayerHit() {
	w.playerHit = true
}

// PlayerHit reports whether the player collided during the current tick
func (w *World) PlayerHit() bool {
	return w.playerHit
}

// ===== ARENA =====

// Spawn adds an enemy to the arena
func (w *World) Spawn(e *components.Entity) EntityID {
	return w.enemies.create(e)
}

// SpawnWall adds the singleton spiked wall, refused while one is active
func (w *World) SpawnWall(e *components.Entity) (EntityID, bool) {
	if w.hasWall {
		return 0, false
	}
	id := w.enemies.create(e)
	w.wall, w.hasWall = id, true
	return id, true
}

// Wall returns the active spiked wall, if any
func (w *World) Wall() (EntityID, *components.Entity, bool) {
	if !w.hasWall {
		return 0, nil, false
	}
	i := w.enemies.find(w.wall)
	if i < 0 {
		return 0, nil, false
	}
	return w.wall, w.enemies.slots[i].entity, true
}

// IsWall reports whether id is the slotted spiked wall
func (w *World) IsWall(id EntityID) bool {
	return w.hasWall && w.wall == id
}

// RemoveWall flags the spiked wall for removal and frees the slot
func (w *World) RemoveWall() bool {
	if !w.hasWall {
		return false
	}
	w.enemies.destroy(w.wall)
	w.wall, w.hasWall = 0, false
	return true
}

// Destroy flags an enemy for removal at the end of the tick
func (w *World) Destroy(id EntityID) bool {
	if w.IsWall(id) {
		return w.RemoveWall()
	}
	return w.enemies.destroy(id)
}

// Entity looks up an active enemy by handle
func (w *World) Entity(id EntityID) (*components.Entity, bool) {
	i := w.enemies.find(id)
	if i < 0 || w.enemies.slots[i].removed {
		return nil, false
	}
	return w.enemies.slots[i].entity, true
}

// Each visits active enemies in spawn order, skipping ones flagged for removal
func (w *World) Each(fn func(id EntityID, e *components.Entity)) {
	for i := range w.enemies.slots {
		s := &w.enemies.slots[i]
		if s.removed {
			continue
		}
		fn(s.id, s.entity)
	}
}

// Active returns the active enemies in spawn order
func (w *World) Active() []*components.Entity {
	result := make([]*components.Entity, 0, len(w.enemies.slots))
	w.Each(func(_ EntityID, e *components.Entity) {
		result = append(result, e)
	})
	return result
}

// Count returns the number of active enemies
func (w *World) Count() int {
	n := 0
	for i := range w.enemies.slots {
		if !w.enemies.slots[i].removed {
			n++
		}
	}
	return n
}

// Compact physically drops flagged enemies, returns how many were dropped
func (w *World) Compact() int {
	return w.enemies.compact()
}
