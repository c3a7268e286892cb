// Package state holds the campaign state: current level, phase, and the maze and
// avatar the level owns.
package state

import (
	"github.com/google/uuid"

	"extraction/pkg/engine/world"
	"extraction/pkg/game/campaign"
	"extraction/pkg/game/entities"
)

// Phase is the campaign state machine position
type Phase int

// Phases
const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseLevelComplete
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "Start"
	case PhasePlaying:
		return "Playing"
	case PhaseLevelComplete:
		return "LevelComplete"
	default:
		return "Unknown"
	}
}

const maxMessages = 5

// Game represents the game state for Extraction
type Game struct {
	ID uuid.UUID // Session id, attached to log lines

	Phase Phase

	Level      int // Current level, 1-based
	MaxLevel   int
	StartLevel int // Level a new campaign begins on

	Grid   *world.Grid
	Player *entities.Avatar

	BaseSeed  int64 // 0 means time based
	LevelSeed int64 // Seed the current maze was generated from

	CampaignsCompleted int

	Messages []string
}

// NewGame creates a new game sitting on the start screen
func NewGame(maxLevel int) *Game {
	if maxLevel < 1 {
		maxLevel = campaign.TotalLevels
	}
	return &Game{
		ID:         uuid.New(),
		Phase:      PhaseStart,
		Level:      1,
		MaxLevel:   maxLevel,
		StartLevel: 1,
		Messages:   make([]string, 0),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// Playing reports whether a level is in progress
func (g *Game) Playing() bool {
	return g.Phase == PhasePlaying && g.Grid != nil && g.Player != nil
}

// Snapshot is a read-only copy of what a renderer needs for one frame.
// Grid is shared; it is sealed and never mutated after generation.
type Snapshot struct {
	Phase              Phase
	Level              int
	MaxLevel           int
	Sector             campaign.Sector
	CampaignsCompleted int

	Grid *world.Grid

	PlayerX         float64
	PlayerY         float64
	PlayerSize      float64
	PlayerDirection world.Direction
	AnimationFrame  int

	Messages []string

	Volume float64
	Muted  bool
}

// HasPlayer reports whether the snapshot carries a level to draw
func (s Snapshot) HasPlayer() bool {
	return s.Grid != nil && s.PlayerSize > 0
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Phase:              g.Phase,
		Level:              g.Level,
		MaxLevel:           g.MaxLevel,
		Sector:             campaign.SectorFor(g.Level, g.MaxLevel),
		CampaignsCompleted: g.CampaignsCompleted,
		Grid:               g.Grid,
		Messages:           append([]string(nil), g.Messages...),
	}
	if g.Player != nil {
		s.PlayerX = g.Player.X
		s.PlayerY = g.Player.Y
		s.PlayerSize = g.Player.Size
		s.PlayerDirection = g.Player.Direction
		s.AnimationFrame = g.Player.AnimationFrame
	}
	return s
}
