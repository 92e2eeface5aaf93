package spriterun

// Phase is the session state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first activate
	PhaseRunning               // Simulation advancing every tick
	PhaseGameOver              // Run ended, waiting for restart
)

// String returns the phase name used in logs and on the wire.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Overlay texts.
const (
	TitleStart    = "SPRITE RUN"
	TitleGameOver = "GAME OVER"
	LabelStart    = "START"
	LabelRestart  = "RESTART"
)

// RunState is a read-only copy of a session's mutable state.
type RunState struct {
	Phase         Phase
	SpriteY       float64
	JumpVelocity  float64
	Jumping       bool
	Speed         float64
	Score         int
	HighScore     int
	LastScoreTick float64
	LastSpawnTick float64
	NextSpawnX    float64
	Obstacles     []Obstacle // Spawn order
}
