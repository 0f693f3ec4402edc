package game

type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseArmed   Phase = "armed"
	PhaseRunning Phase = "running"
	PhaseSettled Phase = "settled"
)
