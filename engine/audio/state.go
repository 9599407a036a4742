package audio

// InstanceState is the lifecycle of a playing instance. Stopped is terminal.
type InstanceState uint8

const (
	InstanceStatePlaying InstanceState = iota
	InstanceStatePaused
	InstanceStateStopped
)

func (s InstanceState) String() string {
	switch s {
	case InstanceStatePlaying:
		return "playing"
	case InstanceStatePaused:
		return "paused"
	case InstanceStateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Pause returns the state after a pause request.
func (s InstanceState) Pause() InstanceState {
	if s == InstanceStatePlaying {
		return InstanceStatePaused
	}
	return s
}

// Resume returns the state after a resume request.
func (s InstanceState) Resume() InstanceState {
	if s == InstanceStatePaused {
		return InstanceStatePlaying
	}
	return s
}

func (s InstanceState) Stop() InstanceState {
	return InstanceStateStopped
}

func (s InstanceState) IsStopped() bool { return s == InstanceStateStopped }
func (s InstanceState) IsPaused() bool  { return s == InstanceStatePaused }
