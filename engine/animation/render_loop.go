package animation

import (
	"sync"

	"github.com/rs/zerolog"
)

// State is the render loop's scheduling state.
type State int

const (
	// StatePaused means no frame is scheduled and none will run.
	StatePaused State = iota

	// StateRunning means exactly one frame request is outstanding at any time.
	StateRunning
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// RenderLoop is a cooperative frame loop: each tick runs the frame function to completion
// and then requests the next tick, but only while running. Pausing cancels the outstanding
// request, so no frame runs until Start begins a new episode.
type RenderLoop interface {
	// Start moves PAUSED to RUNNING and requests the first frame of a new episode.
	// No-op when already running.
	Start()

	// Stop moves RUNNING to PAUSED and cancels the outstanding frame request.
	// No-op when already paused.
	Stop()

	// State returns the current state.
	State() State

	// Frames returns how many frames have run in total.
	Frames() uint64

	// Episodes returns how many times the loop has been started.
	Episodes() uint64
}

type renderLoop struct {
	scheduler Scheduler
	frame     func()
	logger    zerolog.Logger

	mu         sync.Mutex
	state      State
	pendingID  FrameID
	hasPending bool
	frames     uint64
	episodes   uint64
}

var _ RenderLoop = &renderLoop{}

// NewRenderLoop creates a paused RenderLoop.
//
// Parameters:
//   - scheduler: where frame requests are queued
//   - frame: the per-frame work
//   - options: variadic list of RenderLoopBuilderOption functions
//
// Returns:
//   - RenderLoop: the loop, paused
func NewRenderLoop(scheduler Scheduler, frame func(), options ...RenderLoopBuilderOption) RenderLoop {
	l := &renderLoop{
		scheduler: scheduler,
		frame:     frame,
		logger:    zerolog.Nop(),
		state:     StatePaused,
	}
	for _, opt := range options {
		opt(l)
	}
	return l
}

func (l *renderLoop) Start() {
	l.mu.Lock()
	if l.state == StateRunning {
		l.mu.Unlock()
		return
	}
	l.state = StateRunning
	l.episodes++
	episode := l.episodes
	l.schedule()
	l.mu.Unlock()

	l.logger.Debug().Uint64("episode", episode).Msg("render loop started")
}

func (l *renderLoop) Stop() {
	l.mu.Lock()
	if l.state == StatePaused {
		l.mu.Unlock()
		return
	}
	l.state = StatePaused
	if l.hasPending {
		l.scheduler.CancelFrame(l.pendingID)
		l.hasPending = false
	}
	frames := l.frames
	l.mu.Unlock()

	l.logger.Debug().Uint64("frames", frames).Msg("render loop paused")
}

func (l *renderLoop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *renderLoop) Frames() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.frames
}

func (l *renderLoop) Episodes() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.episodes
}

// schedule must be called with l.mu held.
func (l *renderLoop) schedule() {
	l.pendingID = l.scheduler.RequestFrame(l.tick)
	l.hasPending = true
}

func (l *renderLoop) tick() {
	l.mu.Lock()
	l.hasPending = false
	if l.state != StateRunning {
		l.mu.Unlock()
		return
	}
	l.frames++
	l.mu.Unlock()

	// the frame may pause or restart the loop, so the lock is not held across it
	l.frame()

	l.mu.Lock()
	if l.state == StateRunning && !l.hasPending {
		l.schedule()
	}
	l.mu.Unlock()
}
