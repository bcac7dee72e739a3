package motion

import "time"

// FrameTime is the fixed step ebiten ticks at by default
const FrameTime = time.Second / 60

type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
	}
}

// Update advances the timer by one frame
func (t *Timer) Update() {
	if t.currentTime < t.targetTime {
		t.currentTime += FrameTime
	}
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

// Progress reports how far the timer is toward its target, in [0, 1]
func (t *Timer) Progress() float64 {
	if t.targetTime <= 0 {
		return 1
	}
	return min(float64(t.currentTime)/float64(t.targetTime), 1)
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
