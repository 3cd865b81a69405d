package retained

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/agiangrant/trellis/geom"
)

func TestOneShotTimer(t *testing.T) {
	w, clock := newTestWindow(t, 640, 480)
	fired := 0
	tm := w.CreateTimer(100*time.Millisecond, false, func() { fired++ })
	w.Update()
	assert.False(t, tm.IsRunning(), "timers start stopped")

	tm.Start()
	clock.Advance(50 * time.Millisecond)
	w.Update()
	assert.Zero(t, fired)

	clock.Advance(50 * time.Millisecond)
	w.Update()
	assert.Equal(t, 1, fired)
	assert.False(t, tm.IsRunning())
	assert.Empty(t, w.timers)

	clock.Advance(time.Second)
	w.Update()
	assert.Equal(t, 1, fired)
}

func TestRepeatingTimer(t *testing.T) {
	w, clock := newTestWindow(t, 640, 480)
	fired := 0
	tm := w.CreateTimer(100*time.Millisecond, true, func() { fired++ })
	tm.Start()

	for i := 0; i < 3; i++ {
		clock.Advance(100 * time.Millisecond)
		w.Update()
	}
	assert.Equal(t, 3, fired)
	assert.True(t, tm.IsRunning())

	tm.Stop()
	clock.Advance(100 * time.Millisecond)
	w.Update()
	assert.Equal(t, 3, fired)
	assert.Empty(t, w.timers)
}

func TestStartRestartsCountdown(t *testing.T) {
	w, clock := newTestWindow(t, 640, 480)
	fired := 0
	tm := w.CreateTimer(100*time.Millisecond, false, func() { fired++ })

	tm.Start()
	clock.Advance(80 * time.Millisecond)
	tm.Start()
	clock.Advance(80 * time.Millisecond)
	w.Update()
	assert.Zero(t, fired)
	assert.Len(t, w.timers, 1, "restarting does not register twice")

	clock.Advance(20 * time.Millisecond)
	w.Update()
	assert.Equal(t, 1, fired)
}

func TestTimerCallbackCanRestart(t *testing.T) {
	w, clock := newTestWindow(t, 640, 480)
	fired := 0
	var tm *Timer
	tm = w.CreateTimer(10*time.Millisecond, false, func() {
		fired++
		if fired < 3 {
			tm.Start()
		}
	})
	tm.Start()

	for i := 0; i < 5; i++ {
		clock.Advance(10 * time.Millisecond)
		w.Update()
	}
	assert.Equal(t, 3, fired)
	assert.False(t, tm.IsRunning())
}

func TestTimersFireBeforeLayout(t *testing.T) {
	w, clock := newTestWindow(t, 640, 480)
	w.Update()
	p := newRecorder(w, geom.Vec(10, 10))
	tm := w.CreateTimer(time.Millisecond, false, func() { w.Body().AddControl(p) })
	tm.Start()
	clock.Advance(time.Millisecond)

	w.Update()

	assert.Equal(t, 1, p.updates, "the control added by the timer is laid out in the same update")
	assert.Empty(t, w.PendingLayouts())
}

func TestRepeatingTimerIntervalChange(t *testing.T) {
	tests := []struct {
		name  string
		steps []time.Duration
		want  []int
	}{
		{
			name:  "shortened in the first callback",
			steps: []time.Duration{400, 100, 100, 100},
			want:  []int{1, 2, 3, 4},
		},
		{
			name:  "old interval no longer applies",
			steps: []time.Duration{400, 50, 50, 300},
			want:  []int{1, 1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, clock := newTestWindow(t, 640, 480)
			fired := 0
			var tm *Timer
			tm = w.CreateTimer(400*time.Millisecond, true, func() {
				fired++
				tm.SetInterval(100 * time.Millisecond)
			})
			tm.Start()

			for i, step := range tt.steps {
				clock.Advance(step * time.Millisecond)
				w.Update()
				assert.Equal(t, tt.want[i], fired, "after step %d", i)
			}
		})
	}
}

func TestRepeatingTimerStoppedInCallback(t *testing.T) {
	w, clock := newTestWindow(t, 640, 480)
	fired := 0
	var tm *Timer
	tm = w.CreateTimer(10*time.Millisecond, true, func() {
		fired++
		tm.Stop()
	})
	tm.Start()

	for i := 0; i < 3; i++ {
		clock.Advance(10 * time.Millisecond)
		w.Update()
	}
	assert.Equal(t, 1, fired)
	assert.False(t, tm.IsRunning())
	assert.Empty(t, w.timers)
}
