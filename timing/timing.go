// The timing package tracks per-frame delta time and total elapsed time.
// FrameStarted/FrameEnded must be called once per frame by the main loop.
package timing

import "time"

var (
	startTime  time.Time
	frameStart time.Time

	dt float32

	frameCount   uint64
	avgFpsWindow float32
)

func Init() {
	startTime = time.Now()
	frameStart = startTime

	// Avoid a zero delta on the very first frame
	dt = 1.0 / 60
}

func FrameStarted() {
	frameStart = time.Now()
}

func FrameEnded() {

	dt = float32(time.Since(frameStart).Seconds())
	frameCount++

	// Exponential moving average is good enough for a debug readout
	if dt > 0 {
		avgFpsWindow = avgFpsWindow*0.95 + (1/dt)*0.05
	}
}

// DT returns the duration of the last finished frame in seconds
func DT() float32 {
	return dt
}

// ElapsedTime returns seconds since timing.Init
func ElapsedTime() float64 {
	return time.Since(startTime).Seconds()
}

func GetAvgFPS() float32 {
	return avgFpsWindow
}
