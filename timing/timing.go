package timing

import (
	"github.com/veandco/go-sdl2/sdl"
)

var (
	perfFreq uint64

	frameStartTime uint64
	deltaTime      float32

	frameCount   uint64
	elapsedTotal float64
)

func Init() {
	perfFreq = sdl.GetPerformanceFrequency()
	frameStartTime = sdl.GetPerformanceCounter()
}

func FrameStarted() {
	frameStartTime = sdl.GetPerformanceCounter()
}

func FrameEnded() {

	now := sdl.GetPerformanceCounter()
	deltaTime = float32(now-frameStartTime) / float32(perfFreq)

	frameCount++
	elapsedTotal += float64(deltaTime)
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return deltaTime
}

func GetAvgFPS() float32 {

	if elapsedTotal == 0 {
		return 0
	}

	return float32(float64(frameCount) / elapsedTotal)
}
