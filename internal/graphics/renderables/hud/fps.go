package hud

import "fmt"

// fpsWindow is how many frames are averaged per readout.
const fpsWindow = 30

// fpsCounter averages frame times over fpsWindow frames so the readout
// does not flicker.
type fpsCounter struct {
	total float64
	text  string
}

func newFPSCounter() *fpsCounter {
	return &fpsCounter{text: "0 FPS (0 ms)"}
}

// add records dt seconds for frame and returns the current readout. The
// text only changes on frames that are a non-zero multiple of fpsWindow.
func (f *fpsCounter) add(frame uint64, dt float64) string {
	f.total += dt
	if frame != 0 && frame%fpsWindow == 0 {
		if f.total > 0 {
			f.text = fmt.Sprintf("%.2f FPS (%.2f ms)", fpsWindow/f.total, f.total*1000/fpsWindow)
		}
		f.total = 0
	}
	return f.text
}
