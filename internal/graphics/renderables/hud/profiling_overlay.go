package hud

import (
	"fmt"
	"strings"
	"time"

	"shinage/internal/profiling"
)

// historyLen frames are kept for the min/avg/max readout.
const historyLen = 60

type frameStats struct {
	history            []time.Duration
	min, max, avg      time.Duration
	lastUpdateDuration time.Duration
}

func (s *frameStats) record(d time.Duration) {
	if len(s.history) >= historyLen {
		s.history = s.history[1:]
	}
	s.history = append(s.history, d)

	var total time.Duration
	s.min, s.max = d, d
	for _, v := range s.history {
		total += v
		s.min = min(s.min, v)
		s.max = max(s.max, v)
	}
	s.avg = total / time.Duration(len(s.history))
}

func ms(d time.Duration) float64 { return float64(d.Microseconds()) / 1000.0 }

// lines formats the overlay from the frame stats and the profiling buckets.
func (s *frameStats) lines() []string {
	out := make([]string, 0, 16)
	if len(s.history) > 0 {
		out = append(out, fmt.Sprintf("Frame: %.2fms avg (%.2f min, %.2f max)", ms(s.avg), ms(s.min), ms(s.max)))
	}
	if s.lastUpdateDuration > 0 {
		out = append(out, fmt.Sprintf("Update: %.2fms | Render: %.2fms", ms(s.lastUpdateDuration), ms(profiling.SumWithPrefix("renderer."))))
	}
	if top := profiling.TopN(8); top != "" {
		for _, line := range strings.Split(top, ", ") {
			if line != "" && !strings.HasSuffix(line, ":0.0ms") {
				out = append(out, line)
			}
		}
	}
	return out
}

// ProfilingSetFrameDuration records the previous frame's total time.
func (h *HUD) ProfilingSetFrameDuration(d time.Duration) {
	h.stats.record(d)
}

// ProfilingSetUpdateDuration records the previous frame's update phase.
func (h *HUD) ProfilingSetUpdateDuration(d time.Duration) {
	h.stats.lastUpdateDuration = d
}

func (h *HUD) ToggleProfiling() {
	h.showProfiling = !h.showProfiling
}

func (h *HUD) ShowProfiling() bool {
	return h.showProfiling
}
