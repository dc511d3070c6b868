package game

import "math"

// HeatKind identifies one layer of the match heatmap.
type HeatKind int

const (
	HeatHome HeatKind = iota // where home players have been
	HeatAway                 // where away players have been
	HeatBall                 // where the ball has been
	heatKindCount
)

// HeatKindName returns a short display name for a layer.
func HeatKindName(k HeatKind) string {
	switch k {
	case HeatHome:
		return "Home"
	case HeatAway:
		return "Away"
	case HeatBall:
		return "Ball"
	default:
		return "Unknown"
	}
}

// heatCell is the grid cell size in metres.
const heatCell = 2.0

// heatDecayRates are subtracted from every cell each tick. At 60 TPS:
//
//	HeatHome 0.0005 → ~33s to zero from 1.0
//	HeatAway 0.0005
//	HeatBall 0.001  → ~17s
var heatDecayRates = [heatKindCount]float32{0.0005, 0.0005, 0.001}

// heatWrite is the per-tick deposit for each layer.
var heatWrite = [heatKindCount]float32{0.004, 0.004, 0.02}

const heatMaxValue float32 = 1.0

// HeatLayer is a 2-D float32 grid over the pitch.
type HeatLayer struct {
	cells     []float32
	rows      int
	cols      int
	decayRate float32
}

func newHeatLayer(rows, cols int, decayRate float32) *HeatLayer {
	return &HeatLayer{
		cells:     make([]float32, rows*cols),
		rows:      rows,
		cols:      cols,
		decayRate: decayRate,
	}
}

// pitchToCell maps pitch metres to a grid cell.
func pitchToCell(x, y float64) (col, row int) {
	return int(math.Floor((x + pitchHalfWidth) / heatCell)), int(math.Floor((y + pitchHalfLength) / heatCell))
}

// cellToPitch returns the centre of a cell in pitch metres.
func cellToPitch(col, row int) (x, y float64) {
	return (float64(col)+0.5)*heatCell - pitchHalfWidth, (float64(row)+0.5)*heatCell - pitchHalfLength
}

// Add adds delta to cell (row, col), clamped to [0, heatMaxValue].
func (l *HeatLayer) Add(row, col int, delta float32) {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return
	}
	idx := row*l.cols + col
	v := l.cells[idx] + delta
	if v > heatMaxValue {
		v = heatMaxValue
	}
	if v < 0 {
		v = 0
	}
	l.cells[idx] = v
}

// At returns the heat value at (row, col), or 0 if out of bounds.
func (l *HeatLayer) At(row, col int) float32 {
	if row < 0 || row >= l.rows || col < 0 || col >= l.cols {
		return 0
	}
	return l.cells[row*l.cols+col]
}

// SampleAt returns heat at a pitch position.
func (l *HeatLayer) SampleAt(x, y float64) float32 {
	col, row := pitchToCell(x, y)
	return l.At(row, col)
}

// Centroid returns the heat-weighted centroid in pitch metres.
// ok is false when the layer has no heat.
func (l *HeatLayer) Centroid() (x, y float64, ok bool) {
	var sumW, sumX, sumY float64
	for row := 0; row < l.rows; row++ {
		for col := 0; col < l.cols; col++ {
			v := float64(l.cells[row*l.cols+col])
			if v <= 0 {
				continue
			}
			cx, cy := cellToPitch(col, row)
			sumW += v
			sumX += cx * v
			sumY += cy * v
		}
	}
	if sumW < 1e-9 {
		return 0, 0, false
	}
	return sumX / sumW, sumY / sumW, true
}

// Decay subtracts decayRate from every cell, clamping at 0.
func (l *HeatLayer) Decay() {
	if l.decayRate <= 0 {
		return
	}
	for i := range l.cells {
		v := l.cells[i] - l.decayRate
		if v < 0 {
			v = 0
		}
		l.cells[i] = v
	}
}

// Heatmap tracks where each side and the ball have spent the match.
type Heatmap struct {
	rows, cols int
	layers     [heatKindCount]*HeatLayer
}

// NewHeatmap covers the whole pitch in heatCell squares.
func NewHeatmap() *Heatmap {
	h := &Heatmap{
		cols: int(math.Ceil(2 * pitchHalfWidth / heatCell)),
		rows: int(math.Ceil(2 * pitchHalfLength / heatCell)),
	}
	for k := range h.layers {
		h.layers[k] = newHeatLayer(h.rows, h.cols, heatDecayRates[k])
	}
	return h
}

// Layer returns one layer.
func (h *Heatmap) Layer(k HeatKind) *HeatLayer { return h.layers[k] }

func (h *Heatmap) Rows() int { return h.rows }
func (h *Heatmap) Cols() int { return h.cols }

// write deposits heat for kind at a pitch position.
func (h *Heatmap) write(k HeatKind, p vec) {
	col, row := pitchToCell(p.x, p.y)
	h.layers[k].Add(row, col, heatWrite[k])
}

// Update decays every layer then records this tick's positions.
func (h *Heatmap) Update(footballers []*Footballer, ball vec) {
	for _, l := range h.layers {
		l.Decay()
	}
	for _, f := range footballers {
		if f.sentOff {
			continue
		}
		k := HeatHome
		if f.side == SideAway {
			k = HeatAway
		}
		h.write(k, f.pos)
	}
	h.write(HeatBall, ball)
}
