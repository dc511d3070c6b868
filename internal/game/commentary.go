package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	panelWidth      = 320
	commentaryLines = 60
	lineHeight      = 11
)

// CommentaryLine is one on-screen line of match commentary.
type CommentaryLine struct {
	Minute  int
	Label   string // "H9", or "--" for match events
	Side    Side
	Neutral bool
	Message string
}

// Commentary is a fixed-capacity ring buffer of commentary lines.
type Commentary struct {
	lines []CommentaryLine
	head  int
	count int
}

// NewCommentary returns an empty commentary buffer.
func NewCommentary() *Commentary {
	return &Commentary{lines: make([]CommentaryLine, commentaryLines)}
}

// Add appends a line, overwriting the oldest once full.
func (c *Commentary) Add(line CommentaryLine) {
	c.lines[c.head] = line
	c.head = (c.head + 1) % commentaryLines
	if c.count < commentaryLines {
		c.count++
	}
}

// Len is the number of stored lines.
func (c *Commentary) Len() int { return c.count }

// Recent returns lines oldest first.
func (c *Commentary) Recent() []CommentaryLine {
	out := make([]CommentaryLine, c.count)
	for i := 0; i < c.count; i++ {
		idx := (c.head - c.count + i + commentaryLines) % commentaryLines
		out[i] = c.lines[idx]
	}
	return out
}

// Draw renders the commentary panel at panelX, newest line at the bottom.
func (c *Commentary) Draw(screen *ebiten.Image, panelX, panelH int, home, away color.RGBA) {
	vector.FillRect(screen, float32(panelX), 0, panelWidth, float32(panelH), color.RGBA{R: 10, G: 14, B: 10, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, color.RGBA{R: 50, G: 70, B: 50, A: 255}, false)
	vector.FillRect(screen, float32(panelX), 0, panelWidth, 16, color.RGBA{R: 20, G: 34, B: 20, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "COMMENTARY", panelX+8, 2)

	lines := c.Recent()
	maxVisible := (panelH - 24) / lineHeight
	if len(lines) > maxVisible {
		lines = lines[len(lines)-maxVisible:]
	}
	y := 20
	for i, l := range lines {
		if i >= len(lines)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), panelWidth-4, lineHeight, color.RGBA{R: 30, G: 44, B: 30, A: 160}, false)
		}
		dot := color.RGBA{R: 160, G: 160, B: 160, A: 255}
		if !l.Neutral {
			dot = home
			if l.Side == SideAway {
				dot = away
			}
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+3), 3, 5, dot, false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%2d' [%s] %s", l.Minute, l.Label, l.Message), panelX+12, y)
		y += lineHeight
	}
}
