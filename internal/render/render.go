// Package render draws game snapshots to a terminal.
package render

import (
	"io"
	"time"

	"github.com/tomz197/skyguard/internal/config"
	"github.com/tomz197/skyguard/internal/draw"
	"github.com/tomz197/skyguard/internal/game"
	"github.com/tomz197/skyguard/internal/object"
)

// Overlay carries front-end state that is not part of the simulation.
type Overlay struct {
	IdleWarning bool          // Show the inactivity warning instead of the HUD
	Disconnect  time.Duration // Time left before an idle disconnect
}

// Renderer draws snapshots onto a scaled canvas and flushes the frame in chunks.
// It is not safe for concurrent use.
type Renderer struct {
	w        io.Writer
	canvas   *draw.Canvas
	cw       *draw.ChunkWriter
	termSize draw.TermSizeFunc
	stars    []draw.Point

	// Previous frame, used to decide when a full clear is needed
	drawn      bool
	prevPhase  game.Phase
	prevBanner bool
	prevIdle   bool
}

// New creates a renderer for a world of the given size writing to w.
// termSize defaults to draw.DefaultTermSizeFunc.
func New(w io.Writer, screen object.Screen, termSize draw.TermSizeFunc) *Renderer {
	if termSize == nil {
		termSize = draw.DefaultTermSizeFunc
	}
	termWidth, termHeight, _ := termSize()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, screen.W(), screen.H())
	canvas.SetOffset(offsetCol, offsetRow)

	return &Renderer{
		w:        w,
		canvas:   canvas,
		cw:       draw.NewChunkWriter(w, offsetCol, offsetRow),
		termSize: termSize,
		stars:    starField(screen),
	}
}

// Begin prepares the terminal for drawing.
func (r *Renderer) Begin() {
	draw.HideCursor(r.w)
	draw.ClearScreen(r.w)
}

// End clears the terminal and restores the cursor.
func (r *Renderer) End() {
	draw.ClearScreen(r.w)
	draw.ShowCursor(r.w)
}

// Draw renders one frame.
func (r *Renderer) Draw(snap game.Snapshot, ov Overlay) error {
	r.updateScreen()

	// On phase, banner or inactivity transitions, do a full terminal clear
	// so text from the previous state doesn't persist on screen.
	if !r.drawn || snap.Phase != r.prevPhase || snap.LevelMessageVisible != r.prevBanner || ov.IdleWarning != r.prevIdle {
		r.cw.Clear()
		r.canvas.ForceRedraw()
		r.drawn = true
		r.prevPhase = snap.Phase
		r.prevBanner = snap.LevelMessageVisible
		r.prevIdle = ov.IdleWarning
	}

	r.canvas.Clear()
	r.drawScene(snap)
	r.canvas.Render(r.cw)
	r.canvas.RenderBorder(r.cw)

	r.drawLabels(snap)
	r.drawUI(snap, ov)

	return r.cw.Flush()
}

// updateScreen follows terminal resizes.
func (r *Renderer) updateScreen() {
	termWidth, termHeight, err := r.termSize()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != r.canvas.TerminalWidth() || renderHeight != r.canvas.TerminalHeight() ||
		offsetCol != r.canvas.OffsetCol() || offsetRow != r.canvas.OffsetRow() {
		r.cw.Clear()
		r.canvas.ForceRedraw()
	}

	r.canvas.Resize(renderWidth, renderHeight)
	r.canvas.SetOffset(offsetCol, offsetRow)
	r.cw.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 0), config.MaxTermWidth)
	renderHeight = min(max(termHeight, 0), config.MaxTermHeight)
	offsetCol = (max(termWidth, 0) - renderWidth) / 2
	offsetRow = (max(termHeight, 0) - renderHeight) / 2
	return
}

// text writes s at a canvas position and marks the covered cells for
// repainting, so the overlay disappears once it is no longer written.
func (r *Renderer) text(col, row int, s string, color draw.Color) {
	col = max(col, 1)
	r.cw.WriteAt(col, row, draw.Colorize(s, color))
	r.canvas.Invalidate(col, row, len([]rune(s)))
}

// centered writes s centred on column centerCol.
func (r *Renderer) centered(centerCol, row int, s string, color draw.Color) {
	r.text(centerCol-len([]rune(s))/2, row, s, color)
}
