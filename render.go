package glimmer

import (
	"fmt"
	"time"

	"github.com/glimmerui/glimmer/internal/debug"
)

// BoundsMode selects how the renderer resolves the region it draws into.
type BoundsMode uint8

const (
	// BoundsAuto sizes the frame to its content, anchored at the cursor
	// position of the first render. The origin is cached so repeated
	// renders overwrite the same region.
	BoundsAuto BoundsMode = iota
	// BoundsFullscreen covers the whole terminal.
	BoundsFullscreen
	// BoundsManual draws into an explicitly given rectangle.
	BoundsManual
)

// CursorPolicy controls where the cursor ends up after a frame.
type CursorPolicy uint8

const (
	// CursorAfter parks the cursor one row below the rendered content,
	// clamped to the viewport.
	CursorAfter CursorPolicy = iota
	// CursorPreserve restores the cursor to its pre-render position. Falls
	// back to CursorAfter when the position cannot be queried.
	CursorPreserve
)

// RenderStats reports what one frame cost.
type RenderStats struct {
	// CellsWritten is the number of cells emitted to the terminal,
	// including cleared ones. Wide characters count once.
	CellsWritten int
	// CellsSkipped is the number of painted cells left alone because they
	// matched the previous frame exactly.
	CellsSkipped int
	// RenderTime is the wall time of the whole pipeline.
	RenderTime time.Duration
}

// RenderTimeMs returns the render time in fractional milliseconds.
func (s RenderStats) RenderTimeMs() float64 {
	return float64(s.RenderTime) / float64(time.Millisecond)
}

// RenderResult describes where a frame landed.
type RenderResult struct {
	// Used is the absolute region the frame occupies on screen.
	Used Rect
	// Clipped is how much laid-out content did not fit per axis.
	Clipped Size
	// Stats reports the frame's diff and timing numbers.
	Stats RenderStats
}

// Renderer runs the measure, layout, paint, diff, and emit pipeline
// against a widget tree. It keeps the previous frame's buffer between
// renders so only changed cells are written. A Renderer is not safe for
// concurrent use.
type Renderer struct {
	term Terminal
	caps Capabilities
	esc  *escBuilder

	mode      BoundsMode
	manual    Rect
	maxWidth  int
	maxHeight int
	policy    CursorPolicy
	hidden    bool
	rendering bool

	prev       *Buffer
	prevOrigin Point

	autoOrigin    Point
	hasAutoOrigin bool
}

// RendererOption is a functional option for configuring a Renderer.
type RendererOption func(*Renderer) error

// WithFullscreen makes the renderer cover the whole terminal.
func WithFullscreen() RendererOption {
	return func(r *Renderer) error {
		r.mode = BoundsFullscreen
		return nil
	}
}

// WithBounds draws into an explicit rectangle in absolute terminal
// coordinates.
func WithBounds(rect Rect) RendererOption {
	return func(r *Renderer) error {
		if rect.X < 0 || rect.Y < 0 || rect.Width < 0 || rect.Height < 0 {
			return fmt.Errorf("render bounds must not be negative, got %+v", rect)
		}
		if rect.Width == 0 || rect.Height == 0 {
			return fmt.Errorf("render bounds need a size, got %+v", rect)
		}
		r.mode = BoundsManual
		r.manual = rect
		return nil
	}
}

// WithAuto sizes the frame to content at the cursor position. This is the
// default mode.
func WithAuto() RendererOption {
	return func(r *Renderer) error {
		r.mode = BoundsAuto
		return nil
	}
}

// WithMaxSize caps content-driven sizing in auto mode. Zero leaves an
// axis uncapped.
func WithMaxSize(width, height int) RendererOption {
	return func(r *Renderer) error {
		if width < 0 || height < 0 {
			return fmt.Errorf("max size must not be negative, got %dx%d", width, height)
		}
		r.maxWidth = width
		r.maxHeight = height
		return nil
	}
}

// WithPosition anchors auto mode at an explicit origin instead of the
// cursor position. Only meaningful in auto mode.
func WithPosition(x, y int) RendererOption {
	return func(r *Renderer) error {
		if x < 0 || y < 0 {
			return fmt.Errorf("position must not be negative, got (%d, %d)", x, y)
		}
		r.autoOrigin = Point{X: x, Y: y}
		r.hasAutoOrigin = true
		return nil
	}
}

// WithCursorPolicy sets where the cursor lands after each frame.
func WithCursorPolicy(p CursorPolicy) RendererOption {
	return func(r *Renderer) error {
		r.policy = p
		return nil
	}
}

// WithHiddenCursor keeps the cursor invisible after each frame.
// By default the cursor is shown again once the frame is written.
func WithHiddenCursor() RendererOption {
	return func(r *Renderer) error {
		r.hidden = true
		return nil
	}
}

// WithCapabilities overrides auto-detected terminal capabilities.
func WithCapabilities(caps Capabilities) RendererOption {
	return func(r *Renderer) error {
		r.caps = caps
		return nil
	}
}

// NewRenderer creates a renderer drawing to the given terminal.
func NewRenderer(term Terminal, opts ...RendererOption) (*Renderer, error) {
	if term == nil {
		return nil, fmt.Errorf("renderer requires a terminal")
	}

	r := &Renderer{
		term: term,
		caps: DetectCapabilities(),
		esc:  newEscBuilder(4096),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Invalidate drops the previous frame so the next render rewrites every
// cell. Call after a terminal resize or any external write that may have
// disturbed the screen.
func (r *Renderer) Invalidate() {
	r.prev = nil
}

// Render runs one frame: resolve bounds, measure, layout, paint,
// rasterize, diff against the previous frame, and emit the changed cells
// as a single batched write.
func (r *Renderer) Render(root Widget) (RenderResult, error) {
	if root == nil {
		panic("glimmer: render of nil root")
	}
	if r.rendering {
		panic("glimmer: re-entrant render")
	}
	r.rendering = true
	defer func() { r.rendering = false }()

	start := time.Now()
	termW, termH := r.term.Size()
	viewport := NewRect(0, 0, termW, termH)

	// The preserve policy needs the cursor position before we move it.
	var pre Point
	havePre := false
	if r.policy == CursorPreserve {
		if x, y, err := r.term.CursorPosition(); err == nil {
			pre = Point{X: x, Y: y}
			havePre = true
		}
	}

	origin, size, cons := r.resolveBounds(termW, termH, pre, havePre)

	measured := root.Measure(cons, NewStyle())
	if r.mode == BoundsAuto {
		size = measured
		if max := cons.MaxWidth; size.Width > max {
			size.Width = max
		}
		if max := cons.MaxHeight; size.Height > max {
			size.Height = max
		}
	}

	r.esc.Reset()
	r.esc.HideCursor()

	// If an auto-anchored frame would run past the bottom of the terminal,
	// scroll first and shift every piece of origin bookkeeping up with the
	// content. Manual bounds stay put and clip instead.
	scrolled := 0
	if r.mode == BoundsAuto {
		overhang := origin.Y + size.Height - termH
		if overhang > 0 {
			scrolled = overhang
			if scrolled > origin.Y {
				scrolled = origin.Y
			}
		}
		if scrolled > 0 {
			r.esc.MoveTo(0, termH-1)
			for i := 0; i < scrolled; i++ {
				r.esc.WriteRune('\n')
			}
			origin.Y -= scrolled
			r.prevOrigin.Y -= scrolled
			if r.hasAutoOrigin {
				r.autoOrigin.Y -= scrolled
			}
			if havePre {
				pre.Y -= scrolled
				if pre.Y < 0 {
					pre.Y = 0
				}
			}
		}
	}

	root.Layout(origin, size)

	content := NewRect(origin.X, origin.Y, size.Width, size.Height)
	bounds := content.Intersect(viewport)
	clipped := Size{
		Width:  content.Width - bounds.Width,
		Height: content.Height - bounds.Height,
	}

	buf := rasterize(orderOps(root.Paint()), bounds)
	changes := DiffFrames(r.prev, r.prevOrigin, buf, bounds.Origin())

	written, writtenPainted := r.emitChanges(changes)
	skipped := countPainted(buf) - writtenPainted

	r.placeCursor(bounds, termH, pre, havePre)
	if !r.hidden {
		r.esc.ShowCursor()
	}

	if _, err := r.term.Write(r.esc.Bytes()); err != nil {
		return RenderResult{}, fmt.Errorf("failed to write frame: %w", err)
	}

	r.prev = buf
	r.prevOrigin = bounds.Origin()

	debug.Log("Render: bounds=%+v wrote=%d skipped=%d bytes=%d in %v",
		bounds, written, skipped, len(r.esc.Bytes()), time.Since(start))

	return RenderResult{
		Used:    bounds,
		Clipped: clipped,
		Stats: RenderStats{
			CellsWritten: written,
			CellsSkipped: skipped,
			RenderTime:   time.Since(start),
		},
	}, nil
}

// resolveBounds picks the frame origin and, for the fixed modes, its
// size, along with the constraints the root is measured under. In auto
// mode the size stays zero until content is measured.
func (r *Renderer) resolveBounds(termW, termH int, pre Point, havePre bool) (Point, Size, Constraints) {
	switch r.mode {
	case BoundsFullscreen:
		return Point{}, Size{Width: termW, Height: termH}, Tight(termW, termH)

	case BoundsManual:
		return r.manual.Origin(), r.manual.Size(), Tight(r.manual.Width, r.manual.Height)

	default:
		if !r.hasAutoOrigin {
			origin := Point{}
			if havePre {
				// The preserve query already told us where the cursor is.
				origin = pre
			} else if x, y, err := r.term.CursorPosition(); err == nil {
				origin = Point{X: x, Y: y}
			}
			r.autoOrigin = clampPoint(origin, termW, termH)
			r.hasAutoOrigin = true
		}
		origin := clampPoint(r.autoOrigin, termW, termH)

		availW := termW - origin.X
		availH := termH
		if r.maxWidth > 0 && availW > r.maxWidth {
			availW = r.maxWidth
		}
		if r.maxHeight > 0 && availH > r.maxHeight {
			availH = r.maxHeight
		}
		return origin, Size{}, Loose(availW, availH)
	}
}

// emitChanges writes each changed cell as a self-contained sequence:
// cursor move, style, glyph, style reset. Continuation cells are skipped;
// the wide glyph before them covers both columns. Returns the emitted
// cell count and how many of those were painted (non-blank) cells.
func (r *Renderer) emitChanges(changes []CellChange) (written, writtenPainted int) {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue
		}

		r.esc.MoveTo(ch.X, ch.Y)
		styled := !ch.Cell.Style.IsDefault()
		if styled {
			r.esc.SetStyle(ch.Cell.Style, r.caps)
		}
		if ch.Cell.Rune != 0 {
			r.esc.WriteRune(ch.Cell.Rune)
		} else {
			r.esc.WriteRune(' ')
		}
		if styled {
			r.esc.ResetStyle()
		}

		written++
		if !ch.Cell.Equal(blankCell) {
			writtenPainted++
		}
	}
	return written, writtenPainted
}

// placeCursor applies the cursor policy once all cells are emitted.
func (r *Renderer) placeCursor(bounds Rect, termH int, pre Point, havePre bool) {
	if r.policy == CursorPreserve && havePre {
		r.esc.MoveTo(pre.X, pre.Y)
		return
	}

	parkY := bounds.Bottom()
	if parkY > termH-1 {
		parkY = termH - 1
	}
	if parkY < 0 {
		parkY = 0
	}
	r.esc.MoveTo(0, parkY)
}

// countPainted returns how many primary cells in the buffer hold visible
// content. Continuations and blanks don't count.
func countPainted(b *Buffer) int {
	painted := 0
	w, h := b.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := b.Cell(x, y)
			if c.IsContinuation() || c.Equal(blankCell) {
				continue
			}
			painted++
		}
	}
	return painted
}

// clampPoint keeps a point inside a termW x termH viewport.
func clampPoint(p Point, termW, termH int) Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if termW > 0 && p.X >= termW {
		p.X = termW - 1
	}
	if termH > 0 && p.Y >= termH {
		p.Y = termH - 1
	}
	return p
}
