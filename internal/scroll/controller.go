package scroll

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/config"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

// State is a read snapshot of the controller's scroll state.
type State struct {
	HorizontalOffset   float64
	VerticalOffset     float64
	CenterDayIndex     int
	DayWindow          Window
	RowWindow          Window
	UserHasScrolled    bool
	LastVerticalTarget *float64
}

// Controller owns the reactive scroll state for both axes. Horizontal
// notifications are throttled to one recomputation per interval; the
// heavier vertical-target search is debounced so only the last call in
// a burst runs. When the arbiter is in AUTO mode, a recomputed target
// is emitted through the onAutoScroll callback.
//
// The controller is driven from a single event loop; the internal
// mutex only guards against the timer goroutines the throttle and
// debounce stages run on.
type Controller struct {
	layout config.Layout
	logger *zap.Logger

	mu             sync.Mutex
	totalDays      int
	rows           timeline.RowAssignment
	viewportW      float64
	viewportH      float64
	horizontal     float64
	vertical       float64
	scrollingLeft  bool
	verticalTarget *float64
	disposed       bool

	arbiter  *Arbiter
	throttle *Throttler
	debounce *Debouncer

	center    *Value[int]
	dayWindow *Value[Window]
	rowWindow *Value[Window]

	onAutoScroll func(offset float64)
}

// NewController creates a controller with the given layout parameters.
// onAutoScroll receives vertical-scroll commands while in AUTO mode and
// may be nil. logger may be nil.
func NewController(layout config.Layout, logger *zap.Logger, onAutoScroll func(offset float64)) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		layout:       layout,
		logger:       logger,
		arbiter:      NewArbiter(),
		throttle:     NewThrottler(time.Duration(layout.ScrollThrottleMs) * time.Millisecond),
		debounce:     NewDebouncer(time.Duration(layout.ScrollDebounceMs) * time.Millisecond),
		center:       NewValue(0),
		dayWindow:    NewValue(EmptyWindow),
		rowWindow:    NewValue(EmptyWindow),
		onAutoScroll: onAutoScroll,
	}
}

// Center exposes the observable center day index.
func (c *Controller) Center() *Value[int] { return c.center }

// DayWindow exposes the observable horizontal render window.
func (c *Controller) DayWindow() *Value[Window] { return c.dayWindow }

// RowWindow exposes the observable vertical render window.
func (c *Controller) RowWindow() *Value[Window] { return c.rowWindow }

// SetViewport records the viewport dimensions and refreshes both
// windows.
func (c *Controller) SetViewport(width, height float64) {
	c.mu.Lock()
	c.viewportW = width
	c.viewportH = height
	day, row := c.windowsLocked()
	c.mu.Unlock()

	c.dayWindow.Set(day)
	c.rowWindow.Set(row)
}

// SetTimeline installs a new day count and row assignment, refreshing
// the windows. Called whenever the underlying view model is replaced.
func (c *Controller) SetTimeline(totalDays int, rows timeline.RowAssignment) {
	c.mu.Lock()
	c.totalDays = totalDays
	c.rows = rows
	day, row := c.windowsLocked()
	center := CenterDayIndex(c.horizontal, c.viewportW, c.layout.DayWidth, c.layout.DayMargin, c.totalDays)
	c.mu.Unlock()

	c.center.Set(center)
	c.dayWindow.Set(day)
	c.rowWindow.Set(row)
}

// HandleHorizontalScroll ingests a horizontal scroll notification.
// Recomputation is throttled; the value used is always the most recent
// offset at execution time.
func (c *Controller) HandleHorizontalScroll(offset float64) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	if offset != c.horizontal {
		c.scrollingLeft = offset < c.horizontal
	}
	c.horizontal = offset
	c.mu.Unlock()

	c.throttle.Call(c.recomputeHorizontal)
}

// HandleVerticalScroll ingests a manual vertical scroll notification.
// The arbiter drops to MANUAL, then the positional recovery rule is
// re-evaluated immediately so the state can return to AUTO within the
// same event.
func (c *Controller) HandleVerticalScroll(offset float64) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.vertical = offset
	c.arbiter.NoteUserScroll(offset)
	fire := c.arbiter.Evaluate(c.verticalTarget, c.scrollingLeft)
	target := c.verticalTarget
	_, row := c.windowsLocked()
	cb := c.onAutoScroll
	c.mu.Unlock()

	c.rowWindow.Set(row)
	if fire && cb != nil && target != nil {
		cb(*target)
	}
}

// SetVerticalOffset applies a programmatic vertical offset, such as an
// auto-scroll animation frame, refreshing the row window. Unlike
// HandleVerticalScroll it does not engage the arbiter: following the
// emitted target is not a user gesture and must not drop to MANUAL.
func (c *Controller) SetVerticalOffset(offset float64) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.vertical = offset
	_, row := c.windowsLocked()
	c.mu.Unlock()

	c.rowWindow.Set(row)
}

// recomputeHorizontal runs on the throttle stage: refresh the center
// index and day window, and when the center moved at least one unit,
// schedule the vertical-target search on the debounce stage.
func (c *Controller) recomputeHorizontal() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	center := CenterDayIndex(c.horizontal, c.viewportW, c.layout.DayWidth, c.layout.DayMargin, c.totalDays)
	day, _ := c.windowsLocked()
	changed := center != c.center.Get()
	c.mu.Unlock()

	c.center.Set(center)
	c.dayWindow.Set(day)
	if changed {
		c.debounce.Call(c.recomputeVerticalTarget)
	}
}

// recomputeVerticalTarget runs on the debounce stage: locate the target
// row offset for the current center and direction, consult the
// arbiter, and emit an auto-scroll command when allowed.
func (c *Controller) recomputeVerticalTarget() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	center := c.center.Get()
	target := TargetRowOffset(center, c.rows, c.layout.RowHeight, c.layout.RowMargin, c.scrollingLeft)
	c.verticalTarget = target
	fire := c.arbiter.Evaluate(target, c.scrollingLeft)
	cb := c.onAutoScroll
	c.mu.Unlock()

	if fire && cb != nil && target != nil {
		cb(*target)
	}
}

// windowsLocked computes both render windows from current state.
// Caller holds c.mu.
func (c *Controller) windowsLocked() (day, row Window) {
	dayExtent := c.layout.DayWidth - c.layout.DayMargin
	rowExtent := c.layout.RowHeight + 2*c.layout.RowMargin
	day = VisibleWindow(c.horizontal, dayExtent, c.viewportW, c.totalDays, c.layout.BufferDays)
	row = VisibleWindow(c.vertical, rowExtent, c.viewportH, c.rows.Len(), c.layout.BufferRows)
	return day, row
}

// State returns a snapshot of the current scroll state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return State{
		HorizontalOffset:   c.horizontal,
		VerticalOffset:     c.vertical,
		CenterDayIndex:     c.center.Get(),
		DayWindow:          c.dayWindow.Get(),
		RowWindow:          c.rowWindow.Get(),
		UserHasScrolled:    c.arbiter.Mode() == ModeManual,
		LastVerticalTarget: c.verticalTarget,
	}
}

// Close cancels all pending throttle/debounce work and tears down the
// observable cells. No callback fires after Close. Idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	c.disposed = true
	c.mu.Unlock()

	c.throttle.Stop()
	c.debounce.Stop()
	c.center.Close()
	c.dayWindow.Close()
	c.rowWindow.Close()
}
