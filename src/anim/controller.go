package anim

import (
	"sync"
	"time"

	"github.com/felipe-sbm/duck-chess/src/base"
	"github.com/felipe-sbm/duck-chess/src/logx"
)

// FrameRate is the animation cadence in frame advances per second.
const FrameRate = 3

// FrameInterval is the delay between frame advances.
const FrameInterval = time.Second / FrameRate

// Controller owns the one animation session of a board: which cell is
// selected, the running frame counter and the single repeating task that
// advances it. Ticks arrive from the scheduler goroutine, so state is
// mutex-guarded. Two boards on the same screen get two controllers and
// never share anything.
type Controller struct {
	mu sync.Mutex

	board  *base.Board
	player base.Color
	sched  Scheduler
	log    logx.Logger

	selected base.Point
	hasSel   bool
	frame    int
	task     Task
	gen      uint64 // invalidates ticks of cancelled tasks
}

func NewController(board *base.Board, player base.Color, sched Scheduler, log logx.Logger) *Controller {
	if log == nil {
		log = logx.Nop()
	}
	return &Controller{board: board, player: player, sched: sched, log: log}
}

func (c *Controller) Player() base.Color { return c.player }

// Selected reports the selected cell, if any.
func (c *Controller) Selected() (base.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.hasSel
}

// FrameIndex is the running frame counter. It grows without bound while a
// cell stays selected; consumers index frame lists modulo their length.
func (c *Controller) FrameIndex() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

// Click feeds one board click into the state machine.
//
// Idle: an empty cell or an opponent piece does nothing; clicking an own
// piece selects it and starts the frame timer.
//
// Selected: the same cell or an empty cell deselects; a different own
// piece moves the selection (old timer cancelled first, counter reset);
// an opponent piece leaves the current selection untouched.
func (c *Controller) Click(p base.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()

	piece := c.board.At(p)

	if !c.hasSel {
		if piece.IsEmpty() || piece.Color != c.player {
			return
		}
		c.selectLocked(p)
		return
	}

	if p == c.selected || piece.IsEmpty() {
		c.deselectLocked()
		return
	}
	if piece.Color != c.player {
		// opponent piece: keep the current selection
		return
	}
	c.deselectLocked()
	c.selectLocked(p)
}

// Close tears the session down. Safe to call in any state, any number of
// times; no tick fires afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deselectLocked()
}

func (c *Controller) selectLocked(p base.Point) {
	c.selected = p
	c.hasSel = true
	c.frame = 0
	c.gen++
	gen := c.gen
	c.task = c.sched.Every(FrameInterval, func() {
		c.mu.Lock()
		if c.gen == gen && c.hasSel {
			c.frame++
		}
		c.mu.Unlock()
	})
	c.log.Debugf("selected cell (%d,%d)", p.Row, p.Col)
}

func (c *Controller) deselectLocked() {
	c.gen++
	if c.task != nil {
		c.task.Cancel()
		c.task = nil
	}
	c.hasSel = false
	c.frame = 0
}
