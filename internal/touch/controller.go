package touch

import (
	"math"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/Garsondee/Pitch-Sense/internal/gesture"
)

// Config holds the touch tuning values.
type Config struct {
	SwipeThreshold  float64       // pixels of travel before a touch counts as a drag
	TapTime         time.Duration // releases quicker than this are taps
	MaxPowerTime    time.Duration // hold time for a full power charge
	MinChargedPower float64       // charged releases below this do nothing
	ShotStrength    float64       // swipe strength above which a swipe shoots
	TapPassPower    float64
	ScreenHeight    float64
	BufferAge       time.Duration
	HistoryTTL      time.Duration // idle fingers are forgotten after this
}

// DefaultConfig returns the stock tuning for a 912px tall screen.
func DefaultConfig() Config {
	return Config{
		SwipeThreshold:  50,
		TapTime:         300 * time.Millisecond,
		MaxPowerTime:    2 * time.Second,
		MinChargedPower: 0.1,
		ShotStrength:    0.3,
		TapPassPower:    0.3,
		ScreenHeight:    912,
		BufferAge:       100 * time.Millisecond,
		HistoryTTL:      time.Second,
	}
}

// finger is the per-touch state kept between events.
type finger struct {
	startX, startY float64
	lastX, lastY   float64
	began          time.Duration
	lastSeen       time.Duration
	dragging       bool
	gesture        *gesture.Recorder
}

// Controller maps finger events to actions for the player under control.
type Controller struct {
	cfg     Config
	rec     *gesture.Recognizer
	fingers *intmap.Map[int, *finger]
}

// NewController builds a Controller. A nil recognizer uses the default library.
func NewController(cfg Config, rec *gesture.Recognizer) *Controller {
	if rec == nil {
		rec = gesture.Default()
	}
	if cfg.ScreenHeight <= 0 {
		cfg.ScreenHeight = DefaultConfig().ScreenHeight
	}
	return &Controller{
		cfg:     cfg,
		rec:     rec,
		fingers: intmap.New[int, *finger](4),
	}
}

// Config returns the active tuning.
func (c *Controller) Config() Config { return c.cfg }

// ActiveFingers returns how many fingers are currently down.
func (c *Controller) ActiveFingers() int { return c.fingers.Len() }

// Handle consumes one finger sample. hasBall tells whether the controlled
// player is in possession, which changes what taps and swipes mean.
func (c *Controller) Handle(in Info, hasBall bool) []Action {
	switch in.Phase {
	case Began:
		return c.began(in)
	case Moved, Stationary:
		return c.moved(in)
	case Ended:
		return c.ended(in, hasBall)
	case Canceled:
		c.fingers.Del(in.FingerID)
	}
	return nil
}

func (c *Controller) began(in Info) []Action {
	f := &finger{
		startX:   in.X,
		startY:   in.Y,
		lastX:    in.X,
		lastY:    in.Y,
		began:    in.At,
		lastSeen: in.At,
		gesture:  gesture.NewRecorder(c.rec),
	}
	f.gesture.Begin(gesture.Point{X: in.X, Y: in.Y, T: in.At})
	c.fingers.Put(in.FingerID, f)
	return c.sprint(nil, in)
}

// sprint appends a Sprint action while two or more fingers are down.
func (c *Controller) sprint(out []Action, in Info) []Action {
	if c.fingers.Len() < 2 {
		return out
	}
	return append(out, Action{Kind: ActionSprint, Finger: in.FingerID, At: in.At})
}

func (c *Controller) moved(in Info) []Action {
	f, ok := c.fingers.Get(in.FingerID)
	if !ok {
		return c.began(in)
	}
	f.lastX, f.lastY = in.X, in.Y
	f.lastSeen = in.At
	if in.Phase == Stationary {
		return c.sprint(nil, in)
	}
	f.gesture.Add(gesture.Point{X: in.X, Y: in.Y, T: in.At})

	dx, dy := in.X-f.startX, in.Y-f.startY
	if math.Hypot(dx, dy) > c.cfg.SwipeThreshold {
		f.dragging = true
	}
	var out []Action
	if f.dragging {
		ux, uy := unit(dx, dy)
		out = append(out, Action{Kind: ActionMove, DirX: ux, DirY: uy, Power: 1, Finger: in.FingerID, At: in.At})
	}
	return c.sprint(out, in)
}

// ended classifies the gesture first, so a trick performed on the ball
// comes out ahead of the tap or swipe action for the same release.
func (c *Controller) ended(in Info, hasBall bool) []Action {
	f, ok := c.fingers.Get(in.FingerID)
	if !ok {
		return nil
	}
	c.fingers.Del(in.FingerID)

	var out []Action
	res := f.gesture.Finish(gesture.Point{X: in.X, Y: in.Y, T: in.At})
	if res.Trick != gesture.None && hasBall {
		ux, uy := unit(in.X-f.startX, in.Y-f.startY)
		out = append(out, Action{
			Kind:   ActionTrick,
			Trick:  res.Trick,
			Power:  res.Score,
			DirX:   ux,
			DirY:   uy,
			Finger: in.FingerID,
			At:     in.At,
		})
	}
	if act, ok := c.release(f, in, hasBall); ok {
		out = append(out, act)
	}
	return out
}

// release maps a lifted finger to its tap, swipe or charged-shot action.
func (c *Controller) release(f *finger, in Info, hasBall bool) (Action, bool) {
	held := in.At - f.began
	dx, dy := in.X-f.startX, in.Y-f.startY
	ux, uy := unit(dx, dy)
	strength := math.Hypot(dx, dy) / c.cfg.ScreenHeight
	act := Action{Finger: in.FingerID, At: in.At, DirX: ux, DirY: uy}

	switch {
	case !f.dragging && held < c.cfg.TapTime:
		act.DirX, act.DirY = 0, 0
		if hasBall {
			act.Kind = ActionPass
			act.Power = c.cfg.TapPassPower
		} else {
			act.Kind = ActionSwitch
		}

	case f.dragging && hasBall && strength > c.cfg.ShotStrength:
		act.Kind = ActionShoot
		act.Power = clamp01(strength * 2)

	case f.dragging && hasBall:
		act.Kind = ActionPass
		act.Power = math.Max(c.cfg.TapPassPower, clamp01(strength*2))

	case f.dragging:
		act.Kind = ActionMove
		act.Power = clamp01(strength * 2)

	default:
		power := c.Charge(f.began, in.At)
		if !hasBall || power <= c.cfg.MinChargedPower {
			return Action{}, false
		}
		act.Kind = ActionShoot
		act.DirX, act.DirY = 0, 0
		act.Power = power
	}
	return act, true
}

// Charge returns the shot power accumulated by holding from began to now.
func (c *Controller) Charge(began, now time.Duration) float64 {
	if c.cfg.MaxPowerTime <= 0 {
		return 1
	}
	return clamp01(float64(now-began) / float64(c.cfg.MaxPowerTime))
}

// HeldPower reports the charge of the longest-held finger, for the HUD meter.
func (c *Controller) HeldPower(now time.Duration) float64 {
	best := 0.0
	c.fingers.ForEach(func(_ int, f *finger) bool {
		if !f.dragging {
			best = math.Max(best, c.Charge(f.began, now))
		}
		return true
	})
	return best
}

// Cleanup forgets fingers that have not reported for the history TTL,
// which covers platforms that drop the release event.
func (c *Controller) Cleanup(now time.Duration) int {
	var stale []int
	c.fingers.ForEach(func(id int, f *finger) bool {
		if now-f.lastSeen > c.cfg.HistoryTTL {
			stale = append(stale, id)
		}
		return true
	})
	for _, id := range stale {
		c.fingers.Del(id)
	}
	return len(stale)
}
