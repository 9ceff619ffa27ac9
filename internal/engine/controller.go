package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Timer is the handle for a pending scheduled callback.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Production uses time.AfterFunc.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }

// RealScheduler returns the wall-clock scheduler.
func RealScheduler() Scheduler { return realScheduler{} }

// Option configures a Controller.
type Option func(*Controller)

func WithScheduler(s Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithOnChange registers a hook called after every mutation and when a
// transition window closes. It runs without the controller lock held.
func WithOnChange(fn func(Configuration)) Option {
	return func(c *Controller) { c.onChange = fn }
}

// WithTransitionWindow overrides the 1s window. Non-positive values are ignored.
func WithTransitionWindow(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.window = d
		}
	}
}

// WithInitial sets the starting configuration; it is normalized first.
func WithInitial(cfg Configuration) Option {
	return func(c *Controller) { c.cfg = cfg.Normalize() }
}

// Controller owns the panel Configuration. Every field changes through one
// setter; scene changes (environment, time of day, weather) open a
// transition window that re-arms on each new change.
type Controller struct {
	mu       sync.Mutex
	id       uuid.UUID
	cfg      Configuration
	sched    Scheduler
	timer    Timer
	gen      uint64
	window   time.Duration
	closed   bool
	onChange func(Configuration)
	log      *zap.Logger
}

// NewController starts a controller in the default configuration unless
// WithInitial says otherwise.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		id:     uuid.New(),
		cfg:    DefaultConfiguration(),
		sched:  realScheduler{},
		window: TransitionWindow,
		log:    zap.NewNop(),
	}
	for _, o := range opts {
		o(c)
	}
	c.log = c.log.With(zap.String("session", c.id.String()))
	c.log.Debug("controller started",
		zap.String("environment", string(c.cfg.Environment)),
		zap.String("time_of_day", string(c.cfg.TimeOfDay)),
		zap.String("weather", string(c.cfg.WeatherEffect)),
		zap.Int("noise", c.cfg.AmbientNoiseLevel))
	return c
}

// ID identifies this controller instance in logs.
func (c *Controller) ID() uuid.UUID { return c.id }

// Snapshot returns a copy of the current configuration.
func (c *Controller) Snapshot() Configuration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

func (c *Controller) BackgroundDescriptor() string { return BackgroundDescriptor(c.Snapshot()) }

func (c *Controller) VisibleSections() Sections { return VisibleSections(c.Snapshot()) }

// SetEnvironment switches scene. Moving to the library clears the weather.
func (c *Controller) SetEnvironment(env Environment) bool {
	if !env.Validate() {
		c.reject("environment", string(env))
		return false
	}
	return c.mutate("environment", func(cfg *Configuration) bool {
		changed := cfg.Environment != env
		cfg.Environment = env
		if env == EnvLibrary && cfg.WeatherEffect != WeatherClear {
			cfg.WeatherEffect = WeatherClear
			changed = true
		}
		return changed
	}, true)
}

func (c *Controller) SetTimeOfDay(t TimeOfDay) bool {
	if !t.Validate() {
		c.reject("time_of_day", string(t))
		return false
	}
	return c.mutate("time_of_day", func(cfg *Configuration) bool {
		if cfg.TimeOfDay == t {
			return false
		}
		cfg.TimeOfDay = t
		return true
	}, true)
}

// SetWeatherEffect is refused while the library is shown.
func (c *Controller) SetWeatherEffect(w Weather) bool {
	if !w.Validate() {
		c.reject("weather", string(w))
		return false
	}
	return c.mutate("weather", func(cfg *Configuration) bool {
		if !cfg.Environment.Outdoor() || cfg.WeatherEffect == w {
			return false
		}
		cfg.WeatherEffect = w
		return true
	}, true)
}

// SetAmbientNoiseLevel clamps n into [0,100].
func (c *Controller) SetAmbientNoiseLevel(n int) bool {
	n = ClampNoise(n)
	return c.mutate("ambient_noise", func(cfg *Configuration) bool {
		if cfg.AmbientNoiseLevel == n {
			return false
		}
		cfg.AmbientNoiseLevel = n
		return true
	}, false)
}

func (c *Controller) SetShowTips(b bool) bool {
	return c.mutate("show_tips", func(cfg *Configuration) bool {
		if cfg.ShowTips == b {
			return false
		}
		cfg.ShowTips = b
		return true
	}, false)
}

func (c *Controller) SetHasCompanions(b bool) bool {
	return c.mutate("companions", func(cfg *Configuration) bool {
		if cfg.HasCompanions == b {
			return false
		}
		cfg.HasCompanions = b
		return true
	}, false)
}

func (c *Controller) SetVRModeActive(b bool) bool {
	return c.mutate("vr_mode", func(cfg *Configuration) bool {
		if cfg.VRModeActive == b {
			return false
		}
		cfg.VRModeActive = b
		return true
	}, false)
}

// Close cancels any pending transition timer. Setters are ignored afterwards.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.gen++
	c.log.Debug("controller closed")
}

func (c *Controller) mutate(field string, apply func(*Configuration) bool, scene bool) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	if !apply(&c.cfg) {
		c.mu.Unlock()
		return false
	}
	if scene {
		c.armTransition()
	}
	snap := c.cfg
	c.mu.Unlock()

	c.log.Debug("configuration changed", zap.String("field", field), zap.Bool("transitioning", snap.IsTransitioning))
	c.notify(snap)
	return true
}

// armTransition must be called with mu held.
func (c *Controller) armTransition() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.cfg.IsTransitioning = true
	c.timer = c.sched.AfterFunc(c.window, func() { c.endTransition(gen) })
}

func (c *Controller) endTransition(gen uint64) {
	c.mu.Lock()
	// A superseded timer can still fire if Stop lost the race.
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		return
	}
	c.cfg.IsTransitioning = false
	c.timer = nil
	snap := c.cfg
	c.mu.Unlock()

	c.log.Debug("transition finished")
	c.notify(snap)
}

func (c *Controller) notify(snap Configuration) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}

func (c *Controller) reject(field, value string) {
	c.log.Debug("rejected input", zap.String("field", field), zap.String("value", value))
}
