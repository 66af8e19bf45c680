package tokens

// Outline describes the focus outline geometry.
type Outline struct {
	Width  float64 `json:"width"`
	Offset float64 `json:"offset"`
}

const (
	defaultOutlineWidth  = 2
	defaultOutlineOffset = 2
)

// ResolveOutline fills unset outline values with defaults.
func ResolveOutline(width, offset *float64) Outline {
	out := Outline{Width: defaultOutlineWidth, Offset: defaultOutlineOffset}
	if width != nil {
		out.Width = *width
	}
	if offset != nil {
		out.Offset = *offset
	}
	return out
}

// Durations holds the four named animation speeds in milliseconds.
type Durations struct {
	Instant *int `yaml:"instant,omitempty"`
	Fast    *int `yaml:"fast,omitempty"`
	Medium  *int `yaml:"medium,omitempty"`
	Slow    *int `yaml:"slow,omitempty"`
}

// Easings holds the four named easing curves as CSS timing functions.
type Easings struct {
	Standard   string `yaml:"standard,omitempty"`
	Decelerate string `yaml:"decelerate,omitempty"`
	Accelerate string `yaml:"accelerate,omitempty"`
	Overshoot  string `yaml:"overshoot,omitempty"`
}

// Animation is one composite preset.
type Animation struct {
	Duration int    `json:"duration"`
	Easing   string `json:"easing"`
}

// Animation preset names.
const (
	AnimationInstant = "instant"
	AnimationFast    = "fast"
	AnimationMedium  = "medium"
	AnimationSlow    = "slow"
	AnimationEnter   = "enter"
	AnimationExit    = "exit"
	AnimationBouncy  = "bouncy"
	AnimationTooltip = "tooltip"
)

// AnimationNames lists the presets in table order.
var AnimationNames = []string{
	AnimationInstant, AnimationFast, AnimationMedium, AnimationSlow,
	AnimationEnter, AnimationExit, AnimationBouncy, AnimationTooltip,
}

const (
	defaultInstantMs = 50
	defaultFastMs    = 150
	defaultMediumMs  = 250
	defaultSlowMs    = 400

	defaultStandardEasing   = "cubic-bezier(0.2, 0, 0, 1)"
	defaultDecelerateEasing = "cubic-bezier(0, 0, 0, 1)"
	defaultAccelerateEasing = "cubic-bezier(0.3, 0, 1, 1)"
	defaultOvershootEasing  = "cubic-bezier(0.34, 1.56, 0.64, 1)"
)

// ResolveAnimations expands durations and easings into the eight presets.
// Either argument may be nil.
func ResolveAnimations(d *Durations, e *Easings) map[string]Animation {
	instant, fast, medium, slow := defaultInstantMs, defaultFastMs, defaultMediumMs, defaultSlowMs
	if d != nil {
		instant = intOr(d.Instant, instant)
		fast = intOr(d.Fast, fast)
		medium = intOr(d.Medium, medium)
		slow = intOr(d.Slow, slow)
	}

	standard, decelerate, accelerate, overshoot := defaultStandardEasing, defaultDecelerateEasing, defaultAccelerateEasing, defaultOvershootEasing
	if e != nil {
		standard = stringOr(e.Standard, standard)
		decelerate = stringOr(e.Decelerate, decelerate)
		accelerate = stringOr(e.Accelerate, accelerate)
		overshoot = stringOr(e.Overshoot, overshoot)
	}

	return map[string]Animation{
		AnimationInstant: {Duration: instant, Easing: standard},
		AnimationFast:    {Duration: fast, Easing: standard},
		AnimationMedium:  {Duration: medium, Easing: standard},
		AnimationSlow:    {Duration: slow, Easing: standard},
		AnimationEnter:   {Duration: medium, Easing: decelerate},
		AnimationExit:    {Duration: fast, Easing: accelerate},
		AnimationBouncy:  {Duration: slow, Easing: overshoot},
		AnimationTooltip: {Duration: fast, Easing: decelerate},
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func stringOr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
