package tween

import (
	"github.com/fogleman/ease"
	"github.com/pkg/errors"
)

// Ease reshapes normalised progress into a motion curve. An easing must be
// pure and total over [0,1]; overshoot curves (back, elastic) may return
// values outside [0,1].
type Ease func(t float64) float64

// Linear is the default easing.
var Linear Ease = ease.Linear

var easings = map[string]Ease{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-quart":       ease.InQuart,
	"out-quart":      ease.OutQuart,
	"in-out-quart":   ease.InOutQuart,
	"in-quint":       ease.InQuint,
	"out-quint":      ease.OutQuint,
	"in-out-quint":   ease.InOutQuint,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"in-expo":        ease.InExpo,
	"out-expo":       ease.OutExpo,
	"in-out-expo":    ease.InOutExpo,
	"in-circ":        ease.InCirc,
	"out-circ":       ease.OutCirc,
	"in-out-circ":    ease.InOutCirc,
	"in-elastic":     ease.InElastic,
	"out-elastic":    ease.OutElastic,
	"in-out-elastic": ease.InOutElastic,
	"in-back":        ease.InBack,
	"out-back":       ease.OutBack,
	"in-out-back":    ease.InOutBack,
	"in-bounce":      ease.InBounce,
	"out-bounce":     ease.OutBounce,
	"in-out-bounce":  ease.InOutBounce,
}

// ByName returns the easing registered under name.
func ByName(name string) (Ease, error) {
	easing, ok := easings[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEasing, "easing %q", name)
	}

	return easing, nil
}

// EasingNames lists every registered easing name.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}

	return names
}
