package animation

import (
	"sort"

	"github.com/tanema/gween/ease"
)

// The easing used when an animation does not specify one.
const DefaultEasing = "linear"

var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-cubic":     ease.InCubic,
	"out-cubic":    ease.OutCubic,
	"in-out-cubic": ease.InOutCubic,
	"in-sine":      ease.InSine,
	"out-sine":     ease.OutSine,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
}

// Lookup an easing function by name.
func LookupEasing(name string) (ease.TweenFunc, bool) {
	fn, ok := easings[name]
	return fn, ok
}

// Get the sorted list of supported easing names.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
