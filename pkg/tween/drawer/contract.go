package drawer

import (
	"github.com/askiada/go-tween/pkg/tween/measure"
)

// Drawer is an interface that defines the methods for drawing a program.
type Drawer interface {
	// AddStep adds a step to the program graph.
	AddStep(stepName string) error
	// AddLink adds a link between two consecutive steps.
	AddLink(parentStepName, childStepName string) error
	// SetLabel attaches a label to a step.
	SetLabel(stepName, label string) error
	// AddMeasure decorates the graph with measured durations.
	AddMeasure(measure measure.Measure) error
	// Draw creates a file with the program graph.
	Draw() error
}
