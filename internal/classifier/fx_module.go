package classifier

import "go.uber.org/fx"

// FXModule provides the classifier to the Fx dependency graph.
var FXModule = fx.Module("classifier",
	fx.Provide(
		NewWithDI,
		func(c *Classifier) Labeler { return c },
	),
)

// Params groups the dependencies needed to create the classifier.
type Params struct {
	fx.In

	Config Config
	Logger Logger `optional:"true"`
}

// NewWithDI creates the classifier for the Fx graph.
func NewWithDI(params Params) (*Classifier, error) {
	return New(params.Config, params.Logger)
}
