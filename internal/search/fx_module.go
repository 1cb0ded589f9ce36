package search

import "go.uber.org/fx"

// FXModule provides the index client to the Fx dependency graph.
var FXModule = fx.Module("search",
	fx.Provide(
		NewClientWithDI,
		func(c *Client) Index { return c },
	),
)

// Params groups the dependencies needed to create the index client.
type Params struct {
	fx.In

	Config Config
	Logger Logger `optional:"true"`
}

// NewClientWithDI creates the index client for the Fx graph.
func NewClientWithDI(params Params) (*Client, error) {
	if params.Logger != nil {
		params.Config.Logger = params.Logger
	}
	return NewClient(params.Config)
}
