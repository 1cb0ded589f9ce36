package embedding

import "go.uber.org/fx"

// FXModule provides the embedding client to the Fx dependency graph.
var FXModule = fx.Module("embedding",
	fx.Provide(
		NewClient,
		func(c *Client) Embedder { return c },
	),
)
