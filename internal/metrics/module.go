package metrics

import "go.uber.org/fx"

// Module provides HTTP metrics collection for the fx graph.
var Module = fx.Provide(New)
