package catalog

import "go.uber.org/fx"

// Module exposes the plan catalog service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
