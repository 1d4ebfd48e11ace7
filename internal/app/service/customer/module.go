package customer

import "go.uber.org/fx"

// Module exposes the customer directory service via Fx.
var Module = fx.Options(
	fx.Provide(NewService),
)
