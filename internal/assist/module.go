package assist

import "go.uber.org/fx"

var Module = fx.Module("assist",
	fx.Provide(
		NewGenerator,
		NewAssistant,
	),
)
