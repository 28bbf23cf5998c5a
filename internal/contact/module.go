package contact

import "go.uber.org/fx"

var Module = fx.Module("contact",
	fx.Provide(
		NewSubmitter,
		NewRegistry,
		NewNewsletter,
	),
)
