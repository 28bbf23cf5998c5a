package content

import (
	"go.uber.org/fx"

	"github.com/AadarshMishraa/ADmyBrand/internal/faq"
)

var Module = fx.Module("content",
	fx.Provide(
		NewSite,
		func(s *Site) *faq.Catalog { return s.Catalog() },
	),
)
