package pages

import (
	"go.uber.org/fx"
)

// Module provides the landing page
var Module = fx.Module("pages",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
