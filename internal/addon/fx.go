package addon

import (
	"go.uber.org/fx"

	"github.com/lodgewise/lodgewise/internal/addon/repository"
	"github.com/lodgewise/lodgewise/internal/addon/service"
)

var Module = fx.Module("addon.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
