package pricingrule

import (
	"go.uber.org/fx"

	"github.com/lodgewise/lodgewise/internal/pricingrule/repository"
	"github.com/lodgewise/lodgewise/internal/pricingrule/service"
)

var Module = fx.Module("pricingrule.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
