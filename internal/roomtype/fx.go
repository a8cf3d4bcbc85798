package roomtype

import (
	"go.uber.org/fx"

	"github.com/lodgewise/lodgewise/internal/roomtype/repository"
	"github.com/lodgewise/lodgewise/internal/roomtype/service"
)

var Module = fx.Module("roomtype.service",
	fx.Provide(repository.Provide),
	fx.Provide(service.New),
)
