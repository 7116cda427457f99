package handler

import "github.com/google/wire"

var ProviderSet = wire.NewSet(
	wire.Struct(new(Guard), "*"),
	wire.Struct(new(Points), "*"),
	wire.Struct(new(Profile), "*"),
	wire.Struct(new(Follow), "*"),
	wire.Struct(new(Submission), "*"),
	wire.Struct(new(History), "*"),
	wire.Struct(new(Module), "*"),
	wire.Struct(new(Admin), "*"),
	wire.Struct(new(Health), "*"),
)
