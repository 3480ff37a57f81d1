package container

import (
	app "bottle-counter/internal/application"
	"bottle-counter/internal/domain/port"
)

type Container struct {
	UserService  *app.UserService
	CountService *app.CountService
}

func New(userRepo port.UserRepository, detector port.BottleDetector) *Container {
	userService := app.NewUserService(userRepo)
	countService := app.NewCountService(userService, detector)

	return &Container{
		UserService:  userService,
		CountService: countService,
	}
}
