package handlers

import (
	"taskhub/domain/services"
)

// Services contains the services needed by the handlers.
type Services struct {
	UserService services.UserService
	TaskService services.TaskService
}

// Handlers contains all HTTP handlers.
type Handlers struct {
	UserHandler *UserHandler
	TaskHandler *TaskHandler
}

func NewHandlers(services *Services) *Handlers {
	return &Handlers{
		UserHandler: NewUserHandler(services.UserService),
		TaskHandler: NewTaskHandler(services.TaskService),
	}
}
