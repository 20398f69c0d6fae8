// Package http содержит компоненты HTTP сервера.
package http

import (
	"github.com/gofiber/fiber/v3"

	"filmorate/internal/filmorate/adapters/http/admin"
	"filmorate/internal/filmorate/adapters/http/films"
	"filmorate/internal/filmorate/adapters/http/middleware"
	"filmorate/internal/filmorate/adapters/http/users"
	"filmorate/internal/filmorate/ports/api"
)

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	filmService api.FilmUseCase,
	userService api.UserUseCase,
	socialService api.SocialUseCase,
	adminService api.AdminUseCase,
) {
	filmHandler := films.NewHandler(filmService, socialService)
	userHandler := users.NewHandler(userService, socialService)
	adminHandler := admin.NewHandler(adminService)

	// Middleware для всех запросов.
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// Маршруты каталога фильмов.
	filmRoutes := app.Group("/films")
	filmRoutes.Get("/", filmHandler.GetFilms)
	filmRoutes.Post("/", filmHandler.CreateFilm)
	filmRoutes.Put("/", filmHandler.UpdateFilm)
	filmRoutes.Get("/popular", filmHandler.PopularFilms)
	filmRoutes.Put("/:id/like/:userId", filmHandler.LikeFilm)
	filmRoutes.Delete("/:id/like/:userId", filmHandler.UnlikeFilm)

	// Маршруты пользователей и графа дружбы.
	userRoutes := app.Group("/users")
	userRoutes.Get("/", userHandler.GetUsers)
	userRoutes.Post("/", userHandler.CreateUser)
	userRoutes.Put("/", userHandler.UpdateUser)
	userRoutes.Get("/:id/friends", userHandler.GetFriends)
	userRoutes.Get("/:id/friends/common/:otherId", userHandler.GetCommonFriends)
	userRoutes.Put("/:id/friends/:friendId", userHandler.AddFriend)
	userRoutes.Delete("/:id/friends/:friendId", userHandler.RemoveFriend)

	// Административный сброс состояния между тестовыми сценариями.
	app.Delete("/test/clear", adminHandler.Clear)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
