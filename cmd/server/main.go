package main

import (
	"flag"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"github.com/ijagberg/clichess/internal/controller"
	"github.com/ijagberg/clichess/internal/middleware"
	"github.com/ijagberg/clichess/internal/service"
	"github.com/ijagberg/clichess/internal/store"
)

func main() {
	addr := flag.String("addr", ":3000", "listen address")
	dbPath := flag.String("db", "", "sqlite file for finished games (empty disables archiving)")
	origin := flag.String("origin", "http://localhost:5173", "allowed CORS origin")
	flag.Parse()

	app := fiber.New()

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     *origin,
		AllowHeaders:     "Origin, Content-Type, Accept, X-Player-ID",
		AllowMethods:     "GET, POST, OPTIONS",
		AllowCredentials: true,
	}))

	var results service.ResultSink
	var archive *store.Store
	if *dbPath != "" {
		var err error
		archive, err = store.Open(*dbPath)
		if err != nil {
			log.Fatalf("open archive: %v", err)
		}
		defer archive.Close()
		results = archive
	}

	gameManager := service.NewGameManager(results)
	gameService := service.NewGameService(gameManager)

	gameController := controller.NewGameController(gameService)
	wsController := controller.NewWebSocketController(gameService)

	app.Use("/ws/*", middleware.EnsurePlayerID())
	app.Use("/ws/game/:gameId", middleware.WebSocketUpgrade())
	app.Get("/ws/game/:gameId", websocket.New(wsController.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         []string{*origin},
	}))

	api := app.Group("/api", middleware.EnsurePlayerID())

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/matchmaking/join", gameController.JoinMatchmaking)
	gameRoutes.Get("/matchmaking/wait", gameController.WaitForMatch)
	gameRoutes.Post("/create", gameController.CreateGame)
	gameRoutes.Post("/join/:gameId", gameController.JoinGame)
	gameRoutes.Get("/:gameId", gameController.GetGameState)

	if archive != nil {
		api.Get("/archive/recent", func(c *fiber.Ctx) error {
			results, err := archive.Recent(c.QueryInt("limit", 20))
			if err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to fetch archived games",
				})
			}
			return c.JSON(results)
		})
		api.Get("/archive/:gameId", func(c *fiber.Ctx) error {
			result, err := archive.Result(c.Params("gameId"))
			if err != nil {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "game not found",
				})
			}
			return c.JSON(result)
		})
	}

	log.Fatal(app.Listen(*addr))
}
