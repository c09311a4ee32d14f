package main

import (
	"ngo_portal/internal/database"
	"ngo_portal/internal/global"
	"ngo_portal/internal/logger"
)

// main_thread starts the Fiber server on the main goroutine.
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	log := logger.GetAppLogger()
	log.WithField("address", cfg.Address).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

func main() {
	InitGlobal()
	defer database.CloseInstance(global.MongoSession)

	InitRegistry()
	InitDefaultData()

	main_thread()
}
