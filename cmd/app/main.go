package main

import (
	"guestroom/config"
	"guestroom/di"
	"guestroom/shared/logger"
)

// @title Guest Room Booking API
// @version 1.0
// @description Marketplace backend for booking guest rooms in private houses.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
