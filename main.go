package main

import (
	"legalconnect/core/logger"
	"legalconnect/core/server"
)

// @title LegalConnect API
// @version 1.0
// @description Backend API for LegalConnect - legal case scheduling with Google Calendar sync

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
