package main

import (
	_ "probuilder/docs"
	"probuilder/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PROBUILDER
// @version         1.0
// @description     Quote request site for PROBUILDER (remodeling and painting) with a password-gated admin panel.
// @description     Pages are server-rendered HTML; only the health check answers JSON.

// @contact.name   PROBUILDER
// @contact.email  geral@probuilder.pt

// @host localhost:8080

// @BasePath  /

func main() {
	routes.Run()
}
