package main

import (
	"flag"
	"log"
	"strings"

	"menucatalog/config"
	"menucatalog/database"
	"menucatalog/router"

	"github.com/joho/godotenv"
)

// @title Menu Catalog API
// @version 1.0
// @description A restaurant menu catalog API with filtering, sorting, pagination, category reports and AI-generated item descriptions
// @host localhost:3000
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "path to an external config file (optional)")
	flag.StringVar(&configFile, "c", "", "path to an external config file (shorthand)")
	flag.StringVar(&port, "port", "", "listen port, e.g. 3000 or :3000")
	flag.StringVar(&port, "p", "", "listen port (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&showVersion, "v", false, "print version (shorthand)")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("menu catalog v1.0.0")
		return
	}

	// Local .env overrides, if present (MENU_AI_API_KEY etc.)
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Command line port wins over config
	if port != "" {
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
		log.Printf("port set from command line: %s", port)
	}

	config.PrintConfig()

	if err := database.Init(cfg); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	r := router.SetupRouter(cfg)

	log.Printf("menu catalog listening on %s", cfg.Server.Port)
	log.Printf("swagger ui at http://localhost%s/swagger/index.html", cfg.Server.Port)

	if err := r.Run(cfg.Server.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
