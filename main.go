package main

import (
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/config"
	"github.com/Tofeeq09/m54-Week-8---SQL/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cfg := config.NewConfig()
	entrypoint.Run(cfg, Version)
}
