package main

import (
	"log/slog"
	"os"

	"github.com/JonMunkholm/resourcehub/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		slog.Error("resourcehub failed", "error", err)
		os.Exit(1)
	}
}
