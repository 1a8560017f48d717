package main

import (
	"os"

	"Terra3D/internal/engine"
)

func main() {
	terra := engine.New()
	if err := terra.Run(200, 100); err != nil {
		os.Exit(1)
	}
}
