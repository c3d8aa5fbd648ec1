package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/Gunvolt24/csvgate/config"
	"github.com/joho/godotenv"
)

// CLI: предварительная проверка CSV и загрузка на сервер анализа.
func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(2)
	}

	if err := newRootCmd(&cfg).Execute(); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintf(os.Stderr, "csvgate: %v\n", err)
		}
		os.Exit(1)
	}
}
