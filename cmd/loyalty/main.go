package main

import (
	"fmt"

	"github.com/denmor86/blinds-loyalty/internal/app"
	"github.com/denmor86/blinds-loyalty/internal/config"
	"github.com/denmor86/blinds-loyalty/internal/logger"
)

func main() {
	// загрузка конфига
	config := config.NewConfig()
	// инициализация логгера
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		panic(fmt.Sprintf("can't initialize logger: %s ", err.Error()))
	}
	defer logger.Sync()

	if err := app.Run(config); err != nil {
		logger.Error("Service stopped with error:", err)
	}
}
