package main

import (
	"meetbrief-api/core/logger"
	"meetbrief-api/core/server"
)

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
