package main

import (
	"fmt"
	"stralshund/dog-api/api"
	"stralshund/dog-api/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	a, err := api.NewRouter()
	if err != nil {
		panic(err)
	}

	// Migrations already ran while the router was wired up
	if config.MigrateOnly() {
		zap.L().Info("Migrations finished, exiting")
		return
	}

	addr := fmt.Sprintf(":%d", viper.GetInt("host.port"))
	zap.L().Info("Server starting", zap.String("addr", addr))

	err = a.Router.Run(addr)
	if err != nil {
		panic(err)
	}
}
