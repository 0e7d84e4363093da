package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/gabrielsuarezz/Voxtant/internal/logger"
	"github.com/gabrielsuarezz/Voxtant/internal/server"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the voxtant HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "port to listen on (default 8000)")

	viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
}

func serve() {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting voxtant", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	logger.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	eng := buildEngine(ctx, config, logger)

	srvConfig := server.Config{Port: viper.GetInt("server.port")}
	if config.Server != nil {
		if srvConfig.Port == 0 {
			srvConfig.Port = config.Server.Port
		}
		srvConfig.AllowedOrigins = config.Server.AllowedOrigins
	}

	srv := server.New(srvConfig, server.Deps{
		Logger:    logger,
		Grader:    eng.grader,
		Extractor: eng.extractor,
		Planner:   eng.planner,
	})

	if err := srv.Run(ctx); err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
