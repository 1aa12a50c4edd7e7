package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/workhub/workhub-api/internal/config"
	dbpkg "github.com/workhub/workhub-api/internal/db"
	"github.com/workhub/workhub-api/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "workhub",
	Short: "Workhub marketplace API",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using process environment")
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return serveCmd.RunE(cmd, args)
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln(err.Error())
	}
}

// bootstrap loads the configuration, builds the logger, opens the store and
// ensures the schema.
func bootstrap() (*config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	if err := dbpkg.Migrate(db); err != nil {
		_ = dbpkg.Close(db)
		return nil, nil, nil, err
	}

	logger.WithFields(logrus.Fields{
		"host":     cfg.DBHost,
		"port":     cfg.DBPort,
		"database": cfg.DBName,
	}).Info("database ready")

	return cfg, logger, db, nil
}
