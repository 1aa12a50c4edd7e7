package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/workhub/workhub-api/internal/audit"
	"github.com/workhub/workhub-api/internal/config"
	dbpkg "github.com/workhub/workhub-api/internal/db"
	infraRepo "github.com/workhub/workhub-api/internal/infra/repository"
	"github.com/workhub/workhub-api/internal/passwords"
	ucAccount "github.com/workhub/workhub-api/internal/usecase/account"
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the bootstrap admin if no admin exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, db, err := bootstrap()
		if err != nil {
			return err
		}
		defer dbpkg.Close(db)

		return seedAdmin(cmd.Context(), cfg, logger, db)
	},
}

func init() {
	rootCmd.AddCommand(seedAdminCmd)
}

func seedAdmin(ctx context.Context, cfg *config.Config, logger *logrus.Logger, db *gorm.DB) error {
	uc := ucAccount.NewSeedAdmin(
		infraRepo.NewMarketplaceGormRepository(db),
		passwords.NewHasher(cfg.BcryptCost),
		audit.New(logger),
	)

	created, err := uc.Execute(ctx, ucAccount.AdminSeed{
		Name:     cfg.AdminName,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	})
	if err != nil {
		return err
	}

	if created {
		logger.WithField("email", cfg.AdminEmail).Info("bootstrap admin created")
	} else {
		logger.Info("admin already present, seeding skipped")
	}
	return nil
}
