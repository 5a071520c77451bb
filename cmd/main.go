package main

import (
	"os"

	"go-medical-appointment/cmd/bootstrap"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "medical-appointment",
		Short: "Medical appointment bookkeeping server",
	}

	serve := serveCmd()
	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd())

	// Running the binary without a subcommand starts the server.
	rootCmd.RunE = serve.RunE
	rootCmd.Flags().AddFlagSet(serve.Flags())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	var autoMigrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := bootstrap.New(bootstrap.Options{AutoMigrate: autoMigrate})
			if err != nil {
				logrus.Errorf("Failed to initialize application: %v", err)
				return err
			}
			return app.Run()
		},
	}
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "migrate the schema before serving")

	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bootstrap.Migrate(); err != nil {
				logrus.Errorf("Failed to migrate database: %v", err)
				return err
			}
			return nil
		},
	}
}
