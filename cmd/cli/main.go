package main

import (
	"context"
	"fmt"
	"os"

	"github.com/shenikar/sigo_companion/internal/config"
	"github.com/shenikar/sigo_companion/internal/gateway"
	"github.com/shenikar/sigo_companion/internal/repository"
	"github.com/shenikar/sigo_companion/internal/service"
	"github.com/shenikar/sigo_companion/internal/webhook"
	"github.com/shenikar/sigo_companion/pkg/logger"
	"github.com/spf13/cobra"
)

// app - зависимости, общие для всех команд
type app struct {
	session   service.SessionService
	lifecycle service.LifecycleService
}

var current app

var rootCmd = &cobra.Command{
	Use:           "sigo-cli",
	Short:         "Manage your SIGO incidents from the terminal",
	Long:          `Command line companion for the SIGO backend. Credentials are read from SIGO_MATRICULA and SIGO_PASSWORD.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadCLIConfig()
		if err != nil {
			return err
		}
		log := logger.NewCLI(cfg.LogLevel)

		backend, err := gateway.NewClient(cfg.BackendURL, cfg.BackendTimeout, log)
		if err != nil {
			return err
		}
		current = app{
			session:   service.NewSessionService(backend, log),
			lifecycle: service.NewLifecycleService(backend, repository.NewMemoryStatsStore(), webhook.NopPublisher{}, log),
		}
		return login(cmd.Context())
	},
}

// login открывает сессию: cookie живёт только в памяти процесса
func login(ctx context.Context) error {
	matricula, password := os.Getenv("SIGO_MATRICULA"), os.Getenv("SIGO_PASSWORD")
	if matricula == "" || password == "" {
		return fmt.Errorf("SIGO_MATRICULA and SIGO_PASSWORD must be set")
	}
	_, err := current.session.Login(ctx, matricula, password)
	return err
}

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show the logged in employee",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := current.session.Me(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "%s (%s)\n", user.Name, user.Role)
		_, _ = fmt.Fprintf(out, "matricula: %s\n", user.Matricula)
		if user.Email != "" {
			_, _ = fmt.Fprintf(out, "email:     %s\n", user.Email)
		}
		if user.Phone != "" {
			_, _ = fmt.Fprintf(out, "phone:     %s\n", user.Phone)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(incidentsCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
