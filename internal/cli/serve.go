package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/evcraddock/agent-site/internal/config"
	"github.com/evcraddock/agent-site/internal/contact"
	"github.com/evcraddock/agent-site/internal/email"
	"github.com/evcraddock/agent-site/internal/logging"
	"github.com/evcraddock/agent-site/internal/web"
)

func newServeCmd() *cobra.Command {
	var (
		port     int
		envFile  string
		siteFile string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the site API server",
		Long: `Start the HTTP server for listings, content and the contact form.

Leads are emailed through Resend when RESEND_API_KEY is set, through SMTP
when SITE_SMTP_HOST and SITE_SMTP_FROM are set, and otherwise written to
the server log.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile, siteFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			if flagDB != "" {
				cfg.DBPath = flagDB
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", config.DefaultPort, "port to listen on (overrides SITE_PORT)")
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	cmd.Flags().StringVar(&siteFile, "site-file", "", "YAML site identity file")

	return cmd
}

func runServe(ctx context.Context, cfg config.Config) error {
	logging.Setup(cfg.DevMode)

	catalog, err := loadCatalog(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	slog.Info("catalog loaded", "listings", catalog.Len(), "source", catalogSource(cfg.DBPath))

	notifier, err := buildNotifier(cfg, slog.Default())
	if err != nil {
		return err
	}
	if notifier.Method() == contact.MethodLogged {
		slog.Warn("no email provider configured; contact submissions will only be logged")
	}

	svc := contact.NewService(notifier, cfg.Domain())
	srv := web.NewServer(catalog, svc, cfg.BaseURL)
	return srv.ListenAndServe(ctx, cfg.Addr())
}

// buildNotifier picks the lead delivery path once, at startup.
func buildNotifier(cfg config.Config, logger *slog.Logger) (contact.Notifier, error) {
	if cfg.ResendAPIKey != "" {
		rc, err := email.NewResendClient(cfg.ResendAPIKey)
		if err != nil {
			return nil, err
		}
		return contact.NewEmailNotifier(rc, cfg.From, cfg.OwnerEmail), nil
	}
	if cfg.SMTP.IsConfigured() {
		sc, err := email.NewSMTPSender(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return contact.NewEmailNotifier(sc, cfg.SMTP.From, cfg.OwnerEmail), nil
	}
	return contact.NewLogNotifier(logger), nil
}

func catalogSource(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}
