package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zym-starx/bucolin-translator-website/internal/config"
	"github.com/zym-starx/bucolin-translator-website/internal/state"
	"github.com/zym-starx/bucolin-translator-website/internal/translate"
)

// DoctorOptions holds options for the doctor command.
type DoctorOptions struct {
	Format string // Output format: text, json
}

// NewDoctorCommand creates the doctor command.
func NewDoctorCommand() *cobra.Command {
	opts := &DoctorOptions{}
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the deployment configuration and service health",
		Long: `Verify that the translator is ready to serve.

The doctor command checks:
- Configuration (service selection, admin password, secret key)
- Lexicon (loadable, entry count)
- History store (reachable, migrated)
- Translation API (reachable, when the mock service is disabled)`,
		Example: `  # Run all checks
  bucolin doctor

  # Output as JSON
  bucolin doctor --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "text", "Output format: text, json")

	return cmd
}

// HealthCheck represents a single check result.
type HealthCheck struct {
	Name    string `json:"name"`
	Group   string `json:"group"`
	Status  string `json:"status"` // "pass", "warn", "error"
	Message string `json:"message"`
}

// DoctorOutput is the JSON output for the doctor command.
type DoctorOutput struct {
	Environment string        `json:"environment"`
	Service     string        `json:"service"`
	Checks      []HealthCheck `json:"checks"`
	Healthy     bool          `json:"healthy"`
}

func runDoctor(cmd *cobra.Command, opts *DoctorOptions) error {
	cfg := getConfig()

	out := &DoctorOutput{
		Environment: cfg.Environment,
		Service:     cfg.ServiceLabel(),
	}
	out.Checks = append(out.Checks, checkConfig(cfg)...)
	out.Checks = append(out.Checks, checkLexicon(cfg))
	out.Checks = append(out.Checks, checkHistory(cmd.Context(), cfg))
	out.Checks = append(out.Checks, checkAPI(cmd.Context(), cfg))

	out.Healthy = true
	for _, c := range out.Checks {
		if c.Status == "error" {
			out.Healthy = false
		}
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	renderDoctorText(cmd.OutOrStdout(), out)

	if !out.Healthy {
		return fmt.Errorf("health check failed")
	}
	return nil
}

func checkConfig(cfg *config.Config) []HealthCheck {
	var checks []HealthCheck

	checks = append(checks, HealthCheck{
		Name:    "service selection",
		Group:   "config",
		Status:  "pass",
		Message: cfg.ServiceLabel(),
	})

	if cfg.IsDevelopment() {
		check := HealthCheck{Name: "admin password", Group: "config", Status: "pass", Message: "set"}
		if err := cfg.ValidateAdmin(); err != nil {
			check.Status = "error"
			check.Message = "ADMIN_PASSWORD is not set (copy .env.example to .env)"
		}
		checks = append(checks, check)
	}

	secret := HealthCheck{Name: "secret key", Group: "config", Status: "pass", Message: "set"}
	if cfg.SecretKey == config.DefaultSecretKey {
		secret.Status = "warn"
		secret.Message = "using the default SECRET_KEY; set a real one for production"
	}
	checks = append(checks, secret)

	return checks
}

func checkLexicon(cfg *config.Config) HealthCheck {
	check := HealthCheck{Name: "lexicon", Group: "data"}

	lex, err := loadLexicon(cfg)
	if err != nil {
		check.Status = "error"
		check.Message = err.Error()
		return check
	}
	check.Status = "pass"
	source := "embedded default"
	if lex.Path() != "" {
		source = lex.Path()
	}
	check.Message = fmt.Sprintf("%d entries (%s)", lex.Len(), source)
	return check
}

func checkHistory(ctx context.Context, cfg *config.Config) HealthCheck {
	check := HealthCheck{Name: "history store", Group: "data"}

	h := cfg.GetHistoryConfig()
	store, err := state.Open(ctx, h, config.GetLogger(ctx))
	if err != nil {
		check.Status = "error"
		check.Message = err.Error()
		return check
	}
	defer func() { _ = store.Close() }()

	if err := store.Ping(ctx); err != nil {
		check.Status = "error"
		check.Message = err.Error()
		return check
	}
	check.Status = "pass"
	check.Message = fmt.Sprintf("%s ready", h.Driver)
	return check
}

func checkAPI(ctx context.Context, cfg *config.Config) HealthCheck {
	check := HealthCheck{Name: "translation api", Group: "service"}

	if cfg.UseMockService {
		check.Status = "pass"
		check.Message = "mock service active, no API needed"
		return check
	}

	svc := translate.NewAPIService(cfg.APIURL, cfg.APIKey)
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := svc.Health(ctx); err != nil {
		check.Status = "error"
		check.Message = fmt.Sprintf("%s unreachable: %v", svc.HealthURL(), err)
		return check
	}
	check.Status = "pass"
	check.Message = fmt.Sprintf("%s reachable", svc.HealthURL())
	return check
}

func renderDoctorText(w io.Writer, out *DoctorOutput) {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "BUCOLIN Deployment Health Report")
	_, _ = fmt.Fprintln(w, "================================")
	_, _ = fmt.Fprintf(w, "Environment: %s | Service: %s\n", out.Environment, out.Service)
	_, _ = fmt.Fprintln(w)

	currentGroup := ""
	titleCaser := cases.Title(language.English)
	for _, check := range out.Checks {
		if check.Group != currentGroup {
			currentGroup = check.Group
			_, _ = fmt.Fprintln(w, titleCaser.String(currentGroup))
			_, _ = fmt.Fprintln(w, "----------------------------------------")
		}

		icon := "ok  "
		switch check.Status {
		case "warn":
			icon = "warn"
		case "error":
			icon = "FAIL"
		}
		_, _ = fmt.Fprintf(w, "  [%s] %-18s %s\n", icon, check.Name, check.Message)
	}

	_, _ = fmt.Fprintln(w)
	if out.Healthy {
		_, _ = fmt.Fprintln(w, "All checks passed.")
	} else {
		_, _ = fmt.Fprintln(w, "Some checks failed; fix them before deploying.")
	}
}
