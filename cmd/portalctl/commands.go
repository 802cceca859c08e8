package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/SscSPs/counterparty_portal/internal/apperrors"
	"github.com/SscSPs/counterparty_portal/internal/dto"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/SscSPs/counterparty_portal/pkg/database"
	"github.com/google/subcommands"
)

type migrateCmd struct {
	down bool
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "apply database migrations" }
func (*migrateCmd) Usage() string {
	return `portalctl migrate [-down]

  Applies every pending migration, or reverts the last one with -down.
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.down, "down", false, "revert the most recent migration")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fail(err)
	}
	direction := database.MigrateUp
	if c.down {
		direction = database.MigrateDown
	}
	result, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction)
	if err != nil {
		return fail(err)
	}
	if !result.Changed {
		fmt.Printf("No change. Schema at version %d.\n", result.Version)
		return subcommands.ExitSuccess
	}
	fmt.Printf("Schema now at version %d (dirty=%v).\n", result.Version, result.Dirty)
	return subcommands.ExitSuccess
}

type seedCurrenciesCmd struct{}

func (*seedCurrenciesCmd) Name() string     { return "seed-currencies" }
func (*seedCurrenciesCmd) Synopsis() string { return "load the reference currencies and 2024 exchange rates" }
func (*seedCurrenciesCmd) Usage() string {
	return `portalctl seed-currencies

  Creates the common currencies and their 2024 USD rates. Existing rows are skipped.
`
}

func (*seedCurrenciesCmd) SetFlags(*flag.FlagSet) {}

func (*seedCurrenciesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	var createdCurrencies, createdRates int
	for _, req := range seedCurrencies {
		_, err := e.services.Currency.CreateCurrency(ctx, req, systemActor)
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			fmt.Printf("Currency already exists: %s\n", req.CurrencyCode)
		case err != nil:
			return fail(err)
		default:
			createdCurrencies++
			fmt.Printf("Created currency: %s - %s\n", req.CurrencyCode, req.Name)
		}
	}
	for _, req := range seedRates() {
		_, err := e.services.ExchangeRate.RegisterRate(ctx, req, systemActor)
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
		case err != nil:
			return fail(err)
		default:
			createdRates++
			fmt.Printf("Created exchange rate: %s = %s USD on %s\n",
				req.CurrencyCode, req.RateToReference.String(), req.EffectiveDate.Format("2006-01-02"))
		}
	}
	fmt.Printf("\nCreated %d new currencies and %d new exchange rates.\n", createdCurrencies, createdRates)
	return subcommands.ExitSuccess
}

type createSuperuserCmd struct {
	username string
	email    string
	password string
}

func (*createSuperuserCmd) Name() string     { return "create-superuser" }
func (*createSuperuserCmd) Synopsis() string { return "create a staff user unless it exists" }
func (*createSuperuserCmd) Usage() string {
	return `portalctl create-superuser [-username admin] [-email e] [-password p]

  Defaults come from PORTAL_SUPERUSER_USERNAME, PORTAL_SUPERUSER_EMAIL and
  PORTAL_SUPERUSER_PASSWORD.
`
}

func (c *createSuperuserCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.username, "username", envOr("PORTAL_SUPERUSER_USERNAME", "admin"), "username")
	f.StringVar(&c.email, "email", os.Getenv("PORTAL_SUPERUSER_EMAIL"), "e-mail address")
	f.StringVar(&c.password, "password", os.Getenv("PORTAL_SUPERUSER_PASSWORD"), "password (at least 8 characters)")
}

func (c *createSuperuserCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.password) < 8 {
		fmt.Fprintln(os.Stderr, "A password of at least 8 characters is required.")
		return subcommands.ExitUsageError
	}
	e, err := openEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	user, err := e.services.User.CreateUser(ctx, dto.CreateUserRequest{
		Username: c.username,
		Name:     c.username,
		Email:    c.email,
		Password: c.password,
		IsStaff:  true,
	})
	if errors.Is(err, apperrors.ErrDuplicate) {
		fmt.Printf("Superuser %q already exists.\n", c.username)
		return subcommands.ExitSuccess
	}
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Superuser %q created (id %s). Change the password after the first login.\n", user.Username, user.UserID)
	return subcommands.ExitSuccess
}

type checkDBCmd struct{}

func (*checkDBCmd) Name() string     { return "check-db" }
func (*checkDBCmd) Synopsis() string { return "verify the database connection and print row counts" }
func (*checkDBCmd) Usage() string {
	return `portalctl check-db
`
}

func (*checkDBCmd) SetFlags(*flag.FlagSet) {}

func (*checkDBCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	fmt.Printf("Production mode: %v\n", e.cfg.IsProduction)
	if err := e.services.Health.Ping(ctx); err != nil {
		return fail(fmt.Errorf("connection check failed: %w", err))
	}
	fmt.Println("Connection OK")

	counts, err := e.services.Health.TableCounts(ctx)
	if err != nil {
		return fail(err)
	}
	tables := make([]string, 0, len(counts))
	for t := range counts {
		tables = append(tables, t)
	}
	sort.Strings(tables)
	for _, t := range tables {
		fmt.Printf("  %-28s %d\n", t, counts[t])
	}
	return subcommands.ExitSuccess
}

type sendRemindersCmd struct{}

func (*sendRemindersCmd) Name() string     { return "send-reminders" }
func (*sendRemindersCmd) Synopsis() string { return "run one reminder sweep" }
func (*sendRemindersCmd) Usage() string {
	return `portalctl send-reminders

  Notifies owners of expiring documents and counterparties due for review.
`
}

func (*sendRemindersCmd) SetFlags(*flag.FlagSet) {}

func (*sendRemindersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	e, err := openEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	report, err := e.services.Reminder.Sweep(ctx)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("Scanned %d documents and %d counterparties.\n", report.DocumentsScanned, report.CounterpartiesScanned)
	for kind, n := range report.Sent {
		fmt.Printf("  %-20s %d\n", kind, n)
	}
	fmt.Printf("Sent %d, skipped %d.\n", report.Total(), report.Skipped)
	return subcommands.ExitSuccess
}

type balanceSheetCmd struct {
	id string
}

func (*balanceSheetCmd) Name() string     { return "balance-sheet" }
func (*balanceSheetCmd) Synopsis() string { return "render a balance sheet summary" }
func (*balanceSheetCmd) Usage() string {
	return `portalctl balance-sheet -id <balance sheet id>
`
}

func (c *balanceSheetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "balance sheet ID")
}

func (c *balanceSheetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "-id is required")
		return subcommands.ExitUsageError
	}
	e, err := openEnv(ctx)
	if err != nil {
		return fail(err)
	}
	defer e.Close()

	summary, err := e.services.BalanceSheet.Summarize(ctx, c.id)
	if err != nil {
		return fail(err)
	}
	printMarkdown(balanceSheetMarkdown(summary))
	return subcommands.ExitSuccess
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
