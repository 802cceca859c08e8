package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portssvc "github.com/SscSPs/counterparty_portal/internal/core/ports/services"
	"github.com/SscSPs/counterparty_portal/internal/core/services"
	"github.com/SscSPs/counterparty_portal/internal/platform/config"
	"github.com/SscSPs/counterparty_portal/internal/repositories/database/pgsql"
	"github.com/SscSPs/counterparty_portal/pkg/database"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/jackc/pgx/v5/pgxpool"
)

// systemActor stamps records created by operator commands.
var systemActor = domain.Actor{UserID: "system", IsStaff: true}

var commands = []subcommands.Command{
	&migrateCmd{},
	&seedCurrenciesCmd{},
	&createSuperuserCmd{},
	&checkDBCmd{},
	&sendRemindersCmd{},
	&balanceSheetCmd{},
}

// env is the wiring shared by commands that talk to the database.
type env struct {
	cfg      *config.Config
	pool     *pgxpool.Pool
	services *portssvc.ServiceContainer
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	// Commands never upload, so no blob store is wired.
	container := services.NewServiceContainer(cfg, pgsql.NewRepositoryProvider(pool), nil, nil, lifecycle.SystemClock{})
	return &env{cfg: cfg, pool: pool, services: container}, nil
}

func (e *env) Close() {
	database.ClosePgxPool(e.pool)
}

func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return subcommands.ExitFailure
}

func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
