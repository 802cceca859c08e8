package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/SscSPs/counterparty_portal/internal/core/lifecycle"
	portsrepo "github.com/SscSPs/counterparty_portal/internal/core/ports/repositories"
	"github.com/SscSPs/counterparty_portal/internal/models"
	"github.com/SscSPs/counterparty_portal/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const counterpartyColumns = `counterparty_id, full_company_name, trading_name, company_website, home_regulatory_body,
	is_licensed_by_regulatory_body, is_publicly_listed, publicly_listed_country, is_holding_company,
	external_auditors, registered_address, business_address, contact_telephone, contact_email,
	company_nature_business, domicile, company_incorporation_registration, date_incorporation,
	number_of_employees, type_id, status_id, next_due_diligence_date, description, notes, ` + auditColumns

type PgxCounterpartyRepository struct {
	BaseRepository
}

func newPgxCounterpartyRepository(pool *pgxpool.Pool) portsrepo.CounterpartyRepositoryFacade {
	return &PgxCounterpartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CounterpartyRepositoryFacade = (*PgxCounterpartyRepository)(nil)

func counterpartyArgs(m models.Counterparty) pgx.NamedArgs {
	return pgx.NamedArgs{
		"counterparty_id":                    m.CounterpartyID,
		"full_company_name":                  m.FullCompanyName,
		"trading_name":                       m.TradingName,
		"company_website":                    m.CompanyWebsite,
		"home_regulatory_body":               m.HomeRegulatoryBody,
		"is_licensed_by_regulatory_body":     m.IsLicensedByRegulatoryBody,
		"is_publicly_listed":                 m.IsPubliclyListed,
		"publicly_listed_country":            m.PubliclyListedCountry,
		"is_holding_company":                 m.IsHoldingCompany,
		"external_auditors":                  m.ExternalAuditors,
		"registered_address":                 m.RegisteredAddress,
		"business_address":                   m.BusinessAddress,
		"contact_telephone":                  m.ContactTelephone,
		"contact_email":                      m.ContactEmail,
		"company_nature_business":            m.CompanyNatureBusiness,
		"domicile":                           m.Domicile,
		"company_incorporation_registration": m.CompanyIncorporationRegistration,
		"date_incorporation":                 m.DateIncorporation,
		"number_of_employees":                m.NumberOfEmployees,
		"type_id":                            m.TypeID,
		"status_id":                          m.StatusID,
		"next_due_diligence_date":            lifecycle.Date(m.NextDueDiligenceDate),
		"description":                        m.Description,
		"notes":                              m.Notes,
		"created_at":                         m.CreatedAt,
		"created_by":                         m.CreatedBy,
		"last_updated_at":                    m.LastUpdatedAt,
		"last_updated_by":                    m.LastUpdatedBy,
	}
}

func (r *PgxCounterpartyRepository) SaveCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		INSERT INTO counterparties (` + counterpartyColumns + `)
		VALUES (@counterparty_id, @full_company_name, @trading_name, @company_website, @home_regulatory_body,
			@is_licensed_by_regulatory_body, @is_publicly_listed, @publicly_listed_country, @is_holding_company,
			@external_auditors, @registered_address, @business_address, @contact_telephone, @contact_email,
			@company_nature_business, @domicile, @company_incorporation_registration, @date_incorporation,
			@number_of_employees, @type_id, @status_id, @next_due_diligence_date, @description, @notes,
			@created_at, @created_by, @last_updated_at, @last_updated_by);
	`
	_, err := r.Pool.Exec(ctx, query, counterpartyArgs(m))
	return translateError(err, "counterparty "+m.FullCompanyName)
}

func (r *PgxCounterpartyRepository) UpdateCounterparty(ctx context.Context, counterparty domain.Counterparty) error {
	m := mapping.ToModelCounterparty(counterparty)
	query := `
		UPDATE counterparties SET
			full_company_name = @full_company_name,
			trading_name = @trading_name,
			company_website = @company_website,
			home_regulatory_body = @home_regulatory_body,
			is_licensed_by_regulatory_body = @is_licensed_by_regulatory_body,
			is_publicly_listed = @is_publicly_listed,
			publicly_listed_country = @publicly_listed_country,
			is_holding_company = @is_holding_company,
			external_auditors = @external_auditors,
			registered_address = @registered_address,
			business_address = @business_address,
			contact_telephone = @contact_telephone,
			contact_email = @contact_email,
			company_nature_business = @company_nature_business,
			domicile = @domicile,
			company_incorporation_registration = @company_incorporation_registration,
			date_incorporation = @date_incorporation,
			number_of_employees = @number_of_employees,
			type_id = @type_id,
			status_id = @status_id,
			next_due_diligence_date = @next_due_diligence_date,
			description = @description,
			notes = @notes,
			last_updated_at = @last_updated_at,
			last_updated_by = @last_updated_by
		WHERE counterparty_id = @counterparty_id;
	`
	return r.execOne(ctx, "counterparty "+m.CounterpartyID, query, counterpartyArgs(m))
}

func (r *PgxCounterpartyRepository) FindCounterpartyByID(ctx context.Context, counterpartyID string) (*domain.Counterparty, error) {
	query := `SELECT ` + counterpartyColumns + ` FROM counterparties WHERE counterparty_id = $1;`
	return findOne(ctx, r.Pool, "counterparty "+counterpartyID, mapping.ToDomainCounterparty, query, counterpartyID)
}

// ListCounterparties pages by (full_company_name, counterparty_id).
func (r *PgxCounterpartyRepository) ListCounterparties(ctx context.Context, filter domain.CounterpartyFilter, limit int, afterName, afterID string) ([]domain.Counterparty, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if s := strings.TrimSpace(filter.Search); s != "" {
		p := arg("%" + escapeLike(s) + "%")
		where = append(where, fmt.Sprintf("(full_company_name ILIKE %s OR trading_name ILIKE %s)", p, p))
	}
	if filter.TypeID != "" {
		where = append(where, "type_id = "+arg(filter.TypeID))
	}
	if filter.StatusID != "" {
		where = append(where, "status_id = "+arg(filter.StatusID))
	}
	if filter.DueBefore != nil {
		where = append(where, "next_due_diligence_date <= "+arg(lifecycle.Date(*filter.DueBefore)))
	}
	if afterName != "" || afterID != "" {
		where = append(where, fmt.Sprintf("(full_company_name, counterparty_id) > (%s, %s)", arg(afterName), arg(afterID)))
	}

	query := `SELECT ` + counterpartyColumns + ` FROM counterparties`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY full_company_name, counterparty_id LIMIT " + arg(limit)

	return findMany[models.Counterparty](ctx, r.Pool, "counterparties", mapping.ToDomainCounterpartySlice, query, args...)
}

func (r *PgxCounterpartyRepository) ListDueForRenewal(ctx context.Context, dueBy time.Time, excludeStatusID string) ([]domain.Counterparty, error) {
	query := `
		SELECT ` + counterpartyColumns + `
		FROM counterparties
		WHERE next_due_diligence_date <= $1 AND status_id <> $2
		ORDER BY next_due_diligence_date, full_company_name;
	`
	return findMany[models.Counterparty](ctx, r.Pool, "counterparties due for renewal", mapping.ToDomainCounterpartySlice, query, lifecycle.Date(dueBy), excludeStatusID)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
