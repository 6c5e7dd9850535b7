package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bibbank/eligibility-service/internal/domain/model"
	pkgpostgres "github.com/bibbank/eligibility-service/pkg/postgres"
)

// ErrNoProducts is returned when the catalog tables hold no active product.
var ErrNoProducts = errors.New("no active loan products")

// CatalogRepo implements port.ReferenceDataSource on PostgreSQL.
type CatalogRepo struct {
	pool *pgxpool.Pool
}

// NewCatalogRepo creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepo(pool *pgxpool.Pool) *CatalogRepo {
	return &CatalogRepo{pool: pool}
}

// Load reads products, rules and settings inside one read-only snapshot.
func (r *CatalogRepo) Load(ctx context.Context) (model.Catalog, model.ValidationRules, error) {
	var (
		catalog model.Catalog
		rules   model.ValidationRules
	)
	err := pkgpostgres.WithTransaction(ctx, r.pool, pkgpostgres.SnapshotOptions, func(tx pgx.Tx) error {
		var err error
		if catalog, err = loadProducts(ctx, tx); err != nil {
			return err
		}
		rules, err = loadRules(ctx, tx)
		return err
	})
	if err != nil {
		return model.Catalog{}, model.ValidationRules{}, err
	}
	return catalog, rules, nil
}

func loadProducts(ctx context.Context, q pkgpostgres.Querier) (model.Catalog, error) {
	query := `
		SELECT id, name, description, min_amount, max_amount,
		       min_term_months, max_term_months, rate_min, rate_max, purposes
		FROM loan_products
		WHERE active
		ORDER BY display_order, id
	`
	rows, err := q.Query(ctx, query)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("query loan products: %w", err)
	}
	defer rows.Close()

	var products []model.LoanProduct
	for rows.Next() {
		var (
			id, name, description string
			minAmount, maxAmount  decimal.Decimal
			rateMin, rateMax      decimal.Decimal
			minTerm, maxTerm      int
			purposes              []string
		)
		if err := rows.Scan(
			&id, &name, &description, &minAmount, &maxAmount,
			&minTerm, &maxTerm, &rateMin, &rateMax, &purposes,
		); err != nil {
			return model.Catalog{}, fmt.Errorf("scan loan product: %w", err)
		}

		p, err := model.NewLoanProduct(
			id, name, description,
			minAmount.InexactFloat64(), maxAmount.InexactFloat64(),
			minTerm, maxTerm,
			rateMin.InexactFloat64(), rateMax.InexactFloat64(),
			purposes,
		)
		if err != nil {
			return model.Catalog{}, fmt.Errorf("loan product %s: %w", id, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return model.Catalog{}, fmt.Errorf("iterate loan products: %w", err)
	}
	if len(products) == 0 {
		return model.Catalog{}, ErrNoProducts
	}
	return model.NewCatalog(products...)
}

func loadRules(ctx context.Context, q pkgpostgres.Querier) (model.ValidationRules, error) {
	var rules model.ValidationRules

	err := q.QueryRow(ctx,
		`SELECT value FROM catalog_settings WHERE key = 'currency_symbol'`,
	).Scan(&rules.CurrencySymbol)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return model.ValidationRules{}, fmt.Errorf("query currency symbol: %w", err)
	}

	rows, err := q.Query(ctx, `
		SELECT field, required, min_value, max_value, options, error_message
		FROM validation_rules
	`)
	if err != nil {
		return model.ValidationRules{}, fmt.Errorf("query validation rules: %w", err)
	}
	defer rows.Close()

	seen := make(map[string]bool, len(model.RuleKeys))
	for rows.Next() {
		var (
			field, message string
			required       bool
			minV, maxV     decimal.NullDecimal
			options        []string
		)
		if err := rows.Scan(&field, &required, &minV, &maxV, &options, &message); err != nil {
			return model.ValidationRules{}, fmt.Errorf("scan validation rule: %w", err)
		}

		rule := model.ValidationRule{
			Required:     required,
			Options:      options,
			ErrorMessage: message,
		}
		if minV.Valid {
			rule.Min = model.Float(minV.Decimal.InexactFloat64())
		}
		if maxV.Valid {
			rule.Max = model.Float(maxV.Decimal.InexactFloat64())
		}
		if err := rules.Set(field, rule); err != nil {
			return model.ValidationRules{}, err
		}
		seen[field] = true
	}
	if err := rows.Err(); err != nil {
		return model.ValidationRules{}, fmt.Errorf("iterate validation rules: %w", err)
	}

	for _, key := range model.RuleKeys {
		if !seen[key] {
			return model.ValidationRules{}, fmt.Errorf("missing validation rule %q", key)
		}
	}
	return rules, nil
}
