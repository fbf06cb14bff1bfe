package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"paypage_ai_server/internal/types"
)

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert writes one row. List and object columns are stored as JSON text.
func (r *Repository) Insert(ctx context.Context, p *types.PersistedPage) error {
	features, err := json.Marshal(nonNil(p.Features))
	if err != nil {
		return err
	}
	trust, err := json.Marshal(nonNil(p.TrustSignals))
	if err != nil {
		return err
	}
	faq := p.FAQ
	if faq == nil {
		faq = []types.FAQItem{}
	}
	faqJSON, err := json.Marshal(faq)
	if err != nil {
		return err
	}
	colors, err := json.Marshal(p.Colors)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO payment_pages (
			id, user_id, title, company_name, business_name, description, price, currency,
			availability, industry, headline, features, call_to_action, trust_signals, faq,
			colors, template, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID, p.UserID, p.Title, nullString(p.CompanyName), p.BusinessName, nullString(p.Description),
		nullString(p.Price), nullString(p.Currency), nullString(p.Availability), nullString(p.Industry),
		nullString(p.Headline), string(features), nullString(p.CallToAction), string(trust), string(faqJSON),
		string(colors), nullString(p.Template), p.CreatedAt,
	)
	return err
}

// ListByUser returns the user's pages, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]types.PersistedPage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, user_id, title, company_name, business_name, description, price, currency,
		       availability, industry, headline, features, call_to_action, trust_signals, faq,
		       colors, template, created_at
		FROM payment_pages
		WHERE user_id = ?
		ORDER BY created_at DESC, rowid DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pages := []types.PersistedPage{}
	for rows.Next() {
		var p types.PersistedPage
		var company, desc, price, currency, availability, industry, headline, cta, template sql.NullString
		var features, trust, faq, colors string
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Title, &company, &p.BusinessName, &desc, &price, &currency,
			&availability, &industry, &headline, &features, &cta, &trust, &faq,
			&colors, &template, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		p.CompanyName = company.String
		p.Description = desc.String
		p.Price = price.String
		p.Currency = currency.String
		p.Availability = availability.String
		p.Industry = industry.String
		p.Headline = headline.String
		p.CallToAction = cta.String
		p.Template = template.String

		if err := json.Unmarshal([]byte(features), &p.Features); err != nil {
			return nil, fmt.Errorf("page %s features: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(trust), &p.TrustSignals); err != nil {
			return nil, fmt.Errorf("page %s trust_signals: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(faq), &p.FAQ); err != nil {
			return nil, fmt.Errorf("page %s faq: %w", p.ID, err)
		}
		if err := json.Unmarshal([]byte(colors), &p.Colors); err != nil {
			return nil, fmt.Errorf("page %s colors: %w", p.ID, err)
		}
		pages = append(pages, p)
	}
	return pages, rows.Err()
}

// Delete removes the page only when it belongs to userID.
func (r *Repository) Delete(ctx context.Context, userID, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM payment_pages WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repository) CountByUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM payment_pages WHERE user_id = ?`, userID).Scan(&n)
	return n, err
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
