package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"bluw/internal/domain"
	"bluw/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, order *domain.Order) error {
	formats, err := json.Marshal(order.Formats)
	if err != nil {
		return fmt.Errorf("encoding formats: %w", err)
	}

	usage, err := json.Marshal(order.UsageContexts)
	if err != nil {
		return fmt.Errorf("encoding usage contexts: %w", err)
	}

	query := `
		INSERT INTO logo_orders (
			id, company_name, sector, email, phone, website,
			logo_name, style, message, formats,
			preferred_colors, avoided_colors, typography, icons, slogan, examples_url, usage_contexts,
			package, amount, currency, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, query,
		order.ID, order.CompanyName, order.Sector, order.Email, order.Phone, order.Website,
		order.LogoName, order.Style, order.Message, formats,
		order.PreferredColors, order.AvoidedColors, order.Typography, order.Icons,
		order.Slogan, order.ExamplesURL, usage,
		string(order.Package), order.Amount, order.Currency, order.Status,
	)
	if err != nil {
		return errors.NewInternalError("inserting order", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `
		SELECT id, company_name, sector, email, phone, website,
		       logo_name, style, message, formats,
		       preferred_colors, avoided_colors, typography, icons, slogan, examples_url, usage_contexts,
		       package, amount, currency, stripe_session_id, stripe_customer_id, status,
		       created_at, updated_at
		FROM logo_orders
		WHERE id = ?
	`

	var (
		order   domain.Order
		pkg     string
		formats []byte
		usage   []byte
	)

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&order.ID, &order.CompanyName, &order.Sector, &order.Email, &order.Phone, &order.Website,
		&order.LogoName, &order.Style, &order.Message, &formats,
		&order.PreferredColors, &order.AvoidedColors, &order.Typography, &order.Icons,
		&order.Slogan, &order.ExamplesURL, &usage,
		&pkg, &order.Amount, &order.Currency, &order.StripeSessionID, &order.StripeCustomerID, &order.Status,
		&order.CreatedAt, &order.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	order.Package = domain.Package(pkg)

	if len(formats) > 0 {
		if err := json.Unmarshal(formats, &order.Formats); err != nil {
			return nil, fmt.Errorf("decoding formats: %w", err)
		}
	}
	if len(usage) > 0 {
		if err := json.Unmarshal(usage, &order.UsageContexts); err != nil {
			return nil, fmt.Errorf("decoding usage contexts: %w", err)
		}
	}

	return &order, nil
}

// AttachCheckoutSession records the checkout session reference and the
// resolved customer reference on the order after the session is opened.
func (r *MySQLOrderRepository) AttachCheckoutSession(ctx context.Context, id, sessionID, customerID string) error {
	query := `UPDATE logo_orders SET stripe_session_id = ?, stripe_customer_id = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, sessionID, customerID, id)
	if err != nil {
		return fmt.Errorf("attaching checkout session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}

	return nil
}

// MarkPaid transitions the order from pending to paid and records the
// session reference. The pending guard keeps the transition monotonic: a
// paid or expired order is never moved.
func (r *MySQLOrderRepository) MarkPaid(ctx context.Context, id, sessionID string) error {
	query := `UPDATE logo_orders SET status = ?, stripe_session_id = ? WHERE id = ? AND status = ?`

	result, err := r.db.ExecContext(ctx, query, domain.OrderStatusPaid, sessionID, id, domain.OrderStatusPending)
	if err != nil {
		return fmt.Errorf("marking order paid: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewConflictError(fmt.Sprintf("order %s is not pending", id))
	}

	return nil
}

// ExpireStale marks pending orders older than the given age as expired and
// returns how many rows were moved.
func (r *MySQLOrderRepository) ExpireStale(ctx context.Context, maxAge time.Duration) (int64, error) {
	query := `UPDATE logo_orders SET status = ? WHERE status = ? AND created_at < (NOW() - INTERVAL ? SECOND)`

	result, err := r.db.ExecContext(ctx, query, domain.OrderStatusExpired, domain.OrderStatusPending, int64(maxAge.Seconds()))
	if err != nil {
		return 0, fmt.Errorf("expiring stale orders: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("getting rows affected: %w", err)
	}

	return rowsAffected, nil
}
