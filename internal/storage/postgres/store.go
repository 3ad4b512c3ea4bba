// Package postgres implements the domain repositories on PostgreSQL through
// a pgx connection pool.
package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kaminoclone/cobranca/internal/domain"
)

const uniqueViolation = "23505"

const (
	sequenceCharge         = "charge"
	sequenceServiceInvoice = "service_invoice"
)

var _ domain.Repository = (*Store)(nil)

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

const customerColumns = `id, tenant_id, person_type, document, name, trade_name, email, phone,
	address, city, state, zip_code, tax_category, status, notes, created_at, updated_at`

func scanCustomer(row rowScanner) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.TenantID, &c.PersonType, &c.Document, &c.Name, &c.TradeName, &c.Email, &c.Phone,
		&c.Address, &c.City, &c.State, &c.ZipCode, &c.TaxCategory, &c.Status, &c.Notes, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Store) findCustomer(ctx context.Context, where string, args ...any) (*domain.Customer, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE `+where, args...)
	c, err := scanCustomer(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	return c, nil
}

func (s *Store) FindCustomerByDocument(ctx context.Context, tenantID, document string) (*domain.Customer, error) {
	return s.findCustomer(ctx, `tenant_id = $1 AND document = $2`, tenantID, document)
}

func (s *Store) FindCustomerByID(ctx context.Context, tenantID, id string) (*domain.Customer, error) {
	return s.findCustomer(ctx, `tenant_id = $1 AND id = $2`, tenantID, id)
}

func (s *Store) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO customers (`+customerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		c.ID, c.TenantID, c.PersonType, c.Document, c.Name, c.TradeName, c.Email, c.Phone,
		c.Address, c.City, c.State, c.ZipCode, c.TaxCategory, c.Status, c.Notes, c.CreatedAt, c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("customer %s: %w", c.Document, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}
	return nil
}

func (s *Store) UpdateCustomer(ctx context.Context, c *domain.Customer) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE customers SET
			person_type = $3, name = $4, trade_name = $5, email = $6, phone = $7, address = $8,
			city = $9, state = $10, zip_code = $11, tax_category = $12, status = $13, notes = $14,
			updated_at = $15
		WHERE tenant_id = $1 AND id = $2`,
		c.TenantID, c.ID,
		c.PersonType, c.Name, c.TradeName, c.Email, c.Phone, c.Address,
		c.City, c.State, c.ZipCode, c.TaxCategory, c.Status, c.Notes,
		c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}

func (s *Store) ListCustomers(ctx context.Context, tenantID string) ([]domain.Customer, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE tenant_id = $1 ORDER BY name, id`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	out := []domain.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

const chargeColumns = `id, tenant_id, customer_id, customer_document, our_number, external_reference, kind,
	gross_amount, amount, retention, due_date, description, status, interest_rate, fine_rate,
	digitable_line, barcode, pix_txid, pix_payload, paid_amount, paid_at, created_at, updated_at`

func scanCharge(row rowScanner) (*domain.Charge, error) {
	var c domain.Charge
	var retention []byte
	err := row.Scan(
		&c.ID, &c.TenantID, &c.CustomerID, &c.CustomerDocument, &c.OurNumber, &c.ExternalReference, &c.Kind,
		&c.GrossAmount, &c.Amount, &retention, &c.DueDate, &c.Description, &c.Status, &c.InterestRate, &c.FineRate,
		&c.DigitableLine, &c.Barcode, &c.PixTxID, &c.PixPayload, &c.PaidAmount, &c.PaidAt, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if c.Retention, err = decodeBreakdown(retention); err != nil {
		return nil, err
	}
	return &c, nil
}

func encodeBreakdown(b *domain.RetentionBreakdown) ([]byte, error) {
	if b == nil {
		return nil, nil
	}
	return json.Marshal(b)
}

func decodeBreakdown(raw []byte) (*domain.RetentionBreakdown, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var b domain.RetentionBreakdown
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("failed to decode retention breakdown: %w", err)
	}
	return &b, nil
}

func (s *Store) FindChargeByID(ctx context.Context, tenantID, id string) (*domain.Charge, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+chargeColumns+` FROM charges WHERE tenant_id = $1 AND id = $2`, tenantID, id)

	c, err := scanCharge(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChargeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find charge: %w", err)
	}
	return c, nil
}

func (s *Store) FindChargeByReference(ctx context.Context, tenantID, customerDocument, externalReference string) (*domain.Charge, error) {
	if externalReference == "" {
		return nil, domain.ErrChargeNotFound
	}
	row := s.pool.QueryRow(ctx,
		`SELECT `+chargeColumns+` FROM charges
		WHERE tenant_id = $1 AND customer_document = $2 AND external_reference = $3`,
		tenantID, customerDocument, externalReference)

	c, err := scanCharge(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrChargeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find charge: %w", err)
	}
	return c, nil
}

func (s *Store) CreateCharge(ctx context.Context, c *domain.Charge) error {
	retention, err := encodeBreakdown(c.Retention)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO charges (`+chargeColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		c.ID, c.TenantID, c.CustomerID, c.CustomerDocument, c.OurNumber, c.ExternalReference, c.Kind,
		c.GrossAmount, c.Amount, retention, c.DueDate, c.Description, c.Status, c.InterestRate, c.FineRate,
		c.DigitableLine, c.Barcode, c.PixTxID, c.PixPayload, c.PaidAmount, c.PaidAt, c.CreatedAt, c.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("charge %s: %w", c.ExternalReference, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert charge: %w", err)
	}
	return nil
}

func (s *Store) UpdateCharge(ctx context.Context, c *domain.Charge) error {
	retention, err := encodeBreakdown(c.Retention)
	if err != nil {
		return err
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE charges SET
			kind = $3, gross_amount = $4, amount = $5, retention = $6, due_date = $7, description = $8,
			status = $9, interest_rate = $10, fine_rate = $11, digitable_line = $12, barcode = $13,
			pix_txid = $14, pix_payload = $15, paid_amount = $16, paid_at = $17, updated_at = $18
		WHERE tenant_id = $1 AND id = $2`,
		c.TenantID, c.ID,
		c.Kind, c.GrossAmount, c.Amount, retention, c.DueDate, c.Description,
		c.Status, c.InterestRate, c.FineRate, c.DigitableLine, c.Barcode,
		c.PixTxID, c.PixPayload, c.PaidAmount, c.PaidAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update charge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrChargeNotFound
	}
	return nil
}

func (s *Store) ListCharges(ctx context.Context, tenantID string) ([]domain.Charge, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+chargeColumns+` FROM charges WHERE tenant_id = $1 ORDER BY created_at, our_number`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list charges: %w", err)
	}
	return collectCharges(rows)
}

// MarkChargesOverdue flips the rows in one statement so a concurrent sweep
// cannot report the same charge twice.
func (s *Store) MarkChargesOverdue(ctx context.Context, dueBefore, updatedAt time.Time) ([]domain.Charge, error) {
	rows, err := s.pool.Query(ctx,
		`UPDATE charges SET status = $1, updated_at = $2
		WHERE status = $3 AND due_date < $4
		RETURNING `+chargeColumns,
		domain.ChargeStatusOverdue, updatedAt, domain.ChargeStatusPending, dueBefore)
	if err != nil {
		return nil, fmt.Errorf("failed to mark charges overdue: %w", err)
	}
	return collectCharges(rows)
}

func collectCharges(rows pgx.Rows) ([]domain.Charge, error) {
	defer rows.Close()

	out := []domain.Charge{}
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan charge: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (s *Store) nextSequence(ctx context.Context, tenantID, name string) (int64, error) {
	var value int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO sequences (tenant_id, name, value) VALUES ($1, $2, 1)
		ON CONFLICT (tenant_id, name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`,
		tenantID, name).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to advance %s sequence: %w", name, err)
	}
	return value, nil
}

func (s *Store) NextChargeSequence(ctx context.Context, tenantID string) (int64, error) {
	return s.nextSequence(ctx, tenantID, sequenceCharge)
}

const categoryColumns = `tenant_id, code, name, pis, cofins, csll, ir, iss, version, effective_from, created_at`

func scanCategory(row rowScanner) (*domain.TaxCategory, error) {
	var c domain.TaxCategory
	err := row.Scan(
		&c.TenantID, &c.Code, &c.Name,
		&c.Rates.PIS, &c.Rates.COFINS, &c.Rates.CSLL, &c.Rates.IR, &c.Rates.ISS,
		&c.Version, &c.EffectiveFrom, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetActiveTaxCategory prefers the tenant's own versions over the global
// defaults, and the newest version already in effect within each.
func (s *Store) GetActiveTaxCategory(ctx context.Context, tenantID string, code domain.TaxCategoryCode) (*domain.TaxCategory, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM tax_categories
		WHERE code = $2 AND tenant_id IN ($1, '') AND effective_from <= NOW()
		ORDER BY (tenant_id = $1) DESC, version DESC
		LIMIT 1`,
		tenantID, code)

	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownTaxCategory, code)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tax category: %w", err)
	}
	return c, nil
}

func (s *Store) ListActiveTaxCategories(ctx context.Context, tenantID string) ([]domain.TaxCategory, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT DISTINCT ON (code) `+categoryColumns+` FROM tax_categories
		WHERE tenant_id IN ($1, '') AND effective_from <= NOW()
		ORDER BY code, (tenant_id = $1) DESC, version DESC`,
		tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax categories: %w", err)
	}
	defer rows.Close()

	out := []domain.TaxCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tax category: %w", err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// SaveTaxCategoryVersion numbers the version after every existing version of
// the code visible to the tenant, global defaults included.
func (s *Store) SaveTaxCategoryVersion(ctx context.Context, category *domain.TaxCategory) error {
	if category.CreatedAt.IsZero() {
		category.CreatedAt = time.Now()
	}
	if category.EffectiveFrom.IsZero() {
		category.EffectiveFrom = category.CreatedAt
	}

	return pgx.BeginFunc(ctx, s.pool, func(tx pgx.Tx) error {
		// Serialises concurrent publications of the same code.
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::text || '/' || $2::text))`, category.TenantID, category.Code); err != nil {
			return fmt.Errorf("failed to lock tax category: %w", err)
		}

		err := tx.QueryRow(ctx,
			`SELECT COALESCE(MAX(version), 0) + 1 FROM tax_categories
			WHERE code = $2 AND tenant_id IN ($1, '')`,
			category.TenantID, category.Code).Scan(&category.Version)
		if err != nil {
			return fmt.Errorf("failed to allocate tax category version: %w", err)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO tax_categories (`+categoryColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			category.TenantID, category.Code, category.Name,
			category.Rates.PIS, category.Rates.COFINS, category.Rates.CSLL, category.Rates.IR, category.Rates.ISS,
			category.Version, category.EffectiveFrom, category.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to insert tax category: %w", err)
		}
		return nil
	})
}

func (s *Store) CreateServiceInvoice(ctx context.Context, inv *domain.ServiceInvoice) error {
	retention, err := encodeBreakdown(inv.Retention)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO service_invoices
			(id, tenant_id, customer_id, number, service, gross_amount, retention, net_amount, charge_id, issued_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		inv.ID, inv.TenantID, inv.CustomerID, inv.Number, inv.Service,
		inv.GrossAmount, retention, inv.NetAmount, inv.ChargeID, inv.IssuedAt,
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("service invoice %s: %w", inv.Number, domain.ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("failed to insert service invoice: %w", err)
	}
	return nil
}

func (s *Store) ListServiceInvoices(ctx context.Context, tenantID string) ([]domain.ServiceInvoice, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, tenant_id, customer_id, number, service, gross_amount, retention, net_amount, charge_id, issued_at
		FROM service_invoices WHERE tenant_id = $1 ORDER BY number`, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list service invoices: %w", err)
	}
	defer rows.Close()

	out := []domain.ServiceInvoice{}
	for rows.Next() {
		var inv domain.ServiceInvoice
		var retention []byte
		err := rows.Scan(&inv.ID, &inv.TenantID, &inv.CustomerID, &inv.Number, &inv.Service,
			&inv.GrossAmount, &retention, &inv.NetAmount, &inv.ChargeID, &inv.IssuedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service invoice: %w", err)
		}
		if inv.Retention, err = decodeBreakdown(retention); err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (s *Store) NextServiceInvoiceNumber(ctx context.Context, tenantID string) (int64, error) {
	return s.nextSequence(ctx, tenantID, sequenceServiceInvoice)
}

func encodeSnapshot(data map[string]interface{}) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return json.Marshal(data)
}

func (s *Store) AppendAudit(ctx context.Context, entry domain.AuditEntry) error {
	oldData, err := encodeSnapshot(entry.OldData)
	if err != nil {
		return fmt.Errorf("failed to encode audit old data: %w", err)
	}
	newData, err := encodeSnapshot(entry.NewData)
	if err != nil {
		return fmt.Errorf("failed to encode audit new data: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO audit_entries (id, tenant_id, action, entity, entity_id, old_data, new_data, import, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO NOTHING`,
		entry.ID, entry.TenantID, entry.Action, entry.Entity, entry.EntityID, oldData, newData, entry.Import, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}
	return nil
}

func (s *Store) ListAudit(ctx context.Context, tenantID string, limit int) ([]domain.AuditEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, tenant_id, action, entity, entity_id, old_data, new_data, import, created_at
		FROM audit_entries WHERE tenant_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	out := []domain.AuditEntry{}
	for rows.Next() {
		var e domain.AuditEntry
		var oldData, newData []byte
		if err := rows.Scan(&e.ID, &e.TenantID, &e.Action, &e.Entity, &e.EntityID, &oldData, &newData, &e.Import, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		if len(oldData) > 0 {
			if err := json.Unmarshal(oldData, &e.OldData); err != nil {
				return nil, fmt.Errorf("failed to decode audit old data: %w", err)
			}
		}
		if len(newData) > 0 {
			if err := json.Unmarshal(newData, &e.NewData); err != nil {
				return nil, fmt.Errorf("failed to decode audit new data: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = $1)`, eventID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}
	return exists, nil
}

func (s *Store) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO processed_events (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`, eventID)
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}
