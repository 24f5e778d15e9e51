package user

//go:generate mockgen -destination=./repository_mock_test.go -package=user -source=repository.go Repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"listingcrew/internal/domain" // Shared domain models

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrForbidden    = errors.New("not allowed")
	ErrInvalidInput = errors.New("invalid input")
)

// Repository is the interface for all user and broker database operations.
type Repository interface {
	// UpsertUser inserts the user or refreshes its identity fields. The
	// stored payout account, broker and creation time are read back into u.
	UpsertUser(ctx context.Context, u *domain.User) error
	GetUser(ctx context.Context, uid string) (*domain.User, error)
	// GetUsers returns the users that exist among uids, in no particular order.
	GetUsers(ctx context.Context, uids []string) ([]*domain.User, error)
	SetStripeAccount(ctx context.Context, uid, accountID string) error

	// CreateBroker stores b with adminUID as its first admin.
	CreateBroker(ctx context.Context, b *domain.Broker, adminUID string) error
	GetMembership(ctx context.Context, brokerID, uid string) (*domain.BrokerMembership, error)
	// AddMember adds or re-roles uid and points the user at the broker.
	AddMember(ctx context.Context, member domain.BrokerMembership) error
	ListMembers(ctx context.Context, brokerID string) ([]domain.BrokerMembership, error)
}

// postgresRepository is the concrete implementation of the Repository that uses a Postgres database
type postgresRepository struct {
	db *sql.DB // The database connection pool.
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

func (pr *postgresRepository) UpsertUser(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (uid, email, display_name, photo_url, is_vendor)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (uid) DO UPDATE
		SET email = EXCLUDED.email,
		    display_name = EXCLUDED.display_name,
		    photo_url = EXCLUDED.photo_url,
		    is_vendor = EXCLUDED.is_vendor
		RETURNING stripe_account_id, COALESCE(broker_id, ''), created_at
	`

	err := pr.db.QueryRowContext(ctx, query,
		u.UID,
		u.Email,
		u.DisplayName,
		u.PhotoURL,
		u.IsVendor,
	).Scan(&u.StripeAccountID, &u.BrokerID, &u.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not upsert user: %w", err)
	}
	return nil
}

const userColumns = `uid, email, display_name, photo_url, is_vendor, stripe_account_id, COALESCE(broker_id, ''), created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(
		&u.UID,
		&u.Email,
		&u.DisplayName,
		&u.PhotoURL,
		&u.IsVendor,
		&u.StripeAccountID,
		&u.BrokerID,
		&u.CreatedAt,
	)
	return u, err
}

func (pr *postgresRepository) GetUser(ctx context.Context, uid string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = $1`

	u, err := scanUser(pr.db.QueryRowContext(ctx, query, uid))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	return u, nil
}

func (pr *postgresRepository) GetUsers(ctx context.Context, uids []string) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uid = ANY($1)`

	rows, err := pr.db.QueryContext(ctx, query, uids)
	if err != nil {
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read users: %w", err)
	}
	return users, nil
}

func (pr *postgresRepository) SetStripeAccount(ctx context.Context, uid, accountID string) error {
	res, err := pr.db.ExecContext(ctx, `UPDATE users SET stripe_account_id = $2 WHERE uid = $1`, uid, accountID)
	if err != nil {
		return fmt.Errorf("could not update payout account: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (pr *postgresRepository) CreateBroker(ctx context.Context, b *domain.Broker, adminUID string) error {
	b.BrokerID = uuid.NewString()

	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx,
		`INSERT INTO brokers (broker_id, name) VALUES ($1, $2) RETURNING created_at`,
		b.BrokerID, b.Name,
	).Scan(&b.CreatedAt)
	if err != nil {
		return fmt.Errorf("could not insert broker: %w", err)
	}

	if err := addMember(ctx, tx, domain.BrokerMembership{BrokerID: b.BrokerID, UID: adminUID, Role: domain.BrokerAdmin}); err != nil {
		return err
	}
	return tx.Commit()
}

func (pr *postgresRepository) GetMembership(ctx context.Context, brokerID, uid string) (*domain.BrokerMembership, error) {
	m := &domain.BrokerMembership{}
	err := pr.db.QueryRowContext(ctx,
		`SELECT broker_id, uid, role FROM broker_members WHERE broker_id = $1 AND uid = $2`,
		brokerID, uid,
	).Scan(&m.BrokerID, &m.UID, &m.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get membership: %w", err)
	}
	return m, nil
}

func (pr *postgresRepository) AddMember(ctx context.Context, m domain.BrokerMembership) error {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := addMember(ctx, tx, m); err != nil {
		return err
	}
	return tx.Commit()
}

// addMember writes the membership and the user's broker in tx. The user
// must exist.
func addMember(ctx context.Context, tx *sql.Tx, m domain.BrokerMembership) error {
	res, err := tx.ExecContext(ctx, `UPDATE users SET broker_id = $1 WHERE uid = $2`, m.BrokerID, m.UID)
	if err != nil {
		return fmt.Errorf("could not set user broker: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO broker_members (broker_id, uid, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (broker_id, uid) DO UPDATE SET role = EXCLUDED.role
	`, m.BrokerID, m.UID, string(m.Role))
	if err != nil {
		return fmt.Errorf("could not insert broker member: %w", err)
	}
	return nil
}

func (pr *postgresRepository) ListMembers(ctx context.Context, brokerID string) ([]domain.BrokerMembership, error) {
	rows, err := pr.db.QueryContext(ctx,
		`SELECT broker_id, uid, role FROM broker_members WHERE broker_id = $1 ORDER BY role, uid`,
		brokerID,
	)
	if err != nil {
		return nil, fmt.Errorf("could not query broker members: %w", err)
	}
	defer rows.Close()

	members := []domain.BrokerMembership{}
	for rows.Next() {
		var m domain.BrokerMembership
		if err := rows.Scan(&m.BrokerID, &m.UID, &m.Role); err != nil {
			return nil, fmt.Errorf("could not scan broker member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not read broker members: %w", err)
	}
	return members, nil
}
