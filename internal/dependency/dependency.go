package dependency

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/paycort/paycort-admin/internal/entity"
)

//go:generate mockery --case underscore --all --output=./mocks
type (
	ContextStore interface {
		Tx(ctx context.Context, fn func(ctx context.Context, store Repository) error) error
	}

	Waitlist interface {
		// AddEntry stores a signup and returns its backend-assigned id.
		AddEntry(ctx context.Context, e *entity.WaitlistEntryInsert) (string, error)
		// ListByCreatedDesc returns the whole collection ordered newest first.
		ListByCreatedDesc(ctx context.Context) ([]entity.WaitlistEntry, error)
		// EmailExists reports whether the email already signed up.
		EmailExists(ctx context.Context, email string) (bool, error)
		// Version returns a counter bumped on every change of the collection.
		Version(ctx context.Context) (int64, error)
	}

	Users interface {
		CreateUser(ctx context.Context, u *entity.UserInsert) (string, error)
		GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
		UpdateUser(ctx context.Context, id string, u *entity.UserUpdate) error
		DeleteUser(ctx context.Context, id string) error
	}

	Taxes interface {
		CreateTax(ctx context.Context, userId string, t *entity.TaxInsert) (string, error)
		GetUserTaxes(ctx context.Context, userId string) ([]entity.Tax, error)
		UpdateTax(ctx context.Context, id string, t *entity.TaxUpdate) error
		DeleteTax(ctx context.Context, id string) error
	}

	Repository interface {
		ContextStore
		Waitlist() Waitlist
		Users() Users
		Taxes() Taxes
		DB() DB
		Ping(ctx context.Context) error
		Close()
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}

	// FileStore keeps exported documents in object storage.
	FileStore interface {
		UploadExport(ctx context.Context, fileName string, data []byte) (string, error)
		ListExports(ctx context.Context) ([]entity.ExportObject, error)
		DeleteExport(ctx context.Context, fileName string) error
	}

	// Feed delivers full waitlist snapshots to subscribers.
	Feed interface {
		// Subscribe registers fn and returns the deregistration handle. When a
		// snapshot is already loaded fn receives it before Subscribe returns.
		Subscribe(fn func(entity.Snapshot)) (unsubscribe func())
	}

	// Connectivity reports backend reachability transitions.
	Connectivity interface {
		Online() bool
		// Listen registers fn and returns a function removing it.
		Listen(fn func(online bool)) (remove func())
	}
)
