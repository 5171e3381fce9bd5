package user

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/jobboard/core"
	"github.com/dmitrymomot/jobboard/pkg/pg"
	"github.com/dmitrymomot/jobboard/pkg/sqlbuild"
)

const returning = `username, first_name, last_name, email, is_admin`

// Storage persists users in PostgreSQL and hashes their passwords with
// bcrypt.
type Storage struct {
	db         pg.DBTX
	bcryptCost int
}

// Option configures a Storage.
type Option func(*Storage)

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Storage) {
		s.bcryptCost = cost
	}
}

// NewStorage creates a user storage on top of a pool or transaction.
func NewStorage(db pg.DBTX, opts ...Option) *Storage {
	s := &Storage{db: db, bcryptCost: bcrypt.DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register creates a user with a hashed password.
func (s *Storage) Register(ctx context.Context, in NewUser) (User, error) {
	hash, err := s.hash(in.Password)
	if err != nil {
		return User{}, err
	}

	row := s.db.QueryRow(ctx,
		`INSERT INTO users (username, password, first_name, last_name, email, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+returning,
		in.Username, hash, in.FirstName, in.LastName, in.Email, in.IsAdmin,
	)

	u, err := scanUser(row)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return User{}, errors.Join(fmt.Errorf("duplicate username %s: %w", in.Username, ErrDuplicateUsername), core.ErrConflict)
		}
		return User{}, pg.MapError(err)
	}
	return u, nil
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords fail the same way.
func (s *Storage) Authenticate(ctx context.Context, username, password string) (User, error) {
	var (
		u    User
		hash string
	)
	err := s.db.QueryRow(ctx,
		`SELECT `+returning+`, password FROM users WHERE username = $1`, username,
	).Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin, &hash)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, errors.Join(ErrInvalidCredentials, core.ErrUnauthenticated)
		}
		return User{}, pg.MapError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return User{}, errors.Join(ErrInvalidCredentials, core.ErrUnauthenticated)
	}
	return u, nil
}

// FindAll returns every user ordered by username.
func (s *Storage) FindAll(ctx context.Context) ([]User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+returning+` FROM users ORDER BY username`)
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	return users, nil
}

// Get returns the user with username together with the ids of the jobs
// they applied for.
func (s *Storage) Get(ctx context.Context, username string) (User, error) {
	u, err := scanUser(s.db.QueryRow(ctx, `SELECT `+returning+` FROM users WHERE username = $1`, username))
	if err != nil {
		return User{}, notFound(err, username)
	}

	rows, err := s.db.Query(ctx, `SELECT job_id FROM applications WHERE username = $1 ORDER BY job_id`, username)
	if err != nil {
		return User{}, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	u.Jobs, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
	if err != nil {
		return User{}, errors.Join(ErrFailedToQuery, pg.MapError(err))
	}
	return u, nil
}

// Update applies a partial update. A password field is hashed before it is
// stored; the username is bound after the SET values.
func (s *Storage) Update(ctx context.Context, username string, fields sqlbuild.Fields) (User, error) {
	fields = slices.Clone(fields)
	if v, ok := fields.Get("password"); ok {
		password, isString := v.(string)
		if !isString {
			return User{}, core.Invalid("password", "must be a string")
		}
		hash, err := s.hash(password)
		if err != nil {
			return User{}, err
		}
		fields = fields.Set("password", hash)
	}

	set, err := sqlbuild.PartialUpdate(fields.Bindable(), UpdateColumns)
	if err != nil {
		return User{}, err
	}

	query := fmt.Sprintf(`UPDATE users SET %s WHERE username = %s RETURNING %s`,
		set.SQL, sqlbuild.Placeholder(set.Next()), returning)

	u, err := scanUser(s.db.QueryRow(ctx, query, set.Bind(username)...))
	if err != nil {
		return User{}, notFound(err, username)
	}
	return u, nil
}

// Delete removes the user with username.
func (s *Storage) Delete(ctx context.Context, username string) error {
	var deleted string
	err := s.db.QueryRow(ctx, `DELETE FROM users WHERE username = $1 RETURNING username`, username).Scan(&deleted)
	if err != nil {
		return notFound(err, username)
	}
	return nil
}

// Apply records that username applied for the job with jobID. A missing
// job or user is reported as not found.
func (s *Storage) Apply(ctx context.Context, username string, jobID int64) error {
	_, err := s.db.Exec(ctx, `INSERT INTO applications (job_id, username) VALUES ($1, $2)`, jobID, username)
	switch {
	case err == nil:
		return nil
	case pg.IsForeignKeyViolationError(err):
		return errors.Join(fmt.Errorf("job %d for %s: %w", jobID, username, ErrNoSuchJob), core.ErrNotFound)
	case pg.IsDuplicateKeyError(err):
		return errors.Join(ErrAlreadyApplied, core.ErrConflict)
	default:
		return pg.MapError(err)
	}
}

func (s *Storage) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		// bcrypt rejects passwords longer than 72 bytes
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", errors.Join(ErrFailedToHash, core.Invalid("password", "must not exceed 72 bytes"))
		}
		return "", errors.Join(ErrFailedToHash, err)
	}
	return string(hash), nil
}

func scanUser(row pgx.Row) (User, error) {
	var u User
	err := row.Scan(&u.Username, &u.FirstName, &u.LastName, &u.Email, &u.IsAdmin)
	return u, err
}

func notFound(err error, username string) error {
	if pg.IsNotFoundError(err) {
		return errors.Join(fmt.Errorf("no user: %s: %w", username, ErrUserNotFound), core.ErrNotFound)
	}
	return pg.MapError(err)
}
