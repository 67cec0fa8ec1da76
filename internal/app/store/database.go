package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ekuzmina/link-shortener/internal/app/config"
	"github.com/ekuzmina/link-shortener/internal/app/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go.uber.org/zap"
)

type Database struct {
	dbpool *pgxpool.Pool
	logger *zap.SugaredLogger
}

func NewDB(ps string, logger *zap.SugaredLogger) *Database {
	dbpool, err := pgxpool.New(context.Background(), ps)
	if err != nil {
		logger.Panic("failed to connect to database", zap.Error(err))
	}

	return &Database{dbpool, logger}
}

func (db *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()
	return db.dbpool.Ping(ctx)
}

const recordColumns = "id, full_url, short_code, user_id, clicks, qr_code"

func scanRecord(row pgx.Row) (*service.ShortURLRecord, error) {
	var rec service.ShortURLRecord
	err := row.Scan(&rec.ID, &rec.FullURL, &rec.ShortCode, &rec.OwnerID, &rec.Clicks, &rec.QRCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrNotFound
		}
		return nil, err
	}
	return &rec, nil
}

const findAllQuery = "SELECT " + recordColumns + " FROM short_urls ORDER BY created_at"

func (db *Database) FindAll(ctx context.Context) ([]service.ShortURLRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	rows, err := db.dbpool.Query(ctx, findAllQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []service.ShortURLRecord
	for rows.Next() {
		var rec service.ShortURLRecord
		if err := rows.Scan(&rec.ID, &rec.FullURL, &rec.ShortCode, &rec.OwnerID, &rec.Clicks, &rec.QRCode); err != nil {
			return nil, err
		}
		results = append(results, rec)
	}
	return results, rows.Err()
}

const findByShortCodeQuery = "SELECT " + recordColumns + " FROM short_urls WHERE short_code = $1"

func (db *Database) FindByShortCode(ctx context.Context, code string) (*service.ShortURLRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	return scanRecord(db.dbpool.QueryRow(ctx, findByShortCodeQuery, code))
}

const findByFullURLAndOwnerQuery = "SELECT " + recordColumns + " FROM short_urls WHERE full_url = $1 AND user_id = $2"

func (db *Database) FindByFullURLAndOwner(ctx context.Context, fullURL, ownerID string) (*service.ShortURLRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	return scanRecord(db.dbpool.QueryRow(ctx, findByFullURLAndOwnerQuery, fullURL, ownerID))
}

const findByIDQuery = "SELECT " + recordColumns + " FROM short_urls WHERE id = $1"

func (db *Database) FindByID(ctx context.Context, id string) (*service.ShortURLRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	return scanRecord(db.dbpool.QueryRow(ctx, findByIDQuery, id))
}

const findByIDAndOwnerQuery = "SELECT " + recordColumns + " FROM short_urls WHERE id = $1 AND user_id = $2"

func (db *Database) FindByIDAndOwner(ctx context.Context, id, ownerID string) (*service.ShortURLRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	return scanRecord(db.dbpool.QueryRow(ctx, findByIDAndOwnerQuery, id, ownerID))
}

const insertQuery = `INSERT INTO short_urls (id, full_url, short_code, user_id, clicks, qr_code)
         VALUES ($1, $2, $3, $4, $5, $6)`

func (db *Database) Insert(ctx context.Context, record service.ShortURLRecord) (service.ShortURLRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	db.logger.Debugw("Inserting record", "shortCode", record.ShortCode, "fullURL", record.FullURL)

	_, err := db.dbpool.Exec(ctx, insertQuery,
		record.ID, record.FullURL, record.ShortCode, record.OwnerID, record.Clicks, record.QRCode)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return service.ShortURLRecord{}, fmt.Errorf("%w: %s", service.ErrConflict, pgErr.ConstraintName)
		}
		db.logger.Errorw("Failed to insert record", "shortCode", record.ShortCode, "err", err)
		return service.ShortURLRecord{}, err
	}

	return record, nil
}

const incrementClicksQuery = "UPDATE short_urls SET clicks = clicks + 1 WHERE id = $1"

// IncrementClicks увеличивает счётчик атомарно на стороне базы,
// поэтому одновременные переходы не теряют обновлений.
func (db *Database) IncrementClicks(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	cmdTag, err := db.dbpool.Exec(ctx, incrementClicksQuery, id)
	if err != nil {
		db.logger.Errorw("Failed to increment clicks", "id", id, "err", err)
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return service.ErrNotFound
	}
	return nil
}

const deleteByIDQuery = "DELETE FROM short_urls WHERE id = $1"

func (db *Database) DeleteByID(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, config.DBTimeout)
	defer cancel()

	_, err := db.dbpool.Exec(ctx, deleteByIDQuery, id)
	if err != nil {
		db.logger.Errorw("Failed to delete record", "id", id, "err", err)
	}
	return err
}
