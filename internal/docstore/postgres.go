package docstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dineatlas/directory-backend/internal/config"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// documentRow is the single table backing every collection: one JSONB
// blob per document, addressed by a generated uuid.
type documentRow struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Collection string            `gorm:"size:100;not null;index"`
	Data       datatypes.JSONMap `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
}

func (documentRow) TableName() string { return "documents" }

// Postgres implements Store over JSONB rows. This is the "generic
// document store" backend.
type Postgres struct {
	db *gorm.DB
}

func OpenPostgres(cfg *config.Config) (*Postgres, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) InsertOne(ctx context.Context, collection string, doc Document) (string, error) {
	row := documentRow{
		ID:         uuid.New(),
		Collection: collection,
		Data:       datatypes.JSONMap(doc),
	}
	if err := p.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.ID.String(), nil
}

// scoped applies the collection and equality filter to a query.
func (p *Postgres) scoped(ctx context.Context, collection string, filter Filter) (*gorm.DB, error) {
	q := p.db.WithContext(ctx).Model(&documentRow{}).Where("collection = ?", collection)
	for k, v := range filter {
		if k == "_id" {
			id, err := uuid.Parse(fmt.Sprint(v))
			if err != nil {
				return nil, gorm.ErrRecordNotFound
			}
			q = q.Where("id = ?", id)
			continue
		}
		q = q.Where("data->>? = ?", k, fmt.Sprint(v))
	}
	return q, nil
}

func rowDoc(row documentRow) Document {
	doc := make(Document, len(row.Data)+1)
	for k, v := range row.Data {
		doc[k] = v
	}
	doc["_id"] = row.ID.String()
	return doc
}

func (p *Postgres) Find(ctx context.Context, collection string, filter Filter, opts FindOptions) ([]Document, error) {
	q, err := p.scoped(ctx, collection, filter)
	if err != nil {
		return []Document{}, nil
	}
	if opts.Sort != nil {
		dir := "ASC"
		if opts.Sort.Desc {
			dir = "DESC"
		}
		// Sort fields come from the resource mapping tables, never from
		// raw client input.
		q = q.Order(fmt.Sprintf("data->>'%s' %s", opts.Sort.Field, dir))
	}
	limit := opts.Limit
	if limit <= 0 || limit > MaxFetch {
		limit = MaxFetch
	}

	var rows []documentRow
	if err := q.Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}
	docs := make([]Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, rowDoc(row))
	}
	return docs, nil
}

func (p *Postgres) findRow(ctx context.Context, collection string, filter Filter) (*documentRow, error) {
	q, err := p.scoped(ctx, collection, filter)
	if err != nil {
		return nil, nil
	}
	var row documentRow
	if err := q.First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (p *Postgres) FindOne(ctx context.Context, collection string, filter Filter) (Document, error) {
	row, err := p.findRow(ctx, collection, filter)
	if err != nil || row == nil {
		return nil, err
	}
	return rowDoc(*row), nil
}

func (p *Postgres) ReplaceOne(ctx context.Context, collection string, filter Filter, doc Document, upsert bool) error {
	row, err := p.findRow(ctx, collection, filter)
	if err != nil {
		return err
	}
	if row == nil {
		if !upsert {
			return nil
		}
		_, err := p.InsertOne(ctx, collection, doc)
		return err
	}
	return p.db.WithContext(ctx).Model(row).Update("data", datatypes.JSONMap(doc)).Error
}

func (p *Postgres) UpdateOne(ctx context.Context, collection string, filter Filter, set Document) (bool, error) {
	row, err := p.findRow(ctx, collection, filter)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}
	merged := make(datatypes.JSONMap, len(row.Data)+len(set))
	for k, v := range row.Data {
		merged[k] = v
	}
	for k, v := range set {
		merged[k] = v
	}
	if err := p.db.WithContext(ctx).Model(row).Update("data", merged).Error; err != nil {
		return false, err
	}
	return true, nil
}

func (p *Postgres) DeleteOne(ctx context.Context, collection string, filter Filter) (bool, error) {
	row, err := p.findRow(ctx, collection, filter)
	if err != nil {
		return false, err
	}
	if row == nil {
		return false, nil
	}
	res := p.db.WithContext(ctx).Delete(&documentRow{}, "id = ?", row.ID)
	return res.RowsAffected > 0, res.Error
}

func (p *Postgres) DeleteByID(ctx context.Context, collection, id string) (bool, error) {
	return p.DeleteOne(ctx, collection, Filter{"_id": id})
}

func (p *Postgres) Count(ctx context.Context, collection string) (int64, error) {
	var n int64
	err := p.db.WithContext(ctx).Model(&documentRow{}).
		Where("collection = ?", collection).
		Count(&n).Error
	return n, err
}

func (p *Postgres) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := p.db.WithContext(ctx).Model(&documentRow{}).
		Distinct("collection").
		Order("collection").
		Pluck("collection", &names).Error
	return names, err
}

func (p *Postgres) Ping(context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (p *Postgres) Close() error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (p *Postgres) Backend() string { return "postgres" }
