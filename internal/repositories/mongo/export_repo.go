package mongo

import (
	"context"
	"time"

	"github.com/yoockh/hojadevida/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	ExportsCollection = "cv_exports"
	DefaultExportTTL  = 90 * 24 * time.Hour
)

type ExportRepository interface {
	Insert(ctx context.Context, rec *models.ExportRecord) error
	ListByUser(ctx context.Context, userID string, limit int64) ([]models.ExportRecord, error)
}

type exportRepo struct {
	col *mongo.Collection
	ttl time.Duration
}

// NewExportRepo stores export history; entries expire after ttl via the
// expires_at TTL index.
func NewExportRepo(db *mongo.Database, ttl time.Duration) ExportRepository {
	if ttl <= 0 {
		ttl = DefaultExportTTL
	}
	return &exportRepo{col: db.Collection(ExportsCollection), ttl: ttl}
}

func (r *exportRepo) Insert(ctx context.Context, rec *models.ExportRecord) error {
	if rec.GeneratedAt.IsZero() {
		rec.GeneratedAt = time.Now().UTC()
	}
	if rec.ExpiresAt.IsZero() {
		rec.ExpiresAt = rec.GeneratedAt.Add(r.ttl)
	}
	_, err := r.col.InsertOne(ctx, rec)
	return err
}

func (r *exportRepo) ListByUser(ctx context.Context, userID string, limit int64) ([]models.ExportRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "generated_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]models.ExportRecord, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
