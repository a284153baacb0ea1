package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emsp/platform/internal/core/domain"
	"github.com/emsp/platform/internal/core/ports"
)

const collectionMoments = "moments"

// MomentRepository implements ports.MomentRepository using MongoDB.
type MomentRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewMomentRepository(db *mongo.Database) *MomentRepository {
	return &MomentRepository{col: db.Collection(collectionMoments), seq: newSequence(db)}
}

func (r *MomentRepository) Create(ctx context.Context, m *domain.Moment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.seq.next(ctx, collectionMoments)
	if err != nil {
		return err
	}
	m.ID = id
	m.Version = 1

	if _, err := r.col.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("insert moment: %w", err)
	}
	return nil
}

func (r *MomentRepository) FindByID(ctx context.Context, id int64) (*domain.Moment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var m domain.Moment
	if err := r.col.FindOne(ctx, live(bson.M{"_id": id})).Decode(&m); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMomentNotFound
		}
		return nil, fmt.Errorf("find moment: %w", err)
	}
	return &m, nil
}

// List returns one page of moments, newest first. Hidden moments are left out
// unless the filter asks for them.
func (r *MomentRepository) List(ctx context.Context, filter ports.MomentFilter) ([]*domain.Moment, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := momentQuery(filter)

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count moments: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "create_time", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(filter.Page.Skip()).
		SetLimit(filter.Page.Size)

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list moments: %w", err)
	}
	var items []*domain.Moment
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, fmt.Errorf("decode moments: %w", err)
	}
	return items, total, nil
}

func (r *MomentRepository) Delete(ctx context.Context, id, actor int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, live(bson.M{"_id": id}), softDelete(actor))
	if err != nil {
		return fmt.Errorf("delete moment: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMomentNotFound
	}
	return nil
}

// IncrementLikes atomically bumps like_count and returns the new value.
func (r *MomentRepository) IncrementLikes(ctx context.Context, id int64) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().
		SetReturnDocument(options.After).
		SetProjection(bson.M{"like_count": 1})

	var doc struct {
		LikeCount int `bson:"like_count"`
	}
	err := r.col.FindOneAndUpdate(ctx,
		live(bson.M{"_id": id, "status": domain.MomentVisible}),
		bson.M{"$inc": bson.M{"like_count": 1}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return 0, domain.ErrMomentNotFound
		}
		return 0, fmt.Errorf("like moment: %w", err)
	}
	return doc.LikeCount, nil
}

// SetStatus changes the visibility of a live moment.
func (r *MomentRepository) SetStatus(ctx context.Context, id int64, status domain.MomentStatus, actor int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"status":      status,
			"update_time": time.Now().UTC(),
			"update_by":   actor,
		},
		"$inc": bson.M{"version": 1},
	}
	res, err := r.col.UpdateOne(ctx, live(bson.M{"_id": id}), update)
	if err != nil {
		return fmt.Errorf("set moment status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMomentNotFound
	}
	return nil
}

func momentQuery(filter ports.MomentFilter) bson.M {
	query := live(bson.M{})
	if !filter.IncludeHidden {
		query["status"] = domain.MomentVisible
	}
	if filter.UserID != 0 {
		query["user_id"] = filter.UserID
	}
	if filter.Keyword != "" {
		query["content"] = containsIgnoreCase(filter.Keyword)
	}
	return query
}

// EnsureIndexes creates necessary indexes on the moments collection.
func (r *MomentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "create_time", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "create_time", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
