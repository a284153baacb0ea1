package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/emsp/platform/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	col *mongo.Collection
	seq *sequence
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), seq: newSequence(db)}
}

type mongoUser struct {
	ID           int64      `bson:"_id"`
	Username     string     `bson:"username"`
	Email        string     `bson:"email"`
	PasswordHash string     `bson:"password_hash"`
	Phone        string     `bson:"phone,omitempty"`
	Nickname     string     `bson:"nickname,omitempty"`
	Avatar       string     `bson:"avatar,omitempty"`
	Gender       int        `bson:"gender,omitempty"`
	Birthday     *time.Time `bson:"birthday,omitempty"`
	Role         string     `bson:"role"`
	Status       int        `bson:"status"`
	LastLoginAt  *time.Time `bson:"last_login_time,omitempty"`
	LastLoginIP  string     `bson:"last_login_ip,omitempty"`
	CreatedAt    time.Time  `bson:"create_time"`
	UpdatedAt    time.Time  `bson:"update_time"`
	CreatedBy    int64      `bson:"create_by,omitempty"`
	UpdatedBy    int64      `bson:"update_by,omitempty"`
	Deleted      bool       `bson:"deleted"`
	Version      int        `bson:"version"`
}

func toMongoUser(u *domain.User) mongoUser {
	return mongoUser{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Phone:        u.Phone,
		Nickname:     u.Nickname,
		Avatar:       u.Avatar,
		Gender:       u.Gender,
		Birthday:     u.Birthday,
		Role:         u.Role,
		Status:       int(u.Status),
		LastLoginAt:  u.LastLoginAt,
		LastLoginIP:  u.LastLoginIP,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
		CreatedBy:    u.CreatedBy,
		UpdatedBy:    u.UpdatedBy,
		Deleted:      u.Deleted,
		Version:      u.Version,
	}
}

func (mu mongoUser) toDomain() *domain.User {
	return &domain.User{
		Entity: domain.Entity{
			ID:        mu.ID,
			CreatedAt: mu.CreatedAt,
			UpdatedAt: mu.UpdatedAt,
			CreatedBy: mu.CreatedBy,
			UpdatedBy: mu.UpdatedBy,
			Deleted:   mu.Deleted,
			Version:   mu.Version,
		},
		Username:     mu.Username,
		Email:        mu.Email,
		PasswordHash: mu.PasswordHash,
		Phone:        mu.Phone,
		Nickname:     mu.Nickname,
		Avatar:       mu.Avatar,
		Gender:       mu.Gender,
		Birthday:     mu.Birthday,
		Role:         mu.Role,
		Status:       domain.UserStatus(mu.Status),
		LastLoginAt:  mu.LastLoginAt,
		LastLoginIP:  mu.LastLoginIP,
	}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, bson.M{"username": username})
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, bson.M{"email": email})
}

// Save inserts a new user (assigning its id) or updates an existing one.
// Updates are guarded by the stored version.
func (r *UserRepository) Save(ctx context.Context, user *domain.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if user.ID == 0 {
		return r.insert(ctx, user)
	}
	return r.update(ctx, user)
}

func (r *UserRepository) insert(ctx context.Context, user *domain.User) error {
	id, err := r.seq.next(ctx, collectionUsers)
	if err != nil {
		return err
	}
	doc := toMongoUser(user)
	doc.ID = id
	doc.Version = 1

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateUserField(err)
		}
		return fmt.Errorf("insert user: %w", err)
	}

	user.ID = id
	user.Version = doc.Version
	return nil
}

func (r *UserRepository) update(ctx context.Context, user *domain.User) error {
	doc := toMongoUser(user)
	doc.Version = user.Version + 1

	res, err := r.col.ReplaceOne(ctx,
		live(bson.M{"_id": user.ID, "version": user.Version}),
		doc,
	)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return duplicateUserField(err)
		}
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		if _, err := r.FindByID(ctx, user.ID); err != nil {
			return err
		}
		return domain.NewConflict("version")
	}

	user.Version = doc.Version
	return nil
}

// RecordLogin sets last_login_time and, when ip is not empty, last_login_ip.
// The version is neither checked nor bumped.
func (r *UserRepository) RecordLogin(ctx context.Context, id int64, at time.Time, ip string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"last_login_time": at}
	if ip != "" {
		set["last_login_ip"] = ip
	}
	res, err := r.col.UpdateOne(ctx, live(bson.M{"_id": id}), bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.col.FindOne(ctx, live(filter)).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

func (r *UserRepository) exists(ctx context.Context, filter bson.M) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, live(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// EnsureIndexes creates the unique indexes backing username/email uniqueness
// among live users.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	liveOnly := bson.D{{Key: "deleted", Value: false}}
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true).SetPartialFilterExpression(liveOnly),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true).SetPartialFilterExpression(liveOnly),
		},
	}

	if _, err := r.col.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	return nil
}

// duplicateUserField maps a duplicate-key error to the conflicting field using
// the index name reported by the server.
func duplicateUserField(err error) error {
	if strings.Contains(err.Error(), "email_unique") {
		return domain.NewConflict("email")
	}
	return domain.NewConflict("username")
}
