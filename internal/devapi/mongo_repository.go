package devapi

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	countersCollection = "counters"
	mongoTimeout       = 10 * time.Second
)

// MongoConfig captures the minimal settings required to establish a MongoDB
// connection.
type MongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// ConnectMongo establishes a MongoDB client, verifies connectivity with a
// ping, and returns both the client and the selected database. A default
// timeout is applied when none is provided.
func ConnectMongo(ctx context.Context, cfg MongoConfig) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = mongoTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}

// MongoRepository persists dev API users in MongoDB, for runs that should
// survive restarts. Sequential ids come from an atomic counter document.
type MongoRepository struct {
	users    *mongo.Collection
	counters *mongo.Collection
}

func NewMongoRepository(db *mongo.Database) *MongoRepository {
	return &MongoRepository{
		users:    db.Collection(usersCollection),
		counters: db.Collection(countersCollection),
	}
}

func (r *MongoRepository) Create(ctx context.Context, user *User) (*User, error) {
	if _, err := r.ByPhone(ctx, user.PhoneNumber); err == nil {
		return nil, ErrPhoneRegistered
	}

	id, err := r.nextID(ctx)
	if err != nil {
		return nil, err
	}

	stored := *user
	stored.ID = id
	if _, err := r.users.InsertOne(ctx, stored); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &stored, nil
}

func (r *MongoRepository) ByPhone(ctx context.Context, phone string) (*User, error) {
	return r.findOne(ctx, bson.M{"phone_number": phone})
}

func (r *MongoRepository) ByID(ctx context.Context, id int) (*User, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *MongoRepository) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var u User
	if err := r.users.FindOne(ctx, filter).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &u, nil
}

func (r *MongoRepository) nextID(ctx context.Context) (int, error) {
	var counter struct {
		Seq int `bson:"seq"`
	}
	err := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": "user_id"},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&counter)
	if err != nil {
		return 0, fmt.Errorf("next user id: %w", err)
	}
	return counter.Seq, nil
}
