package repository

import (
	"context"

	"github.com/contentforge/content-api/internal/blog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoRepo implements Repository on a MongoDB collection. The unique index
// on blogpath is the source of truth for slug uniqueness: the service's
// PathTaken pre-check gives friendly errors, the index closes the
// check-then-insert race.
type MongoRepo struct {
	col *mongo.Collection
}

func NewMongoRepo(col *mongo.Collection) *MongoRepo {
	idx := mongo.IndexModel{Keys: bson.D{{Key: "blogpath", Value: 1}}, Options: options.Index().SetUnique(true)}
	col.Indexes().CreateOne(context.Background(), idx)
	return &MongoRepo{col: col}
}

func (m *MongoRepo) Insert(ctx context.Context, p *blog.Post) (*blog.Post, error) {
	res, err := m.col.InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicatePath
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}
	return p, nil
}

func (m *MongoRepo) FindAll(ctx context.Context) ([]*blog.Post, error) {
	opts := options.Find().SetSort(bson.D{{Key: "publishedAt", Value: -1}})
	cur, err := m.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []*blog.Post{}
	for cur.Next(ctx) {
		var p blog.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, &p)
	}
	return out, cur.Err()
}

func (m *MongoRepo) FindByID(ctx context.Context, id string) (*blog.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var p blog.Post
	if err := m.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) FindByPath(ctx context.Context, path string) (*blog.Post, error) {
	var p blog.Post
	if err := m.col.FindOne(ctx, bson.M{"blogpath": path}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (m *MongoRepo) PathTaken(ctx context.Context, path, excludeID string) (bool, error) {
	filter := bson.M{"blogpath": path}
	if excludeID != "" {
		oid, err := primitive.ObjectIDFromHex(excludeID)
		if err != nil {
			return false, ErrInvalidID
		}
		filter["_id"] = bson.M{"$ne": oid}
	}
	err := m.col.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (m *MongoRepo) Replace(ctx context.Context, id string, p *blog.Post) (*blog.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	p.ID = oid
	opts := options.FindOneAndReplace().SetReturnDocument(options.After)
	var out blog.Post
	if err := m.col.FindOneAndReplace(ctx, bson.M{"_id": oid}, p, opts).Decode(&out); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicatePath
		}
		return nil, err
	}
	return &out, nil
}

func (m *MongoRepo) DeleteByID(ctx context.Context, id string) (*blog.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	var p blog.Post
	if err := m.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}
