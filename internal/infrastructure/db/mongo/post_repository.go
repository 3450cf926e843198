package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const collectionPosts = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

type postDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Content     string             `bson:"content"`
	CategoryID  string             `bson:"category_id"`
	ViewCount   int64              `bson:"view_count"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	doc := postDoc{
		Title:       post.Title,
		Description: post.Description,
		Content:     post.Content,
		CategoryID:  post.CategoryID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	out := *post
	out.CreatedAt = now
	out.UpdatedAt = now
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = id.Hex()
	}
	return &out, nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc postDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *PostRepository) List(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.Post, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	dir := 1
	if filter.SortDir == "desc" {
		dir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField(filter.SortBy), Value: dir}}).
		SetSkip(int64(filter.Page) * int64(filter.Size)).
		SetLimit(int64(filter.Size))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", err)
	}
	posts, err := decodePosts(ctx, cur)
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (r *PostRepository) FindByCategory(ctx context.Context, categoryID string) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return nil, fmt.Errorf("posts by category: %w", err)
	}
	return decodePosts(ctx, cur)
}

func (r *PostRepository) Search(ctx context.Context, keyword string) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pattern := primitive.Regex{Pattern: keyword, Options: "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
		bson.M{"content": pattern},
	}}

	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	return decodePosts(ctx, cur)
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	oid, err := primitive.ObjectIDFromHex(post.ID)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{
		"title":       post.Title,
		"description": post.Description,
		"content":     post.Content,
		"category_id": post.CategoryID,
		"updated_at":  now,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}

	out := *post
	out.UpdatedAt = now
	return &out, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) IncrementViews(ctx context.Context, id string, delta int64) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrPostNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, oid, bson.M{"$inc": bson.M{"view_count": delta}})
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes serving category lookups and sorting.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "title", Value: 1}}},
	})
	return err
}

// sortField whitelists the sortable fields; anything else sorts by creation time.
func sortField(name string) string {
	switch name {
	case "title", "description", "created_at", "updated_at", "view_count":
		return name
	default:
		return "created_at"
	}
}

func decodePosts(ctx context.Context, cur *mongo.Cursor) ([]*domain.Post, error) {
	defer cur.Close(ctx)

	posts := make([]*domain.Post, 0)
	for cur.Next(ctx) {
		var doc postDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate posts: %w", err)
	}
	return posts, nil
}

func (d *postDoc) toDomain() *domain.Post {
	return &domain.Post{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Content:     d.Content,
		CategoryID:  d.CategoryID,
		ViewCount:   d.ViewCount,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
