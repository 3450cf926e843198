package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/core/domain"
)

const collectionComments = "comments"

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{col: db.Collection(collectionComments)}
}

type commentDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	PostID    string             `bson:"post_id"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (r *CommentRepository) Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, commentDoc{
		PostID:    comment.PostID,
		Name:      comment.Name,
		Email:     comment.Email,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("insert comment: %w", err)
	}

	out := *comment
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		out.ID = id.Hex()
	}
	return &out, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id string) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc commentDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"post_id": postID})
	if err != nil {
		return nil, fmt.Errorf("comments by post: %w", err)
	}
	defer cur.Close(ctx)

	comments := make([]*domain.Comment, 0)
	for cur.Next(ctx) {
		var doc commentDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		comments = append(comments, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *domain.Comment) (*domain.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(comment.ID)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"name":  comment.Name,
		"email": comment.Email,
		"body":  comment.Body,
	}}

	res, err := r.col.UpdateByID(ctx, oid, update)
	if err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrCommentNotFound
	}

	out := *comment
	return &out, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrCommentNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// EnsureIndexes creates the index serving per-post comment listings.
func (r *CommentRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}},
	})
	return err
}

func (d *commentDoc) toDomain() *domain.Comment {
	return &domain.Comment{
		ID:        d.ID.Hex(),
		PostID:    d.PostID,
		Name:      d.Name,
		Email:     d.Email,
		Body:      d.Body,
		CreatedAt: d.CreatedAt,
	}
}
