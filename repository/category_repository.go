package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	ListSubcategories(ctx context.Context, parentID string) ([]models.Category, error)
	GetByID(ctx context.Context, id string) (*models.Category, error)
	Create(ctx context.Context, category *models.Category) error
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	collection *mongo.Collection
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &categoryRepository{collection: db.Collection("categories")}
}

// List returns top-level categories ordered by display_order.
func (r *categoryRepository) List(ctx context.Context) ([]models.Category, error) {
	filter := bson.M{"parent_category_id": bson.M{"$in": bson.A{nil, ""}}}
	return r.find(ctx, filter)
}

// ListSubcategories returns the children of one category, ordered by
// display_order.
func (r *categoryRepository) ListSubcategories(ctx context.Context, parentID string) ([]models.Category, error) {
	return r.find(ctx, bson.M{"parent_category_id": parentID})
}

func (r *categoryRepository) find(ctx context.Context, filter bson.M) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&category)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return &category, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		return fmt.Errorf("update category %s: %w", category.ID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
