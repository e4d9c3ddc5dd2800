package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ThaRealJozef/DimaVelo-sub000/models"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
}

type adminRepository struct {
	collection *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &adminRepository{collection: db.Collection("admins")}
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &admin, nil
}
