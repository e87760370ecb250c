// Package mongodb provides an implementation of [authres.ErrorContextManager]
// backed by a MongoDB collection.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/luikyv/go-authres/pkg/authres"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ErrorContextManager struct {
	Collection *mongo.Collection
}

func NewErrorContextManager(database *mongo.Database) ErrorContextManager {
	return ErrorContextManager{
		Collection: database.Collection("error_contexts"),
	}
}

func (manager ErrorContextManager) Save(
	ctx context.Context,
	ec authres.ErrorContext,
) (
	string,
	error,
) {
	if ec.ID == "" {
		ec.ID = uuid.NewString()
	}

	shouldUpsert := true
	filter := bson.D{{Key: "_id", Value: ec.ID}}
	if _, err := manager.Collection.ReplaceOne(ctx, filter, ec, &options.ReplaceOptions{Upsert: &shouldUpsert}); err != nil {
		return "", fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	return ec.ID, nil
}

func (manager ErrorContextManager) ErrorContextByID(
	ctx context.Context,
	id string,
) (
	authres.ErrorContext,
	error,
) {
	filter := bson.D{{Key: "_id", Value: id}}
	result := manager.Collection.FindOne(ctx, filter)
	if err := result.Err(); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return authres.ErrorContext{}, errors.New("entity not found")
		}
		return authres.ErrorContext{}, fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	var ec authres.ErrorContext
	if err := result.Decode(&ec); err != nil {
		return authres.ErrorContext{}, fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	return ec, nil
}

func (manager ErrorContextManager) Delete(
	ctx context.Context,
	id string,
) error {
	filter := bson.D{{Key: "_id", Value: id}}
	if _, err := manager.Collection.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("%w: %v", authres.ErrStoreUnavailable, err)
	}

	return nil
}

var _ authres.ErrorContextManager = ErrorContextManager{}
