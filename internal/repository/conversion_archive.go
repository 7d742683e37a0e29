package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lightvector/ogstosgf/internal/domain/conversion"
	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

const conversionsCollection = "conversions"

// ConversionArchive stores every conversion in MongoDB.
type ConversionArchive struct {
	mongo   *mongo.Database
	timeout time.Duration
}

func NewConversionArchive(db *mongo.Database) *ConversionArchive {
	return &ConversionArchive{
		mongo:   db,
		timeout: 5 * time.Second,
	}
}

func (a *ConversionArchive) Save(ctx context.Context, conv conversion.Conversion) error {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	_, err := a.mongo.Collection(conversionsCollection).InsertOne(ctx, conv)
	if err != nil {
		return fmt.Errorf("insert conversion %s: %w", conv.SourcePath, err)
	}
	return nil
}

// FindByGameID returns the latest archived conversion of the game.
func (a *ConversionArchive) FindByGameID(ctx context.Context, gameID string) (*conversion.Conversion, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "converted_at", Value: -1}})

	var conv conversion.Conversion
	err := a.mongo.Collection(conversionsCollection).FindOne(ctx, bson.M{"game_id": gameID}, opts).Decode(&conv)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrSGFNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find conversion %s: %w", gameID, err)
	}
	return &conv, nil
}
