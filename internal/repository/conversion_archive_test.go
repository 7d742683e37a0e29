package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/lightvector/ogstosgf/internal/domain/conversion"
	apperrors "github.com/lightvector/ogstosgf/internal/errors"
)

func TestConversionArchive(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("save", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		archive := NewConversionArchive(mt.DB)
		err := archive.Save(context.Background(), conversion.Conversion{
			RunID:       "run",
			GameID:      "42",
			SourcePath:  "/data/42.json",
			SGF:         "(;FF[4])\n",
			Succeeded:   true,
			ConvertedAt: time.Now().UTC(),
		})
		require.NoError(mt, err)
	})

	mt.Run("save error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		archive := NewConversionArchive(mt.DB)
		err := archive.Save(context.Background(), conversion.Conversion{GameID: "42"})
		require.Error(mt, err)
	})

	mt.Run("find", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.conversions", mtest.FirstBatch, bson.D{
			{Key: "run_id", Value: "run"},
			{Key: "game_id", Value: "42"},
			{Key: "sgf", Value: "(;FF[4])\n"},
			{Key: "succeeded", Value: false},
			{Key: "warnings", Value: bson.A{"Unknown winner for game 42"}},
		}))

		archive := NewConversionArchive(mt.DB)
		conv, err := archive.FindByGameID(context.Background(), "42")
		require.NoError(mt, err)
		require.Equal(mt, "42", conv.GameID)
		require.Equal(mt, "(;FF[4])\n", conv.SGF)
		require.False(mt, conv.Succeeded)
		require.Equal(mt, []string{"Unknown winner for game 42"}, conv.Warnings)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.conversions", mtest.FirstBatch))

		archive := NewConversionArchive(mt.DB)
		_, err := archive.FindByGameID(context.Background(), "nope")
		require.ErrorIs(mt, err, apperrors.ErrSGFNotFound)
	})
}
