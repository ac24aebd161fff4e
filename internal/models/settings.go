package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCommissionPercentage applies when the settings singleton has
// never been written.
const DefaultCommissionPercentage = 15.0

// AdminSettings is a singleton document.
type AdminSettings struct {
	CommissionPercentage float64 `bson:"commission_percentage" json:"commission_percentage"`
}

type SettingsRepo interface {
	GetCommissionPercentage(ctx context.Context) (float64, error)
	SetCommissionPercentage(ctx context.Context, percentage float64) error
}

func (mdb *MongodbRepo) GetCommissionPercentage(ctx context.Context) (float64, error) {
	col, err := mdb.GetCollection(SettingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	var settings AdminSettings
	err = col.FindOne(ctx, bson.M{}).Decode(&settings)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return DefaultCommissionPercentage, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error finding settings: %v", err)
	}
	return settings.CommissionPercentage, nil
}

func (mdb *MongodbRepo) SetCommissionPercentage(ctx context.Context, percentage float64) error {
	col, err := mdb.GetCollection(SettingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Update().SetUpsert(true)
	_, err = col.UpdateOne(ctx, bson.M{}, bson.M{"$set": bson.M{"commission_percentage": percentage}}, opts)
	if err != nil {
		return fmt.Errorf("failed to update settings: %v", err)
	}
	return nil
}
