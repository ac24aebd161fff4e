package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) CreateProvider(ctx context.Context, provider *Provider) error {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.InsertOne(ctx, provider)
	if err != nil {
		return fmt.Errorf("failed to insert provider: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetProviderByID(ctx context.Context, id string) (*Provider, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var provider Provider
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding provider: %v", err)
	}
	return &provider, nil
}

func (mdb *MongodbRepo) GetProviderByUserID(ctx context.Context, userID string) (*Provider, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var provider Provider
	err = col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&provider)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding provider by user: %v", err)
	}
	return &provider, nil
}

func (mdb *MongodbRepo) ListProviders(ctx context.Context, filter ProviderFilter, approvedOnly bool) ([]*Provider, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if approvedOnly {
		query["is_approved"] = true
	}
	if filter.SubServiceID != "" {
		query["sub_service_id"] = filter.SubServiceID
	}
	if filter.CategoryID != "" {
		query["category_id"] = filter.CategoryID
	}
	if filter.City != "" {
		query["city"] = filter.City
	}

	cursor, err := col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding providers: %v", err)
	}
	defer cursor.Close(ctx)

	providers := []*Provider{}
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("error decoding providers: %v", err)
	}
	return providers, nil
}

func (mdb *MongodbRepo) SetOnline(ctx context.Context, userID string, online bool) error {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.UpdateOne(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"is_online": online}})
	if err != nil {
		return fmt.Errorf("failed to update online status: %v", err)
	}
	return nil
}

// ApproveProvider marks a provider both approved and verified. Rejection
// clears only the approval flag. Both return the modified count, so a
// no-op update (already in the requested state) reads the same as a
// missing provider.
func (mdb *MongodbRepo) ApproveProvider(ctx context.Context, id string) (int64, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_approved": true, "is_verified": true}})
	if err != nil {
		return 0, fmt.Errorf("failed to approve provider: %v", err)
	}
	return res.ModifiedCount, nil
}

func (mdb *MongodbRepo) RejectProvider(ctx context.Context, id string) (int64, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"is_approved": false}})
	if err != nil {
		return 0, fmt.Errorf("failed to reject provider: %v", err)
	}
	return res.ModifiedCount, nil
}

func (mdb *MongodbRepo) UpdateProviderRating(ctx context.Context, id string, rating float64, totalReviews int) error {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"rating": rating, "total_reviews": totalReviews}})
	if err != nil {
		return fmt.Errorf("failed to update provider rating: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) CountProviders(ctx context.Context, approved *bool) (int64, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if approved != nil {
		query["is_approved"] = *approved
	}
	return col.CountDocuments(ctx, query)
}

func (mdb *MongodbRepo) CountApprovedByCategory(ctx context.Context, categoryID string) (int64, error) {
	col, err := mdb.GetCollection(ProvidersColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}
	return col.CountDocuments(ctx, bson.M{"category_id": categoryID, "is_approved": true})
}
