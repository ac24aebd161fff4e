package models

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (mdb *MongodbRepo) ListCategories(ctx context.Context) ([]*ServiceCategory, error) {
	col, err := mdb.GetCollection(CategoriesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error finding categories: %v", err)
	}
	defer cursor.Close(ctx)

	categories := []*ServiceCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %v", err)
	}
	return categories, nil
}

func (mdb *MongodbRepo) GetCategoryByID(ctx context.Context, id string) (*ServiceCategory, error) {
	col, err := mdb.GetCollection(CategoriesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var category ServiceCategory
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&category)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding category: %v", err)
	}
	return &category, nil
}

// ListSubServices returns all sub-services, or only those under the given
// category when categoryID is non-empty.
func (mdb *MongodbRepo) ListSubServices(ctx context.Context, categoryID string) ([]*SubService, error) {
	col, err := mdb.GetCollection(SubServicesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if categoryID != "" {
		query["category_id"] = categoryID
	}

	cursor, err := col.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error finding sub-services: %v", err)
	}
	defer cursor.Close(ctx)

	subServices := []*SubService{}
	if err := cursor.All(ctx, &subServices); err != nil {
		return nil, fmt.Errorf("error decoding sub-services: %v", err)
	}
	return subServices, nil
}

func (mdb *MongodbRepo) GetSubServiceByID(ctx context.Context, id string) (*SubService, error) {
	col, err := mdb.GetCollection(SubServicesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var subService SubService
	err = col.FindOne(ctx, bson.M{"id": id}).Decode(&subService)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding sub-service: %v", err)
	}
	return &subService, nil
}

// searchFilter matches the query case-insensitively against name or
// description. The query is quoted so user input is a literal substring,
// not a pattern.
func searchFilter(query string) bson.M {
	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"name": pattern},
		bson.M{"description": pattern},
	}}
}

func (mdb *MongodbRepo) SearchCategories(ctx context.Context, query string) ([]*ServiceCategory, error) {
	col, err := mdb.GetCollection(CategoriesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, searchFilter(query))
	if err != nil {
		return nil, fmt.Errorf("error searching categories: %v", err)
	}
	defer cursor.Close(ctx)

	categories := []*ServiceCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("error decoding categories: %v", err)
	}
	return categories, nil
}

func (mdb *MongodbRepo) SearchSubServices(ctx context.Context, query string) ([]*SubService, error) {
	col, err := mdb.GetCollection(SubServicesColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	cursor, err := col.Find(ctx, searchFilter(query))
	if err != nil {
		return nil, fmt.Errorf("error searching sub-services: %v", err)
	}
	defer cursor.Close(ctx)

	subServices := []*SubService{}
	if err := cursor.All(ctx, &subServices); err != nil {
		return nil, fmt.Errorf("error decoding sub-services: %v", err)
	}
	return subServices, nil
}

func (mdb *MongodbRepo) InsertCategory(ctx context.Context, category *ServiceCategory) error {
	col, err := mdb.GetCollection(CategoriesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.InsertOne(ctx, category)
	if err != nil {
		return fmt.Errorf("failed to insert category: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) InsertSubService(ctx context.Context, subService *SubService) error {
	col, err := mdb.GetCollection(SubServicesColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.InsertOne(ctx, subService)
	if err != nil {
		return fmt.Errorf("failed to insert sub-service: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) DeleteCategory(ctx context.Context, id string) (int64, error) {
	col, err := mdb.GetCollection(CategoriesColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete category: %v", err)
	}
	return res.DeletedCount, nil
}

func (mdb *MongodbRepo) DeleteSubServicesByCategory(ctx context.Context, categoryID string) (int64, error) {
	col, err := mdb.GetCollection(SubServicesColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteMany(ctx, bson.M{"category_id": categoryID})
	if err != nil {
		return 0, fmt.Errorf("failed to delete sub-services: %v", err)
	}
	return res.DeletedCount, nil
}

func (mdb *MongodbRepo) DeleteSubService(ctx context.Context, id string) (int64, error) {
	col, err := mdb.GetCollection(SubServicesColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	res, err := col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, fmt.Errorf("failed to delete sub-service: %v", err)
	}
	return res.DeletedCount, nil
}
