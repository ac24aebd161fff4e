package models

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (mdb *MongodbRepo) CreateBooking(ctx context.Context, booking *Booking) error {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) GetBookingForProvider(ctx context.Context, id, providerID string) (*Booking, error) {
	return mdb.getBooking(ctx, bson.M{"id": id, "provider_id": providerID})
}

func (mdb *MongodbRepo) GetBookingForCustomer(ctx context.Context, id, customerID string) (*Booking, error) {
	return mdb.getBooking(ctx, bson.M{"id": id, "customer_id": customerID})
}

func (mdb *MongodbRepo) getBooking(ctx context.Context, filter bson.M) (*Booking, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	var booking Booking
	err = col.FindOne(ctx, filter).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error finding booking: %v", err)
	}
	return &booking, nil
}

func (mdb *MongodbRepo) UpdateBookingStatus(ctx context.Context, id, status string) error {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	_, err = col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update booking status: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) ListBookingsByCustomer(ctx context.Context, customerID string) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"customer_id": customerID})
}

func (mdb *MongodbRepo) ListBookingsByProvider(ctx context.Context, providerID string) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{"provider_id": providerID})
}

func (mdb *MongodbRepo) ListAllBookings(ctx context.Context) ([]*Booking, error) {
	return mdb.listBookings(ctx, bson.M{})
}

// listBookings returns bookings newest-first.
func (mdb *MongodbRepo) listBookings(ctx context.Context, filter bson.M) ([]*Booking, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return nil, fmt.Errorf("error getting collection: %v", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %v", err)
	}
	defer cursor.Close(ctx)

	bookings := []*Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %v", err)
	}
	return bookings, nil
}

func (mdb *MongodbRepo) CountBookings(ctx context.Context, status string) (int64, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{}
	if status != "" {
		query["status"] = status
	}
	return col.CountDocuments(ctx, query)
}

func (mdb *MongodbRepo) CountBookingsForProvider(ctx context.Context, providerID, status string) (int64, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	query := bson.M{"provider_id": providerID}
	if status != "" {
		query["status"] = status
	}
	return col.CountDocuments(ctx, query)
}

// SumProviderEarnings totals provider_earnings across a provider's
// completed bookings.
func (mdb *MongodbRepo) SumProviderEarnings(ctx context.Context, providerID string) (float64, error) {
	return mdb.sumBookingField(ctx, bson.M{"provider_id": providerID, "status": BookingStatusCompleted}, "$provider_earnings")
}

// SumCommission totals the platform's commission across all completed
// bookings.
func (mdb *MongodbRepo) SumCommission(ctx context.Context) (float64, error) {
	return mdb.sumBookingField(ctx, bson.M{"status": BookingStatusCompleted}, "$commission")
}

func (mdb *MongodbRepo) sumBookingField(ctx context.Context, match bson.M, field string) (float64, error) {
	col, err := mdb.GetCollection(BookingsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": field},
		}}},
	}
	cursor, err := col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("error aggregating bookings: %v", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return 0, fmt.Errorf("error decoding aggregation: %v", err)
	}
	if len(result) == 0 {
		return 0, nil
	}
	return result[0].Total, nil
}
