package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"venuedesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindOverlapping returns one confirmed booking whose inclusive date range
// intersects [start, end] in any of the given venue categories.
// Enquiry records are provisional holds and are filtered out here.
func (r *MongoBookingRepo) FindOverlapping(ctx context.Context, start, end time.Time, venueTypes []string, excludeID string) (*models.Booking, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	// Inclusive range intersection: existing.start <= end AND existing.end >= start.
	filter := bson.M{
		"payment_status": bson.M{"$ne": models.PaymentEnquiry},
		"venue_type":     bson.M{"$in": venueTypes},
		"start_date":     bson.M{"$lte": end},
		"end_date":       bson.M{"$gte": start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query overlapping bookings: %w", err)
	}
	return &booking, nil
}
