package db

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"go-sentinel/types"
)

// CreateLocationRecord appends one anonymized check-in. Records are
// immutable once written.
func CreateLocationRecord(ctx context.Context, client *firestore.Client, rec types.LocationRecord) (types.LocationRecord, error) {
	rec.ID = uuid.NewString()
	_, err := client.Collection(locationsCollection).Doc(rec.ID).Set(ctx, rec)
	if err != nil {
		return types.LocationRecord{}, fmt.Errorf("failed to create location record: %w", err)
	}
	return rec, nil
}

// ListLocationRecords returns the newest records up to limit, newest first.
func ListLocationRecords(ctx context.Context, client *firestore.Client, limit int) ([]types.LocationRecord, error) {
	iter := client.Collection(locationsCollection).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var records []types.LocationRecord
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating location records: %w", err)
		}

		var rec types.LocationRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("error converting document to LocationRecord: %w", err)
		}
		rec.ID = doc.Ref.ID
		records = append(records, rec)
	}
	return records, nil
}
