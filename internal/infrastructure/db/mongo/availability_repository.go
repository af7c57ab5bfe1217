package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gcbs/appointment-system/internal/core/domain"
)

const collectionAvailability = "availability"

// AvailabilityRepository implements ports.AvailabilityRepository using
// MongoDB. One document per (lecturer, date); the document id is the
// composite "<lecturerID>_<date>" so a wholesale Put cannot leave duplicates.
type AvailabilityRepository struct {
	col *mongo.Collection
}

func NewAvailabilityRepository(db *mongo.Database) *AvailabilityRepository {
	return &AvailabilityRepository{col: db.Collection(collectionAvailability)}
}

type availabilityDoc struct {
	ID         string    `bson:"_id"`
	LecturerID string    `bson:"lecturer_id"`
	Date       string    `bson:"date"`
	Times      []string  `bson:"times"`
	UpdatedAt  time.Time `bson:"updated_at"`
}

func docID(lecturerID, date string) string {
	return lecturerID + "_" + date
}

// Put replaces the whole document for (lecturerID, date), creating it when
// absent.
func (r *AvailabilityRepository) Put(ctx context.Context, rec *domain.AvailabilityRecord) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := availabilityDoc{
		ID:         docID(rec.LecturerID, rec.Date),
		LecturerID: rec.LecturerID,
		Date:       rec.Date,
		Times:      rec.Times,
		UpdatedAt:  rec.UpdatedAt,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.col.ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, opts); err != nil {
		return fmt.Errorf("put availability: %w", err)
	}
	return nil
}

func (r *AvailabilityRepository) Get(ctx context.Context, lecturerID, date string) (*domain.AvailabilityRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d availabilityDoc
	err := r.col.FindOne(ctx, bson.M{"_id": docID(lecturerID, date)}).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAvailabilityNotFound
		}
		return nil, fmt.Errorf("get availability: %w", err)
	}

	return &domain.AvailabilityRecord{
		LecturerID: d.LecturerID,
		Date:       d.Date,
		Times:      d.Times,
		UpdatedAt:  d.UpdatedAt,
	}, nil
}

func (r *AvailabilityRepository) Delete(ctx context.Context, lecturerID, date string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": docID(lecturerID, date)})
	if err != nil {
		return fmt.Errorf("delete availability: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAvailabilityNotFound
	}
	return nil
}
