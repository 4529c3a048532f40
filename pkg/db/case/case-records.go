package casedb

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// CreateCaseRecord inserts a new case record and returns it with the
// generated id and creation timestamp set.
func (dbService *CaseDBService) CreateCaseRecord(instanceID string, record types.Details) (types.Details, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	record.ID = primitive.NilObjectID
	record.CreatedAt = time.Now().Unix()

	res, err := dbService.collectionCaseRecords(instanceID).InsertOne(ctx, record)
	if err != nil {
		return record, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return record, errors.New("could not read inserted case record id")
	}
	record.ID = id
	return record, nil
}

// GetCaseRecordByID fetches one case record.
func (dbService *CaseDBService) GetCaseRecordByID(instanceID string, caseID string) (record types.Details, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return record, err
	}

	filter := bson.M{"_id": _id}
	err = dbService.collectionCaseRecords(instanceID).FindOne(ctx, filter).Decode(&record)
	return record, err
}

// GetCaseRecords returns a page of case records matching the filter.
func (dbService *CaseDBService) GetCaseRecords(instanceID string, filter bson.M, sort bson.M, page int64, limit int64) (records []types.Details, paginationInfo *PaginationInfos, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	totalCount, err := dbService.GetCaseRecordsCount(instanceID, filter)
	if err != nil {
		return records, nil, err
	}

	paginationInfo = prepPaginationInfos(totalCount, page, limit)

	skip := (paginationInfo.CurrentPage - 1) * paginationInfo.PageSize

	opts := options.Find().SetSort(sort).SetSkip(skip).SetLimit(paginationInfo.PageSize)
	cursor, err := dbService.collectionCaseRecords(instanceID).Find(ctx, filter, opts)
	if err != nil {
		return records, nil, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &records)
	if err != nil {
		return records, nil, err
	}

	return records, paginationInfo, nil
}

// GetCaseRecordsCount counts the case records matching the filter.
func (dbService *CaseDBService) GetCaseRecordsCount(instanceID string, filter bson.M) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	return dbService.collectionCaseRecords(instanceID).CountDocuments(ctx, filter)
}

// FindAllCaseRecords iterates every case record of an instance; used by the
// export job where pagination would only add round trips.
func (dbService *CaseDBService) FindAllCaseRecords(instanceID string, cb func(record types.Details) error) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find()
	if dbService.noCursorTimeout {
		opts.SetNoCursorTimeout(true)
	}

	cursor, err := dbService.collectionCaseRecords(instanceID).Find(ctx, bson.M{}, opts)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var record types.Details
		if err := cursor.Decode(&record); err != nil {
			return err
		}
		if err := cb(record); err != nil {
			return err
		}
	}
	return cursor.Err()
}

// ReplaceCaseRecord overwrites an existing record; the stored creation
// timestamp and psychologist are preserved. Last write wins, there is no
// optimistic versioning on edits.
func (dbService *CaseDBService) ReplaceCaseRecord(instanceID string, caseID string, record types.Details) (types.Details, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return record, err
	}

	var current types.Details
	if err := dbService.collectionCaseRecords(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&current); err != nil {
		return record, err
	}

	record.ID = _id
	record.CreatedAt = current.CreatedAt
	record.Psychologist = current.Psychologist

	_, err = dbService.collectionCaseRecords(instanceID).ReplaceOne(ctx, bson.M{"_id": _id}, record)
	return record, err
}

// DeleteCaseRecord removes one case record and its scoring sessions.
func (dbService *CaseDBService) DeleteCaseRecord(instanceID string, caseID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return err
	}

	if _, err := dbService.collectionScoringSessions(instanceID).DeleteMany(ctx, bson.M{"caseID": _id}); err != nil {
		return err
	}

	res, err := dbService.collectionCaseRecords(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return errors.New("case record not found")
	}
	return nil
}

// UpdateReviewMechanism writes the embedded review of a case record.
func (dbService *CaseDBService) UpdateReviewMechanism(instanceID string, caseID string, review types.ReviewMechanism) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionCaseRecords(instanceID).UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$set": bson.M{"reviewMechanism": review}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("case record not found")
	}
	return nil
}

// SetScoringSystemFlag marks whether a scoring session exists for the record.
func (dbService *CaseDBService) SetScoringSystemFlag(instanceID string, caseID string, hasScoring bool) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return err
	}

	_, err = dbService.collectionCaseRecords(instanceID).UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$set": bson.M{"scoringSystem": hasScoring}},
	)
	return err
}
