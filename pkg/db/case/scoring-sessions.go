package casedb

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/casedata/types"
)

// CreateScoringSession inserts a new score sheet for a case record.
func (dbService *CaseDBService) CreateScoringSession(instanceID string, session types.SessionScoring) (types.SessionScoring, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	session.ID = primitive.NilObjectID
	if session.CreatedAt == 0 {
		session.CreatedAt = time.Now().Unix()
	}

	res, err := dbService.collectionScoringSessions(instanceID).InsertOne(ctx, session)
	if err != nil {
		return session, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return session, errors.New("could not read inserted scoring session id")
	}
	session.ID = id
	return session, nil
}

// GetScoringSessionByID fetches one score sheet.
func (dbService *CaseDBService) GetScoringSessionByID(instanceID string, scoringID string) (session types.SessionScoring, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(scoringID)
	if err != nil {
		return session, err
	}

	err = dbService.collectionScoringSessions(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&session)
	return session, err
}

// GetScoringSessionsForCase lists the score sheets of one case record,
// ordered by session number.
func (dbService *CaseDBService) GetScoringSessionsForCase(instanceID string, caseID string) (sessions []types.SessionScoring, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return sessions, err
	}

	opts := options.Find().SetSort(bson.D{{Key: "sessionNumber", Value: 1}})
	cursor, err := dbService.collectionScoringSessions(instanceID).Find(ctx, bson.M{"caseID": _id}, opts)
	if err != nil {
		return sessions, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &sessions)
	return sessions, err
}

// UpdateScoringSession overwrites the scores of an existing sheet.
func (dbService *CaseDBService) UpdateScoringSession(instanceID string, scoringID string, session types.SessionScoring) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(scoringID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionScoringSessions(instanceID).UpdateOne(
		ctx,
		bson.M{"_id": _id},
		bson.M{"$set": bson.M{
			"sessionDate": session.SessionDate,
			"scors":       session.Scors,
			"updatedAt":   time.Now().Unix(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("scoring session not found")
	}
	return nil
}

func (dbService *CaseDBService) DeleteScoringSession(instanceID string, scoringID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(scoringID)
	if err != nil {
		return err
	}
	res, err := dbService.collectionScoringSessions(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("scoring session not found")
	}
	return nil
}

// CountScoringSessionsForCase returns how many score sheets a case record has.
func (dbService *CaseDBService) CountScoringSessionsForCase(instanceID string, caseID string) (int64, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return 0, err
	}

	return dbService.collectionScoringSessions(instanceID).CountDocuments(ctx, bson.M{"caseID": _id})
}
