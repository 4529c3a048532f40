package casedb

import (
	"context"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/db"
)

// collection names
const (
	COLLECTION_NAME_CASE_RECORDS     = "caseRecords"
	COLLECTION_NAME_SCORING_SESSIONS = "scoringSessions"
	COLLECTION_NAME_UPLOADED_FILES   = "uploadedFiles"
)

type CaseDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
	InstanceIDs     []string
}

func NewCaseDBService(configs db.DBConfig) (*CaseDBService, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	defer cancel()

	dbClient, err := mongo.Connect(ctx,
		options.Client().ApplyURI(configs.URI),
		options.Client().SetMaxConnIdleTime(time.Duration(configs.IdleConnTimeout)*time.Second),
		options.Client().SetMaxPoolSize(configs.MaxPoolSize),
	)

	if err != nil {
		return nil, err
	}

	ctx, conCancel := context.WithTimeout(context.Background(), time.Duration(configs.Timeout)*time.Second)
	err = dbClient.Ping(ctx, nil)
	defer conCancel()

	if err != nil {
		return nil, err
	}

	caseDBSc := &CaseDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
		InstanceIDs:     configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		if err := caseDBSc.ensureIndexes(); err != nil {
			slog.Error("Error ensuring indexes for case DB", slog.String("error", err.Error()))
		}
	}

	return caseDBSc, nil
}

func (dbService *CaseDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_caseDB"
}

func (dbService *CaseDBService) collectionCaseRecords(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_CASE_RECORDS)
}

func (dbService *CaseDBService) collectionScoringSessions(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_SCORING_SESSIONS)
}

func (dbService *CaseDBService) collectionUploadedFiles(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_UPLOADED_FILES)
}

func (dbService *CaseDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

// CreateDefaultIndexes ensures the default indexes on all configured
// instances. Used by the migration job; services run this on startup when
// RunIndexCreation is set.
func (dbService *CaseDBService) CreateDefaultIndexes() {
	if err := dbService.ensureIndexes(); err != nil {
		slog.Error("Error ensuring indexes for case DB", slog.String("error", err.Error()))
	}
}

// DropAllIndexes drops every index (except _id) on all case DB collections of
// all configured instances.
func (dbService *CaseDBService) DropAllIndexes() {
	for _, instanceID := range dbService.InstanceIDs {
		ctx, cancel := dbService.getContext()
		defer cancel()

		collections := []*mongo.Collection{
			dbService.collectionCaseRecords(instanceID),
			dbService.collectionScoringSessions(instanceID),
			dbService.collectionUploadedFiles(instanceID),
		}
		for _, collection := range collections {
			indexes, err := db.ListCollectionIndexes(ctx, collection)
			if err != nil {
				slog.Error("Error listing indexes",
					slog.String("collection", collection.Name()),
					slog.String("instanceID", instanceID),
					slog.String("error", err.Error()))
				continue
			}
			if len(indexes) < 2 {
				// only the default _id index is present
				continue
			}
			if _, err := collection.Indexes().DropAll(ctx); err != nil {
				slog.Error("Error dropping indexes",
					slog.String("collection", collection.Name()),
					slog.String("instanceID", instanceID),
					slog.String("error", err.Error()))
			}
		}
	}
}

func (dbService *CaseDBService) ensureIndexes() error {
	slog.Debug("Ensuring indexes for case DB")
	for _, instanceID := range dbService.InstanceIDs {
		ctx, cancel := dbService.getContext()
		defer cancel()

		_, err := dbService.collectionCaseRecords(instanceID).Indexes().CreateMany(
			ctx,
			[]mongo.IndexModel{
				{Keys: bson.D{{Key: "psychologist", Value: 1}}},
				{Keys: bson.D{{Key: "createdAt", Value: 1}}},
				{Keys: bson.D{{Key: "demographic.child.name", Value: 1}}},
			},
		)
		if err != nil {
			slog.Error("Error creating indexes for caseRecords", slog.String("error", err.Error()))
		}

		_, err = dbService.collectionScoringSessions(instanceID).Indexes().CreateMany(
			ctx,
			[]mongo.IndexModel{
				{Keys: bson.D{
					{Key: "caseID", Value: 1},
					{Key: "sessionName", Value: 1},
					{Key: "sessionNumber", Value: 1},
				}},
				{Keys: bson.D{{Key: "createdAt", Value: 1}}},
			},
		)
		if err != nil {
			slog.Error("Error creating indexes for scoringSessions", slog.String("error", err.Error()))
		}
	}
	return nil
}
