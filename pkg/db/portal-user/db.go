package portaluser

import (
	"context"
	"log/slog"
	"time"

	"github.com/Mentoons-github/Mentoons-website-sub002/pkg/db"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collection names
const (
	COLLECTION_NAME_PORTAL_USERS = "users"
	COLLECTION_NAME_RENEW_TOKENS = "renewTokens"
	COLLECTION_NAME_BLOCKED_JWTS = "blockedJwts"
)

type PortalUserDBService struct {
	DBClient        *mongo.Client
	timeout         int
	noCursorTimeout bool
	DBNamePrefix    string
	InstanceIDs     []string
}

func NewPortalUserDBService(configs db.DBConfig) (*PortalUserDBService, error) {
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

	puDBSc := &PortalUserDBService{
		DBClient:        dbClient,
		timeout:         configs.Timeout,
		noCursorTimeout: configs.NoCursorTimeout,
		DBNamePrefix:    configs.DBNamePrefix,
		InstanceIDs:     configs.InstanceIDs,
	}

	if configs.RunIndexCreation {
		puDBSc.CreateDefaultIndexes()
	}

	return puDBSc, nil
}

func (dbService *PortalUserDBService) getDBName(instanceID string) string {
	return dbService.DBNamePrefix + instanceID + "_portalUsers"
}

func (dbService *PortalUserDBService) getContext() (ctx context.Context, cancel context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(dbService.timeout)*time.Second)
}

func (dbService *PortalUserDBService) collectionPortalUsers(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_PORTAL_USERS)
}

func (dbService *PortalUserDBService) collectionRenewTokens(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_RENEW_TOKENS)
}

func (dbService *PortalUserDBService) collectionBlockedJwts(instanceID string) *mongo.Collection {
	return dbService.DBClient.Database(dbService.getDBName(instanceID)).Collection(COLLECTION_NAME_BLOCKED_JWTS)
}

func (dbService *PortalUserDBService) CreateDefaultIndexes() {
	for _, instanceID := range dbService.InstanceIDs {
		dbService.CreateIndexForPortalUsers(instanceID)
		dbService.CreateIndexForRenewTokens(instanceID)
		dbService.CreateIndexForBlockedJwts(instanceID)
	}
}

// DropAllIndexes drops every index (except _id) on all portal user
// collections of all configured instances.
func (dbService *PortalUserDBService) DropAllIndexes() {
	for _, instanceID := range dbService.InstanceIDs {
		ctx, cancel := dbService.getContext()
		defer cancel()

		collections := []*mongo.Collection{
			dbService.collectionPortalUsers(instanceID),
			dbService.collectionRenewTokens(instanceID),
			dbService.collectionBlockedJwts(instanceID),
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
