package portaluser

import (
	"errors"
	"log/slog"
	"time"

	userTypes "github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	RENEW_TOKEN_GRACE_PERIOD     = 30 // seconds
	RENEW_TOKEN_DEFAULT_LIFETIME = 60 * 60 * 24 * 90
)

func (dbService *PortalUserDBService) CreateIndexForRenewTokens(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionRenewTokens(instanceID).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "userID", Value: 1},
					{Key: "renewToken", Value: 1},
					{Key: "expiresAt", Value: 1},
				},
			},
			{
				Keys: bson.D{
					{Key: "expiresAt", Value: 1},
				},
				Options: options.Index().SetExpireAfterSeconds(RENEW_TOKEN_GRACE_PERIOD),
			},
			{
				Keys: bson.D{
					{Key: "renewToken", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for renew tokens", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

func (dbService *PortalUserDBService) CreateRenewToken(instanceID string, userID string, token string, lifetimeInSec int, sessionID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	if lifetimeInSec <= 0 {
		lifetimeInSec = RENEW_TOKEN_DEFAULT_LIFETIME
	}

	renewToken := userTypes.RenewToken{
		UserID:     userID,
		SessionID:  sessionID,
		RenewToken: token,
		ExpiresAt:  time.Now().Add(time.Duration(lifetimeInSec) * time.Second),
	}

	_, err := dbService.collectionRenewTokens(instanceID).InsertOne(ctx, renewToken)
	return err
}

// FindAndUpdateRenewToken looks up the token and marks it as used by storing the
// successor token. Within the grace period the same token may be presented again
// (parallel tabs), in which case the stored successor is returned.
func (dbService *PortalUserDBService) FindAndUpdateRenewToken(instanceID string, userID string, token string, nextToken string) (rt userTypes.RenewToken, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{
		"userID":     userID,
		"renewToken": token,
		"expiresAt":  bson.M{"$gt": time.Now()},
	}
	update := bson.M{"$set": bson.M{"nextToken": nextToken}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	err = dbService.collectionRenewTokens(instanceID).FindOneAndUpdate(ctx, filter, update, opts).Decode(&rt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return rt, errors.New("renew token not found or expired")
		}
		return rt, err
	}
	return rt, nil
}

func (dbService *PortalUserDBService) DeleteRenewTokensForUser(instanceID string, userID string) (count int64, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionRenewTokens(instanceID).DeleteMany(ctx, bson.M{"userID": userID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (dbService *PortalUserDBService) DeleteRenewTokensForSession(instanceID string, userID string, sessionID string) (count int64, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionRenewTokens(instanceID).DeleteMany(ctx, bson.M{
		"userID":    userID,
		"sessionID": sessionID,
	})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
