package portaluser

import (
	"errors"
	"log/slog"

	userTypes "github.com/Mentoons-github/Mentoons-website-sub002/pkg/portal-user/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (dbService *PortalUserDBService) CreateIndexForPortalUsers(instanceID string) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_, err := dbService.collectionPortalUsers(instanceID).Indexes().CreateMany(
		ctx, []mongo.IndexModel{
			{
				Keys: bson.D{
					{Key: "account.accountID", Value: 1},
				},
				Options: options.Index().SetUnique(true),
			},
			{
				Keys: bson.D{
					{Key: "timestamps.createdAt", Value: 1},
				},
			},
		},
	)
	if err != nil {
		slog.Error("Error creating indexes for portal users", slog.String("instanceID", instanceID), slog.String("error", err.Error()))
	}
}

func (dbService *PortalUserDBService) CreatePortalUser(instanceID string, user userTypes.PortalUser) (string, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	res, err := dbService.collectionPortalUsers(instanceID).InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", errors.New("account with this email already exists")
		}
		return "", err
	}
	id := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

func (dbService *PortalUserDBService) GetPortalUserByAccountID(instanceID string, accountID string) (user userTypes.PortalUser, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"account.accountID": accountID}
	err = dbService.collectionPortalUsers(instanceID).FindOne(ctx, filter).Decode(&user)
	return user, err
}

func (dbService *PortalUserDBService) GetPortalUserByID(instanceID string, id string) (user userTypes.PortalUser, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return user, err
	}
	filter := bson.M{"_id": _id}
	err = dbService.collectionPortalUsers(instanceID).FindOne(ctx, filter).Decode(&user)
	return user, err
}

func (dbService *PortalUserDBService) GetPortalUsers(instanceID string) (users []userTypes.PortalUser, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamps.createdAt", Value: 1}})
	cursor, err := dbService.collectionPortalUsers(instanceID).Find(ctx, bson.M{}, opts)
	if err != nil {
		return users, err
	}
	defer cursor.Close(ctx)

	err = cursor.All(ctx, &users)
	return users, err
}

// ReplacePortalUser overwrites the stored user document, used after in-memory modifications
// like recording failed login attempts.
func (dbService *PortalUserDBService) ReplacePortalUser(instanceID string, user userTypes.PortalUser) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	filter := bson.M{"_id": user.ID}
	res, err := dbService.collectionPortalUsers(instanceID).ReplaceOne(ctx, filter, user)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("no user found with the given id")
	}
	return nil
}

func (dbService *PortalUserDBService) UpdateLastLoginAt(instanceID string, userID string, ts int64) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{"timestamps.lastLoginAt": ts}}
	_, err = dbService.collectionPortalUsers(instanceID).UpdateOne(ctx, bson.M{"_id": _id}, update)
	return err
}

func (dbService *PortalUserDBService) UpdatePasswordHash(instanceID string, userID string, newHash string, updatedAt int64) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	update := bson.M{"$set": bson.M{
		"account.password":            newHash,
		"account.failedLoginAttempts": []int64{},
		"timestamps.updatedAt":        updatedAt,
	}}
	res, err := dbService.collectionPortalUsers(instanceID).UpdateOne(ctx, bson.M{"_id": _id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount < 1 {
		return errors.New("no user found with the given id")
	}
	return nil
}

func (dbService *PortalUserDBService) DeletePortalUser(instanceID string, userID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return err
	}

	res, err := dbService.collectionPortalUsers(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("no user found with the given id")
	}
	return nil
}
