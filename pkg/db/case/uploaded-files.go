package casedb

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UploadedFileInfo describes one stored signature image or attachment.
type UploadedFileInfo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FileName    string             `bson:"fileName" json:"fileName"`
	Path        string             `bson:"path" json:"-"`
	ContentType string             `bson:"contentType" json:"contentType"`
	UploadedBy  string             `bson:"uploadedBy" json:"uploadedBy"`
	CreatedAt   int64              `bson:"createdAt" json:"createdAt"`
}

func (dbService *CaseDBService) SaveUploadedFileInfo(instanceID string, info UploadedFileInfo) (UploadedFileInfo, error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	info.ID = primitive.NewObjectID()
	info.CreatedAt = time.Now().Unix()

	_, err := dbService.collectionUploadedFiles(instanceID).InsertOne(ctx, info)
	if err != nil {
		return info, err
	}
	return info, nil
}

func (dbService *CaseDBService) GetUploadedFileInfo(instanceID string, fileID string) (info UploadedFileInfo, err error) {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return info, err
	}
	err = dbService.collectionUploadedFiles(instanceID).FindOne(ctx, bson.M{"_id": _id}).Decode(&info)
	return info, err
}

func (dbService *CaseDBService) DeleteUploadedFileInfo(instanceID string, fileID string) error {
	ctx, cancel := dbService.getContext()
	defer cancel()

	_id, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return err
	}
	res, err := dbService.collectionUploadedFiles(instanceID).DeleteOne(ctx, bson.M{"_id": _id})
	if err != nil {
		return err
	}
	if res.DeletedCount < 1 {
		return errors.New("no file info found with the given id")
	}
	return nil
}
