package users

import (
	"context"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SavedJobMongoRepository struct {
	Collection *mongo.Collection
}

func NewSavedJobMongoRepository(db *mongo.Client, dbName string) SavedJobRepository {
	return &SavedJobMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSavedJobs),
	}
}

func (repo *SavedJobMongoRepository) Insert(ctx context.Context, savedJob *models.SavedJob) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, savedJob)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *SavedJobMongoRepository) FindByUserAndJob(ctx context.Context, userID, jobID string) (*models.SavedJob, error) {
	var savedJob models.SavedJob
	err := repo.Collection.FindOne(ctx, bson.M{"userId": userID, "jobId": jobID}).Decode(&savedJob)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &savedJob, nil
}

func (repo *SavedJobMongoRepository) FindByUser(ctx context.Context, userID string) ([]models.SavedJob, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	savedJobs := make([]models.SavedJob, 0)
	if err := cursor.All(ctx, &savedJobs); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return savedJobs, nil
}

func (repo *SavedJobMongoRepository) Delete(ctx context.Context, savedJobID string) error {
	objectID, err := primitive.ObjectIDFromHex(savedJobID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	if result.DeletedCount == 0 {
		return exceptions.ErrSavedJobNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *SavedJobMongoRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := repo.Collection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
