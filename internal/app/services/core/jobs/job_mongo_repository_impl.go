package jobs

import (
	"context"
	"time"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type JobMongoRepository struct {
	Collection *mongo.Collection
}

func NewJobMongoRepository(db *mongo.Client, dbName string) JobRepository {
	return &JobMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionJobs),
	}
}

func (repo *JobMongoRepository) Insert(ctx context.Context, job *models.Job) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, job)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *JobMongoRepository) FindAll(ctx context.Context, filter *requests.ListJobs) ([]models.Job, int, error) {
	query := bson.M{"isActive": true}
	if filter.Department != "" {
		query["department"] = filter.Department
	}
	if filter.Company != "" {
		query["company"] = filter.Company
	}
	if filter.EmploymentType != "" {
		query["employmentType"] = filter.EmploymentType
	}
	if filter.Search != "" {
		searchRegex := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query["$or"] = []bson.M{
			{"title": searchRegex},
			{"company": searchRegex},
			{"department": searchRegex},
			{"location": searchRegex},
			{"description": searchRegex},
			{"skills": searchRegex},
		}
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	jobs := make([]models.Job, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return jobs, int(total), nil
}

func (repo *JobMongoRepository) FindByID(ctx context.Context, jobID string) (*models.Job, error) {
	objectID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var job models.Job
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&job)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &job, nil
}

func (repo *JobMongoRepository) Update(ctx context.Context, job *models.Job) error {
	objectID, err := primitive.ObjectIDFromHex(job.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	// Strip the hex ID before $set; the stored _id is an ObjectID.
	jobID := job.ID
	job.ID = ""
	update := bson.M{"$set": job}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	job.ID = jobID
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrJobNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *JobMongoRepository) Deactivate(ctx context.Context, jobID string) error {
	objectID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrJobNotExist(mongo.ErrNoDocuments)
	}
	return nil
}
