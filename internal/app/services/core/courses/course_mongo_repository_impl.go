package courses

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

type CourseMongoRepository struct {
	Collection *mongo.Collection
}

func NewCourseMongoRepository(db *mongo.Client, dbName string) CourseRepository {
	return &CourseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCourses),
	}
}

func (repo *CourseMongoRepository) Insert(ctx context.Context, course *models.Course) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, course)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *CourseMongoRepository) FindAll(ctx context.Context, filter *requests.ListCourses) ([]models.Course, error) {
	query := bson.M{"isActive": true}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Level != "" {
		query["level"] = filter.Level
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	courses := make([]models.Course, 0)
	if err := cursor.All(ctx, &courses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return courses, nil
}

func (repo *CourseMongoRepository) FindByID(ctx context.Context, courseID string) (*models.Course, error) {
	objectID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var course models.Course
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&course)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &course, nil
}

func (repo *CourseMongoRepository) Update(ctx context.Context, course *models.Course) error {
	objectID, err := primitive.ObjectIDFromHex(course.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	courseID := course.ID
	course.ID = ""
	update := bson.M{"$set": course}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	course.ID = courseID
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrCourseNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *CourseMongoRepository) IncrementStudents(ctx context.Context, courseID string) error {
	objectID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$inc": bson.M{"students": 1}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *CourseMongoRepository) Deactivate(ctx context.Context, courseID string) error {
	objectID, err := primitive.ObjectIDFromHex(courseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrCourseNotExist(mongo.ErrNoDocuments)
	}
	return nil
}
