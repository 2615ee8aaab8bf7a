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

type EnrollmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewEnrollmentMongoRepository(db *mongo.Client, dbName string) EnrollmentRepository {
	return &EnrollmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCourseEnrollments),
	}
}

func (repo *EnrollmentMongoRepository) Insert(ctx context.Context, enrollment *models.CourseEnrollment) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, enrollment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *EnrollmentMongoRepository) FindByUserAndCourse(ctx context.Context, userID, courseID string) (*models.CourseEnrollment, error) {
	var enrollment models.CourseEnrollment
	err := repo.Collection.FindOne(ctx, bson.M{"userId": userID, "courseId": courseID}).Decode(&enrollment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &enrollment, nil
}

func (repo *EnrollmentMongoRepository) FindByUser(ctx context.Context, userID string) ([]models.CourseEnrollment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"userId": userID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	enrollments := make([]models.CourseEnrollment, 0)
	if err := cursor.All(ctx, &enrollments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return enrollments, nil
}

func (repo *EnrollmentMongoRepository) Update(ctx context.Context, enrollment *models.CourseEnrollment) error {
	objectID, err := primitive.ObjectIDFromHex(enrollment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	enrollmentID := enrollment.ID
	enrollment.ID = ""
	update := bson.M{"$set": enrollment}
	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	enrollment.ID = enrollmentID
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrEnrollmentNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

func (repo *EnrollmentMongoRepository) CountCompletedByUser(ctx context.Context, userID string) (int, error) {
	filter := bson.M{"userId": userID, "status": constvars.EnrollmentStatusCompleted}
	count, err := repo.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

func (repo *EnrollmentMongoRepository) DeleteByUser(ctx context.Context, userID string) error {
	if _, err := repo.Collection.DeleteMany(ctx, bson.M{"userId": userID}); err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
