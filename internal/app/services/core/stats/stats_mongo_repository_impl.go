package stats

import (
	"context"

	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type StatsMongoRepository struct {
	Database *mongo.Database
}

func NewStatsMongoRepository(db *mongo.Client, dbName string) StatsRepository {
	return &StatsMongoRepository{
		Database: db.Database(dbName),
	}
}

func (repo *StatsMongoRepository) CountActiveJobs(ctx context.Context) (int, error) {
	count, err := repo.Database.Collection(constvars.MongoCollectionJobs).
		CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

func (repo *StatsMongoRepository) CountActiveCourses(ctx context.Context) (int, error) {
	count, err := repo.Database.Collection(constvars.MongoCollectionCourses).
		CountDocuments(ctx, bson.M{"isActive": true})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

// SumCourseStudents totals enrolled student counts across active courses.
func (repo *StatsMongoRepository) SumCourseStudents(ctx context.Context) (int, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isActive": true}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$students"},
		}}},
	}

	cursor, err := repo.Database.Collection(constvars.MongoCollectionCourses).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total int `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// AverageCourseRating averages ratings over active courses that have one.
func (repo *StatsMongoRepository) AverageCourseRating(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"isActive": true, "rating": bson.M{"$gt": 0}}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"average": bson.M{"$avg": "$rating"},
		}}},
	}

	cursor, err := repo.Database.Collection(constvars.MongoCollectionCourses).Aggregate(ctx, pipeline)
	if err != nil {
		return 0, exceptions.ErrMongoDBAggregate(err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Average float64 `bson:"average"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Average, nil
}

func (repo *StatsMongoRepository) CountAppointments(ctx context.Context) (int, error) {
	filter := bson.M{"status": bson.M{"$in": []string{
		constvars.AppointmentStatusPending,
		constvars.AppointmentStatusConfirmed,
		constvars.AppointmentStatusCompleted,
	}}}
	count, err := repo.Database.Collection(constvars.MongoCollectionAppointments).
		CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}

func (repo *StatsMongoRepository) CountCompletedAppointments(ctx context.Context) (int, error) {
	count, err := repo.Database.Collection(constvars.MongoCollectionAppointments).
		CountDocuments(ctx, bson.M{"status": constvars.AppointmentStatusCompleted})
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return int(count), nil
}
