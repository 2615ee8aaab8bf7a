package appointments

import (
	"context"
	"errors"
	"strings"
	"time"

	"legalhub-service/internal/app/models"
	"legalhub-service/internal/pkg/constvars"
	"legalhub-service/internal/pkg/dto/requests"
	"legalhub-service/internal/pkg/exceptions"
	"legalhub-service/internal/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	indexUniqueSlotKey          = "uniq_slot_key"
	indexUniqueConfirmationCode = "uniq_confirmation_number"
)

// ErrDuplicateConfirmationCode signals that a generated confirmation number
// collided with an existing one and the caller should generate a new code.
var ErrDuplicateConfirmationCode = errors.New("duplicate confirmation number")

type AppointmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAppointmentMongoRepository(db *mongo.Client, dbName string) AppointmentRepository {
	return &AppointmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionAppointments),
	}
}

// EnsureIndexes creates the indexes the booking flow depends on. The partial
// unique index on slotKey is the commit point for slot exclusivity: only
// documents holding a slot carry the field, so historical appointments never
// block a new booking.
func (repo *AppointmentMongoRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "slotKey", Value: 1}},
			Options: options.Index().
				SetName(indexUniqueSlotKey).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"slotKey": bson.M{"$exists": true}}),
		},
		{
			Keys: bson.D{{Key: "confirmationNumber", Value: 1}},
			Options: options.Index().
				SetName(indexUniqueConfirmationCode).
				SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "appointmentDate", Value: 1}, {Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "clientEmail", Value: 1}, {Key: "appointmentDate", Value: -1}},
		},
	}

	_, err := repo.Collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *AppointmentMongoRepository) Insert(ctx context.Context, appointment *models.Appointment) (string, error) {
	doc := buildAppointmentDoc(appointment)
	result, err := repo.Collection.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), indexUniqueConfirmationCode) {
				return "", ErrDuplicateConfirmationCode
			}
			return "", exceptions.ErrSlotAlreadyBooked(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *AppointmentMongoRepository) FindAll(ctx context.Context, filter *requests.ListAppointments) ([]models.Appointment, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.ServiceCategory != "" {
		query["serviceType"] = filter.ServiceCategory
	}
	if filter.ClientEmail != "" {
		query["clientEmail"] = strings.ToLower(filter.ClientEmail)
	}

	dateRange := bson.M{}
	if filter.StartDate != "" {
		startDate, err := utils.ParseAppointmentDate(filter.StartDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateRange["$gte"] = startDate
	}
	if filter.EndDate != "" {
		endDate, err := utils.ParseAppointmentDate(filter.EndDate)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		dateRange["$lte"] = endDate
	}
	if len(dateRange) > 0 {
		query["appointmentDate"] = dateRange
	}

	findOptions := options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "createdAt", Value: -1},
	})

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	appointments := make([]models.Appointment, 0)
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return appointments, nil
}

func (repo *AppointmentMongoRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var appointment models.Appointment
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

func (repo *AppointmentMongoRepository) FindByConfirmationCode(ctx context.Context, confirmationCode string) (*models.Appointment, error) {
	var appointment models.Appointment
	err := repo.Collection.FindOne(ctx, bson.M{"confirmationNumber": confirmationCode}).Decode(&appointment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &appointment, nil
}

// FindBookedSlotsByDate returns the slot labels held by pending or confirmed
// appointments on the given calendar day.
func (repo *AppointmentMongoRepository) FindBookedSlotsByDate(ctx context.Context, date time.Time) ([]string, error) {
	filter := bson.M{
		"appointmentDate": date,
		"status": bson.M{"$in": []string{
			constvars.AppointmentStatusPending,
			constvars.AppointmentStatusConfirmed,
		}},
	}

	cursor, err := repo.Collection.Find(ctx, filter, options.Find().SetProjection(bson.M{"appointmentTime": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	bookedSlots := make([]string, 0)
	for cursor.Next(ctx) {
		var doc struct {
			TimeSlot string `bson:"appointmentTime"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		bookedSlots = append(bookedSlots, doc.TimeSlot)
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return bookedSlots, nil
}

func (repo *AppointmentMongoRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	objectID, err := primitive.ObjectIDFromHex(appointment.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": buildAppointmentDoc(appointment)}
	if appointment.SlotKey == "" {
		update["$unset"] = bson.M{"slotKey": ""}
	}

	result, err := repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrSlotAlreadyBooked(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return exceptions.ErrAppointmentNotExist(mongo.ErrNoDocuments)
	}
	return nil
}

// buildAppointmentDoc maps the model to a bson document without _id, so the
// same shape serves inserts and $set updates.
func buildAppointmentDoc(appointment *models.Appointment) bson.M {
	doc := bson.M{
		"serviceType":        appointment.ServiceCategory,
		"serviceTitle":       appointment.ServiceTitle,
		"servicePrice":       appointment.ServicePrice,
		"appointmentDate":    appointment.Date,
		"appointmentTime":    appointment.TimeSlot,
		"clientName":         appointment.ClientName,
		"clientEmail":        appointment.ClientEmail,
		"clientPhone":        appointment.ClientPhone,
		"notes":              appointment.Notes,
		"status":             appointment.Status,
		"confirmationNumber": appointment.ConfirmationCode,
		"isActive":           appointment.Active,
		"createdAt":          appointment.CreatedAt,
		"updatedAt":          appointment.UpdatedAt,
	}
	if appointment.SlotKey != "" {
		doc["slotKey"] = appointment.SlotKey
	}
	return doc
}
