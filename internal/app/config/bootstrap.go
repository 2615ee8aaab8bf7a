package config

import (
	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router          *chi.Mux
	MongoDB         *mongo.Client
	Redis           *redis.Client
	RabbitMQChannel *amqp.Channel
	ZapLogger       *zap.Logger
	LogrusLogger    *logrus.Logger
	DriverConfig    *DriverConfig
	InternalConfig  *InternalConfig
}
