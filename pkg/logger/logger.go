package logger

import (
	"encoding/json"
	"os"
	"time"

	"roomie/pkg/mq"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// Logger is the process-wide logger instance
	Logger zerolog.Logger
	// fanout, when set, mirrors structured logs to the log exchange
	fanout *mq.RabbitMQ

	serviceName string
)

// BaseLog is the shape every fanned-out log entry takes
type BaseLog struct {
	Level     string      `json:"level"`
	Timestamp time.Time   `json:"timestamp"`
	Service   string      `json:"service"`
	Message   string      `json:"message"`
	Log       interface{} `json:"log,omitempty"`
}

// InitLogger configures the console logger for the given service
func InitLogger(service string) {
	serviceName = service

	zerolog.TimeFieldFormat = time.RFC3339
	output := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	Logger = zerolog.New(output).
		Level(zerolog.InfoLevel).
		With().
		Str("service", service).
		Timestamp().
		Logger()
}

// EnableFanout mirrors logs to RabbitMQ for the log consumer
func EnableFanout(mqClient *mq.RabbitMQ) error {
	if err := mqClient.DeclareExchange(mq.ExchangeLog, mq.ExchangeTypeFanout); err != nil {
		return err
	}
	fanout = mqClient
	return nil
}

func publish(level, message string, logData interface{}) {
	if fanout == nil {
		return
	}

	entry := BaseLog{
		Level:     level,
		Timestamp: time.Now(),
		Service:   serviceName,
		Message:   message,
		Log:       logData,
	}

	jsonData, err := json.Marshal(entry)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal log data")
		return
	}

	if err := fanout.PublishMessage(mq.ExchangeLog, "", jsonData); err != nil {
		log.Error().Err(err).Msg("Failed to publish log message")
	}
}

// Info logs at info level
func Info(message string, logData interface{}) {
	Logger.Info().Interface("log", logData).Msg(message)
	publish("info", message, logData)
}

// Warn logs at warn level
func Warn(message string, logData interface{}) {
	Logger.Warn().Interface("log", logData).Msg(message)
	publish("warn", message, logData)
}

// Error logs at error level
func Error(message string, logData interface{}) {
	Logger.Error().Interface("log", logData).Msg(message)
	publish("error", message, logData)
}
