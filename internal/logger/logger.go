package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New construit le logger de l'application : console lisible en
// développement, JSON sinon.
func New(development bool) (*zap.Logger, error) {
	if development {
		cfg := zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		return cfg.Build()
	}
	return zap.NewProduction()
}
