package ctl

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	conf := zap.NewDevelopmentConfig()
	conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	conf.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if debug {
		conf.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := conf.Build()
	if err != nil {
		return nil, err
	}

	return logger.Sugar(), nil
}
