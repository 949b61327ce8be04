package logger

import (
	"go.uber.org/zap"
)

var L *zap.SugaredLogger = zap.NewNop().Sugar()

// Init replaces the no-op default. Call once from main before anything logs.
func Init(debug bool) {
	var l *zap.Logger
	var err error
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	L = l.Sugar()
}
