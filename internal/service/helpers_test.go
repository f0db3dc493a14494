package service_test

import (
	"io"

	"safety-tracker-backend/internal/auth"
	"safety-tracker-backend/internal/logger"
	"safety-tracker-backend/internal/reconcile"
	"safety-tracker-backend/internal/store"

	"github.com/sirupsen/logrus"
)

var (
	editor    = auth.NewIdentity("editor@example.com")
	lead      = auth.NewIdentity("lead@example.com")
	anonymous = auth.Identity{}
)

func quietLogger() *logger.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logger.NewWithEntry(logrus.NewEntry(l))
}

func quietEngine(st store.Store) *reconcile.Engine {
	return reconcile.NewEngine(st, quietLogger())
}

func strPtr(s string) *string {
	return &s
}
