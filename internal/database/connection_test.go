package database

import (
	"testing"

	"robowarehouse/internal/config"
)

func TestDSN(t *testing.T) {
	got := DSN(config.DatabaseConfig{
		Host:     "db",
		Port:     5433,
		Name:     "robowarehouse",
		User:     "robo",
		Password: "p@ss word",
		SSLMode:  "disable",
	})

	want := "postgres://robo:p%40ss%20word@db:5433/robowarehouse?sslmode=disable"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
