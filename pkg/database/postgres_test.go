package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noah-isme/aidt-dashboard-api/pkg/config"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DatabaseConfig{Host: "db", Port: 5433, User: "aidt", Password: "pw", Name: "aidt_dashboard", SSLMode: "disable"})
	assert.Equal(t, "host=db port=5433 user=aidt password=pw dbname=aidt_dashboard sslmode=disable", dsn)
}
