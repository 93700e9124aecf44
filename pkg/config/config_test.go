package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg := fromViper(v)

	assert.Equal(t, EnvDevelopment, cfg.Env)
	assert.Equal(t, "/api/v1", cfg.APIPrefix)
	assert.Equal(t, DataSourceSample, cfg.Dashboard.DataSource)
	assert.False(t, cfg.Dashboard.UsesDatabase())
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Dashboard.LoadTimeout)
	assert.Equal(t, "static", cfg.Dashboard.Recommender)
	assert.Equal(t, "14:00", cfg.Notifications.DefaultTime)
	assert.True(t, cfg.Exports.CSVBOM)
	assert.Nil(t, cfg.CORS.AllowedOrigins)
}

func TestFromViperOverrides(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DASHBOARD_DATA_SOURCE", " Postgres ")
	v.Set("DASHBOARD_CACHE_TTL", "not-a-duration")
	v.Set("DASHBOARD_RECOMMENDER", "FREQUENCY")
	v.Set("ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg := fromViper(v)

	assert.True(t, cfg.Dashboard.UsesDatabase())
	assert.Equal(t, 5*time.Minute, cfg.Dashboard.CacheTTL)
	assert.Equal(t, "frequency", cfg.Dashboard.Recommender)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestFromViperUnknownDataSourceFallsBackToSample(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("DASHBOARD_DATA_SOURCE", "mongo")

	assert.Equal(t, DataSourceSample, fromViper(v).Dashboard.DataSource)
}
