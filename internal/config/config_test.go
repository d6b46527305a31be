package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.False(t, cfg.Database.Enabled)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "text-embedding-004", cfg.Gemini.EmbedModel)
	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, []string{"SWIPE2024", "INTERN123", "DEMO2024"}, cfg.Auth.ReferralCodes)
	assert.Equal(t, 6, cfg.Interview.QuestionCount)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("GEMINI_TIMEOUT", "45s")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("INTERVIEW_QUESTION_COUNT", "4")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.True(t, cfg.Database.Enabled)
	assert.Equal(t, 45*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.Equal(t, 4, cfg.Interview.QuestionCount)
}

func TestLoadTrimsReferralCodes(t *testing.T) {
	t.Setenv("REFERRAL_CODES", " ALPHA , BETA ,, GAMMA ")

	cfg := Load()

	assert.Equal(t, []string{"ALPHA", "BETA", "GAMMA"}, cfg.Auth.ReferralCodes)
}

func TestLoadFallsBackOnBadDuration(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "not-a-duration")

	cfg := Load()

	assert.Equal(t, 20*time.Second, cfg.Gemini.Timeout)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     "5433",
			User:     "swipe",
			Password: "secret",
			DBName:   "interviews",
		},
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=swipe password=secret dbname=interviews sslmode=disable",
		cfg.GetDatabaseDSN(),
	)
}
