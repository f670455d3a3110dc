package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limiterTest(limite int) *rateLimiter {
	return &rateLimiter{
		clients: make(map[string]*compteurClient),
		limite:  limite,
		fenetre: time.Minute,
	}
}

func TestRateLimiterAutoriser(t *testing.T) {
	rl := limiterTest(3)
	now := time.Now()

	for i := 0; i < 3; i++ {
		ok, _ := rl.autoriser("1.2.3.4", now)
		assert.True(t, ok, "requête %d", i+1)
	}

	ok, retryAfter := rl.autoriser("1.2.3.4", now)
	assert.False(t, ok)
	assert.Greater(t, retryAfter, time.Duration(0))

	// Chaque IP a son propre compteur
	ok, _ = rl.autoriser("5.6.7.8", now)
	assert.True(t, ok)
}

func TestRateLimiterFenetreExpiree(t *testing.T) {
	rl := limiterTest(1)
	now := time.Now()

	ok, _ := rl.autoriser("1.2.3.4", now)
	assert.True(t, ok)
	ok, _ = rl.autoriser("1.2.3.4", now)
	assert.False(t, ok)

	// La fenêtre expirée rouvre le compteur
	ok, _ = rl.autoriser("1.2.3.4", now.Add(2*time.Minute))
	assert.True(t, ok)
}

func TestRateLimiterNettoyer(t *testing.T) {
	rl := limiterTest(5)
	now := time.Now()
	rl.autoriser("1.2.3.4", now)
	rl.autoriser("5.6.7.8", now)

	rl.nettoyer(now.Add(2 * time.Minute))
	assert.Empty(t, rl.clients)
}

func TestRateLimiterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(limiterTest(1).handler())
	router.GET("/ping", func(c *gin.Context) { c.Status(200) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, 200, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping", nil))
	assert.Equal(t, 429, w.Code)
	assert.Contains(t, w.Body.String(), "retry_after")
}

func TestLimiteDepuisEnv(t *testing.T) {
	t.Setenv("RATE_LIMIT_API", "25")
	assert.Equal(t, 25, limiteDepuisEnv("RATE_LIMIT_API", defautLimiteAPI))

	t.Setenv("RATE_LIMIT_API", "pas-un-nombre")
	assert.Equal(t, defautLimiteAPI, limiteDepuisEnv("RATE_LIMIT_API", defautLimiteAPI))

	t.Setenv("RATE_LIMIT_API", "")
	assert.Equal(t, defautLimiteAPI, limiteDepuisEnv("RATE_LIMIT_API", defautLimiteAPI))
}
