package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Limites par défaut (requêtes par minute et par IP), surchargées par
// RATE_LIMIT_API et RATE_LIMIT_AUTH. Les routes d'authentification sont
// limitées plus sévèrement pour freiner le bruteforce de mots de passe.
const (
	defautLimiteAPI  = 100
	defautLimiteAuth = 10
)

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*compteurClient
	limite  int
	fenetre time.Duration
}

type compteurClient struct {
	requetes int
	reset    time.Time
}

func newRateLimiter(limite int, fenetre time.Duration) *rateLimiter {
	rl := &rateLimiter{
		clients: make(map[string]*compteurClient),
		limite:  limite,
		fenetre: fenetre,
	}

	go func() {
		ticker := time.NewTicker(fenetre)
		defer ticker.Stop()
		for range ticker.C {
			rl.nettoyer(time.Now())
		}
	}()

	return rl
}

// autoriser incrémente le compteur de l'IP et indique si la requête passe,
// avec le délai avant réinitialisation de la fenêtre en cas de refus.
func (rl *rateLimiter) autoriser(ip string, maintenant time.Time) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	client, ok := rl.clients[ip]
	if !ok || maintenant.After(client.reset) {
		rl.clients[ip] = &compteurClient{requetes: 1, reset: maintenant.Add(rl.fenetre)}
		return true, 0
	}

	if client.requetes >= rl.limite {
		return false, client.reset.Sub(maintenant)
	}

	client.requetes++
	return true, 0
}

func (rl *rateLimiter) nettoyer(maintenant time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, client := range rl.clients {
		if maintenant.After(client.reset) {
			delete(rl.clients, ip)
		}
	}
}

func (rl *rateLimiter) handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, retryAfter := rl.autoriser(c.ClientIP(), time.Now())
		if !ok {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Trop de requêtes, réessayez plus tard",
				"retry_after": retryAfter.Seconds(),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

func limiteDepuisEnv(cle string, defaut int) int {
	if v := os.Getenv(cle); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return defaut
}

// RateLimiter limite l'ensemble de l'API par IP (RATE_LIMIT_API/minute).
func RateLimiter() gin.HandlerFunc {
	return newRateLimiter(limiteDepuisEnv("RATE_LIMIT_API", defautLimiteAPI), time.Minute).handler()
}

// AuthRateLimiter limite les routes d'authentification (RATE_LIMIT_AUTH/minute).
func AuthRateLimiter() gin.HandlerFunc {
	return newRateLimiter(limiteDepuisEnv("RATE_LIMIT_AUTH", defautLimiteAuth), time.Minute).handler()
}
