package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mirefall/GrimoireBot_Go/internal/character"
	"github.com/mirefall/GrimoireBot_Go/internal/database"
	"github.com/mirefall/GrimoireBot_Go/internal/handler"
	"github.com/mirefall/GrimoireBot_Go/internal/inventory"
	"github.com/mirefall/GrimoireBot_Go/internal/logger"
	"github.com/mirefall/GrimoireBot_Go/internal/metrics"
	"github.com/mirefall/GrimoireBot_Go/internal/sorting"
	"github.com/mirefall/GrimoireBot_Go/internal/spellbook"
	"github.com/mirefall/GrimoireBot_Go/internal/worlditem"
)

type Server struct {
	httpServer       *http.Server
	dbPool           database.Pool
	characterService character.Service
	inventoryService inventory.Service
	spellbookService spellbook.Service
	worldItemService worlditem.Service
	sortingService   sorting.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, characterService character.Service, inventoryService inventory.Service, spellbookService spellbook.Service, worldItemService worlditem.Service, sortingService sorting.Service) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	monitor := newAbuseMonitor()

	r.Use(securityHeaders())
	r.Use(apiKeyAuth(apiKey, trustedProxies, monitor))
	r.Use(rateLimit(trustedProxies, monitor))
	r.Use(limitBody(1 << 20)) // 1MB
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Character routes
		r.Route("/character", func(r chi.Router) {
			r.Post("/create", handler.HandleCreateCharacter(characterService))
			r.Get("/", handler.HandleGetCharacter(characterService))
			r.Delete("/", handler.HandleDeleteCharacter(characterService))
			r.Post("/experience", handler.HandleGrantExperience(characterService))
			r.Post("/attributes", handler.HandleAssignAttributes(characterService))
			r.Post("/rest", handler.HandleRest(characterService))
			r.Post("/damage", handler.HandleTakeDamage(characterService))
			r.Post("/heal", handler.HandleHeal(characterService))
			r.Post("/galleons", handler.HandleAddGalleons(characterService))
			r.Get("/leaderboard", handler.HandleGetLeaderboard(characterService))
		})

		// Inventory routes
		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(inventoryService))
			r.Post("/add", handler.HandleAddItem(inventoryService))
			r.Post("/remove", handler.HandleRemoveItem(inventoryService))
			r.Post("/transfer", handler.HandleTransferItem(inventoryService))
			r.Post("/equip", handler.HandleEquipItem(inventoryService))
			r.Post("/unequip", handler.HandleUnequipItem(inventoryService))
			r.Post("/use", handler.HandleUseItem(inventoryService))
		})

		// Market routes
		r.Route("/market", func(r chi.Router) {
			r.Get("/", handler.HandleGetMarket(inventoryService))
			r.Post("/list", handler.HandleListForSale(inventoryService))
			r.Post("/cancel", handler.HandleCancelSale(inventoryService))
			r.Post("/buy", handler.HandleBuyFromMarket(inventoryService))
		})
		r.Get("/shop", handler.HandleGetShopItems(inventoryService))

		// Spellbook routes
		r.Route("/spellbook", func(r chi.Router) {
			r.Get("/", handler.HandleGetSpellbook(spellbookService))
			r.Get("/spell", handler.HandleGetSpell(spellbookService))
			r.Post("/learn", handler.HandleLearnSpell(spellbookService))
			r.Post("/cast", handler.HandleCastSpell(spellbookService))
			r.Get("/top", handler.HandleTopMastery(spellbookService))
			r.Get("/count", handler.HandleCountKnownBy(spellbookService))
		})

		// World artifact routes
		r.Route("/artifact", func(r chi.Router) {
			r.Get("/", handler.HandleGetArtifact(worldItemService))
			r.Get("/all", handler.HandleGetArtifacts(worldItemService))
			r.Post("/claim", handler.HandleClaimArtifact(worldItemService))
			r.Post("/transfer", handler.HandleTransferArtifact(worldItemService))
			r.Post("/lose", handler.HandleLoseArtifact(worldItemService))
		})

		// Sorting quiz routes
		r.Route("/sorting", func(r chi.Router) {
			r.Post("/start", handler.HandleStartQuiz(sortingService))
			r.Get("/question", handler.HandleCurrentQuestion(sortingService))
			r.Post("/answer", handler.HandleAnswerQuiz(sortingService))
			r.Post("/cancel", handler.HandleCancelQuiz(sortingService))
		})

		// Admin routes
		r.Route("/admin", func(r chi.Router) {
			r.Get("/holders", handler.HandleFindHolders(inventoryService))
			r.Get("/common-items", handler.HandleMostCommonItems(inventoryService))
			r.Post("/grant-all", handler.HandleGrantToAll(inventoryService))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:           dbPool,
		characterService: characterService,
		inventoryService: inventoryService,
		spellbookService: spellbookService,
		worldItemService: worldItemService,
		sortingService:   sortingService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		// Log request start with details
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		// Process request
		next.ServeHTTP(rw, r)

		// Log request completion with metrics
		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
