package router

import (
	"net/http"

	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"outfit-recommender/app/controller"
)

type Controllers struct {
	Outfit  *controller.OutfitController
	History *controller.RecommendationHistoryController // nil when history is disabled
}

// Options configures the router
type Options struct {
	AllowedOrigins []string
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// SetupRoutes registers all routes and returns the instrumented handler
func SetupRoutes(controllers *Controllers, opts Options) http.Handler {
	mux := http.NewServeMux()

	// Ping endpoint
	mux.HandleFunc("/ping", pingHandler)

	// Outfit recommendation; the legacy name is kept for existing clients
	mux.HandleFunc("/analyze_audio", controllers.Outfit.RecommendOutfit)
	mux.HandleFunc("/recommend_outfit", controllers.Outfit.RecommendOutfit)

	// Latest collage, fetched by clients as {baseURL}/{collage_image}
	mux.HandleFunc(controllers.Outfit.CollageRoute(), controllers.Outfit.GetCollage)

	// Recommendation history
	if controllers.History != nil {
		mux.HandleFunc("/admin/recommendations", controllers.History.ListRecommendations)
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodHead},
		AllowedHeaders: []string{"Content-Type"},
	})

	return otelhttp.NewHandler(corsHandler.Handler(mux), "outfit-recommender")
}
