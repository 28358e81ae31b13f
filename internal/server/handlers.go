package server

import (
	"net/http"
	"strings"
	"time"

	"art-gallery/internal/config"
	"art-gallery/internal/handlers"
	"art-gallery/internal/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func setupRouter(ctx *middlewares.AppContext) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middlewares.ClientIPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.MetricsMiddleware)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(ctx.FlowSessions.LoadAndSave)

	r.Use(middlewares.AppContextMiddleware(ctx))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ctx.Config.CORS.AllowedOrigins,
		AllowedMethods:   ctx.Config.CORS.AllowedMethods,
		AllowedHeaders:   ctx.Config.CORS.AllowedHeaders,
		ExposedHeaders:   ctx.Config.CORS.ExposedHeaders,
		AllowCredentials: ctx.Config.CORS.AllowCredentials,
		MaxAge:           ctx.Config.CORS.MaxAgeSeconds,
	}))

	r.Use(middleware.Compress(5))

	r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir("web/dist/assets"))))
	r.Handle("/favicon.ico", http.FileServer(http.Dir("web/dist")))

	// Admin pages are part of the SPA. The guard runs before the SPA shell
	// is served so an unauthenticated visit never reaches the admin bundle.
	r.Group(func(r chi.Router) {
		r.Use(middlewares.RequireAdminPage)
		r.Get("/admin", serveSPA)
		r.Get("/admin/*", serveSPA)
	})
	r.Get("/admin/login", serveSPA)

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}
		serveSPA(w, r)
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/status", ctx.HandlerFunc(handlers.GETAuthStatusHandler))
			r.Post("/logout", ctx.HandlerFunc(handlers.POSTLogoutHandler))

			switch ctx.Config.Auth.Scheme {
			case config.SchemeLocal:
				r.Post("/login", ctx.HandlerFunc(handlers.POSTLoginHandler))
			case config.SchemeOIDC:
				r.Get("/login", ctx.HandlerFunc(handlers.GETOIDCLoginHandler))
				r.Get("/callback", ctx.HandlerFunc(handlers.GETOIDCCallbackHandler))
			}
		})

		r.Route("/artworks", func(r chi.Router) {
			r.Get("/", ctx.HandlerFunc(handlers.GETArtworksHandler))
			r.Get("/{id}", ctx.HandlerFunc(handlers.GETArtworkHandler))

			r.Group(func(r chi.Router) {
				r.Use(middlewares.RequireAdminAPI)
				r.Post("/", ctx.HandlerFunc(handlers.POSTArtworksHandler))
				r.Put("/{id}", ctx.HandlerFunc(handlers.PUTArtworkHandler))
				r.Patch("/{id}", ctx.HandlerFunc(handlers.PUTArtworkHandler))
				r.Delete("/{id}", ctx.HandlerFunc(handlers.DELETEArtworkHandler))
				r.Post("/review", ctx.HandlerFunc(handlers.POSTReviewHandler))
				r.Post("/images", ctx.HandlerFunc(handlers.POSTUploadHandler))
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middlewares.RequireAdminAPI)
			r.Get("/audit", ctx.HandlerFunc(handlers.GETAuditHandler))
		})

		r.Route("/v1", func(r chi.Router) {
			r.Get("/health", ctx.HandlerFunc(handlers.GETHealthHandler))
		})
	})

	return r
}

func serveSPA(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, "web/dist/index.html")
}

func setupDebugRouter() *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Mount("/debug", middleware.Profiler())

	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
