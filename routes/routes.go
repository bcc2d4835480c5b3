package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/muskiz/beach-handball/docs" // регистрирует swagger spec
	"github.com/muskiz/beach-handball/handlers"
	"github.com/muskiz/beach-handball/middleware"
)

type Options struct {
	JWTSecret          string
	CORSOrigins        []string
	LoginRatePerMinute int
	// TrustProxy включает RealIP: без него лимит логина считается по адресу соединения.
	TrustProxy bool
	// Media != nil, когда файлы хранятся в памяти и раздаются самим сервером.
	Media *handlers.MediaHandler
}

type Handlers struct {
	Auth      *handlers.AuthHandler
	Team      *handlers.TeamHandler
	Match     *handlers.MatchHandler
	Standings *handlers.StandingsHandler
	Content   *handlers.ContentHandler
	Dashboard *handlers.DashboardHandler
	WebSocket *handlers.WebSocketHandler
}

func SetupRoutes(r chi.Router, h Handlers, opts Options) {
	r.Use(chiMiddleware.RequestID)
	if opts.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	if opts.Media != nil {
		r.Get("/media/*", opts.Media.Serve)
	}

	// WebSocket живёт дольше таймаута обычных запросов.
	r.Get("/ws/standings", h.WebSocket.ServeWs)

	r.Route("/api", func(r chi.Router) {
		r.Use(chiMiddleware.Timeout(30 * time.Second))

		r.With(middleware.NewIPRateLimiter(opts.LoginRatePerMinute).Middleware).
			Post("/auth/login", h.Auth.Login)

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", h.Team.ListTeams)
			r.Post("/", h.Team.RegisterTeam)
			r.Get("/roster-template", h.Team.RosterTemplate)
			r.Route("/{teamID}", func(r chi.Router) {
				r.Get("/", h.Team.GetTeamByID)
				r.Patch("/", h.Team.UpdateTeamDetails)
				r.Post("/logo", h.Team.UploadLogo)
				r.Post("/players", h.Team.AddPlayer)
				r.Post("/players/import", h.Team.ImportRoster)
				r.Delete("/players/{playerID}", h.Team.RemovePlayer)
				r.Post("/players/{playerID}/documents/{docType}", h.Team.SubmitDocument)
			})
		})

		r.Get("/matches", h.Match.ListMatches)
		r.Get("/matches/{matchID}", h.Match.GetMatch)
		r.Get("/standings", h.Standings.GetStandings)
		r.Get("/content", h.Content.GetContent)
		r.Get("/limits", h.Content.GetLimits)

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.Authenticate(opts.JWTSecret))
			r.Use(middleware.Authorize(middleware.RoleAdmin))

			r.Get("/dashboard", h.Dashboard.Stats)

			r.Route("/matches", func(r chi.Router) {
				r.Post("/", h.Match.CreateMatch)
				r.Post("/generate", h.Match.GenerateSchedule)
				r.Post("/knockout", h.Match.GenerateKnockout)
				r.Route("/{matchID}", func(r chi.Router) {
					r.Delete("/", h.Match.DeleteMatch)
					r.Put("/score", h.Match.SetScore)
					r.Put("/status", h.Match.SetStatus)
					r.Post("/report", h.Match.OpenReport)
					r.Put("/report/stats", h.Match.AdjustStat)
					r.Put("/report/observations", h.Match.SetObservations)
					r.Post("/report/image", h.Match.AttachReportImage)
				})
			})

			r.Put("/teams/{teamID}/payment", h.Team.MarkPaid)
			r.Put("/teams/{teamID}/players/{playerID}/documents/{docType}", h.Team.ReviewDocument)

			r.Put("/content", h.Content.UpdateContent)
			r.Post("/content/sponsors", h.Content.AddSponsor)
			r.Delete("/content/sponsors/{sponsorID}", h.Content.DeleteSponsor)
			r.Post("/content/gallery", h.Content.AddGalleryItem)
			r.Delete("/content/gallery/{itemID}", h.Content.DeleteGalleryItem)
			r.Put("/limits", h.Content.UpdateLimits)
		})
	})
}
