package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"

	formhttp "github.com/zabka-mb/backend/form/http"
	"github.com/zabka-mb/backend/httpjson"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(
	formHandler *formhttp.FormHttpHandler,
	allowedOrigins []string,
) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("zabka-backend", httplog.Options{
		LogLevel:         slog.LevelInfo,
		Concise:          true,
		MessageFieldName: "message",
	})

	router.Use(httplog.RequestLogger(logger))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         3000,
	}))

	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httpjson.WriteErrorJson(w, "Only Post Method Is Allowed",
			http.StatusMethodNotAllowed, nil)
	})

	formHandler.RegisterRoutes(router)

	return &HttpServer{router: router}
}

func (httpserver *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, httpserver.router)
}

// Router exposes the handler for tests.
func (httpserver *HttpServer) Router() http.Handler {
	return httpserver.router
}
