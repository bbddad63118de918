package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/cocoon/internal/service"
	"github.com/limbo/cocoon/pkg/httputil"
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	checklistService    service.ChecklistServiceI
	pregnancyService    service.PregnancyServiceI
	appointmentsService service.AppointmentsServiceI
	jwtService          JWTServiceI
}

type ServicesList struct {
	UserService         service.UserServiceI
	ChecklistService    service.ChecklistServiceI
	PregnancyService    service.PregnancyServiceI
	AppointmentsService service.AppointmentsServiceI
	JwtService          JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		checklistService:    servicesOptions.ChecklistService,
		pregnancyService:    servicesOptions.PregnancyService,
		appointmentsService: servicesOptions.AppointmentsService,
		jwtService:          servicesOptions.JwtService,
	}
}

func (s *Server) MountEndpoints() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Route("/account", func(r chi.Router) {
				r.Get("/", s.GetAccount)
				r.Put("/", s.UpdateAccount)
				r.Delete("/", s.DeleteAccount)
			})

			r.Route("/checklists", func(r chi.Router) {
				r.Get("/{type}", s.GetChecklist)
				r.Post("/items/{id}/toggle", s.ToggleChecklistItem)
				r.Post("/{id}/reset", s.ResetChecklist)
			})

			r.Route("/pregnancy", func(r chi.Router) {
				r.Get("/", s.GetPregnancy)
				r.Put("/", s.UpdatePregnancy)
				r.Delete("/", s.ResetPregnancy)
			})

			r.Route("/appointments", func(r chi.Router) {
				r.Get("/", s.ListAppointments)
				r.Post("/", s.CreateAppointment)
				r.Patch("/{id}", s.UpdateAppointment)
				r.Delete("/{id}", s.DeleteAppointment)
			})
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}
