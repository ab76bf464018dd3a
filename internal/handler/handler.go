package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/opshub-dev/opshub/backend/internal/availability"
	"github.com/opshub-dev/opshub/backend/internal/config"
	"github.com/opshub-dev/opshub/backend/internal/domain"
	"github.com/opshub-dev/opshub/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	engine      *availability.Engine
	watcher     *availability.Watcher

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, engine *availability.Engine, watcher *availability.Watcher) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		engine:      engine,
		watcher:     watcher,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in user
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Route("/my-info", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Get("/", h.GetMyInfo)
			r.Patch("/password", h.UpdateMyPassword)
			r.Route("/update-email", func(r chi.Router) {
				r.Post("/require", h.RequireUpdateEmail)
				r.Post("/confirm", h.ConfirmUpdateEmail)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/", h.CreateUser)
			r.Get("/", h.GetAllUserInfo)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetUserInfo)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/", h.UpdateUser)
				r.With(h.preventOperateInitialAdmin).With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Delete("/", h.DeleteUser)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Patch("/password", h.UpdateUserPassword)
			})
		})

		r.Route("/availability", func(r chi.Router) {
			r.Use(h.myInfo)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/pending", h.GetPendingAvailability)
			r.Route("/{weekStart}", func(r chi.Router) {
				r.Use(h.preventInactiveUser)
				r.Get("/", h.GetAvailabilityWeek)
				r.Get("/watch", h.WatchAvailabilityWeek)
				r.Post("/submit", h.SubmitAvailability)
				r.Post("/request-changes", h.RequestAvailabilityChanges)
				r.Route("/draft", func(r chi.Router) {
					r.Put("/", h.SaveAvailabilityDraft)
					r.Post("/toggle", h.ToggleAvailabilityDraft)
					r.Delete("/", h.ClearAvailabilityDraft)
				})
			})
			r.Route("/records/{id}", func(r chi.Router) {
				r.Use(h.weekAvailabilityRecord)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/approve", h.ApproveAvailability)
			})
		})

		r.Route("/leaves", func(r chi.Router) {
			r.Use(h.myInfo)
			r.With(h.preventInactiveUser).Post("/", h.RequestLeave)
			r.Get("/", h.GetMyLeaveRequests)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/pending", h.GetPendingLeaveRequests)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.leaveRequest)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/approve", h.ApproveLeaveRequest)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/reject", h.RejectLeaveRequest)
			})
		})

		r.Route("/time-entries", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.preventInactiveUser)
			r.Post("/clock-in", h.ClockIn)
			r.Post("/clock-out", h.ClockOut)
			r.Post("/manual", h.CreateManualTimeEntry)
			r.Get("/", h.GetMyTimeEntries)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/all", h.GetAllTimeEntries)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/active", h.GetActiveTimeEntries)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateTransaction)
			r.Get("/", h.GetTransactions)
		})

		r.Route("/costs", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateCost)
			r.Get("/", h.GetCosts)
			r.Get("/summary", h.GetCostSummary)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.cost)
				r.Patch("/", h.UpdateCost)
				r.Delete("/", h.DeleteCost)
			})
		})

		r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Get("/kpis", h.GetKPIOverview)

		r.Route("/tasks", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Post("/", h.CreateTask)
			r.Get("/", h.GetAllTasks)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.task)
				r.Patch("/", h.UpdateTask)
				r.Patch("/status", h.UpdateTaskStatus)
				r.Delete("/", h.DeleteTask)
			})
		})

		r.Route("/recruitment-leads", func(r chi.Router) {
			r.Use(h.myInfo)
			r.Use(h.RequiredRole([]domain.Role{domain.RoleAdmin}))
			r.Post("/", h.CreateLead)
			r.Get("/", h.GetAllLeads)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.lead)
				r.Patch("/", h.UpdateLead)
				r.Patch("/status", h.UpdateLeadStatus)
				r.Delete("/", h.DeleteLead)
			})
		})
	})
}
