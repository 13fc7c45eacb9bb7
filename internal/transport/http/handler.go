package http

import (
	"context"
	"encoding/json"
	"net/http"

	"prassign/internal/domain"
	"prassign/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type ReviewsService interface {
	Submit(ctx context.Context, sub domain.Submission) (domain.ReviewRequest, error)
}

type TeamService interface {
	Team() service.TeamOverview
}

type MembersService interface {
	RegisterMember(ctx context.Context, member domain.Member) (domain.Member, error)
	Members() []domain.Member
}

type Handler struct {
	reviewsService ReviewsService
	teamService    TeamService
	membersService MembersService
}

func NewHandler(reviews ReviewsService, team TeamService, members MembersService) *Handler {
	return &Handler{
		reviewsService: reviews,
		teamService:    team,
		membersService: members,
	}
}

func (h *Handler) Routes() http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Route("/review", func(r chi.Router) {
		r.Post("/submit", h.handleReviewSubmit)
	})

	router.Route("/team", func(r chi.Router) {
		r.Get("/groups", h.handleTeamGroups)
	})

	router.Route("/members", func(r chi.Router) {
		r.Get("/", h.handleMembersList)
		r.Post("/register", h.handleMemberRegister)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	return router
}

// Helpers

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if v == nil {
		return
	}

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status, body := mappingDomainErrors(err)
	writeJSON(w, status, body)
}

func writeBadJSON(w http.ResponseWriter) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{
		Error: errorBody{
			Code:    "BAD_REQUEST",
			Message: "invalid JSON",
		},
	})
}
