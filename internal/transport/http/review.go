package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) handleReviewSubmit(w http.ResponseWriter, r *http.Request) {
	var req ReviewSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	review, err := h.reviewsService.Submit(r.Context(), submissionFromDto(req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ReviewSubmitResponse{
		Review: reviewToDto(review),
	})
}

func (h *Handler) handleTeamGroups(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, teamToDto(h.teamService.Team()))
}
