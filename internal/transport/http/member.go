package http

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) handleMemberRegister(w http.ResponseWriter, r *http.Request) {
	var req MemberDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadJSON(w)
		return
	}

	member, err := h.membersService.RegisterMember(r.Context(), memberFromDto(req))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, MemberRegisterResponse{
		Member: memberToDto(member),
	})
}

func (h *Handler) handleMembersList(w http.ResponseWriter, r *http.Request) {
	members := h.membersService.Members()

	resp := MembersListResponse{
		Members: make([]MemberDTO, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, memberToDto(m))
	}

	writeJSON(w, http.StatusOK, resp)
}
