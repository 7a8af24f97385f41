package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"media-search-service/internal/logging"
)

type TokenHandler struct {
	issuer *Issuer
	log    logging.Logger
}

func NewTokenHandler(issuer *Issuer, log logging.Logger) *TokenHandler {
	return &TokenHandler{issuer: issuer, log: log}
}

type tokenRequest struct {
	ClientID string `json:"clientId"`
}

type tokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

func (h *TokenHandler) HandleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	req.ClientID = strings.TrimSpace(req.ClientID)
	if req.ClientID == "" {
		writeError(w, http.StatusBadRequest, "clientId is required")
		return
	}
	if len(req.ClientID) > 64 {
		writeError(w, http.StatusBadRequest, "clientId must be 64 characters or fewer")
		return
	}

	token, err := h.issuer.IssueToken(req.ClientID)
	if err != nil {
		h.log.Errorw("token issuance failed", "clientId", req.ClientID, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.issuer.TTL().Seconds()),
	})
}
