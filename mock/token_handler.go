package main

import (
	"encoding/json"
	"net/http"
)

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type TokenError struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// TokenHandler issues a short-lived bearer token for any client_credentials
// request. Credentials are not verified beyond being present.
func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if r.PostForm.Get("grant_type") != "client_credentials" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(TokenError{
			Error:            "unsupported_grant_type",
			ErrorDescription: "only client_credentials is supported",
		})
		return
	}

	if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(TokenError{
			Error:            "invalid_client",
			ErrorDescription: "client_id and client_secret are required",
		})
		return
	}

	json.NewEncoder(w).Encode(TokenResponse{
		AccessToken: "mock-access-token",
		TokenType:   "Bearer",
		ExpiresIn:   1799,
	})
}
