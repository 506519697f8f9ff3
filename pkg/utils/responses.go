package utils

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Msg string `json:"msg"`
}

// ResponseJSON writes a JSON body with the given status code.
func ResponseJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusOK, body)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, body any) {
	ResponseJSON(w, http.StatusCreated, body)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusBadRequest, ErrorResponse{Msg: msg})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusUnauthorized, ErrorResponse{Msg: msg})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusForbidden, ErrorResponse{Msg: msg})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusNotFound, ErrorResponse{Msg: msg})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, msg string) {
	ResponseJSON(w, http.StatusInternalServerError, ErrorResponse{Msg: msg})
}
