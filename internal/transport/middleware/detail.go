package middleware

import (
	"net/http"

	"github.com/goccy/go-json"
)

type detailBody struct {
	Detail string `json:"detail"`
}

func writeDetail(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(detailBody{Detail: msg}) //nolint:errcheck
}
