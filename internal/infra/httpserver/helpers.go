package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	ContentTypeJSON    = "application/json"
	ContentTypeMsgpack = "application/msgpack"
)

type ErrorResponse struct {
	Message string            `json:"message,omitempty" msgpack:"message,omitempty"`
	Errors  map[string]string `json:"errors,omitempty" msgpack:"errors,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg})
}

func ReplyWithFieldErrors(w http.ResponseWriter, statusCode int, errMsg string, errs map[string]string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg, Errors: errs})
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

func ReplyMsgpackResponse(w http.ResponseWriter, statusCode int, output any) {
	data, err := msgpack.Marshal(output)
	if err != nil {
		ReplyWithError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", ContentTypeMsgpack)
	w.WriteHeader(statusCode)
	w.Write(data)
}

// WantsMsgpack reports whether the client asked for msgpack in Accept.
func WantsMsgpack(r *http.Request) bool {
	for _, part := range strings.Split(r.Header.Get("Accept"), ",") {
		mediaType, _, _ := strings.Cut(strings.TrimSpace(part), ";")
		if strings.EqualFold(strings.TrimSpace(mediaType), ContentTypeMsgpack) {
			return true
		}
	}
	return false
}

// ReplyNegotiated encodes output as msgpack or JSON depending on Accept.
func ReplyNegotiated(w http.ResponseWriter, r *http.Request, statusCode int, output any) {
	if WantsMsgpack(r) {
		ReplyMsgpackResponse(w, statusCode, output)
		return
	}
	ReplyJSONResponse(w, statusCode, output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("marshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}
