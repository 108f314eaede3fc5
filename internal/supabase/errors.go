package supabase

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gamingleague/tournaments-web/internal/model"
)

// errorBody covers the error shapes of both PostgREST
// ({"code","message","details","hint"}) and GoTrue
// ({"error","error_description"} or {"msg"}).
type errorBody struct {
	Message          string `json:"message"`
	Msg              string `json:"msg"`
	ErrorDescription string `json:"error_description"`
	ErrorCode        string `json:"error"`
}

// remoteError maps a non-2xx response to a RemoteError carrying the
// provider's own message, which is what gets shown to the user.
func remoteError(status int, body []byte) *model.RemoteError {
	var parsed errorBody
	_ = json.Unmarshal(body, &parsed)

	message := parsed.Message
	if message == "" {
		message = parsed.Msg
	}
	if message == "" {
		message = parsed.ErrorDescription
	}
	if message == "" {
		message = parsed.ErrorCode
	}
	if message == "" {
		message = strings.TrimSpace(string(body))
	}
	if message == "" {
		message = fmt.Sprintf("request failed with status %d", status)
	}

	return &model.RemoteError{Message: message, Status: status}
}
