package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// --- Response Types ---

// Response is the single JSON envelope every endpoint uses. Success
// responses carry Message and Data; error responses carry Message and,
// when a diagnostic detail exists, Error.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// --- Success Response Helpers ---

// respondOK sends a 200 OK response with a message and data.
func respondOK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{Success: true, Message: message, Data: data})
}

// respondCreated sends a 201 Created response with a message and data.
func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Success: true, Message: message, Data: data})
}

// respondNotModified sends a 304 Not Modified response. The status alone
// signals the no-op: RFC 7232 forbids a body on 304 and gin drops whatever
// is rendered, so no envelope is attached.
func respondNotModified(c *gin.Context) {
	c.Status(http.StatusNotModified)
}

// respondNoContent sends a 204 No Content response (delete-all on an
// already empty collection).
func respondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// --- Error Response Helpers ---

// respondBadRequest sends a 400 Bad Request response. Used for both
// validation failures and unique-key conflicts.
func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Message: message})
}

// respondNotFound sends a 404 Not Found response.
func respondNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{Success: false, Message: message})
}

// respondInternalError logs the error with the request ID and sends a 500
// response. The underlying error is echoed to the caller outside release
// mode only.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s) [request_id=%s] %s %s: %v",
		context, RequestID(c), c.Request.Method, c.Request.URL.Path, err)

	resp := Response{Success: false, Message: fmt.Sprintf("Error %s", context)}
	if gin.Mode() != gin.ReleaseMode {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 error and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}

// --- Request Body Decoding ---

// decodeOneOrMany reads the request body as either a single JSON object or
// an array of them, so collection POSTs accept both shapes. bulk reports
// which shape arrived.
func decodeOneOrMany[T any](c *gin.Context) (items []T, bulk bool, err error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, false, err
	}

	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, true, err
		}
		return items, true, nil
	}

	var item T
	if err := json.Unmarshal(body, &item); err != nil {
		return nil, false, err
	}
	return []T{item}, false, nil
}
