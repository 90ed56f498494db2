package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/apmath/intcalc/internal/bigint"
	"github.com/apmath/intcalc/internal/orchestration"
	"github.com/apmath/intcalc/internal/service"
)

// handleHealth responds to health check requests. It returns a 200 OK
// status with a JSON payload indicating the service is healthy.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().Unix(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleOperations returns the list of available operations and registered
// backends as a JSON object.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleOperations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	response := map[string]any{
		"operations": orchestration.AvailableOperations(),
		"backends":   s.factory.List(),
	}

	s.writeJSONResponse(w, http.StatusOK, response)
}

// handleCompute processes evaluation requests. It parses the query
// parameters 'op' (the operation), 'arg' (repeated, the operands) and the
// optional 'base'/'obase', executes the evaluation, and returns the result
// in JSON format.
//
// Parameters:
//   - w: The HTTP response writer.
//   - r: The HTTP request.
func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	// Parse and validate parameters using helper
	req, err := parseComputeParams(r, s.cfg.InputBase, s.cfg.OutputBase)
	if err != nil {
		if parseErr, ok := err.(ComputeParseError); ok {
			s.writeErrorResponse(w, parseErr.StatusCode, parseErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	// Create a context with timeout for the evaluation
	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	// Perform the evaluation
	start := time.Now()
	result, err := s.service.Compute(ctx, req.op, req.args, req.inBase)
	duration := time.Since(start)

	// Handle operand size limit error
	if errors.Is(err, service.ErrOperandTooLarge) {
		s.writeErrorResponse(w, http.StatusBadRequest,
			fmt.Sprintf("Operand exceeds maximum allowed length (%d digits). This limit prevents resource exhaustion.", s.securityConfig.MaxOperandDigits))
		return
	}

	// Build and send response using helper
	resp := buildComputeResponse(req, result, duration, err)
	s.writeJSONResponse(w, http.StatusOK, resp)
}

// computeRequest holds the parsed parameters of one compute request.
type computeRequest struct {
	op      string
	args    []string
	inBase  int
	outBase int
}

// parseComputeParams extracts and validates the evaluation parameters from
// the request.
//
// Parameters:
//   - r: The HTTP request containing query parameters.
//   - defaultInBase: The server's configured input base.
//   - defaultOutBase: The server's configured output base.
//
// Returns:
//   - computeRequest: The parsed request.
//   - err: A ComputeParseError if validation fails, nil otherwise.
func parseComputeParams(r *http.Request, defaultInBase, defaultOutBase int) (computeRequest, error) {
	query := r.URL.Query()

	op := query.Get("op")
	if op == "" {
		return computeRequest{}, ComputeParseError{
			Message:    "Missing 'op' parameter",
			StatusCode: http.StatusBadRequest,
		}
	}
	if _, ok := orchestration.OperationArity(op); !ok {
		return computeRequest{}, ComputeParseError{
			Message:    fmt.Sprintf("Unknown operation: %s", op),
			StatusCode: http.StatusBadRequest,
		}
	}

	req := computeRequest{
		op:      op,
		args:    query["arg"],
		inBase:  defaultInBase,
		outBase: defaultOutBase,
	}

	var err error
	if req.inBase, err = parseBaseParam(query.Get("base"), defaultInBase); err != nil {
		return computeRequest{}, err
	}
	if req.outBase, err = parseBaseParam(query.Get("obase"), defaultOutBase); err != nil {
		return computeRequest{}, err
	}
	return req, nil
}

// parseBaseParam parses an optional base query parameter.
func parseBaseParam(value string, fallback int) (int, error) {
	if value == "" {
		return fallback, nil
	}
	base, err := strconv.Atoi(value)
	if err != nil || base < bigint.MinBase || base > bigint.MaxBase {
		return 0, ComputeParseError{
			Message:    fmt.Sprintf("Invalid base parameter: must be an integer in %d..%d", bigint.MinBase, bigint.MaxBase),
			StatusCode: http.StatusBadRequest,
		}
	}
	return base, nil
}

// buildComputeResponse constructs the response struct for an evaluation.
//
// Parameters:
//   - req: The parsed compute request.
//   - result: The evaluation result (only meaningful when err is nil).
//   - duration: The time taken for the evaluation.
//   - err: Any error that occurred during evaluation.
//
// Returns:
//   - Response: The constructed response struct.
func buildComputeResponse(req computeRequest, result bigint.Int, duration time.Duration, err error) Response {
	resp := Response{
		Op:       req.op,
		Args:     req.args,
		Base:     req.outBase,
		Duration: duration.String(),
	}

	if err != nil {
		resp.Error = err.Error()
	} else {
		text := result.Text(req.outBase)
		resp.Result = text
		resp.Digits = len(text)
		if result.Sign() < 0 {
			resp.Digits--
		}
	}

	return resp
}

// writeJSONResponse helper function to write a JSON response with the
// correct content type.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - data: The data to be encoded as JSON.
func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Printf("Error encoding JSON response: %v", err)
	}
}

// writeErrorResponse helper function to write a standardized error response.
//
// Parameters:
//   - w: The HTTP response writer.
//   - statusCode: The HTTP status code to write.
//   - message: The error message to be included in the response body.
func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	errResp := ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	}
	s.writeJSONResponse(w, statusCode, errResp)
}
