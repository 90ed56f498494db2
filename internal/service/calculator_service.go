package service

import (
	"context"
	"errors"

	"github.com/apmath/intcalc/internal/bigint"
	"github.com/apmath/intcalc/internal/config"
	apperrors "github.com/apmath/intcalc/internal/errors"
	"github.com/apmath/intcalc/internal/orchestration"
)

var (
	// ErrOperandTooLarge is returned when an operand exceeds the configured
	// maximum digit count.
	ErrOperandTooLarge = errors.New("maximum operand size exceeded")
)

// Service defines the interface for evaluation services. The abstraction
// enables dependency injection and easier testing/mocking.
type Service interface {
	// Compute evaluates one operation on textual operands.
	//
	// Parameters:
	//   - ctx: The context for cancellation.
	//   - op: The operation name.
	//   - operands: The textual operands, written in base.
	//   - base: The base the operands are written in (2..36).
	//
	// Returns:
	//   - bigint.Int: The result.
	//   - error: An error if validation or evaluation fails.
	Compute(ctx context.Context, op string, operands []string, base int) (bigint.Int, error)
}

// CalculatorService holds the core evaluation logic shared by the CLI and
// the HTTP server: operand validation, parsing, backend retrieval and
// execution with the configured options. Implements the Service interface.
type CalculatorService struct {
	factory   *orchestration.BackendFactory
	config    config.AppConfig
	maxDigits int
}

// Ensure CalculatorService implements Service interface.
var _ Service = (*CalculatorService)(nil)

// NewCalculatorService creates a new instance of CalculatorService.
//
// Parameters:
//   - factory: The factory to retrieve backends from.
//   - cfg: The application configuration.
//   - maxDigits: The maximum allowed operand length in digits (0 for no
//     limit).
func NewCalculatorService(factory *orchestration.BackendFactory, cfg config.AppConfig, maxDigits int) *CalculatorService {
	return &CalculatorService{
		factory:   factory,
		config:    cfg,
		maxDigits: maxDigits,
	}
}

// Compute validates the request, parses the operands and evaluates the
// operation on the native backend.
//
// Parameters:
//   - ctx: The context for cancellation.
//   - op: The operation name.
//   - operands: The textual operands.
//   - base: The base the operands are written in.
//
// Returns:
//   - bigint.Int: The result.
//   - error: An error if validation or evaluation fails.
func (s *CalculatorService) Compute(ctx context.Context, op string, operands []string, base int) (bigint.Int, error) {
	args, err := s.ParseOperands(op, operands, base)
	if err != nil {
		return bigint.Int{}, err
	}

	backend, err := s.factory.Get("native")
	if err != nil {
		return bigint.Int{}, err
	}

	// Progress updates are not surfaced in synchronous service usage.
	return backend.Evaluate(ctx, nil, 0, op, args, s.config.ToCalculationOptions())
}

// ParseOperands validates the operation name, the operand count against the
// operation's arity, and each operand's size, then parses the operands.
//
// Parameters:
//   - op: The operation name.
//   - operands: The textual operands.
//   - base: The base the operands are written in.
//
// Returns:
//   - []bigint.Int: The parsed operands.
//   - error: An error if validation or parsing fails.
func (s *CalculatorService) ParseOperands(op string, operands []string, base int) ([]bigint.Int, error) {
	arity, ok := orchestration.OperationArity(op)
	if !ok {
		return nil, apperrors.NewArgumentError(op, "unknown operation")
	}
	if len(operands) != arity {
		return nil, apperrors.NewArgumentError(op, "expected %d operand(s), got %d", arity, len(operands))
	}

	args := make([]bigint.Int, len(operands))
	for i, text := range operands {
		if s.maxDigits > 0 && len(text) > s.maxDigits {
			return nil, ErrOperandTooLarge
		}
		v, err := bigint.Parse(text, base)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}
