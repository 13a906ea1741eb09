package service_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/guarddiv/internal/domain"
	"github.com/pkordes/guarddiv/internal/service"
)

// failOnWrite is an io.Writer that fails its failAt-th call (1-based) and
// records every other write.
type failOnWrite struct {
	failAt int
	calls  int
	buf    bytes.Buffer
}

var errWrite = errors.New("disk full")

func (f *failOnWrite) Write(p []byte) (int, error) {
	f.calls++
	if f.calls == f.failAt {
		return 0, errWrite
	}
	return f.buf.Write(p)
}

// ---- helpers ---------------------------------------------------------------

func quietService() *service.DivisionService {
	return service.NewDivisionService(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
}

func evaluate(t *testing.T, dividend, divisor int64) (string, domain.Outcome, error) {
	t.Helper()
	var buf bytes.Buffer
	out, err := quietService().Evaluate(context.Background(), &buf, domain.Operands{Dividend: dividend, Divisor: divisor})
	return buf.String(), out, err
}

// ---- handled paths ---------------------------------------------------------

func TestDivisionService_Evaluate_DivisionByZero(t *testing.T) {
	got, out, err := evaluate(t, 10, 0)

	require.NoError(t, err)
	assert.Equal(t, "Error: division by zero\nThis will always execute.\n", got)
	assert.Equal(t, domain.PathError, out.Path)
	assert.Equal(t, "division by zero", out.Error)
	assert.Nil(t, out.Quotient)
	assert.Equal(t, []string{"Error: division by zero", "This will always execute."}, out.Lines)
}

func TestDivisionService_Evaluate_Success(t *testing.T) {
	got, out, err := evaluate(t, 10, 2)

	require.NoError(t, err)
	assert.Equal(t, "No exception occurred.\nThis will always execute.\n", got)
	assert.Equal(t, domain.PathSuccess, out.Path)
	assert.Empty(t, out.Error)
	require.NotNil(t, out.Quotient)
	assert.EqualValues(t, 5, *out.Quotient)
}

func TestDivisionService_Evaluate_ExactlyOneRegionAndCleanupLast(t *testing.T) {
	for _, divisor := range []int64{-3, -1, 0, 1, 2, 7} {
		got, _, err := evaluate(t, 10, divisor)
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
		require.Len(t, lines, 2, "divisor %d", divisor)
		assert.Equal(t, domain.CleanupLine, lines[1], "divisor %d", divisor)

		hasError := strings.HasPrefix(lines[0], domain.ErrorLinePrefix)
		hasSuccess := lines[0] == domain.SuccessLine
		assert.True(t, hasError != hasSuccess, "divisor %d: exactly one of error/success", divisor)
		assert.Equal(t, divisor == 0, hasError, "divisor %d", divisor)
	}
}

func TestDivisionService_Evaluate_AssignsDistinctRunIDs(t *testing.T) {
	_, a, err := evaluate(t, 10, 0)
	require.NoError(t, err)
	_, b, err := evaluate(t, 10, 0)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

// ---- unhandled paths -------------------------------------------------------

func TestDivisionService_Evaluate_OverflowPropagatesAfterCleanup(t *testing.T) {
	got, out, err := evaluate(t, math.MinInt64, -1)

	assert.ErrorIs(t, err, domain.ErrOverflow)
	assert.Equal(t, "This will always execute.\n", got)
	assert.Empty(t, out.Path)
	assert.Equal(t, []string{domain.CleanupLine}, out.Lines)
}

func TestDivisionService_Evaluate_ErrorRegionFailureStillRunsCleanup(t *testing.T) {
	w := &failOnWrite{failAt: 1}

	_, err := quietService().Evaluate(context.Background(), w, domain.Operands{Dividend: 10, Divisor: 0})

	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, 2, w.calls)
	assert.Equal(t, "This will always execute.\n", w.buf.String())
}

func TestDivisionService_Evaluate_SuccessRegionFailureStillRunsCleanup(t *testing.T) {
	w := &failOnWrite{failAt: 1}

	_, err := quietService().Evaluate(context.Background(), w, domain.Operands{Dividend: 10, Divisor: 2})

	assert.ErrorIs(t, err, errWrite)
	assert.Equal(t, "This will always execute.\n", w.buf.String())
}

func TestDivisionService_Evaluate_LogsRunAttributes(t *testing.T) {
	var logs bytes.Buffer
	svc := service.NewDivisionService(slog.New(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	out, err := svc.Evaluate(context.Background(), &bytes.Buffer{}, domain.DefaultOperands())

	require.NoError(t, err)
	assert.Contains(t, logs.String(), out.ID.String())
	assert.Contains(t, logs.String(), `"divisor":0`)
}
