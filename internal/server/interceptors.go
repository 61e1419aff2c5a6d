package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"buf.build/go/protovalidate"
	"connectrpc.com/connect"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
)

// ErrPanicRecovered indicates an RPC handler panicked and was recovered.
var ErrPanicRecovered = errors.New("panic recovered in rpc handler")

// deviceScoped and protocolScoped match request messages that name a
// device or a protocol.
type (
	deviceScoped   interface{ GetDevice() string }
	protocolScoped interface{ GetProtocol() string }
)

// requestAttrs returns the device and protocol a request addresses.
func requestAttrs(msg any) []slog.Attr {
	var attrs []slog.Attr
	if m, ok := msg.(deviceScoped); ok && m.GetDevice() != "" {
		attrs = append(attrs, slog.String("device", m.GetDevice()))
	}
	if m, ok := msg.(protocolScoped); ok && m.GetProtocol() != "" {
		attrs = append(attrs, slog.String("protocol", m.GetProtocol()))
	}
	return attrs
}

// -------------------------------------------------------------------------
// Logging
// -------------------------------------------------------------------------

// LoggingInterceptor logs every RPC with the procedure name, the
// simulation run, the device and protocol the request addresses, the
// duration and the error (if any). Streams are logged when they close,
// with the number of messages sent.
//
// Log level is Info for successful calls and Warn for calls that return errors.
type LoggingInterceptor struct {
	logger *slog.Logger
	runID  string
}

// NewLoggingInterceptor returns a LoggingInterceptor tagging entries with
// runID.
func NewLoggingInterceptor(logger *slog.Logger, runID uuid.UUID) *LoggingInterceptor {
	return &LoggingInterceptor{logger: logger, runID: runID.String()}
}

// WrapUnary implements connect.Interceptor.
func (i *LoggingInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		start := time.Now()
		resp, err := next(ctx, req)

		attrs := append([]slog.Attr{
			slog.String("procedure", req.Spec().Procedure),
			slog.String("run_id", i.runID),
		}, requestAttrs(req.Any())...)
		attrs = append(attrs, slog.Duration("duration", time.Since(start)))

		i.log(ctx, "rpc completed", err, attrs)
		return resp, err
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *LoggingInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *LoggingInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		start := time.Now()
		counted := &countingConn{StreamingHandlerConn: conn}
		err := next(ctx, counted)

		attrs := append([]slog.Attr{
			slog.String("procedure", conn.Spec().Procedure),
			slog.String("run_id", i.runID),
		}, requestAttrs(counted.request)...)
		attrs = append(attrs,
			slog.Duration("duration", time.Since(start)),
			slog.Int("sent", counted.sent),
		)

		i.log(ctx, "stream completed", err, attrs)
		return err
	}
}

func (i *LoggingInterceptor) log(ctx context.Context, msg string, err error, attrs []slog.Attr) {
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		i.logger.LogAttrs(ctx, slog.LevelWarn, msg+" with error", attrs...)
		return
	}
	i.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// countingConn remembers the first request and counts responses.
type countingConn struct {
	connect.StreamingHandlerConn

	request any
	sent    int
}

func (c *countingConn) Receive(msg any) error {
	if err := c.StreamingHandlerConn.Receive(msg); err != nil {
		return err
	}
	if c.request == nil {
		c.request = msg
	}
	return nil
}

func (c *countingConn) Send(msg any) error {
	if err := c.StreamingHandlerConn.Send(msg); err != nil {
		return err
	}
	c.sent++
	return nil
}

// -------------------------------------------------------------------------
// Recovery
// -------------------------------------------------------------------------

// RecoveryInterceptor recovers from panics in RPC handlers, unary and
// streaming. On panic, it logs the panic value and stack trace at Error
// level and returns a CodeInternal error to the client.
type RecoveryInterceptor struct {
	logger *slog.Logger
}

// NewRecoveryInterceptor returns a RecoveryInterceptor.
func NewRecoveryInterceptor(logger *slog.Logger) *RecoveryInterceptor {
	return &RecoveryInterceptor{logger: logger}
}

// WrapUnary implements connect.Interceptor.
func (i *RecoveryInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (resp connect.AnyResponse, retErr error) {
		defer func() {
			if r := recover(); r != nil {
				retErr = i.recovered(ctx, req.Spec().Procedure, r)
			}
		}()

		return next(ctx, req)
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (i *RecoveryInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (i *RecoveryInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) (retErr error) {
		defer func() {
			if r := recover(); r != nil {
				retErr = i.recovered(ctx, conn.Spec().Procedure, r)
			}
		}()

		return next(ctx, conn)
	}
}

func (i *RecoveryInterceptor) recovered(ctx context.Context, procedure string, r any) error {
	// Capture a stack trace for debugging.
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)

	i.logger.ErrorContext(ctx, "panic recovered in rpc handler",
		slog.String("procedure", procedure),
		slog.Any("panic", r),
		slog.String("stack", string(buf[:n])),
	)

	return connect.NewError(connect.CodeInternal, fmt.Errorf("%s: %w", procedure, ErrPanicRecovered))
}

// -------------------------------------------------------------------------
// Validation
// -------------------------------------------------------------------------

// ValidationInterceptor checks request messages against their
// buf.validate field rules before the handler runs. Violations fail with
// CodeInvalidArgument.
type ValidationInterceptor struct{}

// WrapUnary implements connect.Interceptor.
func (ValidationInterceptor) WrapUnary(next connect.UnaryFunc) connect.UnaryFunc {
	return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		if err := validateMessage(req.Any()); err != nil {
			return nil, err
		}
		return next(ctx, req)
	}
}

// WrapStreamingClient implements connect.Interceptor.
func (ValidationInterceptor) WrapStreamingClient(next connect.StreamingClientFunc) connect.StreamingClientFunc {
	return next
}

// WrapStreamingHandler implements connect.Interceptor.
func (ValidationInterceptor) WrapStreamingHandler(next connect.StreamingHandlerFunc) connect.StreamingHandlerFunc {
	return func(ctx context.Context, conn connect.StreamingHandlerConn) error {
		return next(ctx, &validatingConn{StreamingHandlerConn: conn})
	}
}

type validatingConn struct {
	connect.StreamingHandlerConn
}

func (c *validatingConn) Receive(msg any) error {
	if err := c.StreamingHandlerConn.Receive(msg); err != nil {
		return err
	}
	return validateMessage(msg)
}

func validateMessage(msg any) error {
	m, ok := msg.(proto.Message)
	if !ok {
		return nil
	}

	err := protovalidate.Validate(m)
	if err == nil {
		return nil
	}

	var verr *protovalidate.ValidationError
	if errors.As(err, &verr) {
		return connect.NewError(connect.CodeInvalidArgument, err)
	}
	return connect.NewError(connect.CodeInternal, fmt.Errorf("validate request: %w", err))
}

// -------------------------------------------------------------------------
// Handler options
// -------------------------------------------------------------------------

// LoggingInterceptorOption wraps LoggingInterceptor as a handler option.
func LoggingInterceptorOption(logger *slog.Logger, runID uuid.UUID) connect.HandlerOption {
	return connect.WithInterceptors(NewLoggingInterceptor(logger, runID))
}

// RecoveryInterceptorOption wraps RecoveryInterceptor as a handler option.
func RecoveryInterceptorOption(logger *slog.Logger) connect.HandlerOption {
	return connect.WithInterceptors(NewRecoveryInterceptor(logger))
}

// ValidationInterceptorOption wraps ValidationInterceptor as a handler
// option. New installs it on every handler.
func ValidationInterceptorOption() connect.HandlerOption {
	return connect.WithInterceptors(ValidationInterceptor{})
}
