package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"captions/config"
	deliverycontext "captions/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn(`SELECT * FROM "users"`), gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_LogsFailures(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn(`DELETE FROM "users"`), errors.New("conn reset"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "conn reset")
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn(`SELECT 1`), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_DebugTracesEveryQuery(t *testing.T) {
	quiet, quietBuf := newTestGormLogger(false)
	verbose, verboseBuf := newTestGormLogger(true)

	quiet.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)
	verbose.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), nil)

	assert.Empty(t, quietBuf.String())
	assert.Contains(t, verboseBuf.String(), "GORM query")
}

func TestGormSlogLogger_TruncatesLongStatements(t *testing.T) {
	l, buf := newTestGormLogger(true)
	long := `UPDATE "projects" SET "captions"='` + strings.Repeat("x", 3*maxLoggedSQLLength) + `'`

	l.Trace(context.Background(), time.Now(), sqlFn(long), nil)

	assert.Contains(t, buf.String(), "...(truncated)")
	assert.Less(t, buf.Len(), 2*maxLoggedSQLLength)
}

func TestGormSlogLogger_UsesRequestScopedLogger(t *testing.T) {
	l, _ := newTestGormLogger(true)
	scopedBuf := &bytes.Buffer{}
	scoped := slog.New(slog.NewTextHandler(scopedBuf, nil)).With(slog.String("request_id", "req-42"))
	ctx := deliverycontext.WithLogger(context.Background(), scoped)

	l.Trace(ctx, time.Now(), sqlFn(`SELECT 1`), nil)

	assert.Contains(t, scopedBuf.String(), "request_id=req-42")
}

func TestGormSlogLogger_Messages(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Info(context.Background(), "pool %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "replica %s lagging", "r1")
	assert.Contains(t, buf.String(), "replica r1 lagging")

	silent := l.LogMode(logger.Silent)
	buf.Reset()
	silent.Trace(context.Background(), time.Now(), sqlFn(`SELECT 1`), errors.New("x"))
	assert.Empty(t, buf.String())
}
