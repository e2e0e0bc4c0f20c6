package logging

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "hr.log")

	var console bytes.Buffer
	logger, err := New(Options{Level: "info", File: file, Console: zapcore.AddSync(&console)})
	require.NoError(t, err)

	logger.Info("calendar built", zap.Int("projects", 2))
	logger.Debug("below the configured level")
	require.NoError(t, logger.Sync())

	require.Contains(t, console.String(), "calendar built")
	require.NotContains(t, console.String(), "below the configured level")

	content, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(content), "calendar built")
	require.Contains(t, string(content), `"projects":2`)
}

func TestGormLogger_Trace(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewGormLogger(zap.New(core), gormlogger.Warn)

	sql := func() (string, int64) { return "SELECT 1", 1 }

	logger.Trace(context.Background(), time.Now(), sql, nil)
	require.Equal(t, 0, logs.Len(), "fast successful queries are not logged at warn level")

	logger.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	require.Equal(t, 0, logs.Len(), "record not found is not an error")

	logger.Trace(context.Background(), time.Now(), sql, errors.New("connection refused"))
	require.Equal(t, 1, logs.FilterMessage("query failed").Len())

	logger.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	require.Equal(t, 1, logs.FilterMessage("slow query").Len())
}

func TestGormLogger_Silent(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewGormLogger(zap.New(core), gormlogger.Info).LogMode(gormlogger.Silent)

	logger.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 1 }, errors.New("boom"))
	require.Equal(t, 0, logs.Len())
}
