package zapdiag_test

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Abyrd9/zod-form-data/zapdiag"
)

func TestLevelsMap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	diag := zapdiag.New(zap.New(core))

	diag.Debugf("walking %s", "items")
	diag.Warnf("shape mismatch at %s", "items.0")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].Message != "walking items" {
		t.Fatalf("debug entry = %+v", entries[0])
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].Message != "shape mismatch at items.0" {
		t.Fatalf("warn entry = %+v", entries[1])
	}
}
