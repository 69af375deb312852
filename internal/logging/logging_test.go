package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
	"go.viam.com/test"
)

func TestNewLoggerConfig(t *testing.T) {
	cfg := NewLoggerConfig(false)
	test.That(t, cfg.Level.Level(), test.ShouldEqual, zapcore.InfoLevel)
	test.That(t, cfg.OutputPaths, test.ShouldResemble, []string{"stderr"})
	test.That(t, cfg.DisableStacktrace, test.ShouldBeTrue)

	cfg = NewLoggerConfig(true)
	test.That(t, cfg.Level.Level(), test.ShouldEqual, zapcore.DebugLevel)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("gridplan", true)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeTrue)

	logger, err = NewLogger("gridplan", false)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, logger.Desugar().Core().Enabled(zapcore.DebugLevel), test.ShouldBeFalse)
}
