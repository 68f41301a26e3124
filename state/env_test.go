package state

import (
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"csc/config"
	"csc/input"
)

func TestContextWithEnv(t *testing.T) {
	ctx := ContextWithEnv(context.Background())
	env := EnvFromContext(ctx)
	if env == nil {
		t.Fatal("EnvFromContext() returned nil")
	}
	if env.start.IsZero() {
		t.Error("Environment start time not set")
	}
	if EnvFromContext(ctx) != env {
		t.Error("context should carry the same environment")
	}

	time.Sleep(5 * time.Millisecond)
	if up := env.Uptime(); up < 5*time.Millisecond || up > time.Second {
		t.Errorf("Uptime() = %v", up)
	}
}

func TestEnvFromContext_Missing(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when env not in context")
		}
	}()
	EnvFromContext(context.Background())
}

func TestLocalEnv_StdLog(t *testing.T) {
	t.Run("redirected", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		env := &LocalEnv{Log: zap.New(core)}

		for range 2 {
			env.RedirectStdLog()
			log.Print("from standard logger")
			env.RestoreStdLog()
		}
		if logs.FilterMessage("from standard logger").Len() != 2 {
			t.Errorf("standard logger output was not redirected: %v", logs.All())
		}

		log.Print("after restore")
		if logs.FilterMessage("after restore").Len() != 0 {
			t.Error("standard logger was not restored")
		}
	})

	t.Run("without logger", func(t *testing.T) {
		env := &LocalEnv{}
		env.RedirectStdLog()
		if env.restoreStdLog != nil {
			t.Error("Expected restoreStdLog to remain nil")
		}
		env.RestoreStdLog()
	})

	t.Run("restore without redirect", func(t *testing.T) {
		env := &LocalEnv{Log: zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))}
		env.RestoreStdLog()
	})
}

func TestLocalEnv_DocumentOptions(t *testing.T) {
	env := &LocalEnv{}
	if opts := env.DocumentOptions(); len(opts) != 0 {
		t.Errorf("expected no options without configuration, got %d", len(opts))
	}

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Cascade.InsideLink = config.InsideLinkVisited
	cfg.Cascade.Environment = map[string]string{"gap": "3px"}
	env.Cfg = cfg

	doc, err := input.Load(strings.NewReader(`
blocks:
  - origin: author
    declarations: "margin-top: env(gap)"
`), zaptest.NewLogger(t), env.DocumentOptions()...)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.InsideLink != "visited" {
		t.Errorf("InsideLink = %q, want visited", doc.InsideLink)
	}
	if doc.Env["gap"] != "3px" {
		t.Errorf("Env = %v", doc.Env)
	}
}
