package logging

import (
	"bytes"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func captureLog(t *testing.T, level logrus.Level) *bytes.Buffer {
	buf := &bytes.Buffer{}
	oldOut := logrus.StandardLogger().Out
	oldLevel := logrus.GetLevel()
	oldFormatter := logrus.StandardLogger().Formatter
	logrus.SetOutput(buf)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		logrus.SetOutput(oldOut)
		logrus.SetLevel(oldLevel)
		logrus.SetFormatter(oldFormatter)
	})
	return buf
}

func Test_SetVerbosity(t *testing.T) {
	oldLevel := logrus.GetLevel()
	defer logrus.SetLevel(oldLevel)

	SetVerbosity(nil)
	require.Equal(t, logrus.WarnLevel, logrus.GetLevel())
	require.Equal(t, "WARN", VerbosityName())

	SetVerbosity([]bool{true})
	require.Equal(t, "INFO", VerbosityName())

	SetVerbosity([]bool{true, true})
	require.Equal(t, "DEBUG", VerbosityName())

	SetVerbosity([]bool{true, true, true, true, true, true})
	require.Equal(t, logrus.TraceLevel, logrus.GetLevel())
	require.Equal(t, "TRACE", VerbosityName())
}

func Test_JSONLogFormatter(t *testing.T) {
	buf := captureLog(t, logrus.DebugLevel)

	formatter := &JSONLogFormatter{ServerAddress: &net.TCPAddr{Port: 8080}}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(formatter))
	r.Post("/encode/{algorithm}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("QQ=="))
	})

	req := httptest.NewRequest(http.MethodPost, "/encode/b64", bytes.NewBufferString("A"))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, `"app":"basecodec"`)
	require.Contains(t, out, `"algorithm":"b64"`)
	require.Contains(t, out, `"server_port":8080`)
	require.Contains(t, out, `"status":200`)
}

func Test_JSONLogEntryPanic(t *testing.T) {
	buf := captureLog(t, logrus.DebugLevel)

	formatter := &JSONLogFormatter{}
	req := httptest.NewRequest(http.MethodGet, "/algorithms", nil)
	entry := formatter.NewLogEntry(req)
	entry.Panic("boom", []byte("stack"))
	entry.Write(200, 2, http.Header{}, time.Millisecond, nil)

	out := buf.String()
	require.Contains(t, out, `"error":"boom"`)
	require.Contains(t, out, `"server_port":0`)
}

func Test_ChiLogWriter(t *testing.T) {
	buf := captureLog(t, logrus.DebugLevel)

	lw := &ChiLogWriter{}
	lw.Print()
	lw.Print("single line\n")
	lw.Print("%s=%d", "count", 3)

	out := buf.String()
	require.Contains(t, out, `"msg":"single line"`)
	require.Contains(t, out, `"msg":"count=3"`)
}

func Test_ContextHook(t *testing.T) {
	buf := captureLog(t, logrus.DebugLevel)

	hook := &ContextHook{}
	require.Len(t, hook.Levels(), len(logrus.AllLevels))

	logger := logrus.StandardLogger()
	logger.AddHook(hook)
	defer logger.ReplaceHooks(make(logrus.LevelHooks))

	logrus.Info("with caller")
	require.Contains(t, buf.String(), `"file":"logging_test.go"`)
	require.Contains(t, buf.String(), `"func":"logging.Test_ContextHook"`)
}

func Test_ContextHookSkipFrame(t *testing.T) {
	require.True(t, skipFrame("github.com/sirupsen/logrus.(*Entry).log"))
	require.True(t, skipFrame("github.com/sirupsen/logrus.Info"))
	require.True(t, skipFrame("github.com/bokysan/basecodec/internal/logging.ContextHook.Fire"))
	require.True(t, skipFrame("github.com/bokysan/basecodec/internal/logging.(*ContextHook).Fire"))

	require.False(t, skipFrame("github.com/bokysan/basecodec/internal/logging.Test_ContextHook"))
	require.False(t, skipFrame("github.com/bokysan/basecodec/internal/logging.newContextHookLogger"))
	require.False(t, skipFrame("github.com/sirupsen/logrusx.Info"))
}
