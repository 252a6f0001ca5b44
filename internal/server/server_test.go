package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/prometheus/common/expfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/errors"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/logger"
	"github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor"
	montest "github.com/Anchalshukla145/Real-time-process-monitoring-dashboard/internal/monitor/testing"
)

type fixture struct {
	engine  *monitor.Engine
	procs   *montest.FakeProcessSource
	control *montest.FakeProcessControl
	server  *Server
	http    *httptest.Server
	log     *logger.BufferLogger
}

func newFixture(t *testing.T, n int, alive ...uint32) *fixture {
	t.Helper()
	f := &fixture{
		procs:   montest.NewFakeProcessSource(montest.Processes(n)...),
		control: montest.NewFakeProcessControl(alive...),
		log:     logger.NewBufferLogger(),
	}
	metrics := montest.NewFakeMetricsSource(
		monitor.MetricsReading{CPUPercent: 10, MemoryPercent: 50, DiskPercent: 70, NetworkBytes: 2 << 20},
		monitor.MetricsReading{CPUPercent: 30, MemoryPercent: 55, DiskPercent: 70, NetworkBytes: 4 << 20},
	)
	f.engine = monitor.New(metrics, f.procs, f.control, monitor.WithSelfPID(999999))
	f.server = NewServer(f.engine, WithLogger(f.log))
	f.http = httptest.NewServer(f.server.Handler())
	t.Cleanup(func() {
		f.server.Hub().Close()
		f.http.Close()
	})
	return f
}

func (f *fixture) tick(t *testing.T) {
	t.Helper()
	require.NoError(t, f.engine.Tick(context.Background()))
}

func (f *fixture) do(t *testing.T, method, path string) (int, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, f.http.URL+path, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(body, &v), string(body))
	return v
}

func TestHealth(t *testing.T) {
	f := newFixture(t, 0)
	status, body := f.do(t, http.MethodGet, "/healthz")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestView(t *testing.T) {
	f := newFixture(t, 25)
	f.tick(t)
	f.tick(t)

	status, body := f.do(t, http.MethodGet, "/api/view")
	require.Equal(t, http.StatusOK, status)

	v := decode[struct {
		Theme        string               `json:"theme"`
		ShowAll      bool                 `json:"show_all"`
		History      map[string][]float64 `json:"history"`
		Processes    []monitor.ProcessRecord
		ProcessCount int `json:"process_count"`
	}](t, body)
	assert.Equal(t, "light", v.Theme)
	assert.False(t, v.ShowAll)
	assert.Equal(t, []float64{10, 30}, v.History["cpu"])
	assert.Equal(t, []float64{2, 4}, v.History["network"])
	assert.Len(t, v.Processes, 20)
	assert.Equal(t, 25, v.ProcessCount)
}

func TestHistory(t *testing.T) {
	f := newFixture(t, 3)
	f.tick(t)

	t.Run("known kind", func(t *testing.T) {
		status, body := f.do(t, http.MethodGet, "/api/history/memory")
		require.Equal(t, http.StatusOK, status)
		h := decode[historyResponse](t, body)
		assert.Equal(t, "memory", h.Kind)
		assert.True(t, h.Percent)
		assert.Equal(t, monitor.DefaultHistorySize, h.Capacity)
		require.Len(t, h.Samples, 1)
		assert.Equal(t, 50.0, h.Samples[0].Value)
	})

	t.Run("alias", func(t *testing.T) {
		status, body := f.do(t, http.MethodGet, "/api/history/net")
		require.Equal(t, http.StatusOK, status)
		h := decode[historyResponse](t, body)
		assert.Equal(t, "network", h.Kind)
		assert.False(t, h.Percent)
	})

	t.Run("unknown kind", func(t *testing.T) {
		status, body := f.do(t, http.MethodGet, "/api/history/gpu")
		assert.Equal(t, http.StatusNotFound, status)
		e := decode[errorResponse](t, body)
		assert.Equal(t, errors.ErrServer, e.Code)
		assert.Contains(t, e.Message, "unknown metric kind")
	})
}

func TestHistory_EmptyBeforeFirstTick(t *testing.T) {
	f := newFixture(t, 0)
	status, body := f.do(t, http.MethodGet, "/api/history/cpu")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, string(body), `"samples":[]`)
}

func TestProcesses_ShowAllToggle(t *testing.T) {
	f := newFixture(t, 25)
	f.tick(t)

	_, body := f.do(t, http.MethodGet, "/api/processes")
	p := decode[processesResponse](t, body)
	assert.False(t, p.ShowAll)
	assert.Equal(t, 25, p.Count)
	require.Len(t, p.Processes, 20)
	assert.Equal(t, uint32(25), p.Processes[0].PID)

	status, body := f.do(t, http.MethodPost, "/api/show-all/toggle")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"show_all":true}`, string(body))

	_, body = f.do(t, http.MethodGet, "/api/processes")
	p = decode[processesResponse](t, body)
	assert.True(t, p.ShowAll)
	assert.Len(t, p.Processes, 25)
}

func TestTheme(t *testing.T) {
	f := newFixture(t, 0)

	_, body := f.do(t, http.MethodGet, "/api/theme")
	assert.JSONEq(t, `{"theme":"light"}`, string(body))

	status, body := f.do(t, http.MethodPost, "/api/theme/toggle")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"theme":"dark"}`, string(body))
	assert.Equal(t, monitor.ThemeDark, f.engine.Theme())

	_, body = f.do(t, http.MethodPost, "/api/theme/toggle")
	assert.JSONEq(t, `{"theme":"light"}`, string(body))
}

func TestMethodAndRouteMismatch(t *testing.T) {
	f := newFixture(t, 0)

	status, _ := f.do(t, http.MethodGet, "/api/theme/toggle")
	assert.Equal(t, http.StatusMethodNotAllowed, status)

	status, body := f.do(t, http.MethodGet, "/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, string(body), "/nope")
}

func TestKill(t *testing.T) {
	tests := []struct {
		name      string
		pid       string
		succeeded bool
		message   string
		calls     []uint32
	}{
		{name: "alive process", pid: "2", succeeded: true, message: "sent SIGTERM to process 2", calls: []uint32{2}},
		{name: "not in snapshot", pid: "42", message: "not found in the current snapshot"},
		{name: "self", pid: "999999", message: "it is this monitor"},
		{name: "zero", pid: "0", message: "Invalid pid 0"},
		{name: "garbage", pid: "abc", message: "Invalid pid"},
		{name: "in snapshot but gone", pid: "3", message: "no such process", calls: []uint32{3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 5, 2)
			f.tick(t)

			status, body := f.do(t, http.MethodPost, "/api/processes/"+tt.pid+"/kill")
			require.Equal(t, http.StatusOK, status)

			outcome := decode[monitor.KillOutcome](t, body)
			assert.Equal(t, tt.succeeded, outcome.Succeeded)
			assert.Contains(t, outcome.Message, tt.message)
			assert.ElementsMatch(t, tt.calls, f.control.Calls())

			last, ok := f.engine.LastKill()
			require.True(t, ok)
			assert.Equal(t, outcome.Message, last.Message)
		})
	}
}

func TestMetrics(t *testing.T) {
	f := newFixture(t, 3)
	f.tick(t)
	f.tick(t)

	resp, err := http.Get(f.http.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

	var parser expfmt.TextParser
	families, err := parser.TextToMetricFamilies(resp.Body)
	require.NoError(t, err)

	value := func(name string) float64 {
		family, ok := families[name]
		require.True(t, ok, "missing %s", name)
		require.NotEmpty(t, family.GetMetric())
		m := family.GetMetric()[0]
		if m.GetCounter() != nil {
			return m.GetCounter().GetValue()
		}
		return m.GetGauge().GetValue()
	}

	assert.Equal(t, 30.0, value("procdash_cpu_percent"))
	assert.Equal(t, 55.0, value("procdash_memory_percent"))
	assert.Equal(t, 70.0, value("procdash_disk_percent"))
	assert.Equal(t, 4.0, value("procdash_network_megabytes"))
	assert.Equal(t, 3.0, value("procdash_processes"))
	assert.Equal(t, 2.0, value("procdash_ticks_total"))

	perProcess := families["procdash_process_cpu_percent"]
	require.NotNil(t, perProcess)
	require.Len(t, perProcess.GetMetric(), 3)
	first := perProcess.GetMetric()[0]
	assert.Equal(t, 3.0, first.GetGauge().GetValue())
	labels := map[string]string{}
	for _, l := range first.GetLabel() {
		labels[l.GetName()] = l.GetValue()
	}
	assert.Equal(t, map[string]string{"name": "proc-3", "pid": "3"}, labels)
}

func TestMetrics_NoSamplesYet(t *testing.T) {
	f := newFixture(t, 0)
	names := map[string]bool{}
	for _, family := range f.server.metricFamilies() {
		names[family.GetName()] = true
	}
	assert.False(t, names["procdash_cpu_percent"])
	assert.False(t, names["procdash_process_cpu_percent"])
	assert.True(t, names["procdash_ticks_total"])
}

func dial(t *testing.T, f *fixture) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readView(t *testing.T, conn *websocket.Conn) monitor.View {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)
	return decode[monitor.View](t, payload)
}

func TestWebsocket_InitialViewThenTicks(t *testing.T) {
	f := newFixture(t, 4)
	f.tick(t)

	conn := dial(t, f)
	first := readView(t, conn)
	assert.Equal(t, 4, first.ProcessCount)
	assert.Equal(t, []float64{10}, first.History["cpu"])
	assert.Equal(t, 1, f.server.Hub().Len())

	f.procs.Set(montest.Processes(6)...)
	f.tick(t)

	next := readView(t, conn)
	assert.Equal(t, 6, next.ProcessCount)
	assert.Equal(t, []float64{10, 30}, next.History["cpu"])
}

func TestWebsocket_ToggleBroadcasts(t *testing.T) {
	f := newFixture(t, 1)
	conn := dial(t, f)
	readView(t, conn)

	f.do(t, http.MethodPost, "/api/theme/toggle")
	v := readView(t, conn)
	assert.Equal(t, monitor.ThemeDark, v.Theme)
}

func TestWebsocket_ClientDisconnectIsRemoved(t *testing.T) {
	f := newFixture(t, 1)
	conn := dial(t, f)
	readView(t, conn)
	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return f.server.Hub().Len() == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestHub_SlowClientDropped(t *testing.T) {
	f := newFixture(t, 1)
	hub := f.server.Hub()

	// Register a client whose writer never drains.
	c := &client{send: make(chan []byte, clientBuffer)}
	hub.mu.Lock()
	hub.clients[c] = struct{}{}
	hub.mu.Unlock()

	for i := 0; i < clientBuffer; i++ {
		hub.Broadcast([]byte("x"))
	}
	assert.Equal(t, 1, hub.Len())

	hub.Broadcast([]byte("overflow"))
	assert.Equal(t, 0, hub.Len())
	assert.True(t, f.log.HasLevel("warn"))
}

func TestServe_ShutdownOnCancel(t *testing.T) {
	engine := monitor.New(montest.NewFakeMetricsSource(), montest.NewFakeProcessSource(), montest.NewFakeProcessControl())
	s := NewServer(engine, WithShutdownTimeout(time.Second))

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}

func TestStart_BadAddress(t *testing.T) {
	engine := monitor.New(montest.NewFakeMetricsSource(), montest.NewFakeProcessSource(), montest.NewFakeProcessControl())
	s := NewServer(engine, WithListen("not-an-address"))

	err := s.Start(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrServer))
}
