package server_test

import (
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ddbb-bakery/pos/internal/config"
	"github.com/ddbb-bakery/pos/internal/server"
	"github.com/ddbb-bakery/pos/pkg/lifecycle"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func availablePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatalf("find available port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

func testConfig(port int) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "localhost",
		Port:            port,
		ReadTimeout:     "5s",
		WriteTimeout:    "5s",
		ShutdownTimeout: "5s",
	}
}

func waitForServer(t *testing.T, url string) *http.Response {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		resp, err := http.Get(url)
		if err == nil {
			return resp
		}
		if time.Now().After(deadline) {
			t.Fatalf("server did not start: %v", err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

func TestStartServes(t *testing.T) {
	port := availablePort(t)
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("fresh bread"))
	})

	lc := lifecycle.New()
	sys := server.New(testConfig(port), handler, testLogger())
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer lc.Shutdown(5 * time.Second)

	resp := waitForServer(t, fmt.Sprintf("http://localhost:%d/", port))
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "fresh bread" {
		t.Errorf("got %d %q", resp.StatusCode, body)
	}
}

func TestShutdownStopsListener(t *testing.T) {
	port := availablePort(t)
	url := fmt.Sprintf("http://localhost:%d/", port)

	lc := lifecycle.New()
	sys := server.New(testConfig(port), http.NotFoundHandler(), testLogger())
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp := waitForServer(t, url)
	resp.Body.Close()

	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if _, err := http.Get(url); err == nil {
		t.Error("server still responding after shutdown")
	}
}

func TestShutdownDrainsInFlight(t *testing.T) {
	port := availablePort(t)
	started := make(chan struct{}, 1)
	var finished, drainedAfter atomic.Bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/slow" {
			started <- struct{}{}
			time.Sleep(100 * time.Millisecond)
			defer finished.Store(true)
		}
		w.Write([]byte("completed"))
	})

	lc := lifecycle.New()
	sys := server.New(testConfig(port), handler, testLogger())

	sys.OnDrained(func() { drainedAfter.Store(finished.Load()) })

	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start: %v", err)
	}

	resp := waitForServer(t, fmt.Sprintf("http://localhost:%d/", port))
	resp.Body.Close()

	done := make(chan int, 1)
	go func() {
		resp, err := http.Get(fmt.Sprintf("http://localhost:%d/slow", port))
		if err != nil {
			done <- 0
			return
		}
		resp.Body.Close()
		done <- resp.StatusCode
	}()

	<-started
	if err := lc.Shutdown(5 * time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}

	if status := <-done; status != http.StatusOK {
		t.Errorf("in-flight request got status %d", status)
	}
	if !drainedAfter.Load() {
		t.Error("drained hooks ran before the in-flight request finished")
	}
}

func TestStartFailsOnBusyPort(t *testing.T) {
	ln, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()

	port := ln.Addr().(*net.TCPAddr).Port
	sys := server.New(testConfig(port), http.NotFoundHandler(), testLogger())
	if err := sys.Start(lifecycle.New()); err == nil {
		t.Error("Start should fail when the port is taken")
	}
	if sys.Addr() != "" {
		t.Errorf("Addr() = %q after failed Start", sys.Addr())
	}
}

func TestAddrReportsBoundPort(t *testing.T) {
	lc := lifecycle.New()
	sys := server.New(testConfig(0), http.NotFoundHandler(), testLogger())
	if sys.Addr() != "" {
		t.Errorf("Addr() = %q before Start", sys.Addr())
	}
	if err := sys.Start(lc); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer lc.Shutdown(5 * time.Second)

	_, port, err := net.SplitHostPort(sys.Addr())
	if err != nil || port == "0" {
		t.Errorf("Addr() = %q, want a bound port", sys.Addr())
	}
}
