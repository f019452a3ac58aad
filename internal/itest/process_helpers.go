// If you are AI: This file provides helper functions for building, starting, and stopping testapi processes in tests.

package itest

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"syscall"
	"testing"
	"time"
)

// Process is a running testapi binary.
type Process struct {
	Cmd  *exec.Cmd
	Port int
	done chan error
}

// BuildBinary compiles cmd/testapi into a temporary directory.
func BuildBinary(t *testing.T) string {
	t.Helper()

	binPath := filepath.Join(t.TempDir(), "testapi")
	buildCmd := exec.Command("go", "build", "-o", binPath, "../../cmd/testapi")
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("Failed to build binary: %v", err)
	}
	return binPath
}

// FindFreePort asks the kernel for an unused TCP port.
func FindFreePort(t *testing.T) int {
	t.Helper()

	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()
	return port
}

// StartServer starts the binary with PORT set in its environment.
// Extra environment entries are appended after PORT.
func StartServer(ctx context.Context, binPath string, port int, env ...string) (*Process, error) {
	cmd := exec.CommandContext(ctx, binPath, "serve")
	cmd.Env = append(os.Environ(), "PORT="+strconv.Itoa(port))
	cmd.Env = append(cmd.Env, env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start server: %w", err)
	}

	p := &Process{Cmd: cmd, Port: port, done: make(chan error, 1)}
	go func() { p.done <- cmd.Wait() }()
	return p, nil
}

// Stop sends SIGINT and returns the exit code.
// The process is killed if it has not exited within the timeout.
func (p *Process) Stop(timeout time.Duration) (int, error) {
	if err := p.Cmd.Process.Signal(syscall.SIGINT); err != nil {
		return -1, fmt.Errorf("send SIGINT: %w", err)
	}
	return p.Wait(timeout)
}

// Wait waits for the process to exit and returns its exit code.
func (p *Process) Wait(timeout time.Duration) (int, error) {
	select {
	case <-p.done:
		return p.Cmd.ProcessState.ExitCode(), nil
	case <-time.After(timeout):
		p.Cmd.Process.Kill()
		<-p.done
		return -1, fmt.Errorf("process did not exit within %v", timeout)
	}
}

// URL returns the base URL of the running process.
func (p *Process) URL(path string) string {
	return fmt.Sprintf("http://127.0.0.1:%d%s", p.Port, path)
}

// WaitForHealth waits for the health endpoint to become available.
// Returns an error if the endpoint is not available within the timeout.
func WaitForHealth(port int, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)

	for time.Now().Before(deadline) {
		resp, err := http.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return nil
			}
		}
		time.Sleep(100 * time.Millisecond)
	}

	return fmt.Errorf("health endpoint not available after %v", timeout)
}
