package process

import (
	"bytes"
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"
)

// Proc is a handle to a long-lived subprocess started with Start.
// Stop requests a graceful shutdown and waits for exit.
type Proc struct {
	cmd    *exec.Cmd
	stderr bytes.Buffer

	mu      sync.Mutex
	waited  bool
	waitErr error
	done    chan struct{}
}

// Start launches a subprocess without waiting for it to exit. Stdout is
// streamed to the returned pipe so callers can consume output while the
// process runs. Stderr is buffered and exposed via Stderr after exit.
func Start(cmd Command) (*Proc, io.ReadCloser, error) {
	if cmd.Binary == "" {
		return nil, nil, fmt.Errorf("process: binary is required")
	}

	c := exec.Command(cmd.Binary, cmd.Args...) //nolint:gosec // dynamic args are the purpose of this package
	if cmd.Stdin != nil {
		c.Stdin = cmd.Stdin
	}
	c.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	p := &Proc{cmd: c, done: make(chan struct{})}
	c.Stderr = &p.stderr

	stdout, err := c.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("process: stdout pipe: %w", err)
	}

	if err := c.Start(); err != nil {
		return nil, nil, fmt.Errorf("process: start %s: %w", cmd.Binary, err)
	}

	go func() {
		p.waitErr = c.Wait()
		close(p.done)
	}()

	return p, stdout, nil
}

// Signal sends sig to the process group.
func (p *Proc) Signal(sig syscall.Signal) error {
	if p.cmd.Process == nil {
		return fmt.Errorf("process: not started")
	}
	return syscall.Kill(-p.cmd.Process.Pid, sig)
}

// Stop sends SIGINT and waits up to grace for the process to exit.
// If the deadline passes the process group is killed. Safe to call once.
func (p *Proc) Stop(grace time.Duration) error {
	p.mu.Lock()
	if p.waited {
		p.mu.Unlock()
		return p.waitErr
	}
	p.waited = true
	p.mu.Unlock()

	select {
	case <-p.done:
		return p.waitErr
	default:
	}

	// SIGINT lets recorders finalize their container before exiting.
	if err := p.Signal(syscall.SIGINT); err != nil {
		_ = p.Signal(syscall.SIGKILL)
		<-p.done
		return p.waitErr
	}

	if grace <= 0 {
		grace = 5 * time.Second
	}
	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-p.done:
		return p.waitErr
	case <-timer.C:
		_ = p.Signal(syscall.SIGKILL)
		<-p.done
		return fmt.Errorf("process: killed after %s grace: %w", grace, p.waitErr)
	}
}

// Done is closed when the process exits.
func (p *Proc) Done() <-chan struct{} { return p.done }

// Stderr returns the buffered standard error. Only meaningful after exit.
func (p *Proc) Stderr() []byte { return p.stderr.Bytes() }

// ExitCode reports the exit code after the process has exited, or -1.
func (p *Proc) ExitCode() int {
	select {
	case <-p.done:
		return p.cmd.ProcessState.ExitCode()
	default:
		return -1
	}
}
