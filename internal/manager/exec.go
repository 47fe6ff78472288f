package manager

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"syscall"

	"github.com/quick-xyz/indexer-sub001/internal/worker"
	"go.uber.org/zap"
)

// ExecLauncher spawns worker binaries as independent OS processes. The worker
// inherits stderr for its logs; stdout is reserved for the heartbeat stream.
type ExecLauncher struct {
	bin    string
	args   []string
	env    []string
	logger *zap.Logger
}

// NewExecLauncher builds a launcher for bin. args are passed before the
// --worker-id flag; env entries are appended to the parent environment.
func NewExecLauncher(bin string, args, env []string, logger *zap.Logger) *ExecLauncher {
	return &ExecLauncher{bin: bin, args: args, env: env, logger: logger}
}

// Launch starts one worker process and begins pumping its heartbeat stream.
func (l *ExecLauncher) Launch(_ context.Context, workerID string) (Process, error) {
	args := make([]string, 0, len(l.args)+2)
	args = append(args, l.args...)
	args = append(args, "--worker-id", workerID)

	cmd := exec.Command(l.bin, args...)
	cmd.Env = append(os.Environ(), l.env...)
	cmd.Stderr = os.Stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("worker stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start worker %s: %w", workerID, err)
	}

	p := &execProcess{
		cmd:        cmd,
		heartbeats: make(chan worker.Heartbeat, 16),
		exited:     make(chan error, 1),
	}

	logger := l.logger.With(zap.String("worker_id", workerID), zap.Int("pid", cmd.Process.Pid))

	go func() {
		scanner := bufio.NewScanner(stdout)
		for scanner.Scan() {
			hb, parseErr := worker.ParseHeartbeat(scanner.Bytes())
			if parseErr != nil {
				logger.Warn("unreadable heartbeat line", zap.Error(parseErr))
				continue
			}
			select {
			case p.heartbeats <- hb:
			default:
				// Supervisor is behind; dropping one beat is harmless.
			}
		}
		close(p.heartbeats)
	}()

	go func() {
		p.exited <- cmd.Wait()
		close(p.exited)
	}()

	return p, nil
}

type execProcess struct {
	cmd        *exec.Cmd
	heartbeats chan worker.Heartbeat
	exited     chan error
}

func (p *execProcess) Heartbeats() <-chan worker.Heartbeat { return p.heartbeats }

func (p *execProcess) Exited() <-chan error { return p.exited }

func (p *execProcess) Stop() error {
	return p.cmd.Process.Signal(syscall.SIGTERM)
}

func (p *execProcess) Kill() error {
	return p.cmd.Process.Kill()
}
