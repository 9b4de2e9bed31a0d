package speech

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"sync"
)

// Player plays a WAV payload through the platform audio stack.
type Player interface {
	// Play starts playback, stopping any clip already playing.
	Play(ctx context.Context, wav []byte) error

	// Stop cancels the current clip, if any.
	Stop()
}

// playerCommands lists candidate CLI players per platform, tried in
// order. Each takes a WAV file path as its final argument.
func playerCommands() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"afplay"}}
	case "windows":
		return [][]string{{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"}}
	default:
		return [][]string{
			{"aplay", "-q"},
			{"paplay"},
			{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
			{"play", "-q"},
		}
	}
}

// ExecPlayer shells out to the first available platform audio command.
type ExecPlayer struct {
	command []string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewPlayer returns an ExecPlayer when a platform audio command is on
// PATH, otherwise a NoopPlayer.
func NewPlayer() Player {
	for _, cmd := range playerCommands() {
		if _, err := exec.LookPath(cmd[0]); err == nil {
			return &ExecPlayer{command: cmd}
		}
	}
	return NoopPlayer{}
}

func (p *ExecPlayer) Play(ctx context.Context, wav []byte) error {
	p.Stop()

	f, err := os.CreateTemp("", "vocadrill-*.wav")
	if err != nil {
		return fmt.Errorf("create audio temp file: %w", err)
	}
	path := f.Name()
	if _, err := f.Write(wav); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write audio temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close audio temp file: %w", err)
	}

	playCtx, cancel := context.WithCancel(ctx)
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()

	args := append(p.command[1:], path)
	cmd := exec.CommandContext(playCtx, p.command[0], args...)
	if err := cmd.Start(); err != nil {
		cancel()
		os.Remove(path)
		return fmt.Errorf("start audio player: %w", err)
	}

	go func() {
		_ = cmd.Wait()
		os.Remove(path)
		cancel()
	}()

	return nil
}

func (p *ExecPlayer) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// NoopPlayer silently discards playback requests. Used when no audio
// command is available.
type NoopPlayer struct{}

func (NoopPlayer) Play(context.Context, []byte) error { return nil }
func (NoopPlayer) Stop()                              {}
