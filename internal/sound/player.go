package sound

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/intervals"
)

// ErrBackendUnavailable indicates no playback or speech command was found.
var ErrBackendUnavailable = errors.New("audio backend unavailable")

// ErrReleased is returned when a released session is used.
var ErrReleased = errors.New("sound session released")

// Backend plays audio files and speaks text. Calls block until playback
// finishes or ctx is cancelled.
type Backend interface {
	Play(ctx context.Context, path string) error
	Speak(ctx context.Context, text string) error
}

// Player hands out sound sessions. It implements intervals.SoundProvider.
type Player struct {
	backend  Backend
	logger   *slog.Logger
	tempDir  string
	muted    atomic.Bool
	announce atomic.Bool
}

// Options configures a Player.
type Options struct {
	Logger *slog.Logger
	// TempDir is where whistle files are rendered; empty uses os.TempDir.
	TempDir        string
	Muted          bool
	AnnounceRounds bool
}

// NewPlayer creates a Player on top of backend.
func NewPlayer(backend Backend, options Options) *Player {
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	player := &Player{
		backend: backend,
		logger:  options.Logger,
		tempDir: options.TempDir,
	}
	player.muted.Store(options.Muted)
	player.announce.Store(options.AnnounceRounds)
	return player
}

// SetMuted silences whistles and announcements, including for running
// sessions.
func (player *Player) SetMuted(muted bool) {
	player.muted.Store(muted)
}

// SetAnnounceRounds toggles the spoken round announcement.
func (player *Player) SetAnnounceRounds(enabled bool) {
	player.announce.Store(enabled)
}

// Acquire renders the whistle bank and returns a session owning it.
func (player *Player) Acquire(ctx context.Context) (intervals.SoundOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir, err := os.MkdirTemp(player.tempDir, "roundtimer-sound-")
	if err != nil {
		return nil, fmt.Errorf("acquire sound: %w", err)
	}

	files := make(map[string]string)
	for _, whistle := range whistles() {
		path := filepath.Join(dir, whistle.Name+".wav")
		if err := whistle.WriteWAV(path); err != nil {
			_ = os.RemoveAll(dir)
			return nil, fmt.Errorf("acquire sound: %w", err)
		}
		files[whistle.Name] = path
	}

	sessionCtx, cancel := context.WithCancel(context.Background())
	player.logger.Debug("sound session acquired", "dir", dir)
	return &Session{
		player: player,
		dir:    dir,
		files:  files,
		ctx:    sessionCtx,
		cancel: cancel,
		done:   make(chan struct{}),
	}, nil
}

// Session plays cues for a single run.
type Session struct {
	player *Player
	dir    string
	files  map[string]string
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	pending  sync.WaitGroup
	released bool
	done     chan struct{}
}

// PlayCue starts the whistle for kind and returns without waiting for it.
func (session *Session) PlayCue(kind cue.Kind) error {
	whistle, err := WhistleFor(kind)
	if err != nil {
		return err
	}
	if session.player.muted.Load() {
		return nil
	}
	path := session.files[whistle.Name]
	return session.spawn(func(ctx context.Context) error {
		return session.player.backend.Play(ctx, path)
	}, "play "+whistle.Name)
}

// AnnounceRound speaks the round number. Round one is never announced.
func (session *Session) AnnounceRound(round int) error {
	if round <= 1 || session.player.muted.Load() || !session.player.announce.Load() {
		return nil
	}
	text := Announcement(round)
	return session.spawn(func(ctx context.Context) error {
		return session.player.backend.Speak(ctx, text)
	}, "speak")
}

// Release lets in-flight sounds finish, then removes the rendered files.
// It does not block and is safe to call more than once.
func (session *Session) Release() error {
	session.mu.Lock()
	if session.released {
		session.mu.Unlock()
		return nil
	}
	session.released = true
	session.mu.Unlock()

	go func() {
		session.pending.Wait()
		session.cancel()
		if err := os.RemoveAll(session.dir); err != nil {
			session.player.logger.Warn("remove sound files", "dir", session.dir, "error", err)
		}
		session.player.logger.Debug("sound session released", "dir", session.dir)
		close(session.done)
	}()
	return nil
}

// Done is closed once a released session has cleaned up.
func (session *Session) Done() <-chan struct{} {
	return session.done
}

func (session *Session) spawn(run func(context.Context) error, action string) error {
	session.mu.Lock()
	defer session.mu.Unlock()
	if session.released {
		return ErrReleased
	}
	session.pending.Add(1)
	go func() {
		defer session.pending.Done()
		if err := run(session.ctx); err != nil && !errors.Is(err, context.Canceled) {
			session.player.logger.Warn("sound playback failed", "action", action, "error", err)
		}
	}()
	return nil
}
