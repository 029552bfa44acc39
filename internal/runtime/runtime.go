package runtime

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	cfgpkg "github.com/rzbill/stamp/internal/config"
	pebblestore "github.com/rzbill/stamp/internal/storage/pebble"
	"github.com/rzbill/stamp/pkg/id"
	logpkg "github.com/rzbill/stamp/pkg/log"
)

// State store keys.
var (
	keyClaim     = []byte("meta/claim")
	keyHighWater = []byte("meta/hwm")
)

// ErrClaimMismatch reports a data directory already claimed by a different
// machine id. Reusing a machine id across live instances is the one
// configuration mistake that breaks uniqueness, so this fails startup.
var ErrClaimMismatch = errors.New("runtime: data dir claimed by different machine id")

// Claim records which instance owns a data directory.
type Claim struct {
	MachineID int64     `json:"machineId"`
	Hostname  string    `json:"hostname"`
	PID       int       `json:"pid"`
	ClaimedAt time.Time `json:"claimedAt"`
}

// Options for building the Runtime.
type Options struct {
	DataDir string
	Fsync   pebblestore.FsyncMode
	Config  cfgpkg.Config
	// Clock overrides the system clock, for tests.
	Clock id.Clock
	// Logger receives runtime events. Nil means a default text logger.
	Logger logpkg.Logger
}

// Runtime owns the process-wide Generator and its durable state.
type Runtime struct {
	db     *pebblestore.DB
	gen    *id.Generator
	config cfgpkg.Config
	logger logpkg.Logger

	mu           sync.Mutex
	persistedHWM int64
	checkpointCh chan struct{}
	checkpointWG sync.WaitGroup
	closeOnce    sync.Once
}

// Open validates config, claims the data directory, checks the clock
// against the persisted high-water mark, and starts the checkpoint loop.
func Open(opts Options) (*Runtime, error) {
	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger(logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}
	logger = logger.WithComponent("runtime")

	db, err := pebblestore.Open(pebblestore.Options{DataDir: opts.DataDir, Fsync: opts.Fsync})
	if err != nil {
		return nil, err
	}

	rt := &Runtime{db: db, config: opts.Config, logger: logger, checkpointCh: make(chan struct{})}
	if err := rt.claim(opts.Config.MachineID); err != nil {
		_ = db.Close()
		return nil, err
	}

	clock := opts.Clock
	if clock == nil {
		clock = id.SystemClock{}
	}
	gen, err := id.NewGenerator(opts.Config.MachineID, id.WithClock(clock))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	hwm, err := rt.loadHighWater()
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if hwm > 0 {
		if now := clock.Now(); now < hwm {
			_ = db.Close()
			return nil, fmt.Errorf("%w: clock at %d but previous run issued up to %d", id.ErrClockRegression, now, hwm)
		}
		gen.Warm(hwm)
		logger.Info("restored issuance high-water mark", logpkg.Int64("hwm_ms", hwm))
	}
	rt.gen = gen
	rt.persistedHWM = hwm

	interval := opts.Config.CheckpointInterval
	if interval <= 0 {
		interval = time.Second
	}
	rt.checkpointWG.Add(1)
	go rt.checkpointLoop(interval)

	return rt, nil
}

// claim writes or verifies the machine-id claim for the data directory.
func (r *Runtime) claim(machineID int64) error {
	raw, err := r.db.Get(keyClaim)
	switch {
	case err == nil:
		var existing Claim
		if err := json.Unmarshal(raw, &existing); err != nil {
			return fmt.Errorf("runtime: corrupt claim record: %w", err)
		}
		if existing.MachineID != machineID {
			return fmt.Errorf("%w: dir has %d, config has %d", ErrClaimMismatch, existing.MachineID, machineID)
		}
	case errors.Is(err, pebblestore.ErrNotFound):
	default:
		return err
	}

	hostname, _ := os.Hostname()
	c := Claim{MachineID: machineID, Hostname: hostname, PID: os.Getpid(), ClaimedAt: time.Now().UTC()}
	b, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.db.Set(keyClaim, b)
}

func (r *Runtime) loadHighWater() (int64, error) {
	raw, err := r.db.Get(keyHighWater)
	if errors.Is(err, pebblestore.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, fmt.Errorf("runtime: corrupt high-water record (%d bytes)", len(raw))
	}
	return int64(binary.BigEndian.Uint64(raw)), nil
}

func (r *Runtime) storeHighWater(ms int64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(ms))
	return r.db.Set(keyHighWater, buf[:])
}

// checkpointLoop periodically persists the last issued millisecond so a
// restart can detect a clock that fell behind the previous run.
func (r *Runtime) checkpointLoop(interval time.Duration) {
	defer r.checkpointWG.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if err := r.checkpoint(); err != nil {
				r.logger.Warn("high-water checkpoint failed", logpkg.Err(err))
			}
		case <-r.checkpointCh:
			return
		}
	}
}

func (r *Runtime) checkpoint() error {
	last := r.gen.LastMs()
	r.mu.Lock()
	defer r.mu.Unlock()
	if last <= r.persistedHWM {
		return nil
	}
	if err := r.storeHighWater(last); err != nil {
		return err
	}
	r.persistedHWM = last
	return nil
}

// NextID issues a new id.
func (r *Runtime) NextID() (id.ID, error) { return r.gen.Next() }

// NextString issues a new id in its encoded form.
func (r *Runtime) NextString() (string, error) { return r.gen.NextString() }

// Generator exposes the shared generator for callers that thread it through
// their own request lifecycle.
func (r *Runtime) Generator() *id.Generator { return r.gen }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// CheckHealth verifies the state store is reachable.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	if r.db == nil {
		return errors.New("runtime: state store not open")
	}
	_, err := r.db.Get(keyClaim)
	if errors.Is(err, pebblestore.ErrNotFound) {
		return nil
	}
	return err
}

// Close stops the checkpoint loop, persists the final high-water mark, and
// closes the state store. Safe to call more than once.
func (r *Runtime) Close() error {
	var err error
	r.closeOnce.Do(func() {
		if r.db == nil {
			return
		}
		close(r.checkpointCh)
		r.checkpointWG.Wait()
		if cerr := r.checkpoint(); cerr != nil {
			r.logger.Warn("final checkpoint failed", logpkg.Err(cerr))
		}
		if ferr := r.db.Flush(); ferr != nil {
			r.logger.Warn("state store flush failed", logpkg.Err(ferr))
		}
		err = r.db.Close()
	})
	return err
}
