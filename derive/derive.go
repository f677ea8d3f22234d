package derive

import (
	"io"
	"log/slog"
	"time"

	"github.com/hasbyte1/stegokeys/schedule"
	"github.com/hasbyte1/stegokeys/secret"
	"github.com/hasbyte1/stegokeys/stretch"
)

// testHookRootReleased, when set, sees the root secret right after the
// pipeline has destroyed it.
var testHookRootReleased func(root *secret.Buffer)

// Result is the output of one derivation.
type Result struct {
	// Salt must be stored by the caller to derive the same keys again.
	Salt stretch.Salt

	// Params are the cost parameters the keys were derived under.
	Params stretch.Params

	// Keys are owned by the caller; release them with [Result.Destroy].
	Keys *schedule.Keys
}

// Record returns the salt record to persist alongside the ciphertext.
func (r *Result) Record() string {
	return stretch.EncodeRecord(r.Salt, r.Params)
}

// Destroy wipes the derived keys. It is safe to call more than once.
func (r *Result) Destroy() {
	if r == nil {
		return
	}
	r.Keys.Destroy()
}

// Deriver composes a [stretch.Stretcher] with the key schedule.
//
// # Thread safety
//
// A Deriver is immutable after construction and safe for concurrent use when
// its random source is.
type Deriver struct {
	stretcher *stretch.Stretcher
	logger    *slog.Logger
}

// Option configures a [Deriver].
type Option func(*config)

type config struct {
	rand   io.Reader
	logger *slog.Logger
}

// WithRand sets the source of salt bytes (default crypto/rand).
func WithRand(r io.Reader) Option {
	return func(c *config) { c.rand = r }
}

// WithLogger sets the logger for derivation events. Nil disables logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New returns a Deriver.
func New(opts ...Option) *Deriver {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return &Deriver{
		stretcher: stretch.NewStretcher(stretch.WithRand(c.rand)),
		logger:    c.logger,
	}
}

// Derive draws a fresh salt and derives keys from passphrase under params.
//
// The passphrase is only read. Errors are those of [stretch.Stretcher.Stretch]
// and [schedule.DeriveKeys]; on error nothing secret survives.
func (d *Deriver) Derive(passphrase *secret.Buffer, params stretch.Params) (*Result, error) {
	start := time.Now()
	salt, root, err := d.stretcher.Stretch(passphrase, params)
	if err != nil {
		d.logger.Warn("stretch failed", "params", params, "error", err)
		return nil, err
	}
	return d.expand(root, salt, params, start, "derive")
}

// Rederive derives keys again from a salt stored after an earlier [Derive].
func (d *Deriver) Rederive(passphrase *secret.Buffer, salt stretch.Salt, params stretch.Params) (*Result, error) {
	start := time.Now()
	root, err := d.stretcher.StretchWithSalt(passphrase, salt, params)
	if err != nil {
		d.logger.Warn("stretch failed", "params", params, "salt", salt.String(), "error", err)
		return nil, err
	}
	return d.expand(root, salt, params, start, "rederive")
}

// RederiveRecord decodes a record produced by [Result.Record] and calls
// [Deriver.Rederive]. Malformed records wrap [stretch.ErrInvalidRecord].
func (d *Deriver) RederiveRecord(passphrase *secret.Buffer, record string) (*Result, error) {
	salt, params, err := stretch.DecodeRecord(record)
	if err != nil {
		return nil, err
	}
	return d.Rederive(passphrase, salt, params)
}

// expand takes ownership of root and destroys it before returning.
func (d *Deriver) expand(root *secret.Buffer, salt stretch.Salt, params stretch.Params, start time.Time, op string) (*Result, error) {
	defer func() {
		root.Destroy()
		if testHookRootReleased != nil {
			testHookRootReleased(root)
		}
	}()

	keys, err := schedule.DeriveKeys(root)
	if err != nil {
		d.logger.Warn("key schedule failed", "op", op, "error", err)
		return nil, err
	}

	d.logger.Info("keys derived",
		"op", op,
		"params", params,
		"salt", salt.String(),
		"duration", time.Since(start),
	)
	return &Result{Salt: salt, Params: params, Keys: keys}, nil
}
