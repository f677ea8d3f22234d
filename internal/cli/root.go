// Package cli implements the stegokeys command line.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/hasbyte1/stegokeys/internal/mem"
	"github.com/hasbyte1/stegokeys/stretch"
)

const envPrefix = "STEGOKEYS"

// Configuration keys, as they appear in the config file. The matching
// environment variables are STEGOKEYS_ARGON2_MEMORY_KIB and so on.
const (
	keyMemory      = "argon2.memory_kib"
	keyTime        = "argon2.time"
	keyParallelism = "argon2.parallelism"
	keyLockMemory  = "lock_memory"
	keyVerbose     = "verbose"
)

type app struct {
	v       *viper.Viper
	cfgFile string
	logger  *slog.Logger
	locked  bool
}

// NewRootCommand builds the stegokeys command tree.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "stegokeys",
		Short: "Derive steganography keys from a passphrase",
		Long: `stegokeys stretches a passphrase with Argon2id and expands the result into
an encryption key and a PRNG key with HKDF-SHA256.

Key material is never printed. The tool emits the salt record that must be
stored next to the ciphertext, and logs how long the derivation took so cost
parameters can be tuned for the target hardware.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  a.initialize,
		PersistentPostRunE: a.finalize,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.stegokeys.yaml)")
	flags.Uint32("memory-kib", stretch.DefaultMemoryKiB, "Argon2id memory cost in KiB")
	flags.Uint32("time", stretch.DefaultTime, "Argon2id passes over memory")
	flags.Uint32("parallelism", stretch.DefaultParallelism, "Argon2id lanes")
	flags.Bool("lock-memory", false, "lock all process memory in RAM (needs CAP_IPC_LOCK or a large RLIMIT_MEMLOCK)")
	flags.BoolP("verbose", "v", false, "log at debug level")

	a.bindFlagOrPanic(flags, keyMemory, "memory-kib")
	a.bindFlagOrPanic(flags, keyTime, "time")
	a.bindFlagOrPanic(flags, keyParallelism, "parallelism")
	a.bindFlagOrPanic(flags, keyLockMemory, "lock-memory")
	a.bindFlagOrPanic(flags, keyVerbose, "verbose")

	root.AddCommand(newParamsCommand(a), newDeriveCommand(a))
	return root
}

// Execute runs the command line against os.Args and returns the error to
// report, if any.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) bindFlagOrPanic(flags *pflag.FlagSet, key, flag string) {
	if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
		panic(fmt.Sprintf("failed to bind flag %q: %v", flag, err))
	}
}

// initialize loads configuration and sets up logging and memory locking.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if a.v.GetBool(keyVerbose) {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if a.v.GetBool(keyLockMemory) {
		protection, err := mem.Lock()
		if err != nil {
			return err
		}
		a.locked = protection == mem.ProtectionFull
		a.logger.Debug("memory protection", "level", protection.String())
	}
	return nil
}

func (a *app) finalize(*cobra.Command, []string) error {
	if a.locked {
		a.locked = false
		return mem.Unlock()
	}
	return nil
}

// loadConfig applies precedence flags > environment > config file > defaults.
func (a *app) loadConfig() error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
		return nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
	}
	a.v.SetConfigName(".stegokeys")
	a.v.SetConfigType("yaml")
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// params returns the effective cost parameters.
func (a *app) params() stretch.Params {
	return stretch.Params{
		MemoryKiB:   a.v.GetUint32(keyMemory),
		Time:        a.v.GetUint32(keyTime),
		Parallelism: a.v.GetUint32(keyParallelism),
	}
}
