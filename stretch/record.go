package stretch

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// recordVariant is the algorithm identifier written into salt records.
const recordVariant = "argon2id"

// EncodeRecord serialises a salt and its cost parameters in a PHC-style
// string:
//
//	$argon2id$v=19$m=65536,t=3,p=1$<salt_base64>
//
// The base64 encoding uses the standard alphabet without padding, like the
// PHC hash strings produced by Argon2 reference implementations. The record
// carries everything needed to re-derive the same keys except the
// passphrase, and nothing secret.
func EncodeRecord(salt Salt, params Params) string {
	return fmt.Sprintf("$%s$v=%d$%s$%s",
		recordVariant,
		argon2Version,
		params,
		base64.RawStdEncoding.EncodeToString(salt[:]),
	)
}

// DecodeRecord parses a string produced by [EncodeRecord].
//
// Errors wrap [ErrInvalidRecord]. A record whose parameters fail
// [Params.Validate] also wraps [ErrInvalidParameters].
func DecodeRecord(record string) (Salt, Params, error) {
	var (
		salt   Salt
		params Params
	)

	// Split on "$"; the leading "$" produces an empty first element.
	parts := strings.Split(record, "$")
	if len(parts) != 5 || parts[0] != "" {
		return salt, params, fmt.Errorf("%w: expected 4-segment record, got %d segments",
			ErrInvalidRecord, len(parts)-1)
	}

	if parts[1] != recordVariant {
		return salt, params, fmt.Errorf("%w: unsupported algorithm %q", ErrInvalidRecord, parts[1])
	}

	version, err := parseKV(parts[2], "v")
	if err != nil {
		return salt, params, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	if version != argon2Version {
		return salt, params, fmt.Errorf("%w: unsupported argon2 version %d", ErrInvalidRecord, version)
	}

	kvs, err := parseParams(parts[3])
	if err != nil {
		return salt, params, fmt.Errorf("%w: %v", ErrInvalidRecord, err)
	}
	memory, ok1 := kvs["m"]
	time, ok2 := kvs["t"]
	lanes, ok3 := kvs["p"]
	if !ok1 || !ok2 || !ok3 || len(kvs) != 3 {
		return salt, params, fmt.Errorf("%w: expected exactly m, t and p in parameter segment %q",
			ErrInvalidRecord, parts[3])
	}
	params = Params{MemoryKiB: memory, Time: time, Parallelism: lanes}
	if err := params.Validate(); err != nil {
		return Salt{}, Params{}, fmt.Errorf("%w: %w", ErrInvalidRecord, err)
	}

	raw, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return Salt{}, Params{}, fmt.Errorf("%w: invalid salt base64: %v", ErrInvalidRecord, err)
	}
	if len(raw) != SaltSize {
		return Salt{}, Params{}, fmt.Errorf("%w: salt must be %d bytes, got %d",
			ErrInvalidRecord, SaltSize, len(raw))
	}
	copy(salt[:], raw)
	return salt, params, nil
}

// parseKV parses a "key=value" string and returns the uint32 value.
func parseKV(s, key string) (uint32, error) {
	prefix := key + "="
	if !strings.HasPrefix(s, prefix) {
		return 0, fmt.Errorf("expected %q prefix in %q", prefix, s)
	}
	v, err := strconv.ParseUint(s[len(prefix):], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

// parseParams splits "m=65536,t=3,p=1" into a map. Repeated keys are
// rejected.
func parseParams(s string) (map[string]uint32, error) {
	out := make(map[string]uint32)
	for _, kv := range strings.Split(s, ",") {
		eq := strings.IndexByte(kv, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed param %q", kv)
		}
		v, err := strconv.ParseUint(kv[eq+1:], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("non-numeric value in %q: %v", kv, err)
		}
		if _, dup := out[kv[:eq]]; dup {
			return nil, fmt.Errorf("repeated param %q", kv[:eq])
		}
		out[kv[:eq]] = uint32(v)
	}
	return out, nil
}
