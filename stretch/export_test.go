package stretch

// HashInto exposes the raw Argon2id step so tests can check published
// vectors whose salts are not 16 bytes.
var HashInto = hashInto

// Primitive is the signature of argon2.IDKey.
type Primitive func(password, salt []byte, time, memory uint32, threads uint8, keyLen uint32) []byte

// RealPrimitive is the production Argon2id implementation.
var RealPrimitive Primitive = idKey

// SetPrimitive replaces the hashing primitive and returns a func that
// restores it.
func SetPrimitive(fn Primitive) (restore func()) {
	old := idKey
	idKey = fn
	return func() { idKey = old }
}

// SetWipe replaces the function that clears transient output and returns a
// func that restores it.
func SetWipe(fn func([]byte)) (restore func()) {
	old := wipe
	wipe = fn
	return func() { wipe = old }
}
