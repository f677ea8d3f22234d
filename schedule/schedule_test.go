package schedule_test

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/hasbyte1/stegokeys/schedule"
	"github.com/hasbyte1/stegokeys/secret"
)

// The root secret Argon2id produces for "correct horse battery staple",
// salt 00..0f, m=65536, t=3, p=1.
const knownRoot = "0d1a3c6523c8f06e4e0af9c515aa5b5448cfebd6838f2d52c3d8b6ef8ddc3c2e"

func hexBuffer(t testing.TB, s string) *secret.Buffer {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	buf := secret.FromBytes(b)
	t.Cleanup(buf.Destroy)
	return buf
}

func mustHex(t testing.TB, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

// ──────────────────────────────────────────────────────────────────────────────
// Published vectors
// ──────────────────────────────────────────────────────────────────────────────

// RFC 5869 Appendix A, expand step only (PRK taken from the vector).
func TestExpand_RFC5869(t *testing.T) {
	tests := []struct {
		name string
		prk  string
		info string
		okm  string
	}{
		{
			name: "test case 1",
			prk:  "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5",
			info: "f0f1f2f3f4f5f6f7f8f9",
			okm:  "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865",
		},
		{
			name: "test case 3",
			prk:  "19ef24a32c717b167f33a91d6f648bdf96596776afdb6377ac434c1c293ccb04",
			info: "",
			okm:  "8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d9d201395faa4b61a96c8",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := mustHex(t, tt.okm)
			out, err := schedule.Expand(hexBuffer(t, tt.prk), string(mustHex(t, tt.info)), len(want))
			if err != nil {
				t.Fatalf("Expand: %v", err)
			}
			defer out.Destroy()
			if !out.EqualTo(want) {
				t.Errorf("okm = %x, want %x", out.Bytes(), want)
			}
		})
	}
}

func TestDeriveKeys_KnownAnswer(t *testing.T) {
	keys, err := schedule.DeriveKeys(hexBuffer(t, knownRoot))
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer keys.Destroy()

	wantEnc := mustHex(t, "d83265c5c11e131ae9b5766a56680f7787d57d389edead21a8900f960745c327")
	wantPRNG := mustHex(t, "6ca81ec26b907a2676ff81475804fd3c066747c68bee5888ac48e216d00ec549")
	if !keys.Enc.EqualTo(wantEnc) {
		t.Errorf("enc = %x, want %x", keys.Enc.Bytes(), wantEnc)
	}
	if !keys.PRNG.EqualTo(wantPRNG) {
		t.Errorf("prng = %x, want %x", keys.PRNG.Bytes(), wantPRNG)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Determinism and domain separation
// ──────────────────────────────────────────────────────────────────────────────

func TestDeriveKeys_DeterministicAndSeparated(t *testing.T) {
	root := hexBuffer(t, knownRoot)

	a, err := schedule.DeriveKeys(root)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer a.Destroy()
	b, err := schedule.DeriveKeys(root)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer b.Destroy()

	if !a.Enc.EqualTo(b.Enc.Bytes()) || !a.PRNG.EqualTo(b.PRNG.Bytes()) {
		t.Error("DeriveKeys is not deterministic")
	}
	if a.Enc.EqualTo(a.PRNG.Bytes()) {
		t.Error("enc key equals prng key")
	}
	if a.Enc.Size() != schedule.KeySize || a.PRNG.Size() != schedule.KeySize {
		t.Errorf("key sizes = %d/%d, want %d", a.Enc.Size(), a.PRNG.Size(), schedule.KeySize)
	}
}

func TestExpand_LabelsPairwiseDistinct(t *testing.T) {
	root := hexBuffer(t, knownRoot)
	labels := []string{schedule.LabelEnc, schedule.LabelPRNG, "mac"}

	outs := make([]*secret.Buffer, len(labels))
	for i, label := range labels {
		out, err := schedule.Expand(root, label, schedule.KeySize)
		if err != nil {
			t.Fatalf("Expand(%q): %v", label, err)
		}
		defer out.Destroy()
		outs[i] = out
	}

	for i := range outs {
		for j := i + 1; j < len(outs); j++ {
			if outs[i].EqualTo(outs[j].Bytes()) {
				t.Errorf("labels %q and %q gave the same output", labels[i], labels[j])
			}
		}
	}
}

// The prng key is its own expansion, not the second half of a longer "enc"
// expansion.
func TestDeriveKeys_NotSlicedFromOneExpansion(t *testing.T) {
	root := hexBuffer(t, knownRoot)
	keys, err := schedule.DeriveKeys(root)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer keys.Destroy()

	long, err := schedule.Expand(root, schedule.LabelEnc, 2*schedule.KeySize)
	if err != nil {
		t.Fatalf("Expand: %v", err)
	}
	defer long.Destroy()

	if !keys.Enc.EqualTo(long.Bytes()[:schedule.KeySize]) {
		t.Error("enc key is not the HKDF-Expand prefix for its label")
	}
	if keys.PRNG.EqualTo(long.Bytes()[schedule.KeySize:]) {
		t.Error("prng key was sliced out of the enc expansion")
	}
}

func TestDeriveKeys_OutputsFrozenRootUntouched(t *testing.T) {
	root := hexBuffer(t, knownRoot)
	keys, err := schedule.DeriveKeys(root)
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	defer keys.Destroy()

	if keys.Enc.Mutable() || keys.PRNG.Mutable() {
		t.Error("derived keys should be frozen")
	}
	if !root.EqualTo(mustHex(t, knownRoot)) || !root.Alive() {
		t.Error("DeriveKeys modified or released the root")
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Failure paths
// ──────────────────────────────────────────────────────────────────────────────

func TestExpand_LengthBounds(t *testing.T) {
	root := hexBuffer(t, knownRoot)
	for _, n := range []int{-1, 0, schedule.MaxOutput + 1} {
		out, err := schedule.Expand(root, "enc", n)
		if !errors.Is(err, schedule.ErrExpansionFailed) {
			t.Errorf("n=%d: expected ErrExpansionFailed, got %v", n, err)
		}
		if out != nil {
			t.Errorf("n=%d: output returned on failure", n)
		}
	}

	out, err := schedule.Expand(root, "enc", schedule.MaxOutput)
	if err != nil {
		t.Fatalf("n=MaxOutput: %v", err)
	}
	defer out.Destroy()
	if out.Size() != schedule.MaxOutput {
		t.Errorf("size = %d, want %d", out.Size(), schedule.MaxOutput)
	}
}

func TestDeriveKeys_DeadRoot(t *testing.T) {
	destroyed := secret.FromBytes(mustHex(t, knownRoot))
	destroyed.Destroy()

	for name, root := range map[string]*secret.Buffer{"nil": nil, "destroyed": destroyed} {
		t.Run(name, func(t *testing.T) {
			keys, err := schedule.DeriveKeys(root)
			if !errors.Is(err, schedule.ErrExpansionFailed) {
				t.Fatalf("expected ErrExpansionFailed, got %v", err)
			}
			if keys != nil {
				t.Error("keys returned for a dead root")
			}
		})
	}
}

func TestKeysDestroy(t *testing.T) {
	keys, err := schedule.DeriveKeys(hexBuffer(t, knownRoot))
	if err != nil {
		t.Fatalf("DeriveKeys: %v", err)
	}
	keys.Destroy()
	if keys.Enc.Alive() || keys.PRNG.Alive() {
		t.Error("keys alive after Destroy")
	}
	keys.Destroy()

	var none *schedule.Keys
	none.Destroy()
}
