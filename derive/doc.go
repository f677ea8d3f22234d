// Package derive runs the full passphrase-to-keys pipeline:
//
//	passphrase ──stretch──▶ root secret ──schedule──▶ {enc key, prng key}
//
// Data flows one way. The root secret lives only inside a single call: it is
// created by the stretcher, handed to the key scheduler and destroyed before
// the call returns, whether it succeeds or not. What the caller gets back is
// a [Result] with the salt, the cost parameters and the two keys.
//
// # Quick start
//
//	d := derive.New()
//	res, err := d.Derive(passphrase, stretch.DefaultParams())
//	if err != nil {
//	    return err
//	}
//	defer res.Destroy()
//	store(res.Record())          // salt + params, not secret
//	encrypt(res.Keys.Enc.Bytes())
//
// Later, to get the same keys back:
//
//	res, err := d.RederiveRecord(passphrase, storedRecord)
//
// # Logging
//
// A [Deriver] built [WithLogger] logs each derivation's cost parameters,
// salt and duration. Secret values are never passed to the logger.
package derive
