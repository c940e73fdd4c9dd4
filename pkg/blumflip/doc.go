// Package blumflip provides the shared vocabulary for the coin-flipping
// packages: party roles, protocol bits, the injected randomness capability,
// and the default toy group.
//
// The commitment algebra lives in pkg/blumflip/pedersen, the protocol state
// machine in pkg/blumflip/flip, and the event sinks that make runs observable
// in pkg/blumflip/transcript.
//
// # Usage
//
//	scheme := pedersen.NewMod7()
//	f, err := flip.New(flip.Params{
//	    Scheme: scheme,
//	    Rand:   blumflip.CryptoSource{},
//	    Sink:   transcript.NewWriter(os.Stdout),
//	})
//	if err != nil {
//	    return err
//	}
//	outcome, err := f.Run()
//
// # Security Warning
//
// The default parameters (p=7, g=5) are deliberately tiny. Commitments over
// this group are neither hiding nor binding in any cryptographic sense; these
// packages demonstrate protocol structure and are not a tool for protecting
// secrets.
package blumflip
