// Package transcript makes coin-flipping runs observable through an ordered,
// write-only event sink.
//
// The protocol emits one Event per transition and never reads anything back:
// information flows one way, from the state machine to the sink. Sinks decide
// what to do with the stream.
//
// # Sinks
//
//   - Recorder: keeps events in memory, in emission order, for inspection
//   - Writer: renders the classic role-prefixed console transcript
//   - LogSink: forwards events to a structured logger
//   - Discard: drops everything
//
// # Usage
//
//	rec := transcript.NewRecorder()
//	f, _ := flip.New(flip.Params{Scheme: scheme, Rand: src, Sink: rec})
//	_, _ = f.Run()
//	for _, ev := range rec.Events() {
//	    fmt.Println(transcript.Format(ev))
//	}
package transcript
