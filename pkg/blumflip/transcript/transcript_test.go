package transcript

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/commitlab/blumflip-go/pkg/blumflip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/logging"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name string
		ev   Event
		want string
	}{
		{
			"party action",
			Event{Role: blumflip.RoleKeyHolder, Kind: KindKeyPublished, Detail: "published h=4"},
			"[KeyHolder] published h=4",
		},
		{
			"cross-party send",
			Event{Role: blumflip.RoleCommitter, Kind: KindCommitSent, Detail: "SEND COMMIT: c=3"},
			"[Committer->KeyHolder] SEND COMMIT: c=3",
		},
		{
			"reveal send",
			Event{Role: blumflip.RoleCommitter, Kind: KindRevealSent, Detail: "REVEAL: m=1, r=3"},
			"[Committer->KeyHolder] REVEAL: m=1, r=3",
		},
		{
			"outcome",
			Event{Role: blumflip.RoleKeyHolder, Kind: KindOutcome, Detail: "coin = m XOR b = 1 XOR 0 = 1"},
			"[Result] coin = m XOR b = 1 XOR 0 = 1",
		},
		{
			"abort",
			Event{Role: blumflip.RoleKeyHolder, Kind: KindAborted, Detail: "ABORT (verification failed)"},
			"[Result] ABORT (verification failed)",
		},
		{
			"winner",
			Event{Role: blumflip.RoleCommitter, Kind: KindWinner, Detail: "Committer wins!"},
			"[Winner] Committer wins!",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.ev); got != tc.want {
				t.Fatalf("Format() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	kinds := []Kind{
		KindKeyPublished, KindBitChosen, KindCommitted, KindCommitSent,
		KindCounterBitChosen, KindRevealSent, KindVerified, KindOutcome,
		KindWinner, KindAborted,
	}
	seen := make(map[string]struct{}, len(kinds))
	for _, k := range kinds {
		name := k.String()
		if name == "" || strings.HasPrefix(name, "Kind(") {
			t.Fatalf("kind %d has no display name", k)
		}
		if _, dup := seen[name]; dup {
			t.Fatalf("duplicate kind name %q", name)
		}
		seen[name] = struct{}{}
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Fatalf("unknown kind renders as %q", got)
	}
}

func TestRecorderPreservesOrder(t *testing.T) {
	rec := NewRecorder()
	for i := 0; i < 10; i++ {
		rec.Emit(Event{Kind: KindBitChosen, Detail: strings.Repeat("x", i)})
	}
	events := rec.Events()
	if len(events) != 10 {
		t.Fatalf("got %d events, want 10", len(events))
	}
	for i, ev := range events {
		if len(ev.Detail) != i {
			t.Fatalf("event %d out of order", i)
		}
	}
}

func TestRecorderSnapshotIsolation(t *testing.T) {
	rec := NewRecorder()
	rec.Emit(Event{Detail: "first"})
	snap := rec.Events()
	rec.Emit(Event{Detail: "second"})
	if len(snap) != 1 {
		t.Fatalf("snapshot grew after later emits: %d", len(snap))
	}
	snap[0].Detail = "mutated"
	if rec.Events()[0].Detail != "first" {
		t.Fatal("mutating a snapshot changed the recording")
	}
}

func TestRecorderConcurrentEmitters(t *testing.T) {
	rec := NewRecorder()
	const (
		workers = 8
		each    = 100
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				rec.Emit(Event{Kind: KindBitChosen})
			}
		}()
	}
	wg.Wait()

	if got := rec.Len(); got != workers*each {
		t.Fatalf("lost events: got %d, want %d", got, workers*each)
	}
}

func TestWriterPrintsFormattedLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Emit(Event{Role: blumflip.RoleCommitter, Kind: KindBitChosen, Detail: "chose m=1"})
	w.Emit(Event{Role: blumflip.RoleCommitter, Kind: KindCommitSent, Detail: "SEND COMMIT: c=3"})

	want := "[Committer] chose m=1\n[Committer->KeyHolder] SEND COMMIT: c=3\n"
	if got := buf.String(); got != want {
		t.Fatalf("writer output:\n%q\nwant:\n%q", got, want)
	}
}

type capturingLogger struct {
	mu    sync.Mutex
	msgs  []string
	attrs [][]any
}

func (l *capturingLogger) Debug(ctx context.Context, msg string, args ...any) { l.record(msg, args) }
func (l *capturingLogger) Info(ctx context.Context, msg string, args ...any)  { l.record(msg, args) }
func (l *capturingLogger) Warn(ctx context.Context, msg string, args ...any)  { l.record(msg, args) }
func (l *capturingLogger) Error(ctx context.Context, msg string, args ...any) { l.record(msg, args) }
func (l *capturingLogger) With(args ...any) logging.Logger                    { return l }

func (l *capturingLogger) record(msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.msgs = append(l.msgs, msg)
	l.attrs = append(l.attrs, args)
}

func TestLogSinkForwardsEvents(t *testing.T) {
	logger := &capturingLogger{}
	sink := NewLogSink(logger)

	sink.Emit(Event{Role: blumflip.RoleKeyHolder, Kind: KindVerified, Detail: "verify(...) = true"})

	if len(logger.msgs) != 1 || logger.msgs[0] != "verify(...) = true" {
		t.Fatalf("unexpected log messages: %v", logger.msgs)
	}
	attrs := logger.attrs[0]
	if len(attrs) != 4 || attrs[0] != "role" || attrs[1] != "KeyHolder" || attrs[2] != "kind" || attrs[3] != "Verified" {
		t.Fatalf("unexpected log attributes: %v", attrs)
	}
}

func TestDiscardAcceptsEverything(t *testing.T) {
	// Must not panic or block.
	for i := 0; i < 3; i++ {
		Discard.Emit(Event{Kind: Kind(i)})
	}
}
