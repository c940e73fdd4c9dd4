package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/commitlab/blumflip-go/pkg/blumflip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/flip"
	"github.com/commitlab/blumflip-go/pkg/blumflip/pedersen"
	"github.com/commitlab/blumflip-go/pkg/blumflip/transcript"
)

func TestParseRunCount(t *testing.T) {
	testCases := []struct {
		name    string
		line    string
		want    int
		wantErr error
	}{
		{"empty selects default", "", DefaultRuns, nil},
		{"whitespace selects default", "   \t", DefaultRuns, nil},
		{"plain number", "3", 3, nil},
		{"number with spaces", " 12 ", 12, nil},
		{"zero", "0", 0, ErrOutOfRange},
		{"negative", "-2", 0, ErrOutOfRange},
		{"letters", "abc", 0, ErrNotANumber},
		{"float", "2.5", 0, ErrNotANumber},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRunCount(tc.line)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPromptRunCountRepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("junk\n0\n5\n")
	var out bytes.Buffer

	got := PromptRunCount(in, &out)
	if got != 5 {
		t.Fatalf("got %d, want 5", got)
	}

	text := out.String()
	if !strings.Contains(text, "Invalid input.") {
		t.Fatalf("missing invalid-input message in %q", text)
	}
	if !strings.Contains(text, "Please enter a positive integer (>= 1)") {
		t.Fatalf("missing out-of-range message in %q", text)
	}
	if n := strings.Count(text, "Enter number of runs"); n != 3 {
		t.Fatalf("prompted %d times, want 3", n)
	}
}

func TestPromptRunCountDefaultOnEmptyLine(t *testing.T) {
	in := strings.NewReader("\n")
	var out bytes.Buffer

	if got := PromptRunCount(in, &out); got != DefaultRuns {
		t.Fatalf("got %d, want default %d", got, DefaultRuns)
	}
	if !strings.Contains(out.String(), "Using default: 1") {
		t.Fatalf("missing default notice in %q", out.String())
	}
}

func TestPromptRunCountDefaultOnEOF(t *testing.T) {
	in := strings.NewReader("")
	var out bytes.Buffer

	if got := PromptRunCount(in, &out); got != DefaultRuns {
		t.Fatalf("got %d, want default %d", got, DefaultRuns)
	}
	if !strings.Contains(out.String(), "Using default: 1") {
		t.Fatalf("missing default notice in %q", out.String())
	}
}

func TestRunSeries(t *testing.T) {
	var out bytes.Buffer
	params := flip.Params{
		Scheme: pedersen.NewMod7(),
		Rand:   blumflip.NewScripted(2, 1, 3, 0),
		Sink:   transcript.Discard,
	}

	outcomes, err := RunSeries(&out, 3, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes, want 3", len(outcomes))
	}
	for i, o := range outcomes {
		if o.Aborted || o.Coin != 1 {
			t.Fatalf("run %d outcome %+v, want committer win", i+1, o)
		}
	}

	text := out.String()
	for _, banner := range []string{"---- Run #1 ----", "---- Run #2 ----", "---- Run #3 ----"} {
		if !strings.Contains(text, banner) {
			t.Fatalf("missing banner %q in %q", banner, text)
		}
	}
	if strings.Contains(text, "---- Run #4 ----") {
		t.Fatal("ran more runs than requested")
	}
}

func TestRunSeriesContinuesThroughAborts(t *testing.T) {
	var out bytes.Buffer
	params := flip.Params{
		Scheme: pedersen.NewMod7(),
		Rand:   blumflip.NewScripted(2, 1, 3, 0),
		Sink:   transcript.Discard,
		Tamper: flip.Tamper{FlipRevealedBit: true},
	}

	outcomes, err := RunSeries(&out, 2, params)
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 2 {
		t.Fatalf("aborts must not stop the series: got %d outcomes", len(outcomes))
	}
	for i, o := range outcomes {
		if !o.Aborted {
			t.Fatalf("run %d should have aborted", i+1)
		}
	}
}

func TestRunSeriesSurfacesConstructionErrors(t *testing.T) {
	var out bytes.Buffer
	_, err := RunSeries(&out, 1, flip.Params{})
	if !errors.Is(err, flip.ErrNilScheme) {
		t.Fatalf("error = %v, want ErrNilScheme", err)
	}
}
