package yamlutil_test

// Notes:
// - Decode vs DecodeStrict differ only in unknown-field handling; both share the
//   input checks, which are tested once through each entry point.
// These are acceptable gaps: we test observable behavior, not the YAML library.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-md2printer/internal/yamlutil"
)

type pageDoc struct {
	Size   string  `yaml:"size"`
	Margin float64 `yaml:"margin"`
}

// ---------------------------------------------------------------------------
// TestDecode - Lenient decoding
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		wantErr error
		want    pageDoc
	}{
		{
			name: "known fields",
			data: []byte("size: a4\nmargin: 0.75"),
			want: pageDoc{Size: "a4", Margin: 0.75},
		},
		{
			name: "unknown fields ignored",
			data: []byte("size: letter\nauthor: someone"),
			want: pageDoc{Size: "letter"},
		},
		{
			name:    "empty input",
			data:    nil,
			wantErr: yamlutil.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got pageDoc
			err := yamlutil.Decode(tt.data, &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Decode() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestDecodeStrict - Unknown fields rejected
// ---------------------------------------------------------------------------

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	var got pageDoc
	if err := yamlutil.DecodeStrict([]byte("size: a4"), &got); err != nil {
		t.Fatalf("DecodeStrict() unexpected error: %v", err)
	}
	if got.Size != "a4" {
		t.Errorf("Size = %q, want a4", got.Size)
	}

	err := yamlutil.DecodeStrict([]byte("size: a4\nsizee: a3"), &got)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error should carry package prefix, got %q", err)
	}
}

// ---------------------------------------------------------------------------
// TestInputChecks - Size and destination guards
// ---------------------------------------------------------------------------

func TestInputChecks(t *testing.T) {
	t.Parallel()

	if err := yamlutil.DecodeStrict([]byte("size: a4"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("nil destination: got %v, want ErrNilDestination", err)
	}

	big := []byte("size: " + strings.Repeat("x", yamlutil.MaxInputSize))
	var got pageDoc
	if err := yamlutil.Decode(big, &got); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("oversized input: got %v, want ErrInputTooLarge", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	t.Parallel()

	var got pageDoc
	if err := yamlutil.Decode([]byte("size: [unclosed"), &got); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
