package altiumerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "missing stream",
			err:  MissingStream("Data"),
			want: "missing_stream: Data: stream not found",
		},
		{
			name: "parse with offset",
			err:  Parse("Data", 128, "unexpected record type 0xff"),
			want: "parse_error: Data (at offset 128): unexpected record type 0xff",
		},
		{
			name: "wrapped file read",
			err:  FileRead("lib.PcbLib", errors.New("permission denied")),
			want: "file_read: lib.PcbLib: permission denied",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestErrorUnwrapAndAs(t *testing.T) {
	cause := errors.New("boom")
	wrapped := fmt.Errorf("opening library: %w", FileRead("lib.PcbLib", cause))

	var aerr *Error
	if !errors.As(wrapped, &aerr) {
		t.Fatal("errors.As failed to find *Error in chain")
	}
	if aerr.Kind != KindFileRead {
		t.Errorf("Kind = %v, want %v", aerr.Kind, KindFileRead)
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is did not find wrapped cause")
	}
}

func TestKindString(t *testing.T) {
	if Kind(999).String() != "unknown" {
		t.Errorf("unknown Kind did not stringify to 'unknown'")
	}
	if KindComponentNotFound.String() != "component_not_found" {
		t.Errorf("KindComponentNotFound.String() = %q", KindComponentNotFound.String())
	}
}
