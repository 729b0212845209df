package records

import (
	"encoding/csv"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Record
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "two rows",
			input: "a,bb\ncc,d\n",
			want:  []Record{{"a", "bb"}, {"cc", "d"}},
		},
		{
			name:  "no trailing newline",
			input: "a,bb\ncc,d",
			want:  []Record{{"a", "bb"}, {"cc", "d"}},
		},
		{
			name:  "fields are trimmed",
			input: "  a , b\t\n c,d  \n",
			want:  []Record{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "quoted fields",
			input: "\"x, y\",\" z \"\n1,2\n",
			want:  []Record{{"x, y", "z"}, {"1", "2"}},
		},
		{
			name:  "blank lines skipped",
			input: "a,b\n\nc,d\n",
			want:  []Record{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "quoted field after a space",
			input: "name, \"size\"\nfoo, 1\n",
			want:  []Record{{"name", "size"}, {"foo", "1"}},
		},
		{
			name:  "bare quote inside a field",
			input: "a\"b,c\nd,e\n",
			want:  []Record{{"a\"b", "c"}, {"d", "e"}},
		},
		{
			name:  "inch marks",
			input: "5\" pipe,2\n",
			want:  []Record{{"5\" pipe", "2"}},
		},
		{
			name:  "empty fields",
			input: ",\nx,\n",
			want:  []Record{{"", ""}, {"x", ""}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseRaggedRows(t *testing.T) {
	_, err := Parse(strings.NewReader("a,b\nc\n"))
	if err == nil {
		t.Fatal("expected error for ragged rows")
	}

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error should be a *ParseError, got %T", err)
	}
	if !errors.Is(err, csv.ErrFieldCount) {
		t.Errorf("error should wrap csv.ErrFieldCount, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error should name the offending line, got %q", err.Error())
	}
}

func TestParseRaggedAfterQuotedField(t *testing.T) {
	_, err := Parse(strings.NewReader("\"a,b\",c\nd\n"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.csv")
	if err := os.WriteFile(path, []byte("name, size\nfoo, 1\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	got, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	want := []Record{{"name", "size"}, {"foo", "1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseFile mismatch (-want +got):\n%s", diff)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error should wrap fs.ErrNotExist, got %v", err)
	}
}

func TestParseFileErrorIncludesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ragged.csv")
	if err := os.WriteFile(path, []byte("a,b\nc\n"), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	_, err := ParseFile(path)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.HasPrefix(err.Error(), path+": ") {
		t.Errorf("error = %q, want prefix %q", err.Error(), path+": ")
	}
}
