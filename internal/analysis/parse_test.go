package analysis

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func decodeAll(t *testing.T, fields map[string]json.RawMessage) map[string]any {
	t.Helper()
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		var val any
		if err := json.Unmarshal(v, &val); err != nil {
			t.Fatalf("field %q holds invalid JSON: %v", k, err)
		}
		out[k] = val
	}
	return out
}

func TestParse(t *testing.T) {
	want := map[string]any{
		"reflection_summary": "ok",
		"likely_drivers":     []any{"a", "b"},
	}

	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "clean JSON is parsed unchanged",
			raw:  `{"reflection_summary": "ok", "likely_drivers": ["a", "b"]}`,
		},
		{
			name: "fenced block with language tag",
			raw:  "```json\n{\"reflection_summary\": \"ok\", \"likely_drivers\": [\"a\", \"b\"]}\n```",
		},
		{
			name: "fenced block without language tag",
			raw:  "```\n{\"reflection_summary\": \"ok\", \"likely_drivers\": [\"a\", \"b\"]}\n```",
		},
		{
			name: "surrounding prose is dropped",
			raw:  "Here is your analysis:\n{\"reflection_summary\": \"ok\", \"likely_drivers\": [\"a\", \"b\"]}\nLet me know if you need more.",
		},
		{
			name: "trailing comma before closing brace",
			raw:  `{"reflection_summary": "ok", "likely_drivers": ["a", "b"],}`,
		},
		{
			name: "trailing comma before closing bracket",
			raw:  `{"reflection_summary": "ok", "likely_drivers": ["a", "b",]}`,
		},
		{
			name: "fence plus prose plus trailing commas",
			raw:  "```json\nSure!\n{\"reflection_summary\": \"ok\", \"likely_drivers\": [\"a\", \"b\",],}\n```",
		},
		{
			name: "leading whitespace",
			raw:  "\n\n  {\"reflection_summary\": \"ok\", \"likely_drivers\": [\"a\", \"b\"]}  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := cmp.Diff(want, decodeAll(t, fields)); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	raw := `{"a": "x", "b": [1, 2]}`
	first, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	// Re-marshaling the parsed fields and parsing again must not change
	// anything: repairing already-clean JSON is a no-op.
	rebuilt, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	second, err := Parse(string(rebuilt))
	if err != nil {
		t.Fatalf("Parse() second pass error = %v", err)
	}
	if diff := cmp.Diff(decodeAll(t, first), decodeAll(t, second)); diff != "" {
		t.Errorf("second parse differs (-first +second):\n%s", diff)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "empty input", raw: "", wantErr: ErrEmptyResponse},
		{name: "only whitespace", raw: "   \n\t ", wantErr: ErrEmptyResponse},
		{name: "no JSON at all", raw: "I could not produce an analysis."},
		{name: "unbalanced braces", raw: `{"a": "x"`},
		{name: "fenced garbage", raw: "```json\nnot json\n```"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "clean array",
			raw:  `["q1?", "q2?"]`,
			want: []string{"q1?", "q2?"},
		},
		{
			name: "fenced array with trailing comma",
			raw:  "```json\n[\"q1?\", \"q2?\",]\n```",
			want: []string{"q1?", "q2?"},
		},
		{
			name: "prose around array",
			raw:  `Here you go: ["q1?"] hope that helps`,
			want: []string{"q1?"},
		},
		{
			name: "non-string items dropped",
			raw:  `["q1?", 42, {"x": "y"}]`,
			want: []string{"q1?"},
		},
		{
			name:    "empty input",
			raw:     "",
			wantErr: true,
		},
		{
			name: "array embedded in an object is still recovered",
			raw:  `{"questions": ["q1?"]}`,
			want: []string{"q1?"},
		},
		{
			name:    "no array anywhere",
			raw:     `{"questions": "none"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringList(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseStringList() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseStringList() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
