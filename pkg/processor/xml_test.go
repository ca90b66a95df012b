package processor

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestParseInvocations(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantTool []string
		wantArgs []map[string]any
	}{
		{
			name: "single invoke with string parameter",
			input: `I'll search for that.
<function_calls>
<invoke name="web_search">
<parameter name="query">golang sync.WaitGroup</parameter>
</invoke>
</function_calls>`,
			wantTool: []string{"web_search"},
			wantArgs: []map[string]any{{"query": "golang sync.WaitGroup"}},
		},
		{
			name: "scalars stay literal, booleans decode",
			input: `<function_calls>
<invoke name="web_search">
<parameter name="query">kubernetes</parameter>
<parameter name="num_results">3</parameter>
<parameter name="safe">true</parameter>
</invoke>
</function_calls>`,
			wantTool: []string{"web_search"},
			wantArgs: []map[string]any{{"query": "kubernetes", "num_results": "3", "safe": true}},
		},
		{
			name: "quoted and numeric bodies keep their bytes",
			input: `<function_calls>
<invoke name="ask">
<parameter name="text">"quoted question"</parameter>
<parameter name="code">123</parameter>
<parameter name="flag">false</parameter>
<parameter name="shout">True</parameter>
</invoke>
</function_calls>`,
			wantTool: []string{"ask"},
			wantArgs: []map[string]any{{
				"text":  `"quoted question"`,
				"code":  "123",
				"flag":  false,
				"shout": "True",
			}},
		},
		{
			name: "object parameter decodes as JSON",
			input: `<function_calls>
<invoke name="update_config">
<parameter name="patch">{"retries": 5, "enabled": false}</parameter>
</invoke>
</function_calls>`,
			wantTool: []string{"update_config"},
			wantArgs: []map[string]any{{"patch": map[string]any{"retries": float64(5), "enabled": false}}},
		},
		{
			name: "array parameter decodes as JSON",
			input: `<function_calls>
<invoke name="ask">
<parameter name="text">Which one?</parameter>
<parameter name="attachments">["a.txt", "b.txt"]</parameter>
</invoke>
</function_calls>`,
			wantTool: []string{"ask"},
			wantArgs: []map[string]any{{"text": "Which one?", "attachments": []any{"a.txt", "b.txt"}}},
		},
		{
			name: "multiple invokes in one block keep document order",
			input: `<function_calls>
<invoke name="first_tool">
<parameter name="x">1</parameter>
</invoke>
<invoke name="second_tool">
<parameter name="y">2</parameter>
</invoke>
</function_calls>`,
			wantTool: []string{"first_tool", "second_tool"},
			wantArgs: []map[string]any{{"x": "1"}, {"y": "2"}},
		},
		{
			name: "multiple blocks all scanned",
			input: `First:
<function_calls>
<invoke name="a">
</invoke>
</function_calls>
then some prose, then:
<function_calls>
<invoke name="b">
</invoke>
</function_calls>`,
			wantTool: []string{"a", "b"},
			wantArgs: []map[string]any{{}, {}},
		},
		{
			name:     "multiline parameter value stays literal",
			input:    "<function_calls>\n<invoke name=\"ask\">\n<parameter name=\"text\">line one\nline two</parameter>\n</invoke>\n</function_calls>",
			wantTool: []string{"ask"},
			wantArgs: []map[string]any{{"text": "line one\nline two"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseInvocations(tt.input)
			if len(got) != len(tt.wantTool) {
				t.Fatalf("got %d invocations, want %d", len(got), len(tt.wantTool))
			}
			for i, inv := range got {
				if inv.Name != tt.wantTool[i] {
					t.Errorf("invocation %d name = %q, want %q", i, inv.Name, tt.wantTool[i])
				}
				var args map[string]any
				if err := json.Unmarshal([]byte(inv.Arguments), &args); err != nil {
					t.Fatalf("invocation %d arguments not valid JSON: %v", i, err)
				}
				if !reflect.DeepEqual(args, tt.wantArgs[i]) {
					t.Errorf("invocation %d arguments = %#v, want %#v", i, args, tt.wantArgs[i])
				}
			}
		})
	}
}

func TestParseInvocations_NoBlocks(t *testing.T) {
	inputs := []string{
		"",
		"plain prose with no tool calls",
		"<invoke name=\"x\"></invoke> outside a function_calls block",
		"<function_calls>unclosed block",
	}
	for _, input := range inputs {
		if got := ParseInvocations(input); got != nil {
			t.Errorf("ParseInvocations(%q) = %v, want nil", input, got)
		}
	}
}

func TestParseInvocations_EmptyParameterValue(t *testing.T) {
	got := ParseInvocations(`<function_calls>
<invoke name="complete">
<parameter name="text"></parameter>
</invoke>
</function_calls>`)
	if len(got) != 1 {
		t.Fatalf("got %d invocations, want 1", len(got))
	}
	if got[0].Arguments != `{"text":""}` {
		t.Errorf("Arguments = %q, want %q", got[0].Arguments, `{"text":""}`)
	}
}

func TestContainsTerminatingTag(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"The result is ready. <complete>Done.</complete>", true},
		{"<ask>Should I proceed with the deletion?</ask>", true},
		{"no closing tags here", false},
		{"<function_calls><invoke name=\"ask\"></invoke></function_calls>", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ContainsTerminatingTag(tt.input); got != tt.want {
			t.Errorf("ContainsTerminatingTag(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
