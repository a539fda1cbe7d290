package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _vecbench_completions vecbench", "--threads", "-threads|--threads|-t)", `compgen -W "auto aggressive disabled"`}},
		{"zsh", []string{"#compdef vecbench", "'(-t --threads)'{-t,--threads}'[Requested parallel workers]:count:(1 2 4 8 16)'", "'-n[Array length]:length:(1000 100000 1000000 10000000)'"}},
		{"fish", []string{"complete -c vecbench -f", "complete -c vecbench -o chunk -l chunk -d 'Indices per scheduling chunk' -xa '1 64 1000 4096 65536'", "-o seed -l seed -d 'Seed of the random fill' -x"}},
		{"powershell", []string{"Register-ArgumentCompleter -CommandName 'vecbench'", "@{Name = '--sweep'; Description = 'Thread counts to compare' }", "'auto', '1,2,4,8'"}},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell); err != nil {
				t.Fatalf("GenerateCompletion(%q): %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script missing %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_Unsupported(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	if err := GenerateCompletion(&buf, "tcsh"); err == nil {
		t.Error("expected an error for an unsupported shell")
	}
}

// TestFlagRegistryCoversEveryValueFlag guards the registry against flags
// that take a value but offer neither suggestions nor a value label.
func TestFlagRegistryCoversEveryValueFlag(t *testing.T) {
	t.Parallel()
	seen := map[string]bool{}
	for _, f := range flagRegistry {
		key := f.Long
		if key == "" {
			key = f.Short
		}
		if seen[key] {
			t.Errorf("duplicate registry entry %q", key)
		}
		seen[key] = true
		if len(f.Values) > 0 && f.ValueName == "" {
			t.Errorf("flag %q has values but no ValueName", key)
		}
	}
	for _, want := range []string{"n", "threads", "chunk", "seed", "show", "repeat", "sweep", "gc", "completion"} {
		if !seen[want] {
			t.Errorf("registry lacks %q", want)
		}
	}
}
