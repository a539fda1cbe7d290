package cli

import (
	"fmt"
	"io"
	"strings"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// All shell completion functions generate from this registry, so adding
// a new flag only requires appending to flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without dashes (e.g., "threads")
	Short     string   // short alias without dash (e.g., "t")
	Help      string   // description text
	Values    []string // suggested completion values (nil = boolean/no suggestions)
	ValueName string   // label for the value in zsh (e.g., "count")
}

// flagRegistry is the central list of all CLI flags for completion generation.
var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message"},
	{Long: "version", Short: "V", Help: "Show version information"},
	{Short: "n", Help: "Array length", Values: []string{"1000", "100000", "1000000", "10000000"}, ValueName: "length"},
	{Long: "threads", Short: "t", Help: "Requested parallel workers", Values: []string{"1", "2", "4", "8", "16"}, ValueName: "count"},
	{Long: "chunk", Help: "Indices per scheduling chunk", Values: []string{"1", "64", "1000", "4096", "65536"}, ValueName: "size"},
	{Long: "seed", Help: "Seed of the random fill", ValueName: "seed"},
	{Long: "show", Help: "Leading elements to print", Values: []string{"0", "5", "10", "20"}, ValueName: "count"},
	{Long: "repeat", Help: "Repetitions per benchmark", Values: []string{"1", "5", "10"}, ValueName: "count"},
	{Long: "sweep", Help: "Thread counts to compare", Values: []string{"auto", "1,2,4,8"}, ValueName: "list"},
	{Long: "gc", Help: "GC control during timed phases", Values: []string{"auto", "aggressive", "disabled"}, ValueName: "mode"},
	{Long: "metrics", Help: "Print Prometheus metrics"},
	{Long: "verbose", Short: "v", Help: "Debug logs and host details"},
	{Long: "quiet", Short: "q", Help: "One line per benchmark"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "tui", Help: "Interactive dashboard"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish" or "powershell") to out.
func GenerateCompletion(out io.Writer, shell string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out)
	case "zsh":
		return generateZshCompletion(out)
	case "fish":
		return generateFishCompletion(out)
	case "powershell", "ps":
		return generatePowerShellCompletion(out)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// flagNames returns every spelling of f accepted on the command line.
func flagNames(f FlagCompletion) []string {
	var names []string
	if f.Long != "" {
		names = append(names, "-"+f.Long, "--"+f.Long)
	}
	if f.Short != "" {
		names = append(names, "-"+f.Short)
	}
	return names
}

func generateBashCompletion(out io.Writer) error {
	var opts []string
	var caseBody strings.Builder
	for _, f := range flagRegistry {
		names := flagNames(f)
		opts = append(opts, names...)
		if len(f.Values) == 0 {
			continue
		}
		fmt.Fprintf(&caseBody, "        %s)\n", strings.Join(names, "|"))
		fmt.Fprintf(&caseBody, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
		caseBody.WriteString("            return 0\n            ;;\n")
	}

	script := fmt.Sprintf(`# Bash completion script for vecbench
# Add this to your ~/.bashrc or ~/.bash_completion

_vecbench_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _vecbench_completions vecbench
`, strings.Join(opts, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func generateZshCompletion(out io.Writer) error {
	var args []string
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef vecbench

# Zsh completion script for vecbench
# Add this to your ~/.zshrc or place in $fpath

_vecbench() {
    _arguments -s \
%s
}

_vecbench "$@"
`, strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats a single FlagCompletion as a zsh _arguments entry.
func zshArgEntry(f FlagCompletion) string {
	valueSuffix := ""
	if len(f.Values) > 0 {
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	} else if f.ValueName != "" {
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Long != "" && f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	if f.Long != "" {
		return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '-%s[%s]%s'", f.Short, f.Help, valueSuffix)
}

func generateFishCompletion(out io.Writer) error {
	lines := []string{
		"# Fish completion script for vecbench",
		"# Add this to ~/.config/fish/completions/vecbench.fish",
		"",
		"complete -c vecbench -f",
		"",
	}
	for _, f := range flagRegistry {
		lines = append(lines, fishCompleteLine(f))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

// fishCompleteLine formats a single FlagCompletion as a fish complete command.
// Go's flag package accepts single-dash long names, so they are registered
// as old-style options.
func fishCompleteLine(f FlagCompletion) string {
	parts := []string{"complete -c vecbench"}
	if f.Short != "" {
		parts = append(parts, "-o "+f.Short)
	}
	if f.Long != "" {
		parts = append(parts, "-o "+f.Long, "-l "+f.Long)
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", f.Help))
	if len(f.Values) > 0 {
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	} else if f.ValueName != "" {
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

func generatePowerShellCompletion(out io.Writer) error {
	var optionEntries []string
	var switchEntries []string
	for _, f := range flagRegistry {
		for _, name := range flagNames(f) {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '%s'; Description = '%s' }", name, f.Help))
		}
		if len(f.Values) == 0 {
			continue
		}
		var patterns, quoted []string
		for _, name := range flagNames(f) {
			patterns = append(patterns, fmt.Sprintf("'%s'", name))
		}
		for _, v := range f.Values {
			quoted = append(quoted, fmt.Sprintf("'%s'", v))
		}
		switchEntries = append(switchEntries, fmt.Sprintf(`        { $_ -in @(%s) } {
            @(%s) | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, strings.Join(patterns, ", "), strings.Join(quoted, ", ")))
	}

	script := fmt.Sprintf(`# PowerShell completion script for vecbench
# Add this to your $PROFILE

Register-ArgumentCompleter -CommandName 'vecbench' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
