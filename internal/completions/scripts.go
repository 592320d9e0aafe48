package completions

import (
	"fmt"
	"io"
	"strings"
)

// Each script asks the binary for candidates through
// `<bin> completions complete <words...>`, so it never goes stale when
// routes change. %[3]s is the binary path, already quoted for the shell.

const bashTemplate = `# %[1]s bash completion script
_%[2]s_completions() {
    local cur="${COMP_WORDS[COMP_CWORD]}"
    local words=("${COMP_WORDS[@]:1:COMP_CWORD-1}")
    COMPREPLY=( $(compgen -W "$(%[3]s completions complete "${words[@]}" 2>/dev/null)" -- "$cur") )
}
complete -F _%[2]s_completions %[1]s
`

const zshTemplate = `#compdef %[1]s
# %[1]s zsh completion script
_%[2]s() {
    local -a candidates
    candidates=(${(f)"$(%[3]s completions complete ${words[2,CURRENT-1]} 2>/dev/null)"})
    compadd -a candidates
}
compdef _%[2]s %[1]s
`

const fishTemplate = `# %[1]s fish completion script
complete -c %[1]s -f -a '(%[3]s completions complete (commandline -opc)[2..-1] 2>/dev/null)'
`

// Script returns the completion script for shell, or "" if unsupported.
func Script(shell Shell, bin, binPath string) string {
	var tmpl, quoted string
	switch shell {
	case ShellBash:
		tmpl, quoted = bashTemplate, shellQuote(binPath)
	case ShellZsh:
		tmpl, quoted = zshTemplate, shellQuote(binPath)
	case ShellFish:
		tmpl, quoted = fishTemplate, fishQuote(binPath)
	default:
		return ""
	}
	return fmt.Sprintf(tmpl, bin, funcName(bin), quoted)
}

// shellQuote single-quotes s for bash and zsh.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// fishQuote double-quotes s for the command fish evaluates, then escapes
// the result for the single-quoted -a argument that carries it.
func fishQuote(s string) string {
	inner := `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`).Replace(s) + `"`
	return strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(inner)
}

// PrintScript writes the completion script for the given shell to w.
func PrintScript(w io.Writer, shell Shell) error {
	script := Script(shell, BinaryName(), BinaryPath())
	if script == "" {
		return fmt.Errorf("unsupported shell: %s", shell)
	}

	_, err := fmt.Fprint(w, script)
	return err
}

// funcName turns a binary name into a valid shell function name.
func funcName(bin string) string {
	out := []byte(bin)
	for i, c := range out {
		isAlnum := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if !isAlnum {
			out[i] = '_'
		}
	}
	return string(out)
}
