package termui

// Utilities for interactive command line interfaces.

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	prtxt "github.com/jedib0t/go-pretty/v6/text"
	"github.com/npillmayer/slogo"
)

// Some global defaults
var welcomeMessage = "Welcome to %s [V%s]"
var editmode string = "emacs"

// stdprompt is the prompt for a tool.
func stdprompt(toolname string) string {
	return prtxt.FgGreen.Sprintf("%s> ", toolname)
}

// AdminCommand is an administrative REPL command, i.e. a command which
// is handled by the REPL itself instead of being sent to the interpreter.
type AdminCommand struct {
	Usage string                           // arguments, for the help message
	Help  string                           // one-line description
	Run   func(args []string, w io.Writer) // args include the command itself
}

// BaseREPL is a base type to instantiate a REPL interpreter.
// Concrete REPL implementations will usually use this as a base type.
type BaseREPL struct {
	Interpreter REPLCommandInterpreter // the interpreter this REPL runs for
	Helper      func(io.Writer)        // print out help information
	readline    *readline.Instance
	toolname    string
	version     string
	admin       map[string]AdminCommand
}

// NewBaseREPL create a new REPL base object intialized for an interpreter tool
// and a given version.
func NewBaseREPL(toolname, version string) *BaseREPL {
	repl := &BaseREPL{
		toolname: toolname,
		version:  version,
		admin:    make(map[string]AdminCommand),
	}
	repl.readline = newReadline(toolname, repl.completer())
	return repl
}

// REPLCommandInterpreter is an interface all interpreters have to implement.
// It is the workhorse doing interpretation of interactive
// commands.
//
// The REPL will delegate interpreting command strings (i.e. those which do not represent
// internal administrative commands) to the interpreter.
type REPLCommandInterpreter interface {
	InterpretCommand(string)
}

// AddAdminCommands registers administrative commands with the REPL.
// Built-in commands (help, bye, mode, setprompt) cannot be replaced.
func (repl *BaseREPL) AddAdminCommands(cmds map[string]AdminCommand) {
	for name, cmd := range cmds {
		if isBuiltin(name) {
			trace().Errorf("cannot replace built-in REPL command %q", name)
			continue
		}
		repl.admin[name] = cmd
	}
	repl.readline.Config.AutoComplete = repl.completer()
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "bye", "mode", "setprompt":
		return true
	}
	return false
}

// Create a readline instance.
func newReadline(toolname string, completer readline.AutoCompleter) *readline.Instance {
	histfile := fmt.Sprintf("%s/%s-repl-history.tmp", os.TempDir(), toolname)
	prompt := stdprompt(toolname)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              prompt,
		HistoryFile:         histfile,
		AutoComplete:        completer,
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		FuncFilterInputRune: filterReplInput,
	})
	if err != nil {
		panic(err)
	}
	return rl
}

func (repl *BaseREPL) adminNames() []string {
	names := make([]string, 0, len(repl.admin))
	for name := range repl.admin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// displayCommands prints a help message with available commands
// We support some internal interactive sub-commands (not part of the interpreter).
func (repl *BaseREPL) displayCommands(out io.Writer) {
	io.WriteString(out, fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	io.WriteString(out, "\n\nThe following commands are available:\n\n")
	io.WriteString(out, "  help               : print this message\n")
	io.WriteString(out, "  bye                : quit application\n")
	io.WriteString(out, "  mode [mode]        : display or set current editing mode\n")
	io.WriteString(out, "  setprompt [prompt] : set current prompt [to default]\n")
	for _, name := range repl.adminNames() {
		cmd := repl.admin[name]
		usage := strings.TrimSpace(name + " " + cmd.Usage)
		io.WriteString(out, fmt.Sprintf("  %-18s : %s\n", usage, cmd.Help))
	}
}

// Completer-tree for interactive frames sub-commands
func (repl *BaseREPL) completer() *readline.PrefixCompleter {
	items := []readline.PrefixCompleterInterface{
		readline.PcItem("help"),
		readline.PcItem("bye"),
		readline.PcItem("mode",
			readline.PcItem("vi"),
			readline.PcItem("emacs"),
		),
		readline.PcItem("setprompt"),
	}
	for _, name := range repl.adminNames() {
		items = append(items, readline.PcItem(name))
	}
	return readline.NewPrefixCompleter(items...)
}

// Outputs returns stdout and stderr of this REPL.
func (repl *BaseREPL) Outputs() (io.Writer, io.Writer) {
	return repl.readline.Stdout(), repl.readline.Stderr()
}

// Prompt enters a REPL and executes commands.
// Commands are either internal administrative (setprompt, help, etc.)
// or interpreted statements.
func (repl *BaseREPL) Prompt(exitOnBye bool) {
	defer repl.readline.Close()
	io.WriteString(repl.readline.Stderr(),
		fmt.Sprintf(welcomeMessage, repl.toolname, repl.version))
	if !strings.HasSuffix(welcomeMessage, "\n") {
		repl.readline.Stderr().Write([]byte{'\n'})
	}
	for {
		line, err := repl.readline.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		words := strings.Fields(line)
		command := ""
		if len(words) > 0 {
			command = words[0]
		}
		if doExit := repl.executeCommand(command, words, line); doExit {
			break
		}
	}
	if exitOnBye {
		slogo.Exit(0)
	}
}

// Central dispatcher function to execute internal REPL commands or interpreter
// statements. It receives the command (i.e. the first word of the line),
// a list of words (args) including the command, and the complete line of text.
// If it returns true, the REPL should terminate.
func (repl *BaseREPL) executeCommand(cmd string, args []string, line string) bool {
	switch {
	case cmd == "":
		// do nothing
	case cmd == "help":
		repl.displayCommands(repl.readline.Stderr())
		if repl.Helper != nil {
			repl.Helper(repl.readline.Stderr())
		}
	case cmd == "bye":
		println("> goodbye!")
		return true
	case cmd == "mode":
		if len(args) > 1 {
			switch args[1] {
			case "vi":
				repl.readline.SetVimMode(true)
				editmode = "vi"
				return false
			case "emacs":
				repl.readline.SetVimMode(false)
				editmode = "emacs"
				return false
			}
		}
		io.WriteString(repl.readline.Stderr(),
			fmt.Sprintf("> current input mode: %s\n", editmode))
	case cmd == "setprompt":
		var prmpt string
		if len(line) <= 10 {
			prmpt = stdprompt(repl.toolname)
		} else {
			prmpt = line[10:] + " "
		}
		repl.readline.SetPrompt(prmpt)
	default:
		if admin, ok := repl.admin[cmd]; ok {
			trace().Debugf("admin command %s", cmd)
			admin.Run(args, repl.readline.Stdout())
			return false
		}
		trace().Debugf("call interpreter on: '%s'", line)
		repl.interpret(line)
	}
	return false // do not exit
}

// interpret calls the interpreter, sending a statement.
func (repl *BaseREPL) interpret(line string) {
	if repl.Interpreter == nil {
		return
	}
	repl.Interpreter.InterpretCommand(line)
}

// Input filter for REPL. Blocks ctrl-z.
func filterReplInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}
