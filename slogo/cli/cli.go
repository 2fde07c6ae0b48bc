// Package cli implements the slogo command line interface.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package cli

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/slogo"
	"github.com/npillmayer/slogo/evaluator"
	"github.com/npillmayer/slogo/slogo/ui/termui"
	"github.com/npillmayer/slogo/vm"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "slogo [flags] [file ...]",
	Short: "An interpreter for a small dialect of Logo",
	Long: `Welcome to SLogo V0.1 (experimental)

SLogo interprets turtle graphics programs written in a small dialect of Logo.

SLogo is able to run in interactive mode or execute one or more programs in
batch-mode.  If run in interactive mode, it will prompt for user input in a
terminal REPL.  Program files given as arguments, and a program given with
flag -c, are executed in batch mode.

`,
	RunE: runSlogoCmd,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called exactly once by main().
func Execute() {
	if rootCmd.Execute() != nil {
		slogo.Exit(2)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	// persistent flags which will be global for the application
	rootCmd.PersistentFlags().BoolP("interactive", "i", false, "Force run in interactive mode")
	rootCmd.PersistentFlags().String("logfile", "stderr", "URL of log output location")
	rootCmd.PersistentFlags().String("language", "", "Language of command names (name or tag)")
	rootCmd.PersistentFlags().StringP("command", "c", "", "Program to execute")
	rootCmd.PersistentFlags().Bool("echo", false, "Print turtle movements of batch programs to stderr")
	rootCmd.PersistentFlags().Int("max-expansions", 0, "Limit for macro expansions per program")
}

func runSlogoCmd(cmd *cobra.Command, args []string) error {
	tracing.Infof("slogo interpreter called")
	interactive, _ := cmd.Flags().GetBool("interactive")
	program, _ := cmd.Flags().GetString("command")
	batch := len(args) > 0 || program != ""
	if !interactive && !batch {
		interactive = term.IsTerminal(int(os.Stdin.Fd()))
	}
	if !interactive && !batch {
		// read a program from stdin
		src, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read program from stdin: %w", err)
		}
		program = string(src)
	}
	var opts []evaluator.Option
	if lang, _ := cmd.Flags().GetString("language"); lang != "" {
		opts = append(opts, evaluator.WithLanguage(lang))
	}
	intp, err := evaluator.NewInterpreter(opts...)
	if err != nil {
		return err
	}
	if startup := StartupFile(locateAppPaths()); startup != "" {
		args = append([]string{startup}, args...)
	}
	var echo *vm.AsyncSink
	if on, _ := cmd.Flags().GetBool("echo"); on {
		echo = echoTo(intp, cmd.ErrOrStderr())
	}
	err = runBatch(intp, args, program, cmd.OutOrStdout())
	if echo != nil {
		echo.Close()
	}
	if err != nil {
		cmd.PrintErrln(err)
		if !interactive {
			return err
		}
	}
	if interactive {
		runREPL(intp)
	}
	return nil
}

// runBatch executes program files and a program text, in this order.
func runBatch(intp *evaluator.Interpreter, files []string, program string, out io.Writer) error {
	for _, f := range files {
		src, err := ioutil.ReadFile(f)
		if err != nil {
			return fmt.Errorf("cannot read program file: %w", err)
		}
		tracer().P("file", f).Infof("executing program file")
		if _, err := intp.Submit(string(src)); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	if strings.TrimSpace(program) != "" {
		r, err := intp.Submit(program)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%g\n", r)
	}
	return nil
}

// echoRenderer prints a line for every command executed.
type echoRenderer struct {
	out io.Writer
}

func (echo echoRenderer) ExpectCommands(n int) {}

func (echo echoRenderer) Notify(note vm.Notification) {
	Formatter{}.Format(note, echo.out)
}

// echoTo makes intp print turtle movements to out. Printing runs
// decoupled from execution; callers have to close the returned sink to
// flush it.
func echoTo(intp *evaluator.Interpreter, out io.Writer) *vm.AsyncSink {
	sink := vm.NewAsyncSink(echoRenderer{out: out}, 64)
	intp.SetRenderer(sink)
	return sink
}

func runREPL(intp *evaluator.Interpreter) {
	scmd := &slogoCmdIntpr{intp: intp}
	scmd.BaseREPL = termui.NewBaseREPL("slogo", "0.1 experimental")
	scmd.Interpreter = scmd
	scmd.Helper = func(w io.Writer) {
		io.WriteString(w, `
Every other line is interpreted as a SLogo program, for example:

  fd 50 rt 90                      : move the turtle and turn it
  repeat 4 [ fd 50 lt 90 ]         : draw a square
  make :side 25                    : define a constant
  make :square repeat 4 [ fd :side lt 90 ]
                                   : define a macro, use it with ':square'

`)
	}
	scmd.rec = &vm.Recorder{}
	intp.SetRenderer(scmd.rec)
	scmd.AddAdminCommands(scmd.adminCommands())
	scmd.Prompt(true)
}

type slogoCmdIntpr struct {
	*termui.BaseREPL
	intp *evaluator.Interpreter
	rec  *vm.Recorder
}

// InterpretCommand is part of interface termui.REPLCommandInterpreter.
func (scmd *slogoCmdIntpr) InterpretCommand(command string) {
	command = strings.Trim(command, "\x00")
	stdout, stderr := scmd.Outputs()
	scmd.rec.Reset()
	r, err := scmd.intp.Submit(command)
	if err != nil {
		Formatter{}.Format(err, stderr)
		return
	}
	Formatter{}.Format(r, stdout)
	if notes := scmd.rec.Notifications(); len(notes) > 0 {
		Formatter{}.Format(notes[len(notes)-1], stdout)
	}
}
