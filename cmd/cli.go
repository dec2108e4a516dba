package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"github.com/fzft/go-intset/commands"
	"github.com/fzft/go-intset/log"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"go.uber.org/zap"
	"io"
	"os"
	"strings"
)

var (
	IntsetCliHistFileEnv     = "INTSET_CLI_HISTFILE"
	IntsetCliHistFileDefault = ".intset_history"
)

type Cli struct {
	cmd         *commands.SetCmd
	interactive bool
}

// NewCli returns a new Cli dispatching to the intset operator table.
func NewCli() *Cli {
	return &Cli{cmd: commands.NewSetCmd()}
}

// Run enters the evaluation loop. With a terminal on stdin it is a liner
// REPL with history; with a pipe it evaluates stdin line by line. The
// return value is the process exit code.
func (cli *Cli) Run() int {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		cli.interactive = true
		return cli.repl()
	}
	return cli.pipe(os.Stdin)
}

func (cli *Cli) repl() int {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyFile := getDotfilePath(IntsetCliHistFileEnv, IntsetCliHistFileDefault)
	if historyFile != "" {
		if err := historyLoad(line, historyFile); err != nil {
			log.Logger.Debug("no history loaded", zap.Error(err))
		}
	}

	for {
		input, err := line.Prompt("intset> ")
		if err != nil {
			if err == liner.ErrPromptAborted {
				continue
			}
			// io.EOF: ctrl-d, leave quietly
			break
		}

		argv := splitArgs(input)
		if len(argv) == 0 {
			continue
		}
		line.AppendHistory(input)
		if historyFile != "" {
			historySave(line, historyFile)
		}

		if strings.EqualFold(argv[0], "quit") || strings.EqualFold(argv[0], "exit") {
			return 0
		} else if strings.EqualFold(argv[0], "help") {
			printHelp(os.Stdout)
			continue
		} else if strings.EqualFold(argv[0], "clear") {
			fmt.Fprint(os.Stdout, "\x1b[H\x1b[2J")
			continue
		}

		reply := cli.cmd.Do(argv[0], argv[1:]...)
		fmt.Printf("%s\n", reply.Encoding())
	}
	return 0
}

func (cli *Cli) pipe(r io.Reader) int {
	code := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		argv := splitArgs(scanner.Text())
		if len(argv) == 0 {
			continue
		}
		reply := cli.cmd.Do(argv[0], argv[1:]...)
		if reply.Type() == commands.ErrReplyType {
			code = 1
		}
		fmt.Printf("%s\n", reply.Encoding())
	}
	return code
}

// splitArgs splits an input line on spaces, except that a '{...}' set
// literal is kept as a single argument so "union {1, 2} {3}" has three
// tokens. Braces do not nest in the intset grammar, so a depth flag is
// enough.
func splitArgs(input string) []string {
	var (
		argv    []string
		curr    strings.Builder
		inBrace bool
	)
	flush := func() {
		if curr.Len() > 0 {
			argv = append(argv, curr.String())
			curr.Reset()
		}
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '{':
			inBrace = true
			curr.WriteByte(c)
		case c == '}':
			inBrace = false
			curr.WriteByte(c)
		case c == ' ' && !inBrace:
			flush()
		default:
			curr.WriteByte(c)
		}
	}
	flush()
	return argv
}

func getDotfilePath(envOverride, dotFilename string) string {
	var dotPath string

	path := os.Getenv(envOverride)
	if path != "" {
		if path == "/dev/null" {
			return ""
		}
		dotPath = path
	} else {
		home := os.Getenv("HOME")
		if home != "" {
			dotPath = fmt.Sprintf("%s/%s", home, dotFilename)
		}
	}
	return dotPath
}

func historyLoad(line *liner.State, filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	_, err = line.ReadHistory(bytes.NewReader(content))
	return err
}

func historySave(line *liner.State, filepath string) error {
	var buf bytes.Buffer
	if _, err := line.WriteHistory(&buf); err != nil {
		return err
	}
	return os.WriteFile(filepath, buf.Bytes(), 0644)
}
