package main

// This is an interpreter for an expression-oriented dialect of the Lox
// programming language written in Go.

import (
	"bufio"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/elox-lang/elox/internal/elox"
)

func main() {
	args := os.Args[1:]
	if len(args) > 1 {
		fmt.Println("Usage: elox [script]")
		os.Exit(64)
	}

	if len(args) != 1 {
		runPrompt()
	} else {
		runFile(args[0])
	}
}

// Run the given file as a script
func runFile(fpath string) {
	bytes, err := ioutil.ReadFile(fpath)
	exitOnError(err, 1)

	source := string(bytes)
	result := elox.Run(source, os.Stdout)
	if result.CompileErrors != nil {
		for _, err := range result.CompileErrors.Errors() {
			fmt.Fprintln(os.Stderr, elox.RenderError(source, err))
		}
		os.Exit(65)
	}
	if result.RuntimeErr != nil {
		fmt.Fprintln(os.Stderr, elox.RenderError(source, result.RuntimeErr))
		os.Exit(70)
	}
}

// Run the interpreter in REPL mode. The environment persists between lines
// and each line's value is echoed back.
func runPrompt() {
	errs := elox.NewErrorSet()
	resolver := elox.NewResolver(errs)
	interpreter := elox.NewInterpreter(os.Stdout)

	s := bufio.NewScanner(os.Stdin)
	s.Split(bufio.ScanLines)
	for {
		fmt.Print("> ")
		if !s.Scan() {
			break
		}
		runLine(s.Text(), interpreter, resolver, errs)
		errs.Reset()
	}
	exitOnError(s.Err(), 1)
}

func runLine(line string, interpreter *elox.Interpreter, resolver *elox.Resolver, errs *elox.ErrorSet) {
	scanner := elox.NewScanner([]rune(line), errs)
	tokens := scanner.Scan()
	parser := elox.NewParser(tokens, errs)
	statements := parser.Parse()
	if !errs.HadError() {
		resolver.Resolve(statements)
	}
	if errs.HadError() {
		for _, err := range errs.Errors() {
			fmt.Fprintln(os.Stderr, elox.RenderError(line, err))
		}
		return
	}

	val, err := interpreter.Interpret(statements)
	if err != nil {
		fmt.Fprintln(os.Stderr, elox.RenderError(line, err))
		return
	}
	fmt.Println(elox.Stringify(val))
}

func exitOnError(err error, status int) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v", err)
		os.Exit(status)
	}
}
