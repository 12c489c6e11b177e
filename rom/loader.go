// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package rom

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Loader reads program text into a Rom, one instruction per line.
//
// Lines may carry ';' comments, blank lines are skipped, '.equ NAME VALUE'
// defines a substitution, and '$(...)' expressions are evaluated at load
// time with integer equates in scope.
type Loader struct {
	Verbose bool              // If set, verbosely logs the loader actions.
	Equate  map[string]string // Map of equates.

	predefine map[string]string // Predefines
}

// Predefine defines a new equate or redefines an existing equate.
func (ld *Loader) Predefine(equ string, value string) {
	if ld.predefine == nil {
		ld.predefine = map[string]string{equ: value}
	} else {
		ld.predefine[equ] = value
	}
}

// valueOf returns the integer value of a simple word.
func (ld *Loader) valueOf(word string) (value int64, err error) {
	return strconv.ParseInt(word, 0, 64)
}

// parenEval does load-time $(...) evaluations
func (ld *Loader) parenEval(expr string) (value int64, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range ld.Equate {
		var value64 int64
		value64, err = ld.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt64(value64)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = st_int64
	return
}

var parenRe = regexp.MustCompile(`\$\([^\$]*\)`)

// parseLine parses a single line into canonical instruction words.
func (ld *Loader) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	ld.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations. Results are explicitly signed, so that they
	// form valid offset operands.
	line = parenRe.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := ld.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%+d", value)
	})
	if err != nil {
		return
	}

	all_words := strings.Split(line, " ")
	for _, single := range all_words {
		if len(single) > 0 {
			words = append(words, single)
		}
	}

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 {
			err = ErrEquateSyntax
			return
		}
		_, ok := ld.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		ld.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		// An operand word may carry a trailing separator; keep it
		// around the substitution.
		sep := ""
		if strings.HasSuffix(word, ",") {
			word = word[:len(word)-1]
			sep = ","
		}

		equate, ok := ld.Equate[word]
		if ok {
			words[n] = equate + sep
		}
	}

	return
}

// Parse parses an input stream into a Rom of canonical instruction lines.
func (ld *Loader) Parse(input io.Reader) (r *Rom, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int
	var lines []string

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	ld.Equate = maps.Clone(sysEquate)
	for attr, val := range ld.predefine {
		ld.Equate[attr] = val
	}

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if ld.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = ld.parseLine(line, lineno)
		if err != nil {
			return
		}

		if len(words) == 0 {
			continue
		}

		lines = append(lines, strings.Join(words, " "))
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	r = New(lines)

	return
}
