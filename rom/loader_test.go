package rom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func parseLines(t *testing.T, program []string) (*Rom, error) {
	t.Helper()

	ld := &Loader{}
	return ld.Parse(strings.NewReader(strings.Join(program, "\n")))
}

func romLines(r *Rom) (lines []string) {
	for n := 0; n < r.Len(); n++ {
		line, _ := r.Get(n)
		lines = append(lines, line)
	}

	return
}

func TestLoader(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		"; a worked example",
		"",
		"inc a",
		"jio a, +2   ; skip the triple",
		"tpl  a",
		"   inc a",
	}

	r, err := parseLines(t, program)
	assert.NoError(err)

	assert.Equal([]string{
		"inc a",
		"jio a, +2",
		"tpl a",
		"inc a",
	}, romLines(r))
}

func TestLoaderEmpty(t *testing.T) {
	assert := assert.New(t)

	r, err := parseLines(t, nil)
	assert.NoError(err)
	assert.Equal(0, r.Len())
}

func TestLoaderEquate(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ SKIP +2",
		".equ COUNTER a",
		"inc COUNTER",
		"jio COUNTER, SKIP",
		"tpl COUNTER",
		"inc COUNTER",
	}

	r, err := parseLines(t, program)
	assert.NoError(err)

	assert.Equal([]string{
		"inc a",
		"jio a, +2",
		"tpl a",
		"inc a",
	}, romLines(r))
}

func TestLoaderEquateSeparator(t *testing.T) {
	assert := assert.New(t)

	// The trailing ',' survives equate substitution.
	program := []string{
		".equ R b",
		"jie R, +4",
	}

	r, err := parseLines(t, program)
	assert.NoError(err)
	assert.Equal([]string{"jie b, +4"}, romLines(r))
}

func TestLoaderEquateErrors(t *testing.T) {
	assert := assert.New(t)

	_, err := parseLines(t, []string{".equ ONLY"})
	assert.ErrorIs(err, ErrEquateSyntax)

	_, err = parseLines(t, []string{
		".equ TWICE +1",
		".equ TWICE +2",
	})
	assert.ErrorIs(err, ErrEquateDuplicate)

	var serr *ErrSyntax
	assert.ErrorAs(err, &serr)
	assert.Equal(2, serr.LineNo)
	assert.Equal(".equ TWICE +2", serr.Line)
}

func TestLoaderExpression(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".equ WIDTH 3",
		"jmp $(2 * 2)",
		"jmp $(1 - WIDTH)",
		"jie a, $(WIDTH + 1)",
	}

	r, err := parseLines(t, program)
	assert.NoError(err)

	assert.Equal([]string{
		"jmp +4",
		"jmp -2",
		"jie a, +4",
	}, romLines(r))
}

func TestLoaderExpressionLineNo(t *testing.T) {
	assert := assert.New(t)

	// LINENO tracks the current input line.
	program := []string{
		"; padding",
		"jmp $(LINENO)",
	}

	r, err := parseLines(t, program)
	assert.NoError(err)
	assert.Equal([]string{"jmp +2"}, romLines(r))
}

func TestLoaderExpressionError(t *testing.T) {
	assert := assert.New(t)

	_, err := parseLines(t, []string{
		"inc a",
		"jmp $(undefined_name)",
	})
	assert.Error(err)

	var serr *ErrSyntax
	assert.ErrorAs(err, &serr)
	assert.Equal(2, serr.LineNo)
}

func TestLoaderPredefine(t *testing.T) {
	assert := assert.New(t)

	ld := &Loader{}
	ld.Predefine("LOOP", "-2")

	r, err := ld.Parse(strings.NewReader("inc a\ninc b\njmp LOOP"))
	assert.NoError(err)
	assert.Equal([]string{"inc a", "inc b", "jmp -2"}, romLines(r))
}
