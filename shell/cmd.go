package shell

import (
	"errors"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format for option")
)

// shellcmd is one parsed command line: the command word, positional args and
// -key value options.
type shellcmd struct {
	cmd     string
	args    []string
	options map[string]string
}

// Response is what a command hands back for display.
type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := map[string]string{}

	for i := 1; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && len(fields[i]) > 1 && !isNumber(fields[i]) {
			// option
			if i+1 >= len(fields) {
				return nil, errWrongOptionSyntax
			}
			options[fields[i][1:]] = fields[i+1]
			i++
			continue
		}
		args = append(args, fields[i])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func isNumber(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// intArgs converts the first n positional arguments.
func (c *shellcmd) intArgs(n int) ([]int, error) {
	if len(c.args) < n {
		return nil, errors.New(c.cmd + ": not enough arguments")
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		v, err := strconv.Atoi(c.args[i])
		if err != nil {
			return nil, errors.New(c.cmd + ": " + c.args[i] + " is not a number")
		}
		out[i] = v
	}
	return out, nil
}
