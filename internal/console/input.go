package console

import (
	"bufio"
	"io"
	"strings"
)

// Input supplies one line of player input per call, without the line terminator.
// It returns io.EOF once no more input is available.
type Input interface {
	ReadLine() (string, error)
}

type lineReader struct {
	r *bufio.Reader
}

// NewLineReader reads newline-separated input from r (typically os.Stdin).
// Lines have no length limit.
func NewLineReader(r io.Reader) Input {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) ReadLine() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	// a final line without '\n' still counts
	return strings.TrimRight(line, "\r\n"), nil
}
