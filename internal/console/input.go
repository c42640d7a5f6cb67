package console

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prompts and returns the next trimmed input line. ok is false
// when input is exhausted.
func (c *Console) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// readOptional prompts and returns a pointer to the entered value, or nil
// when the user just pressed Enter.
func (c *Console) readOptional(prompt string) (*string, bool) {
	line, ok := c.readLine(prompt)
	if !ok {
		return nil, false
	}
	if line == "" {
		return nil, true
	}
	return &line, true
}

func (c *Console) readInt(prompt string) (int, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a number.")
			continue
		}
		return n, true
	}
}

func (c *Console) readUint(prompt string) (uint, bool) {
	for {
		line, ok := c.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			fmt.Fprintln(c.out, "Please enter a numeric ID.")
			continue
		}
		return uint(n), true
	}
}
