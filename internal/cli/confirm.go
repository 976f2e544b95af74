package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
)

// confirm prints the yes/no question and reads one line from in. Only an
// exact y or Y proceeds; any other answer, including EOF, declines.
func confirm(in io.Reader, out io.Writer, count int, repo, commentFile string) bool {
	fmt.Fprintf(out, "comment on %d pull requests in %s with %s? [y/N] ", count, repo, filepath.Base(commentFile))

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		return false
	}
	answer := scanner.Text()
	return answer == "y" || answer == "Y"
}
