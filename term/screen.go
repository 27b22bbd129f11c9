package term

import (
	"github.com/pkg/errors"
	xterm "golang.org/x/term"
)

// CheckScreen makes sure fd is a terminal large enough for the renderer.
func CheckScreen(fd int, r *Renderer) error {
	if !xterm.IsTerminal(fd) {
		return errors.New("stdout is not a terminal")
	}
	cols, rows, err := xterm.GetSize(fd)
	if err != nil {
		return errors.Wrap(err, "reading terminal size")
	}
	if cols < r.Columns() || rows < r.Rows() {
		return errors.Errorf("terminal is %dx%d, need at least %dx%d", cols, rows, r.Columns(), r.Rows())
	}
	return nil
}
