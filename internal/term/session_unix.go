//go:build unix

package term

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Session owns the tty for the lifetime of the program: raw mode, the
// alternate screen and cursor visibility. Close restores everything and is
// safe to call on every exit path.
type Session struct {
	in  *os.File
	out *os.File

	inFd  int
	outFd int

	oldState *term.State
}

// OpenSession switches the terminal into rendering mode.
func OpenSession() (*Session, error) {
	s := &Session{
		in:    os.Stdin,
		out:   os.Stdout,
		inFd:  int(os.Stdin.Fd()),
		outFd: int(os.Stdout.Fd()),
	}

	if !term.IsTerminal(s.inFd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}

	old, err := term.MakeRaw(s.inFd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	s.oldState = old

	s.out.Write(csiAltScreenEnter)
	s.out.Write(csiCursorHide)
	s.out.Write(csiAutoWrapOff)
	s.out.Write(csiClear)
	return s, nil
}

// Size returns the terminal grid in columns and rows.
func (s *Session) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(s.outFd)
	if err != nil {
		return 80, 24, err
	}
	return cols, rows, nil
}

// Writer exposes the output stream for the compositor.
func (s *Session) Writer() *os.File {
	return s.out
}

// Poll reads whatever input bytes are pending without blocking. An empty
// slice means no input this iteration.
func (s *Session) Poll() ([]byte, error) {
	fds := []unix.PollFd{{Fd: int32(s.inFd), Events: unix.POLLIN}}

	n, err := unix.Poll(fds, 0)
	if err != nil {
		if err == unix.EINTR {
			return nil, nil
		}
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}

	buf := make([]byte, 64)
	rn, err := unix.Read(s.inFd, buf)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return nil, nil
		}
		return nil, err
	}
	return buf[:rn], nil
}

// Close leaves rendering mode and restores the saved terminal state.
func (s *Session) Close() error {
	s.out.Write(csiReset)
	s.out.Write(csiAutoWrapOn)
	s.out.Write(csiCursorShow)
	s.out.Write(csiAltScreenExit)

	if s.oldState != nil {
		if err := term.Restore(s.inFd, s.oldState); err != nil {
			return fmt.Errorf("restore terminal: %w", err)
		}
		s.oldState = nil
	}
	return nil
}
