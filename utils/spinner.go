package utils

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// Spinner shows a progress indicator while a long sampling job runs.
type Spinner struct {
	out      io.Writer
	color    bool
	stopChan chan struct{}
	done     sync.WaitGroup
}

// NewSpinner instantiates a Spinner writing to stderr.
// Colors are only used when stderr is a terminal.
func NewSpinner() *Spinner {
	return &Spinner{out: os.Stderr, color: IsTerminal(os.Stderr)}
}

// Start starts the process indicator.
func (s *Spinner) Start(message string) {
	s.stopChan = make(chan struct{}, 1)
	s.done.Add(1)

	go func() {
		defer s.done.Done()
		for {
			for _, r := range `-\|/` {
				select {
				case <-s.stopChan:
					fmt.Fprint(s.out, "\r")
					return
				default:
					if s.color {
						fmt.Fprintf(s.out, "\r%s%s %c%s", message, SuccessColor, r, DefaultColor)
					} else {
						fmt.Fprintf(s.out, "\r%s %c", message, r)
					}
					time.Sleep(time.Millisecond * 100)
				}
			}
		}
	}()
}

// Stop stops the process indicator and waits until it has cleared its line.
func (s *Spinner) Stop() {
	s.stopChan <- struct{}{}
	s.done.Wait()
}
