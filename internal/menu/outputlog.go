package menu

import (
	"strings"
	"sync"
)

// DefaultLogLines is the number of lines an OutputLog keeps when no limit is
// given.
const DefaultLogLines = 200

// OutputLog is a bounded, line-oriented ring buffer that menu actions write
// into. Only the most recent lines are kept. A partial trailing line stays
// pending until its newline arrives but is still visible in Lines.
type OutputLog struct {
	mu      sync.Mutex
	lines   []string
	start   int
	count   int
	pending strings.Builder
	total   int
}

// NewOutputLog returns a log that retains at most maxLines lines.
func NewOutputLog(maxLines int) *OutputLog {
	if maxLines < 1 {
		maxLines = DefaultLogLines
	}
	return &OutputLog{lines: make([]string, maxLines)}
}

// Write implements io.Writer. It never fails.
func (l *OutputLog) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	rest := string(p)
	for {
		idx := strings.IndexByte(rest, '\n')
		if idx < 0 {
			l.pending.WriteString(rest)
			break
		}
		l.pending.WriteString(rest[:idx])
		l.push(strings.TrimSuffix(l.pending.String(), "\r"))
		l.pending.Reset()
		rest = rest[idx+1:]
	}
	return len(p), nil
}

func (l *OutputLog) push(line string) {
	capacity := len(l.lines)
	if l.count < capacity {
		l.lines[(l.start+l.count)%capacity] = line
		l.count++
	} else {
		l.lines[l.start] = line
		l.start = (l.start + 1) % capacity
	}
	l.total++
}

// Lines returns the retained lines oldest first, including a pending partial
// line if there is one.
func (l *OutputLog) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, l.count+1)
	for i := 0; i < l.count; i++ {
		out = append(out, l.lines[(l.start+i)%len(l.lines)])
	}
	if l.pending.Len() > 0 {
		out = append(out, l.pending.String())
	}
	return out
}

// String joins the retained lines with newlines.
func (l *OutputLog) String() string {
	return strings.Join(l.Lines(), "\n")
}

// Len returns the number of complete lines currently retained.
func (l *OutputLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.count
}

// Total returns the number of complete lines ever written, including evicted
// ones.
func (l *OutputLog) Total() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.total
}

// Cap returns the retention limit.
func (l *OutputLog) Cap() int { return len(l.lines) }

// Reset drops every retained line.
func (l *OutputLog) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.start, l.count, l.total = 0, 0, 0
	l.pending.Reset()
}
