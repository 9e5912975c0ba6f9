// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package logger is a central, bounded, in-memory log.
//
// Entries are made of a tag and a detail string. Consecutive identical
// entries are folded into a single entry with a repeat count. Callers pass a
// Permission with every log request, so that logging can be switched on and
// off per component without checks at the call site.
//
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
//
type Permission interface {
	AllowLogging() bool
}

type allow bool

func (a allow) AllowLogging() bool { return bool(a) }

// Allow and Deny are the trivial permissions.
//
var (
	Allow Permission = allow(true)
	Deny  Permission = allow(false)
)

// An Entry is a single log entry.
//
type Entry struct {
	Timestamp time.Time
	Tag       string
	Detail    string
	Repeated  int
}

func (e Entry) String() string {
	var b strings.Builder
	b.WriteString(e.Tag)
	b.WriteString(": ")
	b.WriteString(e.Detail)
	if e.Repeated > 0 {
		fmt.Fprintf(&b, " (repeat x%d)", e.Repeated+1)
	}
	b.WriteRune('\n')
	return b.String()
}

// MaxEntries is the maximum number of entries kept in the central log.
//
const MaxEntries = 256

type logger struct {
	mu      sync.Mutex
	entries []Entry
	echo    io.Writer
}

var central logger

func (l *logger) log(tag, detail string) {
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if n := len(l.entries); n > 0 && l.entries[n-1].Tag == tag && l.entries[n-1].Detail == detail {
		l.entries[n-1].Repeated++
		l.entries[n-1].Timestamp = now
	} else {
		l.entries = append(l.entries, Entry{Timestamp: now, Tag: tag, Detail: detail})
	}
	if len(l.entries) > MaxEntries {
		l.entries = append(l.entries[:0], l.entries[len(l.entries)-MaxEntries:]...)
	}
	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

// Log adds an entry to the central log if perm allows it.
//
func Log(perm Permission, tag, detail string) {
	if perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central log if perm allows it.
//
func Logf(perm Permission, tag, format string, args ...interface{}) {
	if perm.AllowLogging() {
		central.log(tag, fmt.Sprintf(format, args...))
	}
}

// Clear removes all entries from the central log.
//
func Clear() {
	central.mu.Lock()
	central.entries = central.entries[:0]
	central.mu.Unlock()
}

// Write writes all entries to w.
//
func Write(w io.Writer) {
	Tail(w, MaxEntries)
}

// Tail writes the last n entries to w.
//
func Tail(w io.Writer, n int) {
	central.mu.Lock()
	defer central.mu.Unlock()
	if n > len(central.entries) {
		n = len(central.entries)
	}
	if n < 0 {
		n = 0
	}
	for _, e := range central.entries[len(central.entries)-n:] {
		io.WriteString(w, e.String())
	}
}

// Entries returns a copy of all entries.
//
func Entries() []Entry {
	central.mu.Lock()
	defer central.mu.Unlock()
	return append([]Entry(nil), central.entries...)
}

// SetEcho echoes new entries to w as they are logged. A nil w disables
// echoing.
//
func SetEcho(w io.Writer) {
	central.mu.Lock()
	central.echo = w
	central.mu.Unlock()
}
