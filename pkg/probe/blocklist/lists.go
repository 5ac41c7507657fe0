package blocklist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Set is an immutable case-insensitive string set.
type Set map[string]struct{}

// NewSet creates a Set of the given entries.
func NewSet(entries ...string) Set {
	s := make(Set, len(entries))
	for _, e := range entries {
		if e = normalize(e); e != "" {
			s[e] = struct{}{}
		}
	}

	return s
}

// ReadSet reads one entry per line. Blank lines and lines starting with # are
// skipped.
func ReadSet(r io.Reader) (Set, error) {
	s := Set{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s[normalize(line)] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read list: %w", err)
	}

	return s, nil
}

// LoadSet reads the list at path. An empty path yields an empty set.
func LoadSet(path string) (Set, error) {
	if path == "" {
		return Set{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open list %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadSet(f)
}

// Contains reports whether entry is in the set.
func (s Set) Contains(entry string) bool {
	_, ok := s[normalize(entry)]

	return ok
}

// Len returns the number of entries.
func (s Set) Len() int { return len(s) }

func normalize(s string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(s)), ".")
}

// Lists holds the static domain lists. It is read-only once loaded.
type Lists struct {
	Disposable     Set
	Phishing       Set
	Malicious      Set
	SuspiciousTLDs Set
}

// ListPaths names the list files.
type ListPaths struct {
	Disposable     string
	Phishing       string
	Malicious      string
	SuspiciousTLDs string
}

// LoadLists reads every configured list.
func LoadLists(paths ListPaths) (*Lists, error) {
	var (
		l   Lists
		err error
	)
	if l.Disposable, err = LoadSet(paths.Disposable); err != nil {
		return nil, err
	}
	if l.Phishing, err = LoadSet(paths.Phishing); err != nil {
		return nil, err
	}
	if l.Malicious, err = LoadSet(paths.Malicious); err != nil {
		return nil, err
	}
	if l.SuspiciousTLDs, err = LoadSet(paths.SuspiciousTLDs); err != nil {
		return nil, err
	}

	return &l, nil
}

// IsDisposable reports whether domainName belongs to a disposable mail provider.
func (l *Lists) IsDisposable(domainName string) bool {
	return l != nil && l.Disposable.Contains(domainName)
}

// IsPhishing reports whether domainName is on the phishing or malicious list.
func (l *Lists) IsPhishing(domainName string) bool {
	return l != nil && (l.Phishing.Contains(domainName) || l.Malicious.Contains(domainName))
}

// IsSuspiciousTLD reports whether tld is a high-abuse top-level label.
func (l *Lists) IsSuspiciousTLD(tld string) bool {
	return l != nil && l.SuspiciousTLDs.Contains(tld)
}
