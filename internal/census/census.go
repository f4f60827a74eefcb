// Loads name frequency tables, in the whitespace-separated format published by the U.S. Census Bureau (eg, "dist.all.last"), in to a persistent dictionary keyed by name.
//
// Each line holds four columns: name, frequency (percent), cumulative frequency (percent), and rank.
package census

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/bluesky-social/pdict/dict"
)

var ErrInvalidLine = errors.New("invalid name table line")

type NameInformation struct {
	Name      string
	Frequency float32
	Rank      int
}

func (ni NameInformation) String() string {
	return fmt.Sprintf("%s (frequency %.3f%%, rank %d)", ni.Name, ni.Frequency, ni.Rank)
}

// Canonical form of a name for lookups. Tables use upper case.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

func parseLine(line string) (NameInformation, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return NameInformation{}, fmt.Errorf("%w: expected 4 columns, got %d", ErrInvalidLine, len(fields))
	}
	freq, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return NameInformation{}, fmt.Errorf("%w: frequency: %w", ErrInvalidLine, err)
	}
	rank, err := strconv.Atoi(fields[3])
	if err != nil {
		return NameInformation{}, fmt.Errorf("%w: rank: %w", ErrInvalidLine, err)
	}
	return NameInformation{
		Name:      NormalizeName(fields[0]),
		Frequency: float32(freq),
		Rank:      rank,
	}, nil
}

// Reads a name table, calling `fn` for each entry. Blank lines are skipped. `limit` caps the number of entries read; zero means no limit.
func Parse(r io.Reader, limit int, fn func(lineNum int, info NameInformation) error) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	count := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if limit > 0 && count >= limit {
			break
		}
		info, err := parseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		if err := fn(lineNum, info); err != nil {
			return fmt.Errorf("line %d: %w", lineNum, err)
		}
		count++
	}
	return scanner.Err()
}

// Builds a dictionary from a name table. A name appearing twice is an error.
func Load(r io.Reader, limit int, opts ...dict.Option) (*dict.Dictionary[string, NameInformation], error) {
	d := dict.New[string, NameInformation](opts...)
	err := Parse(r, limit, func(_ int, info NameInformation) error {
		return d.Add(info.Name, info)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load name table: %w", err)
	}
	slog.Debug("loaded name table", "names", d.Len())
	return d, nil
}

func LoadFile(path string, limit int, opts ...dict.Option) (*dict.Dictionary[string, NameInformation], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, limit, opts...)
}
