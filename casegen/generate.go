// Package casegen randomizes the letter case of text read from a file,
// from stdin or generated on the fly, and writes the result to stdout or
// to a file.
package casegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/olekukonko/tablewriter"

	"github.com/feliixx/randcase/bufrand"
)

const (
	stdoutOutput = "stdout"
	maxWords     = 100
)

// record holds a randomized line
type record struct {
	input  string
	output string
	raw    uint32
}

// countingSource counts the values drawn from the wrapped source
type countingSource struct {
	src   bufrand.Source
	calls int
}

func (c *countingSource) Uint64() uint64 {
	c.calls++
	return c.src.Uint64()
}

type runStats struct {
	source   string
	seed     uint64
	lines    int
	runesIn  int
	runesOut int
	booleans int
	refills  int
}

// Generate randomizes the case of the input selected by options and writes
// the results. args are the positional arguments of the command line. stdin
// is read when no other input is given, and to confirm the overwrite of an
// existing output file. Logs and progress are send to logger. The overwrite
// confirmation is always asked on logger, even in quiet mode.
func Generate(options *Options, args []string, stdin io.Reader, stdout, logger io.Writer) error {

	prompt := logger
	if options.Quiet {
		logger = io.Discard
	}
	if options.Repeat <= 0 {
		return fmt.Errorf("invalid value for -n | --repeat: %v. Repeat has to be >= 1", options.Repeat)
	}
	if options.Fake < 0 {
		return fmt.Errorf("invalid value for --fake: %v. Number of sentences has to be >= 0", options.Fake)
	}
	if options.Fake > 0 && options.File != "" {
		return errors.New("-f | --file and --fake can't be present at the same time. Try to remove one of them")
	}
	if options.Fake > 0 && (options.Words <= 0 || options.Words > maxWords) {
		return fmt.Errorf("invalid value for --words: %v. Words has to be between 1 and %d", options.Words, maxWords)
	}
	if options.Source == "" {
		options.Source = bufrand.SourcePCG64
	}
	if options.Output == "" {
		options.Output = stdoutOutput
	}

	start := time.Now()
	seed := options.Seed
	if seed == 0 {
		seed = uint64(start.Unix())
	}

	src, err := bufrand.Lookup(options.Source, seed)
	if err != nil {
		return fmt.Errorf("invalid value for --source: %v", err)
	}

	// stdin can't hold both the text and the answer to the overwrite prompt
	if readsStdin(options, args) && options.Output != stdoutOutput && fileExists(options.Output) {
		return fmt.Errorf("can't confirm overwrite of %s while reading text from stdin. Remove the file or use -f | --file", options.Output)
	}

	lines, err := readInput(options, args, stdin, seed)
	if err != nil {
		return err
	}

	writer, err := newWriter(options, stdin, stdout, logger, prompt)
	if err != nil {
		return err
	}

	if options.Source != bufrand.SourceCrypto {
		fmt.Fprintf(logger, "Using seed: %d\n\n", seed)
	}

	counter := &countingSource{src: src}
	records, stats := randomize(bufrand.New(counter), lines, options.Repeat, options.Raw)
	stats.source = options.Source
	stats.seed = seed
	stats.refills = counter.calls
	if options.Raw {
		stats.refills -= len(records)
	}

	err = writer.write(records)
	if err != nil {
		return err
	}

	printStats(logger, stats)
	printElapsedTime(logger, start)
	return nil
}

// randomize randomizes each line repeat times. With raw, a raw value is
// drawn from b after each line.
func randomize(b *bufrand.BufRand, lines []string, repeat int, raw bool) ([]record, runStats) {

	stats := runStats{lines: len(lines)}
	records := make([]record, 0, len(lines)*repeat)

	for _, line := range lines {
		for i := 0; i < repeat; i++ {
			r := record{
				input:  line,
				output: b.RandStringCase(line),
			}
			if raw {
				r.raw = b.Uint32()
			}
			n := utf8.RuneCountInString(line)
			stats.runesIn += n
			stats.booleans += n
			stats.runesOut += utf8.RuneCountInString(r.output)
			records = append(records, r)
		}
	}
	return records, stats
}

func readsStdin(options *Options, args []string) bool {
	return options.Fake == 0 && options.File == "" && len(args) == 0
}

func readInput(options *Options, args []string, stdin io.Reader, seed uint64) ([]string, error) {

	switch {
	case options.Fake > 0:
		faker := gofakeit.New(int64(seed))
		lines := make([]string, options.Fake)
		for i := range lines {
			lines[i] = faker.Sentence(options.Words)
		}
		return lines, nil
	case options.File != "":
		f, err := openFile(options.File)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return readLines(f, options.File)
	case len(args) > 0:
		return []string{strings.Join(args, " ")}, nil
	default:
		return readLines(stdin, "stdin")
	}
}

func readLines(r io.Reader, name string) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("fail to read %s\n  cause: %v", name, err)
	}
	return lines, nil
}

func printStats(out io.Writer, stats runStats) {

	seed := strconv.FormatUint(stats.seed, 10)
	if stats.source == bufrand.SourceCrypto {
		seed = "-"
	}

	fmt.Fprintf(out, "\n")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"source", "seed", "lines", "runes in", "runes out", "booleans", "refills"})
	table.Append([]string{
		stats.source,
		seed,
		strconv.Itoa(stats.lines),
		strconv.Itoa(stats.runesIn),
		strconv.Itoa(stats.runesOut),
		strconv.Itoa(stats.booleans),
		strconv.Itoa(stats.refills),
	})
	table.Render()
}

func printElapsedTime(out io.Writer, start time.Time) {
	elapsed := time.Since(start).Round(10 * time.Millisecond)
	fmt.Fprintf(out, "\nrun finished in %s\n", elapsed.String())
}
