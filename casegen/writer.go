package casegen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/gosuri/uiprogress/util/strutil"
	"github.com/olekukonko/tablewriter"
)

type writer interface {
	write(records []record) error
}

func newWriter(options *Options, stdin io.Reader, stdout, logger, prompt io.Writer) (writer, error) {
	if options.Output == stdoutOutput {
		return &stdoutWriter{
			formatter: newFormatter(options, stdout),
		}, nil
	}
	f, err := tryToCreateFile(options.Output, stdin, prompt)
	if err != nil {
		return nil, err
	}
	buf := bufio.NewWriter(f)
	return &fileWriter{
		file:      f,
		buf:       buf,
		formatter: newFormatter(options, buf),
		logger:    logger,
	}, nil
}

// formatter writes records in a specific layout
type formatter interface {
	add(n int, r record)
	flush() error
}

func newFormatter(options *Options, out io.Writer) formatter {
	if options.Table {
		return newTableFormatter(out, options.Raw)
	}
	return &lineFormatter{out: out, raw: options.Raw}
}

// lineFormatter writes one output line per record
type lineFormatter struct {
	out io.Writer
	raw bool
	err error
}

func (f *lineFormatter) add(n int, r record) {
	if f.err != nil {
		return
	}
	if f.raw {
		_, f.err = fmt.Fprintf(f.out, "%s\t%d\n", r.output, r.raw)
		return
	}
	_, f.err = fmt.Fprintln(f.out, r.output)
}

func (f *lineFormatter) flush() error { return f.err }

// tableFormatter renders all records in a single table on flush
type tableFormatter struct {
	table *tablewriter.Table
	raw   bool
}

func newTableFormatter(out io.Writer, raw bool) *tableFormatter {
	header := []string{"#", "input", "output"}
	if raw {
		header = append(header, "raw")
	}
	table := tablewriter.NewWriter(out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	return &tableFormatter{table: table, raw: raw}
}

func (f *tableFormatter) add(n int, r record) {
	row := []string{strconv.Itoa(n), r.input, r.output}
	if f.raw {
		row = append(row, strconv.FormatUint(uint64(r.raw), 10))
	}
	f.table.Append(row)
}

func (f *tableFormatter) flush() error {
	f.table.Render()
	return nil
}

type stdoutWriter struct {
	formatter formatter
}

func (w *stdoutWriter) write(records []record) error {
	for i, r := range records {
		w.formatter.add(i+1, r)
	}
	return w.formatter.flush()
}

type fileWriter struct {
	file      *os.File
	buf       *bufio.Writer
	formatter formatter
	logger    io.Writer
}

func (w *fileWriter) write(records []record) error {
	defer w.file.Close()

	progress := uiprogress.New()
	progress.SetOut(w.logger)
	progress.SetRefreshInterval(50 * time.Millisecond)
	progress.Start()

	total := len(records)
	bar := progress.AddBar(total).AppendCompleted().PrependFunc(func(b *uiprogress.Bar) string {
		stepName := "randomizing"
		if b.Current() == total {
			stepName = "done"
		}
		return strutil.Resize(fmt.Sprintf("file %s: %s", w.file.Name(), stepName), 35)
	})

	for i, r := range records {
		w.formatter.add(i+1, r)
		bar.Incr()
	}
	progress.Stop()

	err := w.formatter.flush()
	if err != nil {
		return fmt.Errorf("fail to write to file %s\n  cause: %v", w.file.Name(), err)
	}
	err = w.buf.Flush()
	if err != nil {
		return fmt.Errorf("fail to write to file %s\n  cause: %v", w.file.Name(), err)
	}
	return nil
}

func openFile(filename string) (*os.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("fail to read file %s\n  cause: %v", filename, err)
	}
	return f, nil
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// tryToCreateFile creates filename, asking for a confirmation on stdin if
// it already exists
func tryToCreateFile(filename string, stdin io.Reader, prompt io.Writer) (*os.File, error) {
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_EXCL, 0666)
	if err == nil {
		return f, nil
	}
	if !os.IsExist(err) {
		return nil, fmt.Errorf("could not create file: %v", err)
	}
	fmt.Fprintf(prompt, "file %s already exists, overwrite it ?  [y/n]: ", filename)
	response := make([]byte, 2)
	_, err = stdin.Read(response)
	if err != nil {
		return nil, fmt.Errorf("couldn't read from user, aborting: %v", err)
	}
	if string(response[0]) != "y" {
		return nil, errors.New("aborting")
	}
	f, err = os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("could not create file: %v", err)
	}
	return f, nil
}
