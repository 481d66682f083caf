// seehuhn.de/go/bmfont - convert bitmap fonts into static Go tables
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"seehuhn.de/go/bmfont"
	"seehuhn.de/go/bmfont/fnt"
	"seehuhn.de/go/bmfont/internal/buildinfo"
	"seehuhn.de/go/bmfont/internal/profile"
)

// config holds all command-line flag values.
type config struct {
	lang      string
	pkg       string
	namespace string
	comments  bool
	strict    bool
	verbose   bool
	force     bool
}

// Exit codes.
const (
	exitFailure   = 1
	exitOpenInput = 2
)

func main() {
	cpuprofile := flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile := flag.String("memprofile", "", "write memory profile to `file`")
	version := flag.Bool("version", false, "print version information and exit")

	var cfg config
	flag.StringVar(&cfg.lang, "lang", "go", "output `language` (go or cpp)")
	flag.StringVar(&cfg.pkg, "pkg", "font", "package `name` for Go output")
	flag.StringVar(&cfg.namespace, "namespace", "bmf2cpp", "`namespace` for C++ output")
	flag.BoolVar(&cfg.comments, "comments", false, "annotate glyphs with Unicode character names")
	flag.BoolVar(&cfg.strict, "strict", false, "reject repeated glyphs and kerning pairs")
	flag.BoolVar(&cfg.verbose, "v", false, "show debug messages")
	flag.BoolVar(&cfg.force, "force", false, "write to standard output even if it is a terminal")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "bmfont2go \u2014 convert a bitmap font into static source code tables\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Read("bmfont2go"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  bmfont2go [options] <in.fnt> <out>\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  in.fnt   BMFont metrics file in text format\n")
		fmt.Fprintf(os.Stderr, "  out      generated source file, or - for stdout\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nFont requirements:\n")
		fmt.Fprintf(os.Stderr, "  - text metrics file with negative font size (character height)\n")
		fmt.Fprintf(os.Stderr, "  - no horizontal stretch, no outline, pages not packed\n")
		fmt.Fprintf(os.Stderr, "  - glyphs in the alpha channel, colour channels all zero or all one\n")
		fmt.Fprintf(os.Stderr, "  - page width and height are powers of two\n")
		fmt.Fprintf(os.Stderr, "  - pages are DDS files with 8-bit alpha pixels (A8)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  bmfont2go -pkg sans sans.fnt sans/font.go\n")
		fmt.Fprintf(os.Stderr, "  bmfont2go -lang cpp -namespace ui::fonts sans.fnt sans.cpp\n")
	}
	flag.Parse()

	if *version {
		fmt.Print(buildinfo.Read("bmfont2go").Long())
		return
	}
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(exitFailure)
	}

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	stop, err := profile.Start(*cpuprofile, *memprofile, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(exitFailure)
	}
	err = run(cfg, flag.Arg(0), flag.Arg(1), os.Stdout, logger)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(exitCode(err, flag.Arg(0)))
	}
}

// exitCode maps errors to the exit status of the program.
func exitCode(err error, inFile string) int {
	var ioErr *bmfont.IOError
	if errors.As(err, &ioErr) && ioErr.Resource == inFile {
		return exitOpenInput
	}
	return exitFailure
}

// run converts inFile and writes the result to outFile.  If outFile is "-",
// the code is written to stdout and the summary goes to the log instead.
func run(cfg config, inFile, outFile string, stdout io.Writer, logger *slog.Logger) error {
	lang, err := fnt.ParseLanguage(cfg.lang)
	if err != nil {
		return err
	}
	if outFile == "-" && !cfg.force && isTerminal(stdout) {
		return errors.New("refusing to write source code to a terminal (use -force)")
	}

	f, err := fnt.ReadFile(inFile, &fnt.ReadOptions{
		RejectDuplicates: cfg.strict,
		Logger:           logger,
	})
	if err != nil {
		return err
	}

	exportOpt := &fnt.ExportOptions{Language: lang}
	exportOpt.Go.Package = cfg.pkg
	exportOpt.Go.Source = filepath.Base(inFile)
	exportOpt.Go.Comments = cfg.comments
	exportOpt.CPP.Namespace = cfg.namespace
	exportOpt.CPP.Source = filepath.Base(inFile)

	if outFile == "-" {
		err = fnt.Export(stdout, f, exportOpt)
		if err != nil {
			return err
		}
		logger.Info("converted", "codePoints", len(f.Glyphs),
			"kerningPairs", f.Kernings.Len(), "pages", len(f.Pages),
			"pageSize", fmt.Sprintf("%dx%d", f.Common.ScaleW, f.Common.ScaleH))
		return nil
	}

	err = writeAtomic(outFile, func(w io.Writer) error {
		return fnt.Export(w, f, exportOpt)
	})
	if err != nil {
		return err
	}
	logger.Debug("output written", "file", outFile, "language", lang)

	fmt.Fprintf(stdout, "Code points: %d\n", len(f.Glyphs))
	fmt.Fprintf(stdout, "Kerning pairs: %d\n", f.Kernings.Len())
	fmt.Fprintf(stdout, "Pages: %d\n", len(f.Pages))
	fmt.Fprintf(stdout, "Page size: %dx%d\n", f.Common.ScaleW, f.Common.ScaleH)
	return nil
}

// writeAtomic writes a temporary file next to fname and renames it to fname
// once write has succeeded.  On failure, fname is left untouched.
func writeAtomic(fname string, write func(w io.Writer) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(fname), "."+filepath.Base(fname)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	err = write(tmp)
	if err != nil {
		return err
	}
	err = tmp.Chmod(0o644)
	if err != nil {
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), fname)
}

func isTerminal(w io.Writer) bool {
	fd, ok := w.(*os.File)
	return ok && term.IsTerminal(int(fd.Fd()))
}
