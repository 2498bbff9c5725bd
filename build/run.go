// Package build implements build command: it finds manuscripts (single file,
// directory tree or zip archive), replays each of them into a document and
// writes rendered result.
package build

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"docwright/archive"
	"docwright/common"
	"docwright/css"
	"docwright/manuscript"
	"docwright/state"
)

// settings of a single build run.
type settings struct {
	format common.OutputFmt
	strict bool
	log    *zap.Logger
	// number of manuscripts seen and failed
	total, failed int
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	s := &settings{
		format: env.Cfg.Document.Format,
		strict: env.Cfg.Document.StrictReferences || cmd.Bool("strict"),
		log:    log,
	}
	if cmd.IsSet("to") {
		if s.format, err = common.ParseOutputFmt(cmd.String("to")); err != nil {
			return fmt.Errorf("unknown output format requested: %w", err)
		}
	}

	if path := env.Cfg.Document.StylesheetPath; len(path) > 0 {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("unable to read stylesheet from %q: %w", path, err)
		}
		env.Stylesheet = css.NewParser(log).Parse(data, path)
		for _, w := range env.Stylesheet.Warnings {
			log.Warn("Stylesheet problem", zap.String("file", path), zap.String("warning", w))
		}
		env.Rpt.Store("stylesheet.css", path)
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	// Since zip "standard" does not define file name encoding we may need to
	// force archaic code page for old archives
	if cp := cmd.String("force-zip-cp"); len(cp) > 0 {
		env.CodePage, err = ianaindex.IANA.Encoding(cp)
		if err != nil || env.CodePage == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
			env.CodePage = nil
		} else {
			n, _ := ianaindex.IANA.Name(env.CodePage)
			log.Debug("Forcefully converting all non UTF-8 file names in archives", zap.String("charset", n))
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst),
		zap.Stringer("format", s.format), zap.Bool("strict", s.strict))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)),
			zap.Int("manuscripts", s.total), zap.Int("failed", s.failed))
	}(time.Now())

	if err := process(ctx, src, dst, s); err != nil {
		return err
	}
	if s.failed > 0 {
		return fmt.Errorf("%d of %d manuscripts failed", s.failed, s.total)
	}
	return nil
}

// process determines what source is: directory, archive (possibly followed by
// path inside it) or manuscript file. It strips path components from the end
// until existing file system object is found.
func process(ctx context.Context, src, dst string, s *settings) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.IsDir() {
			if len(tail) != 0 {
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			return processDir(ctx, head, dst, s)
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		isArchive, err := isArchiveFile(head)
		if err != nil {
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if isArchive {
			inner := filepath.ToSlash(strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator)))
			if err := processArchive(ctx, head, inner, "", dst, s); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			return nil
		}

		if len(tail) != 0 || !isManuscriptName(head) {
			return fmt.Errorf("input was not recognized as manuscript (%s)", head)
		}
		s.total++
		return processFile(ctx, head, filepath.Base(head), dst, s)
	}
	return fmt.Errorf("input source was not found (%s)", src)
}

// processFile opens manuscript file and processes it, failures are counted.
func processFile(ctx context.Context, path, src, dst string, s *settings) error {
	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		err = processManuscript(ctx, f, src, dst, s)
	}
	if err != nil {
		s.failed++
		s.log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
	}
	return err
}

// processDir walks directory tree finding manuscripts and archives. Errors
// of individual manuscripts are logged and counted, walk continues.
func processDir(ctx context.Context, dir, dst string, s *settings) error {
	start := s.total
	err := filepath.WalkDir(dir, func(path string, de fs.DirEntry, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			s.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !de.Type().IsRegular() {
			return nil
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))

		if isManuscriptName(path) {
			s.total++
			_ = processFile(ctx, path, rel, dst, s)
			return nil
		}

		isArchive, err := isArchiveFile(path)
		if err != nil {
			s.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if !isArchive {
			s.log.Debug("Skipping file, not recognized as manuscript or archive", zap.String("file", path))
			return nil
		}
		if err := processArchive(ctx, path, "", filepath.Dir(rel), dst, s); err != nil {
			if ctx.Err() != nil {
				return err
			}
			s.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	if err == nil && s.total == start {
		s.log.Debug("Nothing to process", zap.String("dir", dir))
	}
	return err
}

// processArchive processes manuscripts inside archive under pathIn. Output
// keeps archive relative location pathOut followed by path inside archive.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst string, s *settings) error {
	env := state.EnvFromContext(ctx)

	start := s.total
	err := archive.Walk(ctx, path, pathIn, func(e *archive.Entry) error {
		s.total++

		r, err := e.File.Open()
		if err == nil {
			defer r.Close()
			err = processManuscript(ctx, r, filepath.Join(pathOut, filepath.FromSlash(e.Name)), dst, s)
		}
		if err != nil {
			s.failed++
			s.log.Error("Unable to process file in archive",
				zap.String("archive", e.Archive), zap.String("file", e.Name), zap.Error(err))
		}
		return nil
	}, archive.WithExtensions(manuscriptExts...), archive.WithCodePage(env.CodePage), archive.WithLogger(s.log))
	if err == nil && s.total == start {
		s.log.Debug("Nothing to process", zap.String("archive", path))
	}
	return err
}

// processManuscript builds single manuscript. src is source path relative
// to processed root, it always includes file name. Output is written to a
// temporary file next to destination and renamed on success, so failed
// builds never leave partial documents.
func processManuscript(ctx context.Context, r io.Reader, src, dst string, s *settings) (rerr error) {
	env := state.EnvFromContext(ctx)
	log := s.log.With(zap.String("source", src))

	var outputName string

	log.Info("Build starting")
	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Build ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("build panic: %v", r)
		} else if rerr == nil {
			log.Info("Build completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	m, err := manuscript.Parse(r)
	if err != nil {
		return fmt.Errorf("unable to parse manuscript (%s): %w", src, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	outputName = buildOutputPath(m, src, dst, s.format, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputName), "."+filepath.Base(outputName)+".*")
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}
	done := false
	defer func() {
		if !done {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := generate(ctx, m, tmp, s.format, s.strict, env, log); err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	if err := os.Rename(tmp.Name(), outputName); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	done = true

	env.Rpt.Store("result/"+filepath.ToSlash(src)+s.format.Ext(), outputName)
	return nil
}
