package main

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"csc/archive"
	"csc/cascade"
	"csc/config"
	"csc/input"
	"csc/misc"
	"csc/state"
	"csc/style"
	"csc/utils/debug"
)

type filterKind struct {
	flag  cascade.PropertyFlags
	value bool
}

var filterKinds = map[string]filterKind{
	"inherited":     {cascade.FlagInherited, true},
	"non-inherited": {cascade.FlagInherited, false},
	"visited":       {cascade.FlagVisited, true},
	"unvisited":     {cascade.FlagVisited, false},
}

func filterNames() []string {
	return debug.SortedKeys(filterKinds)
}

func parseFilter(kinds []string) (cascade.Filter, error) {
	var filter cascade.Filter
	for _, kind := range kinds {
		k, ok := filterKinds[strings.TrimSpace(kind)]
		if !ok {
			return filter, fmt.Errorf("unknown property kind %q", kind)
		}
		filter = filter.Add(k.flag, k.value)
	}
	return filter, nil
}

func outputFormat(cmd *cli.Command, cfg *config.Config) (config.OutputFormat, error) {
	if to := cmd.String("to"); len(to) > 0 {
		return config.ParseOutputFormat(to)
	}
	return cfg.Output.Format, nil
}

// readDocument loads cascade document and returns it with the name used for
// output.
func readDocument(env *state.LocalEnv, fname string) (*input.Document, string, error) {
	var (
		r    io.Reader
		name string
	)
	if fname == "-" {
		r, name = os.Stdin, "stdin"
	} else {
		f, err := os.Open(fname)
		if err != nil {
			return nil, "", fmt.Errorf("unable to open input document: %w", err)
		}
		defer f.Close()

		base := filepath.Base(fname)
		r, name = f, strings.TrimSuffix(base, filepath.Ext(base))
		if err := env.Rpt.StoreCopy("input/"+base, fname); err != nil {
			env.Log.Warn("Unable to store input document in report", zap.String("file", fname), zap.Error(err))
		}
	}

	doc, err := input.Load(r, env.Log, env.DocumentOptions()...)
	if err != nil {
		return nil, "", fmt.Errorf("unable to load input document '%s': %w", fname, err)
	}
	return doc, name, nil
}

// buildCascade creates builder and cascade for document. Interpolation
// entries over the limit are dropped with a warning.
func buildCascade(doc *input.Document, log *zap.Logger) (*style.Builder, *cascade.StyleCascade, error) {
	builder, err := doc.NewBuilder(log)
	if err != nil {
		return nil, nil, err
	}
	c, err := doc.Build(builder, log)
	if err != nil {
		log.Warn("Some interpolations were dropped", zap.Error(err))
	}
	return builder, c, nil
}

// resolveDocument applies cascade and collects computed values.
func resolveDocument(doc *input.Document, name string, filter cascade.Filter, sorted bool, log *zap.Logger) (*result, *cascade.StyleCascade, error) {
	builder, c, err := buildCascade(doc, log)
	if err != nil {
		return nil, nil, err
	}
	c.Apply(filter)

	computed := builder.Style()
	res := &result{
		Source:          name,
		Direction:       computed.Direction().String(),
		WritingMode:     computed.WritingMode().String(),
		InsideLink:      computed.InsideLink().String(),
		Flags:           computed.Flags().String(),
		InlineStyleLost: c.InlineStyleLost(),
		Warnings:        doc.Warnings(),
	}
	values := computed.Values()
	for _, n := range sortNames(values, sorted) {
		res.Properties = append(res.Properties, property{Name: n, Value: values[n]})
	}
	return res, c, nil
}

// cascadedDocument collects winning values without resolving them.
func cascadedDocument(doc *input.Document, name string, sorted bool, log *zap.Logger) (*result, error) {
	builder, c, err := buildCascade(doc, log)
	if err != nil {
		return nil, err
	}

	values := make(map[string]string)
	for n, v := range c.GetCascadedValues() {
		values[n.String()] = v.CSSText()
	}
	res := &result{
		Source:          name,
		Direction:       builder.Direction().String(),
		WritingMode:     builder.WritingMode().String(),
		InlineStyleLost: c.InlineStyleLost(),
		Warnings:        doc.Warnings(),
	}
	for _, n := range sortNames(values, sorted) {
		res.Properties = append(res.Properties, property{Name: n, Value: values[n]})
	}
	if set := c.GetImportantSet(); set != nil {
		important := make(map[string]bool)
		for id := range set.All() {
			important[cascade.NativeName(id).String()] = true
		}
		res.Important = sortNames(important, sorted)
	}
	return res, nil
}

// writeResult outputs data to STDOUT, file or directory.
func writeResult(env *state.LocalEnv, dst, name string, format config.OutputFormat, data []byte, overwrite bool) error {
	if len(dst) == 0 {
		_, err := os.Stdout.Write(data)
		return err
	}

	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		fname, err := misc.ExpandTemplate("name_template", env.Cfg.Output.NameTemplate, struct {
			Name, Format, Ext string
		}{name, format.String(), format.Ext()})
		if err != nil {
			return fmt.Errorf("unable to prepare output file name: %w", err)
		}
		dst = filepath.Join(dst, config.CleanFileName(fname))
	}

	if _, err := os.Stat(dst); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s", dst)
		}
		env.Log.Warn("Overwriting existing file", zap.String("file", dst))
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("unable to access output file: %w", err)
	}

	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("unable to write output file: %w", err)
	}
	env.Rpt.StoreData("result/"+filepath.Base(dst), data)
	env.Log.Info("Result written", zap.String("file", dst))
	return nil
}

func resolveAction(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no input document has been specified")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	env.Overwrite = cmd.Bool("overwrite")

	format, err := outputFormat(cmd, env.Cfg)
	if err != nil {
		return err
	}
	filter, err := parseFilter(cmd.StringSlice("only"))
	if err != nil {
		return err
	}

	showCascade := env.Cfg.Output.ShowCascade || cmd.Bool("show-cascade")
	src, dst := cmd.Args().Get(0), cmd.Args().Get(1)

	if strings.EqualFold(filepath.Ext(src), ".zip") {
		return resolveArchive(ctx, env, src, dst, format, filter, showCascade)
	}

	doc, name, err := readDocument(env, src)
	if err != nil {
		return err
	}
	data, err := resolveAndEncode(env, doc, name, format, filter, showCascade)
	if err != nil {
		return err
	}
	return writeResult(env, dst, name, format, data, env.Overwrite)
}

func resolveAndEncode(env *state.LocalEnv, doc *input.Document, name string, format config.OutputFormat, filter cascade.Filter, showCascade bool) ([]byte, error) {
	res, c, err := resolveDocument(doc, name, filter, env.Cfg.Output.Sort, env.Log)
	if err != nil {
		return nil, err
	}
	if showCascade {
		res.Cascade = c.Dump()
	}
	return res.encode(format)
}

// resolveArchive resolves every document in zip archive, results are put
// into destination directory. Broken documents are reported and skipped.
func resolveArchive(ctx context.Context, env *state.LocalEnv, src, dst string, format config.OutputFormat, filter cascade.Filter, showCascade bool) error {
	if len(dst) == 0 {
		dst = "."
	}
	if fi, err := os.Stat(dst); err != nil || !fi.IsDir() {
		return fmt.Errorf("destination for archive must be an existing directory: %s", dst)
	}
	if err := env.Rpt.StoreCopy("input/"+filepath.Base(src), src); err != nil {
		env.Log.Warn("Unable to store input archive in report", zap.String("file", src), zap.Error(err))
	}

	var (
		errs  error
		count int
	)
	err := archive.Walk(src, archive.Documents(""), func(_ string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		count++

		name := strings.TrimSuffix(path.Base(f.Name), path.Ext(f.Name))
		data, err := resolveEntry(env, f, name, format, filter, showCascade)
		if err == nil {
			err = writeResult(env, dst, name, format, data, env.Overwrite)
		}
		if err != nil {
			env.Log.Error("Unable to resolve document", zap.String("entry", f.Name), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", f.Name, err))
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("unable to process archive '%s': %w", src, err)
	}
	env.Log.Info("Archive processed", zap.String("archive", src), zap.Int("documents", count), zap.Int("failed", len(multierr.Errors(errs))))
	return errs
}

func resolveEntry(env *state.LocalEnv, f *zip.File, name string, format config.OutputFormat, filter cascade.Filter, showCascade bool) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := input.Load(r, env.Log, env.DocumentOptions()...)
	if err != nil {
		return nil, err
	}
	return resolveAndEncode(env, doc, name, format, filter, showCascade)
}

func cascadedAction(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no input document has been specified")
	}
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	format, err := outputFormat(cmd, env.Cfg)
	if err != nil {
		return err
	}
	doc, name, err := readDocument(env, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	res, err := cascadedDocument(doc, name, env.Cfg.Output.Sort, env.Log)
	if err != nil {
		return err
	}
	data, err := res.encode(format)
	if err != nil {
		return err
	}
	return writeResult(env, "", name, format, data, false)
}
