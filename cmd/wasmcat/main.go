package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/wasm-language/canon"
	"github.com/wippyai/wasm-language/engine"
	"github.com/wippyai/wasm-language/instruction"
)

func main() {
	var (
		className   = flag.String("class", "", "Only list instructions of this class ("+strings.Join(classNames(), ", ")+")")
		opName      = flag.String("op", "", "Print the signature of one op, e.g. i32.add")
		wasmFile    = flag.String("wasm", "", "Print the imports and exports of a core module")
		lower       = flag.String("lower", "", "Lower a component signature, e.g. \"string,u32:f64\"")
		lift        = flag.Bool("lift", false, "With -lower, compute the export-side (lift) signature")
		interactive = flag.Bool("i", false, "Interactive catalogue browser")
		verbose     = flag.Bool("v", false, "Debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = log.Sync() }()
		engine.SetLogger(log.Named("engine"))
		canon.SetLogger(log.Named("canon"))
	}

	out := newPrinter(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))

	var err error
	switch {
	case *interactive:
		err = runInteractive()
	case *wasmFile != "":
		err = inspect(out, *wasmFile)
	case *lower != "":
		err = lowerSignature(out, *lower, *lift)
	case *opName != "":
		err = printOp(out, *opName)
	default:
		err = printCatalogue(out, *className)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printOp(p *printer, name string) error {
	op, ok := instruction.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown op %q", name)
	}
	p.row(newRow(op))
	return nil
}

func printCatalogue(p *printer, className string) error {
	classes := instruction.Classes()
	if className != "" {
		c, ok := parseClass(className)
		if !ok {
			return fmt.Errorf("unknown class %q", className)
		}
		classes = []instruction.Class{c}
	}
	for _, c := range classes {
		rows := classRows(c)
		if len(rows) == 0 {
			continue
		}
		p.title(fmt.Sprintf("%s (%d)", c, len(rows)))
		for _, r := range rows {
			p.row(r)
		}
		p.blank()
	}
	return nil
}

func inspect(p *printer, filename string) error {
	ctx := context.Background()

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	insp := engine.NewInspector(ctx, nil)
	defer insp.Close(ctx)

	in, err := insp.Inspect(ctx, data)
	if err != nil {
		return err
	}

	p.title("Module " + filename)
	p.blank()
	p.section(fmt.Sprintf("Imports (%d)", len(in.Imports())))
	for _, e := range in.Imports() {
		p.external(e.Module+"."+e.Name, e.Type)
	}
	p.blank()
	p.section(fmt.Sprintf("Exports (%d)", len(in.Exports())))
	for _, e := range in.Exports() {
		p.external(e.Name, e.Type)
	}
	return nil
}

func lowerSignature(p *printer, sig string, lift bool) error {
	params, results, err := parseSignature(sig)
	if err != nil {
		return err
	}
	dir := canon.Lower
	if lift {
		dir = canon.Lift
	}
	core, err := canon.CoreSignature(dir, params, results, nil)
	if err != nil {
		return err
	}
	p.title(dir.String() + " " + sig)
	p.line(core.Type.String())
	if core.SpilledParams {
		p.note("params passed through memory")
	}
	if core.SpilledResults {
		p.note("results passed through memory")
	}
	return nil
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wasmcat [-class name] [-v]")
	fmt.Fprintln(w, "       wasmcat -op i32.add")
	fmt.Fprintln(w, "       wasmcat -wasm <file.wasm>")
	fmt.Fprintln(w, "       wasmcat -lower \"string,u32:f64\" [-lift]")
	fmt.Fprintln(w, "       wasmcat -i  (interactive mode)")
}

func init() {
	flag.Usage = func() {
		usage(flag.CommandLine.Output())
		flag.PrintDefaults()
	}
}
