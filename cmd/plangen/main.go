package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/marshalgen"
	"github.com/wippyai/marshalgen/manifest"
	"github.com/wippyai/marshalgen/plan"
	"github.com/wippyai/marshalgen/strategy"
	"github.com/wippyai/marshalgen/witshape"
)

func main() {
	var (
		manifestFile = flag.String("manifest", "", "Path to TOML manifest file")
		funcName     = flag.String("func", "", "Function to generate a plan for (optional)")
		transient    = flag.Bool("transient", true, "Allow caller-allocated transient buffers")
		list         = flag.Bool("list", false, "List declared functions and exit")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", false, "Verbose plan generation logging")
		noColor      = flag.Bool("no-color", false, "Disable colored output")
	)
	flag.Parse()

	if *manifestFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: plangen -manifest <file.toml> [-func name] [-transient=false]")
		fmt.Fprintln(os.Stderr, "       plangen -manifest <file.toml> -list")
		fmt.Fprintln(os.Stderr, "       plangen -manifest <file.toml> -i  (interactive mode)")
		os.Exit(1)
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		plan.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*manifestFile, *transient); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	color := !*noColor && term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(*manifestFile, *funcName, *transient, *list, color); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(manifestFile, funcName string, transient, listOnly, color bool) error {
	m, err := manifest.LoadFile(manifestFile)
	if err != nil {
		return err
	}

	fmt.Printf("Manifest: %s\n", manifestFile)
	fmt.Printf("Functions: %d\n", len(m.Functions))

	fmt.Printf("\nDeclared functions:\n")
	for _, fn := range m.Functions {
		fmt.Printf("  %s\n", formatFunction(fn))
	}

	if listOnly {
		return nil
	}

	// If no function specified, a single-function manifest is unambiguous.
	if funcName == "" {
		if len(m.Functions) != 1 {
			fmt.Printf("\nNo function specified.\n")
			fmt.Printf("Use -func to specify a function to generate a plan for.\n")
			return nil
		}
		funcName = m.Functions[0].Name
	}

	fn, err := m.Function(funcName)
	if err != nil {
		return err
	}
	values, err := fn.Values()
	if err != nil {
		return err
	}

	ctx := strategy.NewContext(marshalgen.NewNames(), transient)
	styles := newStyles(color)

	fmt.Printf("\n%s\n", styles.title.Render("Plan: "+fn.Name))
	for _, v := range values {
		s, err := witshape.BuildChain(v.Layout, v.Count, fn.Name, v.Name)
		if err != nil {
			return err
		}
		p := plan.Generate(s, ctx, v.Position)

		fmt.Printf("\n%s %s\n", styles.value.Render(v.Name), styles.typ.Render(v.Layout.Native.TypeName))
		fmt.Println(renderPlan(p, styles))
	}

	return nil
}

func formatFunction(fn manifest.Function) string {
	var params []string
	for _, p := range fn.Params {
		s := p.Name + ": " + p.Type
		if p.ByRef != "" {
			s += " byref=" + p.ByRef
		}
		if p.Intent != "" {
			s += " intent=" + p.Intent
		}
		params = append(params, s)
	}
	return fn.Name + "(" + strings.Join(params, ", ") + ")"
}

type styles struct {
	title  lipgloss.Style
	value  lipgloss.Style
	typ    lipgloss.Style
	phase  lipgloss.Style
	marker lipgloss.Style
}

func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{title: plain, value: plain, typ: plain, phase: plain, marker: plain}
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		typ:    lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		phase:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		marker: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func renderPlan(p *plan.Plan, st styles) string {
	var b strings.Builder
	for _, ph := range strategy.Phases() {
		if ph == strategy.PhaseNotifyForSuccessfulInvoke {
			b.WriteString(st.marker.Render("--- native call ---"))
			b.WriteString("\n")
		}
		stmts := p.Phase(ph)
		if len(stmts) == 0 {
			continue
		}
		b.WriteString(st.phase.Render("[" + ph.String() + "]"))
		b.WriteString("\n")
		for _, s := range stmts {
			b.WriteString("  " + s.String() + "\n")
		}
	}
	return b.String()
}
