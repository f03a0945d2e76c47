/*
Command scriptfix normalizes the script tags of HTML pages.

Usage:

   scriptfix fix [--pretty] [--dump] [-o out.html] page.html
   scriptfix functions page.html
   scriptfix merge --js functions.js [-o out.html] page.html
   scriptfix styles page.html

'fix' rewrites all JavaScript <script> elements into a canonical form.
'functions' lists the JavaScript functions defined in the page head.
'merge' adds the functions of a JavaScript file to the page head.
'styles' lists the CSS rules of the <style> elements of the page.
Attention: 'merge' replaces all scripts in the page head by a single one.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/pagescript/dom/domdbg"
	"github.com/npillmayer/pagescript/dom/scripttags"
	"github.com/npillmayer/pagescript/dom/style/douceuradapter"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/cobra"
	"github.com/yosssi/gohtml"
	"golang.org/x/net/html"
)

// tracer traces with key 'pagescript.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("pagescript.cmd")
}

// errNoFunctions is returned if a JavaScript file to merge does not define
// any functions.
var errNoFunctions = errors.New("no functions found")

var tracedPackages = []string{
	"pagescript.cmd",
	"pagescript.dom",
	"pagescript.scripttags",
	"pagescript.jsgen",
	"pagescript.script",
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string
	root := &cobra.Command{
		Use:          "scriptfix",
		Short:        "scriptfix normalizes the script tags of HTML pages.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return configureTracing(level)
		},
	}
	root.PersistentFlags().StringVar(&level, "trace", "Error", "trace level (Debug, Info, Error)")
	root.AddCommand(newFixCmd(), newFunctionsCmd(), newMergeCmd(), newStylesCmd())
	return root
}

// configureTracing sets up tracing to the Go standard logger.
func configureTracing(level string) error {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"tracelevel.root": level,
	}
	for _, key := range tracedPackages {
		conf["tracelevel."+key] = level
	}
	if err := trace2go.ConfigureRoot(conf, "tracelevel", trace2go.ReplaceTracers(true)); err != nil {
		return fmt.Errorf("cannot configure tracing: %w", err)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

func newFixCmd() *cobra.Command {
	var out string
	var pretty, dump bool
	cmd := &cobra.Command{
		Use:   "fix page.html",
		Short: "fix rewrites the JavaScript <script> elements of a page into canonical form.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readPage(args[0])
			if err != nil {
				return err
			}
			if err = scripttags.FixScriptTags(doc); err != nil {
				return err
			}
			if dump {
				fmt.Fprintln(cmd.ErrOrStderr(), domdbg.Dump(doc))
			}
			return writePage(cmd, doc, out, pretty)
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the resulting HTML")
	cmd.Flags().BoolVar(&dump, "dump", false, "print the resulting DOM tree to stderr")
	return cmd
}

func newFunctionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "functions page.html",
		Short: "functions lists the JavaScript functions defined in the head of a page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readPage(args[0])
			if err != nil {
				return err
			}
			for _, name := range scripttags.GetFunctions(doc).Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newMergeCmd() *cobra.Command {
	var out, jsfile string
	var pretty bool
	cmd := &cobra.Command{
		Use:   "merge --js functions.js page.html",
		Short: "merge adds JavaScript functions to the head of a page, replacing all head scripts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(jsfile)
			if err != nil {
				return err
			}
			fns, err := functionsFromFile(jsfile, string(code))
			if err != nil {
				return err
			}
			doc, err := readPage(args[0])
			if err != nil {
				return err
			}
			if err = scripttags.CreateMissingFunctions(doc, fns); err != nil {
				return err
			}
			return writePage(cmd, doc, out, pretty)
		},
	}
	cmd.Flags().StringVar(&jsfile, "js", "", "JavaScript file defining functions")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the resulting HTML")
	_ = cmd.MarkFlagRequired("js")
	return cmd
}

func newStylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles page.html",
		Short: "styles lists the CSS rules of the <style> elements of a page.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readPage(args[0])
			if err != nil {
				return err
			}
			sheet := douceuradapter.PageStyles(doc)
			if sheet == nil {
				tracer().Infof("no style rules in %s", args[0])
				return nil
			}
			w := cmd.OutOrStdout()
			for _, r := range sheet.Rules() {
				fmt.Fprintln(w, r.Selector())
				for _, p := range r.Properties() {
					important := ""
					if r.IsImportant(p) {
						important = " !important"
					}
					fmt.Fprintf(w, "    %s: %s%s\n", p, r.Value(p), important)
				}
			}
			return nil
		},
	}
}

// functionsFromFile creates a function table from the code of a JavaScript
// file. Function bodies cannot be extracted, therefore the complete code
// is entered as the body of the first function found.
func functionsFromFile(filename string, code string) (*scripttags.FunctionTable, error) {
	names := scripttags.GetFunctionsFromCodeString(code).Names()
	if len(names) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoFunctions, filename)
	}
	tracer().Infof("functions in %s: %v", filename, names)
	fns := scripttags.NewFunctionTable()
	fns.Set(names[0], code)
	return fns, nil
}

func readPage(filename string) (*html.Node, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	doc, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", filename, err)
	}
	tracer().Debugf("parsed %s", filename)
	return doc, nil
}

func writePage(cmd *cobra.Command, doc *html.Node, filename string, pretty bool) error {
	var buf bytes.Buffer
	if err := html.Render(&buf, doc); err != nil {
		return err
	}
	page := buf.Bytes()
	if pretty {
		page = []byte(gohtml.Format(buf.String()))
	}
	var w io.Writer = cmd.OutOrStdout()
	if filename != "" {
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := w.Write(page)
	return err
}
