package scripttags

import (
	"fmt"
	"strings"
)

// FunctionTable maps JavaScript function names to function code. Names are
// unique and kept in insertion order. The zero value is an empty table ready
// to use.
type FunctionTable struct {
	names []string
	funcs map[string]function
}

type function struct {
	code    string
	scanned bool // name found in script code, code unknown
}

// NewFunctionTable creates an empty function table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{}
}

// Set enters a function into the table. If name is already present, its code
// is replaced and the name keeps its position.
func (ft *FunctionTable) Set(name string, code string) {
	ft.put(name, function{code: code})
}

func (ft *FunctionTable) put(name string, f function) {
	if ft.funcs == nil {
		ft.funcs = make(map[string]function)
	}
	if _, ok := ft.funcs[name]; !ok {
		ft.names = append(ft.names, name)
	}
	ft.funcs[name] = f
}

// Has is a predicate: is a function with this name contained in the table?
func (ft *FunctionTable) Has(name string) bool {
	if ft == nil {
		return false
	}
	_, ok := ft.funcs[name]
	return ok
}

// Get returns the code of a function. Functions found by scanning script
// code have empty code.
func (ft *FunctionTable) Get(name string) (string, bool) {
	if ft == nil {
		return "", false
	}
	f, ok := ft.funcs[name]
	return f.code, ok
}

// Body is like Get, but reports missing code as an error: ErrNoSuchFunction
// for unknown names and ErrBodyExtraction for functions found by scanning
// script code.
func (ft *FunctionTable) Body(name string) (string, error) {
	if !ft.Has(name) {
		return "", fmt.Errorf("%w: %s", ErrNoSuchFunction, name)
	}
	f := ft.funcs[name]
	if f.scanned {
		return "", fmt.Errorf("%w: %s", ErrBodyExtraction, name)
	}
	return f.code, nil
}

// Len returns the number of functions in the table.
func (ft *FunctionTable) Len() int {
	if ft == nil {
		return 0
	}
	return len(ft.names)
}

// Names returns the function names in insertion order.
func (ft *FunctionTable) Names() []string {
	if ft == nil {
		return nil
	}
	names := make([]string, len(ft.names))
	copy(names, ft.names)
	return names
}

// Bodies returns the code of all functions in insertion order.
func (ft *FunctionTable) Bodies() []string {
	if ft == nil {
		return nil
	}
	bodies := make([]string, len(ft.names))
	for i, name := range ft.names {
		bodies[i] = ft.funcs[name].code
	}
	return bodies
}

// Merge enters all functions of other which are not yet contained in ft.
// On name collision, the entry of ft wins. Merging into a nil table is a
// no-op.
func (ft *FunctionTable) Merge(other *FunctionTable) {
	if ft == nil || other == nil {
		return
	}
	for _, name := range other.names {
		if !ft.Has(name) {
			ft.put(name, other.funcs[name])
		}
	}
}

// Code concatenates the code of all functions, separated by blank lines.
// An empty table yields the empty string.
func (ft *FunctionTable) Code() string {
	if ft.Len() == 0 {
		return ""
	}
	return "\n" + strings.Join(ft.Bodies(), "\n\n") + "\n"
}

// GetFunctionsFromCodeString scans JavaScript code for function definitions.
// The scan is naive: every line starting with the keyword 'function' is taken
// to define a function named by the text up to the first '('. Anonymous
// functions are skipped. Function bodies are not extracted.
func GetFunctionsFromCodeString(code string) *FunctionTable {
	fns := NewFunctionTable()
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		rest := strings.TrimPrefix(line, "function")
		if len(rest) == len(line) || rest == "" {
			continue
		}
		if c := rest[0]; c != ' ' && c != '\t' && c != '(' {
			continue // e.g. "functionality"
		}
		name, _, _ := strings.Cut(rest, "(")
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		tracer().Debugf("found function %s", name)
		fns.put(name, function{scanned: true})
	}
	return fns
}
