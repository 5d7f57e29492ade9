package python

import (
	"bytes"
	"os"

	"github.com/go-python/gpython/ast"
	"github.com/go-python/gpython/parser"
	"github.com/go-python/gpython/py"

	"github.com/matzehuels/readmerator/pkg/manifest"
)

// ParseSetupPy extracts install requirements from a setup.py build script.
//
// The script is parsed as Python source and never executed, so arbitrary
// code in the file cannot run. String constants are collected from list
// literals bound to the install_requires and requires keyword arguments of
// any setup(...) call; requirements computed at runtime (variables,
// comprehensions, file reads) are invisible to the AST and ignored.
func ParseSetupPy(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return manifest.Names(setupRequirements(data, path))
}

func setupRequirements(src []byte, filename string) (pkgs map[string]bool) {
	pkgs = make(map[string]bool)

	// The grammar targets Python 3.4; newer syntax comes back as a parse
	// error and the occasional lexer panic, both of which mean the same
	// thing here: no statically readable requirements.
	defer func() { _ = recover() }()

	tree, err := parser.Parse(bytes.NewReader(src), filename, py.ExecMode)
	if err != nil {
		return pkgs
	}

	ast.Walk(tree, func(node ast.Ast) bool {
		call, ok := node.(*ast.Call)
		if !ok {
			return true
		}
		fn, ok := call.Func.(*ast.Name)
		if !ok || fn.Id != "setup" {
			return true
		}
		for _, kw := range call.Keywords {
			if kw.Arg != "install_requires" && kw.Arg != "requires" {
				continue
			}
			list, ok := kw.Value.(*ast.List)
			if !ok {
				continue
			}
			for _, elt := range list.Elts {
				str, ok := elt.(*ast.Str)
				if !ok {
					continue
				}
				if name, ok := extractName(string(str.S)); ok {
					pkgs[name] = true
				}
			}
		}
		return true
	})
	return pkgs
}
