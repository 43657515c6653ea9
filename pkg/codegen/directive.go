package codegen

import (
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/tools/go/packages"
)

// directivePattern matches a `quops:schema path="..."` line inside a
// type's doc comment.
var directivePattern = regexp.MustCompile(`quops:schema\s+path="([^"]+)"`)

// Target is one Go type found annotated with a quops:schema directive.
type Target struct {
	TypeName   string
	PkgPath    string
	PkgName    string
	SchemaPath string // resolved relative to the directive's source file
	Dir        string // directory of the source file carrying the directive
	Named      *types.Named
	IsEnum     bool
	EnumConsts []string // Go identifiers of constants declared against Named, sorted by name
}

// packageLoaderConfig loads the modes needed to resolve both syntax
// (for doc comments) and types (for compatibility checking).
func packageLoaderConfig() *packages.Config {
	return &packages.Config{
		Mode: packages.NeedName |
			packages.NeedTypes |
			packages.NeedTypesInfo |
			packages.NeedSyntax |
			packages.NeedImports,
	}
}

// Scan loads the packages matching patterns and returns every type
// annotated with a quops:schema directive.
func Scan(patterns []string) ([]*Target, error) {
	pkgs, err := packages.Load(packageLoaderConfig(), patterns...)
	if err != nil {
		return nil, fmt.Errorf("codegen: failed to load packages: %w", err)
	}

	var errs []error
	packages.Visit(pkgs, nil, func(pkg *packages.Package) {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	})
	if len(errs) > 0 {
		return nil, fmt.Errorf("codegen: package errors: %v", errs[0])
	}

	var targets []*Target
	for _, pkg := range pkgs {
		targets = append(targets, scanPackage(pkg)...)
	}
	return targets, nil
}

func scanPackage(pkg *packages.Package) []*Target {
	var targets []*Target

	for _, file := range pkg.Syntax {
		fileName := pkg.Fset.Position(file.Pos()).Filename
		dir := filepath.Dir(fileName)

		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			doc := genDecl.Doc
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				specDoc := doc
				if typeSpec.Doc != nil {
					specDoc = typeSpec.Doc
				}
				path, ok := findDirective(specDoc)
				if !ok {
					continue
				}

				obj := pkg.Types.Scope().Lookup(typeSpec.Name.Name)
				typeName, ok := obj.(*types.TypeName)
				if !ok {
					continue
				}
				named, ok := typeName.Type().(*types.Named)
				if !ok {
					continue
				}

				t := &Target{
					TypeName:   typeSpec.Name.Name,
					PkgPath:    pkg.PkgPath,
					PkgName:    pkg.Name,
					SchemaPath: filepath.Join(dir, path),
					Dir:        dir,
					Named:      named,
				}

				if _, isStruct := named.Underlying().(*types.Struct); !isStruct {
					if _, isBasic := named.Underlying().(*types.Basic); isBasic {
						t.IsEnum = true
						t.EnumConsts = enumConstants(pkg, named)
					}
				}

				targets = append(targets, t)
			}
		}
	}

	return targets
}

func findDirective(doc *ast.CommentGroup) (string, bool) {
	if doc == nil {
		return "", false
	}
	m := directivePattern.FindStringSubmatch(doc.Text())
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// enumConstants collects the names of every package-level constant
// declared with type named. quops only needs the identifier set, since
// wire ordinals come from schema declaration order, not from the Go
// constants' own values.
func enumConstants(pkg *packages.Package, named *types.Named) []string {
	var names []string
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		cnst, ok := obj.(*types.Const)
		if !ok {
			continue
		}
		cnstNamed, ok := cnst.Type().(*types.Named)
		if !ok || cnstNamed.Obj() != named.Obj() {
			continue
		}
		names = append(names, cnst.Name())
	}
	return names
}
