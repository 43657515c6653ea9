// Command quopsgen is the go:generate entry point for quops: it scans
// Go packages for `quops:schema path="..."` directives, loads the
// named .quops file, checks it against the annotated type, and writes
// the type's Encode/Decode (or Ordinal/quopsDecode) methods next to
// the source that carries the directive.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/duskcode/quops/internal/genlog"
	"github.com/duskcode/quops/pkg/codegen"
	"github.com/duskcode/quops/pkg/schema"
)

var (
	logLevel  string
	logFormat string
	logger    *slog.Logger
)

func main() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(docCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger() {
	l, err := genlog.New(os.Stderr, logLevel, logFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
		os.Exit(1)
	}
	logger = l
}

var rootCmd = &cobra.Command{
	Use:   "quopsgen",
	Short: "quopsgen generates bit-packed Encode/Decode methods from .quops schemas",
	Long:  "quopsgen generates bit-packed Encode/Decode methods from .quops schemas",
}

var generateCmd = &cobra.Command{
	Use:   "generate package...",
	Short: "Scan packages for quops:schema directives and write generated Go source",
	Long:  "Scan packages for quops:schema directives and write generated Go source",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(args)
	},
}

var docCmd = &cobra.Command{
	Use:   "doc package...",
	Short: "Scan packages for quops:schema directives and print a wire-layout diagram",
	Long:  "Scan packages for quops:schema directives and print a wire-layout diagram",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoc(args)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate package...",
	Short: "Scan packages for quops:schema directives and check schema/type compatibility without writing files",
	Long:  "Scan packages for quops:schema directives and check schema/type compatibility without writing files",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(args)
	},
}

func runGenerate(patterns []string) error {
	gen := codegen.NewGenerator()
	targets, loader, err := loadTargets(patterns)
	if err != nil {
		return err
	}

	for _, t := range targets {
		src, err := renderTarget(gen, loader, t)
		if err != nil {
			return fmt.Errorf("quopsgen: %s: %w", t.TypeName, err)
		}

		outPath := filepath.Join(t.Dir, strings.ToLower(t.TypeName)+"_quops.go")
		if err := os.WriteFile(outPath, []byte(src), 0o644); err != nil {
			return fmt.Errorf("quopsgen: writing %s: %w", outPath, err)
		}
		logger.Info("generated", "type", t.TypeName, "file", outPath)
	}
	return nil
}

func runValidate(patterns []string) error {
	gen := codegen.NewGenerator()
	targets, loader, err := loadTargets(patterns)
	if err != nil {
		return err
	}

	var failed int
	for _, t := range targets {
		if _, err := renderTarget(gen, loader, t); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", t.TypeName, err.Error())
			failed++
			continue
		}
		logger.Info("ok", "type", t.TypeName)
	}
	if failed > 0 {
		return fmt.Errorf("quopsgen: %d schema(s) failed validation", failed)
	}
	return nil
}

func runDoc(patterns []string) error {
	targets, loader, err := loadTargets(patterns)
	if err != nil {
		return err
	}

	for _, t := range targets {
		s, err := loader.LoadFile(t.SchemaPath)
		if err != nil {
			return fmt.Errorf("quopsgen: %s: %w", t.TypeName, err)
		}
		fmt.Print(codegen.EmitDoc(t.TypeName, s))
	}
	return nil
}

// loadTargets scans patterns for quops:schema directives, sharing a
// single schema.Loader across every target so a dependency referenced
// by more than one annotated type is only parsed once.
func loadTargets(patterns []string) ([]*codegen.Target, *schema.Loader, error) {
	targets, err := codegen.Scan(patterns)
	if err != nil {
		return nil, nil, fmt.Errorf("quopsgen: %w", err)
	}
	if len(targets) == 0 {
		return nil, nil, fmt.Errorf("quopsgen: no quops:schema directives found in %v", patterns)
	}
	return targets, schema.NewLoader(), nil
}

func renderTarget(gen *codegen.Generator, loader *schema.Loader, t *codegen.Target) (string, error) {
	s, err := loader.LoadFile(t.SchemaPath)
	if err != nil {
		return "", err
	}

	if t.IsEnum {
		es, ok := s.(*schema.EnumSchema)
		if !ok {
			return "", fmt.Errorf("%s is annotated as an enum but %s is a record schema", t.TypeName, t.SchemaPath)
		}
		return gen.GenerateEnum(t, es)
	}

	rs, ok := s.(*schema.RecordSchema)
	if !ok {
		return "", fmt.Errorf("%s is annotated as a record but %s is an enum schema", t.TypeName, t.SchemaPath)
	}
	return gen.GenerateRecord(t, rs)
}
