package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/graph-to-terraform/compiler/internal/compiler"
	_ "github.com/graph-to-terraform/compiler/internal/emitter" // register emitters
	"github.com/graph-to-terraform/compiler/internal/logger"
	"github.com/graph-to-terraform/compiler/internal/resource"
	"github.com/graph-to-terraform/compiler/internal/terraform"
)

var (
	inputPath  string
	outputDir  string
	toStdout   bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "graph2tf",
	Short: "Compile an infrastructure graph into Terraform",
	Long: "graph2tf reads a graph of typed infrastructure nodes (exported as JSON\n" +
		"by the diagram editor) and compiles it into a single Terraform file.",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to graph JSON file, or - for stdin")
	rootCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory to write "+terraform.ArtifactName+" into")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "write the generated text to stdout instead of a file")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print warnings as JSON")
	_ = rootCmd.MarkFlagRequired("input")
}

func run(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if inputPath == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inputPath)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var g resource.Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return fmt.Errorf("parse graph JSON: %w", err)
	}
	store := resource.NewStore()
	if err := store.Load(g.Nodes); err != nil {
		return err
	}

	res, err := compiler.New().Compile(store.List())
	if errors.Is(err, compiler.ErrEmptyGraph) {
		return errors.New("the graph has no nodes, nothing to generate")
	}
	if err != nil {
		return err
	}

	if len(res.Warnings) > 0 {
		if jsonOutput {
			enc := json.NewEncoder(os.Stderr)
			enc.SetIndent("", "  ")
			_ = enc.Encode(res.Warnings)
		} else {
			for _, w := range res.Warnings {
				fmt.Fprintf(os.Stderr, "WARN [%s] %s\n", w.NodeID, w.Message)
				if w.Suggestion != "" {
					fmt.Fprintf(os.Stderr, "  suggestion: %s\n", w.Suggestion)
				}
			}
		}
	}

	if toStdout {
		fmt.Print(res.Text)
		return nil
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	path := filepath.Join(outputDir, terraform.ArtifactName)
	if err := os.WriteFile(path, []byte(res.Text), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	logger.Default.Info("wrote artifact", "path", path, "nodes", store.Len(), "warnings", len(res.Warnings))
	fmt.Println("wrote", path)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
