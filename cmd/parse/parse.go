// Package parse handles the statement conversion command.
package parse

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"jmoret/bankparse/cmd/root"
	"jmoret/bankparse/internal/extract"
	"jmoret/bankparse/internal/export"
	"jmoret/bankparse/internal/fileutils"
)

// Cmd represents the parse command.
var Cmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Parse statement files into transactions",
	Long: `Parse one or more statement files (-i plus positional arguments) and
write the extracted transactions as CSV (-o) or JSON on stdout.`,
	Run: parseFunc,
}

func parseFunc(cmd *cobra.Command, args []string) {
	c := root.GetContainer()
	logger := c.Logger()

	paths := args
	if root.SharedFlags.Input != "" {
		paths = append([]string{root.SharedFlags.Input}, args...)
	}
	if len(paths) == 0 {
		logger.Fatal("No input files given, use -i or positional arguments")
	}

	var files []extract.File
	for _, path := range paths {
		data, err := fileutils.ReadFile(path)
		if err != nil {
			logger.WithError(err).Fatal("Failed to read input file")
		}
		files = append(files, extract.File{Name: path, Data: data})
	}

	txs, err := c.Extractor().ParseFiles(cmd.Context(), files)
	if err != nil {
		logger.WithError(err).Fatal("Statement parsing failed")
	}
	logger.Info("Parsed statement files")

	if root.SharedFlags.Output != "" {
		if err := export.WriteTransactionsCSV(txs, root.SharedFlags.Output); err != nil {
			logger.WithError(err).Fatal("Failed to write CSV output")
		}
		return
	}

	out, err := json.MarshalIndent(txs, "", "  ")
	if err != nil {
		logger.WithError(err).Fatal("Failed to encode transactions")
	}
	fmt.Println(string(out))
}
