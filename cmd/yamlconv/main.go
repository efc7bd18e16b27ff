package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yamltools/yamlconv"
)

var (
	pretty bool
	indent int

	logger *zap.SugaredLogger
)

var rootCmd = &cobra.Command{
	Use:   "yamlconv",
	Short: "yamlconv converts between YAML and JSON",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var toJSONCmd = &cobra.Command{
	Use:   "to-json [file]",
	Short: "convert YAML to JSON (reads stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := readInput(args)
		out, err := yamlconv.YAMLToJSON(input, pretty)
		if err != nil {
			logger.Fatalf("conversion failed: %v", err)
		}
		fmt.Println(out)
	},
}

var toYAMLCmd = &cobra.Command{
	Use:   "to-yaml [file]",
	Short: "convert JSON to YAML (reads stdin when no file is given)",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := readInput(args)
		out, err := yamlconv.JSONToYAML(input, indent)
		if err != nil {
			logger.Fatalf("conversion failed: %v", err)
		}
		fmt.Print(out)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "check that the input parses as YAML",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input := readInput(args)
		result := yamlconv.ValidateYAML(input)
		if !result.Valid {
			logger.Fatalf("invalid: %s", result.Error)
		}
		fmt.Println("valid")
	},
}

func readInput(args []string) string {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			logger.Fatalf("read %s: %v", args[0], err)
		}
		return string(data)
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		logger.Fatalf("read stdin: %v", err)
	}
	return string(data)
}

func init() {
	toJSONCmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output with 2 spaces")
	toYAMLCmd.Flags().IntVar(&indent, "indent", 2, "YAML indent width")
	rootCmd.AddCommand(toJSONCmd, toYAMLCmd, validateCmd)
}

func main() {
	zl, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer func() { _ = zl.Sync() }()
	logger = zl.Sugar()

	if err := rootCmd.Execute(); err != nil {
		logger.Fatalf("command failed: %v", err)
	}
}
