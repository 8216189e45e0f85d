// Command docgen generates CLI reference documentation from the todoprog
// command definitions. Output is written to docs/cli-reference.md.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/todoprog/internal/commands"
	"github.com/colonyops/todoprog/internal/host"
)

func main() {
	root := commands.NewRoot(&commands.Flags{}, &host.App{})

	outPath := "docs/cli-reference.md"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "error creating %s: %v\n", filepath.Dir(outPath), err)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(toMarkdown(root)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error writing %s: %v\n", outPath, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s\n", outPath)
}

func toMarkdown(root *cli.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", root.Name, root.Usage)
	if root.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", root.Description)
	}
	writeFlags(&b, "Global options", root.Flags)

	for _, cmd := range root.Commands {
		writeCommand(&b, root.Name, cmd, 2)
	}
	return b.String()
}

func writeCommand(b *strings.Builder, parent string, cmd *cli.Command, depth int) {
	if cmd.Hidden {
		return
	}

	path := parent + " " + cmd.Name
	fmt.Fprintf(b, "%s %s\n\n", strings.Repeat("#", depth), path)
	if cmd.Usage != "" {
		fmt.Fprintf(b, "%s\n\n", cmd.Usage)
	}
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(b, "Aliases: `%s`\n\n", strings.Join(cmd.Aliases, "`, `"))
	}
	if cmd.UsageText != "" {
		fmt.Fprintf(b, "```\n%s\n```\n\n", cmd.UsageText)
	}
	if cmd.Description != "" {
		fmt.Fprintf(b, "%s\n\n", cmd.Description)
	}
	writeFlags(b, "Options", cmd.Flags)

	for _, sub := range cmd.Commands {
		writeCommand(b, path, sub, min(depth+1, 6))
	}
}

func writeFlags(b *strings.Builder, title string, flags []cli.Flag) {
	if len(flags) == 0 {
		return
	}

	fmt.Fprintf(b, "**%s**\n\n", title)
	for _, f := range flags {
		names := make([]string, 0, len(f.Names()))
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}

		usage := ""
		if df, ok := f.(cli.DocGenerationFlag); ok {
			usage = df.GetUsage()
		}
		fmt.Fprintf(b, "- `%s`: %s\n", strings.Join(names, ", "), usage)
	}
	b.WriteString("\n")
}
