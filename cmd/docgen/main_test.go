package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/todoprog/internal/commands"
	"github.com/colonyops/todoprog/internal/host"
)

func TestToMarkdown(t *testing.T) {
	md := toMarkdown(commands.NewRoot(&commands.Flags{}, &host.App{}))

	assert.Contains(t, md, "# todoprog\n")
	assert.Contains(t, md, "## todoprog add\n")
	assert.Contains(t, md, "### todoprog account create\n")
	assert.Contains(t, md, "### todoprog tx list\n")
	assert.Contains(t, md, "- `--account, -a`: storage account name")
	assert.Contains(t, md, "- `--log-level`: log level")
}
