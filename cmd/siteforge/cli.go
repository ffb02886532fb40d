package main

import (
	"context"
	"io"
)

// Dependencies holds configuration and streams for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	DBPath  string
	DataDir string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" default:"1" help:"Start the HTTP server"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr     string `default:":8080" help:"HTTP listen address"`
	Mem      bool   `help:"Keep projects in memory instead of SQLite"`
	RenderJS bool   `name:"render-js" help:"Render JavaScript pages with a headless browser"`
	Debug    bool   `help:"Enable debug logging"`
}
