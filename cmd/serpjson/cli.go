package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/serpjson"
	"github.com/fwojciec/serpjson/batch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Read      batch.ReadFunc
	Extractor serpjson.Extractor
	Cleaner   serpjson.Cleaner
	Converter serpjson.Converter
	Snapshots serpjson.SnapshotService

	// NewOutputStore opens an atomic store for an output directory.
	NewOutputStore func(dir string) serpjson.OutputStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" env:"SERPJSON_CONFIG" help:"YAML config file with engine, origin, and selector overrides"`
	DB      string `type:"path" name:"db" env:"SERPJSON_DB" help:"Snapshot archive path (default: ~/.serpjson/serpjson.db)"`
	Verbose bool   `short:"v" help:"Log every page to stderr"`

	Convert ConvertCmd `cmd:"" help:"Convert saved result pages to JSON"`
	Clean   CleanCmd   `cmd:"" help:"Print the cleaned markup of a result page"`
	History HistoryCmd `cmd:"" help:"List archived snapshots"`
	Show    ShowCmd    `cmd:"" help:"Print an archived record as JSON"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an archived snapshot"`
}

// ConvertCmd is the "convert" subcommand.
type ConvertCmd struct {
	Files       []string `arg:"" name:"file" help:"HTML files to convert"`
	Output      string   `short:"o" type:"path" help:"Write one JSON file per page into this directory"`
	Clean       bool     `help:"Clean pages before extraction"`
	Pretty      bool     `help:"Indent JSON output"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent conversion limit"`
	Archive     bool     `help:"Archive records in the snapshot database"`
}

// CleanCmd is the "clean" subcommand.
type CleanCmd struct {
	File     string `arg:"" help:"HTML file to clean"`
	Markdown bool   `help:"Render the cleaned page as Markdown"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit  int    `short:"n" default:"20" help:"Maximum snapshots to list"`
	Source string `help:"Only list snapshots of this source file"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID      string `arg:"" help:"Snapshot ID"`
	Compact bool   `help:"Print JSON on a single line"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Snapshot ID"`
	Force bool   `help:"Confirm deletion"`
}
