package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chatmark/go-chatmark/ast"
	"github.com/chatmark/go-chatmark/parse"
	"github.com/chatmark/go-chatmark/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Embed bool `cli:"name=embed aliases=e desc='recognize [label](url) hyperlinks (embeds)'"`
	Color bool `cli:"name=color desc='print trees with color'"`

	Resolvers *resolverTable

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) resolversOpt(_ *cli.Context, a string) (any, error) {
	tbl, err := loadResolvers(a)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	cfg.Resolvers = tbl
	return tbl, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{parse.ParseAltTextLinks(cfg.Embed)}
}

func (cfg *MainConfig) renderOpts() []render.RenderOption {
	return cfg.Resolvers.renderOpts()
}

func (cfg *MainConfig) printOpts(w io.Writer) []ast.PrintOption {
	if cfg.Color {
		return []ast.PrintOption{ast.PrintColors(ast.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []ast.PrintOption{ast.PrintColors(ast.NewColors())}
	}
	return nil
}

type HTMLConfig struct {
	*MainConfig

	HTML *cli.Command
}

type TreeConfig struct {
	*MainConfig

	Tree *cli.Command
}
