package main

import (
	"fmt"
	"io"

	"github.com/chatmark/go-chatmark/parse"
	"github.com/chatmark/go-chatmark/render"

	"github.com/scott-cotton/cli"
)

func htmlMain(cfg *HTMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.HTML.Parse(cc, args)
	if err != nil {
		cfg.HTML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := renderArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return fmt.Errorf("error rendering %s: %w", arg, err)
		}
	}
	return nil
}

func renderArg(cfg *MainConfig, w io.Writer, arg string) error {
	msg, err := readMessage(arg)
	if err != nil {
		return err
	}
	tree := parse.Parse(msg, cfg.parseOpts()...)
	_, err = io.WriteString(w, render.HTML(tree, cfg.renderOpts()...)+"\n")
	return err
}
