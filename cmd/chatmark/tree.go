package main

import (
	"fmt"
	"io"

	"github.com/chatmark/go-chatmark/ast"
	"github.com/chatmark/go-chatmark/parse"

	"github.com/scott-cotton/cli"
)

func treeMain(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		if err := printArg(cfg.MainConfig, cc.Out, arg); err != nil {
			return fmt.Errorf("error printing %s: %w", arg, err)
		}
	}
	return nil
}

func printArg(cfg *MainConfig, w io.Writer, arg string) error {
	msg, err := readMessage(arg)
	if err != nil {
		return err
	}
	tree := parse.Parse(msg, cfg.parseOpts()...)
	return ast.Print(tree, w, cfg.printOpts(w)...)
}
