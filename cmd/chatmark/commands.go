package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts,
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "r",
			Aliases:     []string{"resolvers"},
			Description: "YAML file with emoji/user/role/channel tables",
			Type:        cli.NamedFuncOpt(cfg.resolversOpt, "(filepath)"),
		})

	return cli.NewCommandAt(&cfg.Main, "chatmark").
		WithSynopsis("chatmark [opts] command [opts] [files]").
		WithDescription("chatmark renders chat markup messages to HTML.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return chatmarkMain(cfg, cc, args)
		}).
		WithSubs(
			HTMLCommand(cfg),
			TreeCommand(cfg))
}

func HTMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HTMLConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("html").
		WithAliases("h").
		WithSynopsis("html [files]").
		WithDescription("Render messages to HTML, one output line per input.").
		WithRun(func(cc *cli.Context, args []string) error {
			return htmlMain(cfg, cc, args)
		})
	cfg.HTML = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("tree").
		WithAliases("t", "ast").
		WithSynopsis("tree [files]").
		WithDescription("Print the parsed tree of each message.").
		WithRun(func(cc *cli.Context, args []string) error {
			return treeMain(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}
