package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/arvochem/smiles/backbone"
	"github.com/arvochem/smiles/molgraph"
	"github.com/arvochem/smiles/parser"
)

// main is separated from the actual *cli.App to help with testing.
func main() {
	run(os.Args)
}

func run(args []string) {
	app := application()
	if err := app.Run(args); err != nil {
		log.Fatal(err)
	}
}

// application defines the smiles command line app and its subcommands.
func application() *cli.App {
	return &cli.App{
		Name:  "smiles",
		Usage: "Parse, lower, and query SMILES molecule notation.",

		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parse a SMILES string and print its concrete syntax tree.",
				ArgsUsage: "<smiles>",
				Action:    parseCommand,
			},
			{
				Name:      "graph",
				Usage:     "Parse and lower a SMILES string, printing node/edge/component counts.",
				ArgsUsage: "<smiles>",
				Action:    graphCommand,
			},
			{
				Name:      "backbone",
				Usage:     "Parse, lower, and print the main carbon backbone of a SMILES string.",
				ArgsUsage: "<smiles>",
				Action:    backboneCommand,
			},
		},
	}
}

func soleArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one SMILES argument, got %d", c.NArg())
	}
	return c.Args().Get(0), nil
}

func parseCommand(c *cli.Context) error {
	input, err := soleArg(c)
	if err != nil {
		return err
	}
	p := parser.New()
	chain, err := p.Parse([]byte(input))
	if err != nil {
		return err
	}
	links := chain.Links()
	fmt.Fprintf(c.App.Writer, "Rendered: %s\n", chain.String())
	fmt.Fprintf(c.App.Writer, "Atoms: %d\n", len(links))
	for i, l := range links {
		bond := "(start)"
		if l.Incoming != nil {
			bond = l.Incoming.String()
		}
		fmt.Fprintf(c.App.Writer, "  %d: %s %s (%d ring bond(s), %d branch(es))\n",
			i, bond, l.Atom.Atom.String(), len(l.Atom.RingBonds), len(l.Atom.Branches))
	}
	return nil
}

func graphCommand(c *cli.Context) error {
	input, err := soleArg(c)
	if err != nil {
		return err
	}
	p := parser.New()
	chain, err := p.Parse([]byte(input))
	if err != nil {
		return err
	}
	g, err := molgraph.ChainToGraph(chain)
	if err != nil {
		return err
	}
	edges := 0
	for _, n := range g.Nodes() {
		edges += len(g.Neighbors(n))
	}
	fmt.Fprintf(c.App.Writer, "Nodes: %d\n", g.Len())
	fmt.Fprintf(c.App.Writer, "Edges: %d\n", edges/2)
	fmt.Fprintf(c.App.Writer, "Components: %d\n", g.ComponentCount())
	return nil
}

func backboneCommand(c *cli.Context) error {
	input, err := soleArg(c)
	if err != nil {
		return err
	}
	p := parser.New()
	chain, err := p.Parse([]byte(input))
	if err != nil {
		return err
	}
	g, err := molgraph.ChainToGraph(chain)
	if err != nil {
		return err
	}
	path := backbone.FindMainCarbonChain(g)
	if path == nil {
		fmt.Fprintln(c.App.Writer, "No carbon backbone found.")
		return nil
	}
	fmt.Fprintf(c.App.Writer, "Backbone length: %d\n", len(path))
	symbols := make([]string, len(path))
	for i, id := range path {
		symbols[i] = g.Atom(id).Element().String()
	}
	fmt.Fprintf(c.App.Writer, "Backbone: %v\n", symbols)
	return nil
}
