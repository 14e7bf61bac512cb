package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/netex/bfs"
	"github.com/katalvlaran/netex/builder"
	"github.com/katalvlaran/netex/core"
	"github.com/katalvlaran/netex/snapshot"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <snapshot>",
		Short: "Print statistics of a graph snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, info, err := snapshot.Load(args[0])
			if err != nil {
				return err
			}

			var proteins, drugs, approved, ppi, dpi int
			for _, u := range g.Nodes() {
				n := g.Node(u)
				switch {
				case !n.IsDrug():
					proteins++
				case n.Approved():
					drugs++
					approved++
				default:
					drugs++
				}
			}
			for _, e := range g.Edges() {
				if e.Type == core.EdgeProteinProtein {
					ppi++
				} else {
					dpi++
				}
			}

			fmt.Printf("file:        %s (%s, %s)\n", args[0], humanize.Bytes(uint64(info.Bytes)), info.Compression)
			fmt.Printf("nodes:       %s (%s proteins, %s drugs, %s approved)\n",
				humanize.Comma(int64(g.NodeCount())), humanize.Comma(int64(proteins)),
				humanize.Comma(int64(drugs)), humanize.Comma(int64(approved)))
			fmt.Printf("edges:       %s (%s protein-protein, %s drug-protein)\n",
				humanize.Comma(int64(g.EdgeCount())), humanize.Comma(int64(ppi)), humanize.Comma(int64(dpi)))
			fmt.Printf("avg degree:  %.3f\n", g.AverageDegree())
			fmt.Printf("components:  %d (largest %s nodes)\n",
				len(bfs.Components(g)), humanize.Comma(int64(len(bfs.LargestComponent(g)))))

			return nil
		},
	}
}

func newGenerateCmd() *cobra.Command {
	var (
		proteins    int
		probability float64
		drugs       int
		targets     int
		approved    float64
		seed        int64
		compression string
	)

	cmd := &cobra.Command{
		Use:   "generate <snapshot>",
		Short: "Write a random interaction network snapshot",
		Long: `Generate builds an Erdős–Rényi protein network and attaches drugs with random
targets and approval status. The same seed always yields the same snapshot.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := snapshot.ParseCompression(compression)
			if err != nil {
				return err
			}
			cons := []builder.Constructor{builder.RandomInteractome(proteins, probability)}
			if drugs > 0 {
				cons = append(cons, builder.RandomDrugs(drugs, targets, approved))
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, cons...)
			if err != nil {
				return err
			}
			if err := snapshot.WriteFile(args[0], g, c); err != nil {
				return err
			}
			fmt.Printf("wrote %s: %d nodes, %d edges\n", args[0], g.NodeCount(), g.EdgeCount())

			return nil
		},
	}

	cmd.Flags().IntVar(&proteins, "proteins", 1000, "Number of proteins")
	cmd.Flags().Float64Var(&probability, "p", 0.005, "Interaction probability per protein pair")
	cmd.Flags().IntVar(&drugs, "drugs", 100, "Number of drugs (0 for none)")
	cmd.Flags().IntVar(&targets, "targets", 3, "Targets per drug")
	cmd.Flags().Float64Var(&approved, "approved", 0.5, "Probability that a drug is approved")
	cmd.Flags().Int64Var(&seed, "seed", 1, "Random seed")
	cmd.Flags().StringVar(&compression, "compression", "zstd", "Snapshot compression: none, snappy or zstd")

	return cmd
}
