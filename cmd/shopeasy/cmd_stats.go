package main

import (
	"os"

	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/shopeasy/pkg/metrics"
)

// shopeasy stats — dump the client metrics registry in Prometheus text format.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Dump client metrics (Prometheus text format)",
	RunE: func(cmd *cobra.Command, args []string) error {
		families, err := metrics.DefaultRegistry.Gather()
		if err != nil {
			return err
		}

		enc := expfmt.NewEncoder(os.Stdout, expfmt.NewFormat(expfmt.TypeTextPlain))
		for _, mf := range families {
			if err := enc.Encode(mf); err != nil {
				return err
			}
		}
		return nil
	},
}
