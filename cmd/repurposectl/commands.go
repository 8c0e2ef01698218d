package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/app"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/catalog"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/graph"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/core/model"
	"github.com/CHETHANCHARMANNAPK/drug-repurposing/internal/driver"
)

var errOffline = errors.New("command needs the prediction service; drop --offline")

func newDiseasesCmd() *cobra.Command {
	var (
		query string
		pages int
	)
	cmd := &cobra.Command{
		Use:   "diseases",
		Short: "List diseases, optionally filtered by name or category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			if err := a.Store.SearchDiseases(ctx, query); err != nil {
				return err
			}
			for i := 1; i < pages; i++ {
				if err := a.Store.LoadMoreDiseases(ctx); err != nil {
					return err
				}
			}
			st := a.Store.Snapshot()
			if st.DiseaseError != "" {
				return errors.New(st.DiseaseError)
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), st.Diseases)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tCATEGORY")
			for _, d := range st.Diseases {
				fmt.Fprintf(w, "%s\t%s\t%s\n", d.ID, d.Name, d.Category)
			}
			fmt.Fprintf(w, "\n%d of %d shown\n", len(st.Diseases), st.TotalDiseases)
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "search text")
	cmd.Flags().IntVar(&pages, "pages", 1, "number of pages to load")
	return cmd
}

// selectDisease runs the prediction flow and surfaces its failure as an error.
func selectDisease(ctx context.Context, a *app.App, id string) error {
	d, ok := a.Catalog.Disease(id)
	if !ok {
		d = model.Disease{ID: id, Name: id}
	}
	if err := a.Store.SelectDisease(ctx, &d); err != nil {
		return err
	}
	if st := a.Store.Snapshot(); st.Status == model.StatusFailed {
		return fmt.Errorf("%s: %w", st.Error, a.Store.LastError())
	}
	return nil
}

func newPredictCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "predict <disease-id>",
		Short: "Rank drug candidates for a disease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			if err := selectDisease(ctx, a, args[0]); err != nil {
				return err
			}
			preds := a.Store.Snapshot().Predictions
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), preds)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tID\tNAME\tSCORE\tTIER\tTARGETS")
			for i, d := range preds {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%s\t%s\n", i+1, d.ID, d.Name, d.ConfidenceScore, d.ConfidenceTier, strings.Join(d.Targets, ","))
			}
			return w.Flush()
		},
	}
}

func newExplainCmd() *cobra.Command {
	var drugID string
	cmd := &cobra.Command{
		Use:   "explain <disease-id>",
		Short: "Explain why a drug is a candidate for a disease",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			if err := selectDisease(ctx, a, args[0]); err != nil {
				return err
			}
			if drugID != "" {
				if err := a.Store.SelectDrug(drugID); err != nil {
					return err
				}
			}
			st := a.Store.Snapshot()
			e := a.Explainer.Explain(ctx, *st.SelectedDisease, *st.SelectedDrug)
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), e)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s for %s (%s)\n\n", st.SelectedDrug.Name, st.SelectedDisease.Name, e.Source)
			for _, s := range []struct{ title, body string }{
				{"SUMMARY", e.Summary},
				{"MECHANISM", e.Mechanism},
				{"DISEASE RELEVANCE", e.DiseaseRelevance},
				{"CONFIDENCE", e.Confidence},
				{"LIMITATIONS", e.Limitations},
			} {
				fmt.Fprintf(out, "%s\n%s\n\n", s.title, s.body)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&drugID, "drug", "", "drug id (defaults to the top candidate)")
	return cmd
}

func newGraphCmd() *cobra.Command {
	var drugID string
	cmd := &cobra.Command{
		Use:   "graph <disease-id>",
		Short: "Print the drug-target-pathway graph of a candidate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)

			if err := selectDisease(ctx, a, args[0]); err != nil {
				return err
			}
			if drugID != "" {
				if err := a.Store.SelectDrug(drugID); err != nil {
					return err
				}
			}
			g, diag := a.Store.Graph()
			if err := graph.Validate(g); err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), map[string]any{"graph": g, "diagnostics": diag, "stats": graph.Stats(g)})
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SOURCE\tTARGET\tSTRENGTH")
			for _, l := range g.Links {
				fmt.Fprintf(w, "%s\t%s\t%.1f\n", l.Source, l.Target, l.Strength)
			}
			if diag.Skipped() > 0 {
				fmt.Fprintf(w, "\nskipped targets: %v, pathways: %v\n", diag.SkippedTargets, diag.SkippedPathways)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&drugID, "drug", "", "drug id (defaults to the top candidate)")
	return cmd
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the prediction service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)
			if a.Client == nil {
				return errOffline
			}

			h, err := a.Client.Health(ctx)
			if err != nil {
				return err
			}
			result := map[string]any{
				"base_url":     a.Client.BaseURL(),
				"healthy":      a.Client.CheckHealth(ctx),
				"v2_healthy":   a.Client.CheckHealthV2(ctx),
				"status":       h.Status,
				"model_loaded": h.ModelLoaded,
				"data_loaded":  h.DataLoaded,
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}
}

func newMoleculeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "molecule <drug-id>",
		Short: "Fetch the 3D structure of a drug",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)
			if a.Client == nil {
				return errOffline
			}

			m, err := a.Client.FetchMolecule(ctx, args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), m)
			}
			c := m.Center()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d atoms, %d bonds, centroid (%.2f, %.2f, %.2f)\n",
				m.DrugName, m.AtomCount, m.BondCount, c.X, c.Y, c.Z)
			return nil
		},
	}
}

func newDrugDiseasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "drug-diseases <drug-id>",
		Short: "List diseases a drug is predicted to treat",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.Close(ctx)
			if a.Client == nil {
				return errOffline
			}

			dd, err := a.Client.FetchDrugDiseases(ctx, args[0], cfg.Prediction.TopK)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(cmd.OutOrStdout(), dd)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tSCORE\tTIER")
			for _, p := range dd.Predictions {
				fmt.Fprintf(w, "%s\t%s\t%d%%\t%s\n", p.DiseaseID, p.DiseaseName, p.ConfidenceScore, p.ConfidenceTier)
			}
			return w.Flush()
		},
	}
}

func newSeedCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed-catalog",
		Short: "Write the built-in reference catalog into Memgraph",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if cfg.Memgraph.URI == "" {
				return errors.New("memgraph.uri is not set")
			}
			d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, logger())
			if err != nil {
				return err
			}
			defer d.Close(ctx)

			cat := catalog.Default()
			if err := catalog.SeedGraph(ctx, d, cat); err != nil {
				return err
			}
			logger().Info("catalog seeded", zap.Int("diseases", len(cat.Diseases())))
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d diseases, %d targets, %d pathways\n",
				len(cat.Diseases()), len(cat.Targets()), len(cat.Pathways()))
			return nil
		},
	}
}
