package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pizza_dough/internal/display"
)

func newRecipeCmd(e *env) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Solve the yeast quantity and ingredient masses for a leavening procedure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := LoadRequest(path)
			if err != nil {
				return err
			}
			svc, err := e.service(req.Strain)
			if err != nil {
				return err
			}
			in, err := req.RecipeRequest(e.cfg)
			if err != nil {
				return err
			}
			r, err := svc.CreateRecipe(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), display.Recipe(r))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "request", "", "request file (YAML)")
	return cmd
}

func newBakeCmd(e *env) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "bake",
		Short: "Solve the recipe, then the oven temperature and baking time for it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := LoadRequest(path)
			if err != nil {
				return err
			}
			svc, err := e.service(req.Strain)
			if err != nil {
				return err
			}
			in, err := req.RecipeRequest(e.cfg)
			if err != nil {
				return err
			}
			r, err := svc.CreateRecipe(cmd.Context(), in)
			if err != nil {
				return err
			}
			b, err := svc.BakeRecipe(cmd.Context(), r, req.Bake.TargetHeight, req.Instruments())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, display.Recipe(r))
			fmt.Fprintln(out)
			fmt.Fprint(out, display.Bake(b))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "request", "", "request file (YAML)")
	return cmd
}

func newScheduleCmd(e *env) *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Plan the procedure backwards from the time to bake",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := LoadRequest(path)
			if err != nil {
				return err
			}
			svc, err := e.service(req.Strain)
			if err != nil {
				return err
			}
			p, err := req.ProcedureModel()
			if err != nil {
				return err
			}
			s, err := svc.Schedule(p)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), display.Schedule(s))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "request", "", "request file (YAML)")
	return cmd
}
