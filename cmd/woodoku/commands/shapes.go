package commands

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/woodoku/internal/domain"
	"svw.info/woodoku/internal/infrastructure/catalog"
	"svw.info/woodoku/internal/printer"
	"svw.info/woodoku/internal/shape"
)

var (
	shapesCatalog string
	shapesJSON    bool
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List the shape catalog, rotations included",
	RunE:  runShapes,
}

func init() {
	shapesCmd.Flags().StringVar(&shapesCatalog, "catalog", "", "Shape catalog YAML (default from config, else built-in)")
	shapesCmd.Flags().BoolVar(&shapesJSON, "json", false, "Print the catalog as JSON")

	rootCmd.AddCommand(shapesCmd)
}

type shapeJSON struct {
	Family int                `json:"family"`
	Size   int                `json:"size"`
	Cells  []domain.CellCoord `json:"cells"`
}

func runShapes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Game.Catalog
	if cmd.Flags().Changed("catalog") {
		path = shapesCatalog
	}
	src := catalog.NewFS(path)
	shapes, err := src.Load(context.Background())
	if err != nil {
		return printer.Error("failed to load shape catalog", err.Error(), nil)
	}

	if shapesJSON {
		return writeShapesJSON(os.Stdout, shapes)
	}
	idx := shape.NewIndex(shapes)
	printer.Info("%d shapes from %s\n\n", len(shapes), src.Path())
	for i, s := range shapes {
		family, _ := idx.Family(s)
		printer.Step("#%d (%d cells, family %d)\n", i, s.Size(), family)
		printer.Shape(os.Stdout, s.String())
		printer.Println()
	}
	return nil
}

func writeShapesJSON(w io.Writer, shapes []shape.Shape) error {
	idx := shape.NewIndex(shapes)
	out := make([]shapeJSON, len(shapes))
	for i, s := range shapes {
		family, _ := idx.Family(s)
		out[i] = shapeJSON{Family: family, Size: s.Size(), Cells: s.Coords()}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
