package extension

import (
	"context"
	"io"

	"go.scnd.dev/open/sdkgen/command/sdkgen/procedure/printer"
	"go.scnd.dev/open/sdkgen/utility/condition"
	"go.scnd.dev/open/sdkgen/utility/patch"
)

// Patch rewrites every target once all of them were patched in memory, and returns the number of written files.
func (r *Generator) Patch(ctx context.Context, blocks map[string]string) (int, error) {
	s, _ := r.Layer.With(ctx)
	defer s.End()

	marker := patch.NewMarker(*r.App.Config().Extension.MarkerPrefix)

	// * prepare all targets
	files := make([]*patch.File, 0)
	for _, target := range r.Targets() {
		file, err := marker.Prepare(target, blocks)
		if err != nil {
			return 0, s.Error("unable to prepare target", err)
		}
		files = append(files, file)
	}

	// * write changed targets
	written := 0
	for _, file := range files {
		if !file.Changed() {
			r.App.Logger().Debug("target unchanged", "path", file.Path)
			continue
		}
		if err := file.Write(); err != nil {
			return written, s.Error("unable to write target", err)
		}
		r.App.Logger().Info("patched target", "path", file.Path)
		written++
	}

	return written, nil
}

func PrintGroups(writer io.Writer, idx *Index, options *Options) error {
	tree := &printer.Node{Name: options.Api}
	for _, key := range idx.Groups.Keys() {
		if options.Excludes[key] {
			continue
		}
		node := tree.Add(condition.Strip(key))
		for _, command := range idx.Groups.Get(key).Sorted() {
			node.Add(command)
		}
	}
	return printer.PrintTree(writer, tree)
}
