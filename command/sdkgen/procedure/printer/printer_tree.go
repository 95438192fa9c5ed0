package printer

import (
	"io"
	"strings"

	"github.com/ddddddO/gtree"
)

type Node struct {
	Name     string
	Children []*Node
}

func (r *Node) Add(name string) *Node {
	child := &Node{
		Name:     name,
		Children: make([]*Node, 0),
	}
	r.Children = append(r.Children, child)
	return child
}

func PrintTree(writer io.Writer, tree *Node) error {
	root := gtree.NewRoot(tree.Name)
	for _, child := range tree.Children {
		attach(root, child)
	}
	return gtree.OutputFromRoot(writer, root)
}

func RenderTree(tree *Node) (string, error) {
	builder := new(strings.Builder)
	if err := PrintTree(builder, tree); err != nil {
		return "", err
	}
	return builder.String(), nil
}

func attach(parent *gtree.Node, node *Node) {
	child := parent.Add(node.Name)
	for _, grandchild := range node.Children {
		attach(child, grandchild)
	}
}
