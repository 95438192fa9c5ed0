package fragment

import (
	"strings"
)

type Kind int

const (
	KindOpen Kind = iota
	KindWrite
	KindClose
)

type Fragment struct {
	Kind Kind
	Text string
}

// Block accumulates generated text for a single marker.
type Block struct {
	Name      string
	Fragments []*Fragment
}

func NewBlock(name string) *Block {
	return &Block{
		Name:      name,
		Fragments: make([]*Fragment, 0),
	}
}

func (r *Block) Open(guard string) {
	r.Fragments = append(r.Fragments, &Fragment{
		Kind: KindOpen,
		Text: "#if " + guard + "\n",
	})
}

func (r *Block) Write(text string) {
	if text == "" {
		return
	}
	r.Fragments = append(r.Fragments, &Fragment{
		Kind: KindWrite,
		Text: text,
	})
}

func (r *Block) Close(comment string) {
	r.Fragments = append(r.Fragments, &Fragment{
		Kind: KindClose,
		Text: "#endif /* " + comment + " */\n",
	})
}

// String renders the block, dropping every open/close pair without content in between.
func (r *Block) String() string {
	type level struct {
		open    string
		builder *strings.Builder
	}

	stack := []*level{{builder: new(strings.Builder)}}
	for _, fragment := range r.Fragments {
		switch fragment.Kind {
		case KindOpen:
			stack = append(stack, &level{
				open:    fragment.Text,
				builder: new(strings.Builder),
			})
		case KindWrite:
			stack[len(stack)-1].builder.WriteString(fragment.Text)
		case KindClose:
			if len(stack) == 1 {
				stack[0].builder.WriteString(fragment.Text)
				continue
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.builder.Len() == 0 {
				continue
			}
			parent := stack[len(stack)-1].builder
			parent.WriteString(top.open)
			parent.WriteString(top.builder.String())
			parent.WriteString(fragment.Text)
		}
	}

	// * flush unclosed levels as they are
	for len(stack) > 1 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		parent := stack[len(stack)-1].builder
		parent.WriteString(top.open)
		parent.WriteString(top.builder.String())
	}

	return stack[0].builder.String()
}
