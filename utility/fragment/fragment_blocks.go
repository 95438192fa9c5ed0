package fragment

type Blocks struct {
	names  []string
	blocks map[string]*Block
}

func NewBlocks(names ...string) *Blocks {
	blocks := &Blocks{
		names:  make([]string, 0, len(names)),
		blocks: make(map[string]*Block),
	}
	for _, name := range names {
		blocks.Get(name)
	}
	return blocks
}

// Get returns the named block, creating it on first use.
func (r *Blocks) Get(name string) *Block {
	if block, ok := r.blocks[name]; ok {
		return block
	}
	block := NewBlock(name)
	r.names = append(r.names, name)
	r.blocks[name] = block
	return block
}

func (r *Blocks) Names() []string {
	return r.names
}

func (r *Blocks) Open(guard string) {
	for _, name := range r.names {
		r.blocks[name].Open(guard)
	}
}

func (r *Blocks) Close(comment string) {
	for _, name := range r.names {
		r.blocks[name].Close(comment)
	}
}

func (r *Blocks) Map() map[string]string {
	rendered := make(map[string]string, len(r.names))
	for _, name := range r.names {
		rendered[name] = r.blocks[name].String()
	}
	return rendered
}
