package scene

// Context is passed to the lifecycle hooks of a node.
type Context struct {
	tree *Tree
	id   NodeId
}

func (t *Tree) contextOf(id NodeId) *Context {
	return &Context{tree: t, id: id}
}

// Id returns the id of the node the hook is called for.
func (c *Context) Id() NodeId {
	return c.id
}

func (c *Context) Tree() *Tree {
	return c.tree
}

// Path returns the path of the node, see Tree.Path.
func (c *Context) Path() string {
	return c.tree.Path(c.id)
}

// Parent returns the parent node, if any.
func (c *Context) Parent() (Node, bool) {
	parentId, ok := c.tree.Parent(c.id)
	if !ok {
		return nil, false
	}

	return c.tree.Node(parentId)
}

// AddChild queues the spawn to be inserted below the current node. The
// insertion happens after the current tree operation has finished, errors are
// reported to the caller of that operation.
func (c *Context) AddChild(spawn Spawn) {
	parentId := c.id

	c.tree.defer_(func() error {
		_, err := c.tree.AddChild(parentId, spawn)
		return err
	})
}
